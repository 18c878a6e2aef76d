// This file is part of GopherSNES.
//
// GopherSNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherSNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherSNES.  If not, see <https://www.gnu.org/licenses/>.

// Package image is the read-only view of a loaded cartridge file. It
// validates the size of the file and provides the bounds-checked byte
// extraction primitives used by the header and vector packages.
//
// All multi-byte values in a cartridge image are little-endian.
package image

import (
	"encoding/binary"

	"github.com/jetsetilly/gophersnes/curated"
)

// Size limits of a cartridge image, including any copier header.
const (
	MinSize = 0x8000
	MaxSize = 0x6000000
)

// CopierHeaderSize is the size of the header some copier devices prepend to
// the cartridge data.
const CopierHeaderSize = 0x200

// the remainder of the length is taken from the low 15 bits
const remainderMask = 0x7fff

// Sentinal errors.
const (
	SizeError   = "size error: %s"
	OutOfBounds = "out of bounds: %d byte(s) at %#06x (image length %#x)"
)

// Image is an immutable cartridge image. The zero value is an empty image
// for which every read is out of bounds.
type Image struct {
	data []byte
}

// New returns an Image for the data. The data is not copied and must not be
// modified after the call.
//
// Returns a SizeError if the data is not a plausible cartridge image.
func New(data []byte) (Image, error) {
	if _, err := CopierOffset(len(data)); err != nil {
		return Image{}, err
	}
	return Image{data: data}, nil
}

// CopierOffset returns the size of the copier header implied by the length
// of an image. Copier headers are always 0x200 bytes and cartridge data is
// always a multiple of 0x8000 bytes so the remainder of the length tells us
// whether a copier header is present.
func CopierOffset(length int) (int, error) {
	if length < MinSize {
		return 0, curated.Errorf(SizeError, curated.Errorf("%#x bytes is smaller than minimum (%#x)", length, MinSize))
	}
	if length > MaxSize {
		return 0, curated.Errorf(SizeError, curated.Errorf("%#x bytes is larger than maximum (%#x)", length, MaxSize))
	}

	switch length & remainderMask {
	case 0:
		return 0, nil
	case CopierHeaderSize:
		return CopierHeaderSize, nil
	}

	return 0, curated.Errorf(SizeError, curated.Errorf("%#x bytes has unexpected remainder (%#x)", length, length&remainderMask))
}

// Len returns the number of bytes in the image, including any copier header.
func (img Image) Len() int {
	return len(img.data)
}

// CopierOffset returns the size of the copier header in the image. Returns
// zero if there is no copier header.
func (img Image) CopierOffset() int {
	if len(img.data)&remainderMask == CopierHeaderSize {
		return CopierHeaderSize
	}
	return 0
}

// ROM returns the cartridge data with any copier header removed. The returned
// slice must not be modified.
func (img Image) ROM() []byte {
	return img.data[img.CopierOffset():]
}

// check that n bytes can be read from offset
func (img Image) check(offset int, n int) error {
	if offset < 0 || n < 0 || offset > len(img.data)-n {
		return curated.Errorf(OutOfBounds, n, offset, len(img.data))
	}
	return nil
}

// Read8 returns the byte at offset.
func (img Image) Read8(offset int) (uint8, error) {
	if err := img.check(offset, 1); err != nil {
		return 0, err
	}
	return img.data[offset], nil
}

// Read16 returns the little-endian 16 bit value at offset.
func (img Image) Read16(offset int) (uint16, error) {
	if err := img.check(offset, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(img.data[offset:]), nil
}

// ReadBytes copies len(b) bytes from offset into b.
func (img Image) ReadBytes(offset int, b []byte) error {
	if err := img.check(offset, len(b)); err != nil {
		return err
	}
	copy(b, img.data[offset:])
	return nil
}
