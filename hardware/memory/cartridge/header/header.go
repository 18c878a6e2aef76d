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

package header

import (
	"bytes"
	"math"
	"strings"

	"github.com/jetsetilly/gophersnes/curated"
	"github.com/jetsetilly/gophersnes/hardware/memory/cartridge/image"
	"github.com/jetsetilly/gophersnes/hardware/memory/cartridge/mapping"
)

// TitleLength is the number of bytes in the title field.
const TitleLength = 21

// Size is the number of bytes occupied by the header fields.
const Size = 0x20

// the top three bits of the mode byte in a valid header
const (
	modeMask  = 0xe0
	modeValue = 0x20
)

// Sentinal errors returned by Parse(). Detect() only returns NoValidHeader.
const (
	InvalidModeByte  = "invalid mode byte (%#02x) at %#06x"
	ChecksumMismatch = "checksum (%#04x) and inverse checksum (%#04x) do not complement at %#06x"
	IncompleteHeader = "incomplete header at %#06x: %v"
)

// Header is the cartridge metadata found at the end of the first bank (LoROM)
// or the first 64k (HiROM) of cartridge data.
type Header struct {
	// offset in the image where the header was found, including any copier
	// header
	Offset int

	// the title is not guaranteed to be text. use the Title() function for a
	// printable version
	RawTitle [TitleLength]byte

	// the full mode byte and the two fields derived from it
	Mode           uint8
	FastClock      bool
	SubMappingMode uint8

	Type CartridgeType

	// log2 of the ROM and RAM sizes in kilobytes
	ROMSizeLog uint8
	RAMSizeLog uint8

	// sizes in bytes derived from the log2 values. see SizeBytes()
	ROMSizeBytes uint64
	RAMSizeBytes uint64

	Destination Destination
	Licensee    uint8
	Version     uint8

	InverseChecksum uint16
	Checksum        uint16
}

// SizeBytes returns the number of bytes for a log2 size in kilobytes, which
// is 0x400 << log2. The result saturates at math.MaxUint64 rather than
// overflowing, which happens for log2 values of 54 or more.
func SizeBytes(log2 uint8) uint64 {
	// 0x400 is 1<<10 so the result needs 10+log2+1 bits
	if log2 > 53 {
		return math.MaxUint64
	}
	return 0x400 << log2
}

// Parse the header at offset in the image. The offset includes any copier
// header.
//
// The mode byte is checked before the checksum. An error is returned if the
// mode byte is malformed, if the checksum pair does not complement or if the
// header runs past the end of the image.
func Parse(img image.Image, offset int) (Header, error) {
	h := Header{Offset: offset}
	c := img.NewCursor(offset)

	if err := c.NextBytes(h.RawTitle[:]); err != nil {
		return Header{}, curated.Errorf(IncompleteHeader, offset, err)
	}

	var err error

	h.Mode, err = c.Next8()
	if err != nil {
		return Header{}, curated.Errorf(IncompleteHeader, offset, err)
	}
	if h.Mode&modeMask != modeValue {
		return Header{}, curated.Errorf(InvalidModeByte, h.Mode, offset)
	}
	h.FastClock = h.Mode&0x10 == 0x10
	h.SubMappingMode = h.Mode & 0x0f

	// the remaining fields are read in one go. the cursor advances even on
	// failure so the first error is enough
	var t, dest uint8
	for _, f := range []*uint8{&t, &h.ROMSizeLog, &h.RAMSizeLog, &dest, &h.Licensee, &h.Version} {
		*f, err = c.Next8()
		if err != nil {
			return Header{}, curated.Errorf(IncompleteHeader, offset, err)
		}
	}
	h.Type = CartridgeType(t)
	h.Destination = Destination(dest)

	h.InverseChecksum, err = c.Next16()
	if err != nil {
		return Header{}, curated.Errorf(IncompleteHeader, offset, err)
	}
	h.Checksum, err = c.Next16()
	if err != nil {
		return Header{}, curated.Errorf(IncompleteHeader, offset, err)
	}

	if h.Checksum^h.InverseChecksum != 0xffff {
		return Header{}, curated.Errorf(ChecksumMismatch, h.Checksum, h.InverseChecksum, offset)
	}

	h.ROMSizeBytes = SizeBytes(h.ROMSizeLog)
	h.RAMSizeBytes = SizeBytes(h.RAMSizeLog)

	return h, nil
}

// Title returns the title as a string. The title is truncated at the first
// NUL byte and trailing spaces are removed.
func (h Header) Title() string {
	t := h.RawTitle[:]
	if i := bytes.IndexByte(t, 0x00); i >= 0 {
		t = t[:i]
	}
	return strings.TrimRight(string(t), " ")
}

// DeclaredMapping returns the mapping mode declared by the header. This can
// differ from the mapping mode detected by Detect(). The second return value
// is false if the declared mode is not recognised.
func (h Header) DeclaredMapping() (mapping.Mode, bool) {
	return mapping.FromSubMapping(h.SubMappingMode)
}
