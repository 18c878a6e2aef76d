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

// Package romimage builds synthetic cartridge images for testing.
package romimage

import (
	"encoding/binary"
)

// Fixed header offsets, not accounting for copier header.
const (
	LoROMHeader = 0x7fc0
	HiROMHeader = 0xffc0
)

// Header fields written by WriteHeader(). Fields are written as given so it is
// possible to create invalid headers.
type Header struct {
	Title           string
	Mode            uint8
	Type            uint8
	ROMSize         uint8
	RAMSize         uint8
	Destination     uint8
	Licensee        uint8
	Version         uint8
	InverseChecksum uint16
	Checksum        uint16
}

// Valid returns a Header with a well formed mode byte and a complementary
// checksum pair. The sub-mapping nibble is taken from the low bits of
// subMapping.
func Valid(title string, subMapping uint8, checksum uint16) Header {
	return Header{
		Title:           title,
		Mode:            0x20 | (subMapping & 0x1f),
		ROMSize:         0x08,
		RAMSize:         0x00,
		Destination:     0x01,
		Licensee:        0x33,
		Version:         0x00,
		InverseChecksum: ^checksum,
		Checksum:        checksum,
	}
}

// New returns a zeroed image of size bytes, with an additional 0x200 bytes
// at the start if copier is true.
func New(size int, copier bool) []byte {
	if copier {
		return make([]byte, size+0x200)
	}
	return make([]byte, size)
}

// Fill sets every byte of data to v.
func Fill(data []byte, v uint8) {
	for i := range data {
		data[i] = v
	}
}

// WriteHeader writes the header fields to data at offset.
func WriteHeader(data []byte, offset int, h Header) {
	title := data[offset : offset+21]
	for i := range title {
		title[i] = ' '
	}
	copy(title, h.Title)

	data[offset+0x15] = h.Mode
	data[offset+0x16] = h.Type
	data[offset+0x17] = h.ROMSize
	data[offset+0x18] = h.RAMSize
	data[offset+0x19] = h.Destination
	data[offset+0x1a] = h.Licensee
	data[offset+0x1b] = h.Version
	Write16(data, offset+0x1c, h.InverseChecksum)
	Write16(data, offset+0x1e, h.Checksum)
}

// Write16 writes v to data at offset in little-endian order.
func Write16(data []byte, offset int, v uint16) {
	binary.LittleEndian.PutUint16(data[offset:], v)
}

// FixChecksum writes a checksum pair to the header at headerOffset that
// matches the sum of the cartridge data, which starts at copierOffset. The
// cartridge data must be a power of two in length. Returns the checksum.
func FixChecksum(data []byte, headerOffset int, copierOffset int) uint16 {
	// a complementary pair always contributes 0x1fe to the sum regardless of
	// value. write a dummy pair before summing
	Write16(data, headerOffset+0x1c, 0xffff)
	Write16(data, headerOffset+0x1e, 0x0000)

	var sum uint16
	for _, b := range data[copierOffset:] {
		sum += uint16(b)
	}

	Write16(data, headerOffset+0x1c, ^sum)
	Write16(data, headerOffset+0x1e, sum)

	return sum
}
