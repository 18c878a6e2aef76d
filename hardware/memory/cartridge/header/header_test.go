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

package header_test

import (
	"math"
	"testing"

	"github.com/jetsetilly/gophersnes/curated"
	"github.com/jetsetilly/gophersnes/hardware/memory/cartridge/header"
	"github.com/jetsetilly/gophersnes/hardware/memory/cartridge/image"
	"github.com/jetsetilly/gophersnes/hardware/memory/cartridge/mapping"
	"github.com/jetsetilly/gophersnes/test"
	"github.com/jetsetilly/gophersnes/test/romimage"
)

func TestParse(t *testing.T) {
	data := romimage.New(0x8000, false)
	romimage.WriteHeader(data, romimage.LoROMHeader, romimage.Header{
		Title:           "SUPER TEST CART",
		Mode:            0x31,
		Type:            0x02,
		ROMSize:         0x0a,
		RAMSize:         0x03,
		Destination:     0x02,
		Licensee:        0x01,
		Version:         0x04,
		InverseChecksum: 0x5a3c,
		Checksum:        0xa5c3,
	})

	img, err := image.New(data)
	test.DemandSuccess(t, err)

	h, err := header.Parse(img, romimage.LoROMHeader)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, h.Offset, romimage.LoROMHeader)
	test.ExpectEquality(t, h.Title(), "SUPER TEST CART")
	test.ExpectEquality(t, h.Mode, 0x31)
	test.ExpectSuccess(t, h.FastClock)
	test.ExpectEquality(t, h.SubMappingMode, 0x01)
	test.ExpectEquality(t, h.Type, header.ROMRAMBattery)
	test.ExpectSuccess(t, h.Type.HasBattery())
	test.ExpectEquality(t, h.ROMSizeLog, 0x0a)
	test.ExpectEquality(t, h.RAMSizeLog, 0x03)
	test.ExpectEquality(t, h.ROMSizeBytes, 0x100000)
	test.ExpectEquality(t, h.RAMSizeBytes, 0x2000)
	test.ExpectEquality(t, h.Destination, 0x02)
	test.ExpectEquality(t, h.Destination.String(), "Europe")
	test.ExpectEquality(t, h.Destination.VideoStandard(), "PAL")
	test.ExpectEquality(t, h.Licensee, 0x01)
	test.ExpectEquality(t, h.Version, 0x04)
	test.ExpectEquality(t, h.InverseChecksum, 0x5a3c)
	test.ExpectEquality(t, h.Checksum, 0xa5c3)

	m, ok := h.DeclaredMapping()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, m, mapping.HiROM)
}

func TestParseSlowClock(t *testing.T) {
	data := romimage.New(0x8000, false)
	romimage.WriteHeader(data, romimage.LoROMHeader, romimage.Valid("SLOW", 0x00, 0x1234))

	img, err := image.New(data)
	test.DemandSuccess(t, err)

	h, err := header.Parse(img, romimage.LoROMHeader)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, h.FastClock)
	test.ExpectEquality(t, h.SubMappingMode, 0x00)
}

func TestParseInvalidModeByte(t *testing.T) {
	img, err := image.New(romimage.New(0x8000, false))
	test.DemandSuccess(t, err)

	// every mode byte with top bits other than 001 is rejected before the
	// checksum is considered
	for mode := 0; mode < 0x100; mode++ {
		data := romimage.New(0x8000, false)
		hdr := romimage.Valid("MODE", 0x00, 0x1234)
		hdr.Mode = uint8(mode)
		romimage.WriteHeader(data, romimage.LoROMHeader, hdr)

		img, err = image.New(data)
		test.DemandSuccess(t, err)

		_, err = header.Parse(img, romimage.LoROMHeader)
		if mode&0xe0 == 0x20 {
			test.ExpectSuccess(t, err, mode)
		} else {
			test.ExpectSuccess(t, curated.Is(err, header.InvalidModeByte), mode)
		}
	}
}

func TestParseChecksumMismatch(t *testing.T) {
	data := romimage.New(0x8000, false)
	hdr := romimage.Valid("MISMATCH", 0x00, 0x1234)
	hdr.InverseChecksum = 0x1234
	romimage.WriteHeader(data, romimage.LoROMHeader, hdr)

	img, err := image.New(data)
	test.DemandSuccess(t, err)

	_, err = header.Parse(img, romimage.LoROMHeader)
	test.ExpectSuccess(t, curated.Is(err, header.ChecksumMismatch))
}

func TestParseIncomplete(t *testing.T) {
	img, err := image.New(romimage.New(0x8000, false))
	test.DemandSuccess(t, err)

	// the HiROM location is beyond the end of a 32k image
	_, err = header.Parse(img, romimage.HiROMHeader)
	test.ExpectSuccess(t, curated.Is(err, header.IncompleteHeader))
	test.ExpectSuccess(t, curated.Has(err, image.OutOfBounds))

	// a header that starts inside the image but ends outside of it. the mode
	// byte is valid so parsing continues until the licensee field
	const partial = 0x8000 - 0x1a
	data := romimage.New(0x8000, false)
	data[partial+0x15] = 0x20
	img, err = image.New(data)
	test.DemandSuccess(t, err)

	_, err = header.Parse(img, partial)
	test.ExpectSuccess(t, curated.Is(err, header.IncompleteHeader))
	test.ExpectSuccess(t, curated.Has(err, image.OutOfBounds))
}

func TestTitle(t *testing.T) {
	var h header.Header

	copy(h.RawTitle[:], "ALL TWENTY ONE BYTES!")
	test.ExpectEquality(t, h.Title(), "ALL TWENTY ONE BYTES!")

	h.RawTitle = [header.TitleLength]byte{}
	copy(h.RawTitle[:], "NUL\x00TERMINATED")
	test.ExpectEquality(t, h.Title(), "NUL")

	h.RawTitle = [header.TitleLength]byte{}
	copy(h.RawTitle[:], "PADDED               ")
	test.ExpectEquality(t, h.Title(), "PADDED")
}

func TestSizeBytes(t *testing.T) {
	for n := 0; n <= 255; n++ {
		sz := header.SizeBytes(uint8(n))
		if n <= 53 {
			test.ExpectEquality(t, sz, uint64(0x400)<<n, n)
		} else {
			test.ExpectEquality(t, sz, uint64(math.MaxUint64), n)
		}
	}

	test.ExpectEquality(t, header.SizeBytes(0), 0x400)
	test.ExpectEquality(t, header.SizeBytes(0x0c), 0x400000)
	test.ExpectEquality(t, header.SizeBytes(53), 0x8000000000000000)
}

func TestSizesInHeader(t *testing.T) {
	for n := 0; n <= 255; n++ {
		data := romimage.New(0x8000, false)
		hdr := romimage.Valid("SIZES", 0x00, 0x0000)
		hdr.ROMSize = uint8(n)
		hdr.RAMSize = uint8(255 - n)
		romimage.WriteHeader(data, romimage.LoROMHeader, hdr)

		img, err := image.New(data)
		test.DemandSuccess(t, err)

		h, err := header.Parse(img, romimage.LoROMHeader)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, h.ROMSizeBytes, header.SizeBytes(uint8(n)), n)
		test.ExpectEquality(t, h.RAMSizeBytes, header.SizeBytes(uint8(255-n)), n)
	}
}

func TestCartridgeType(t *testing.T) {
	test.ExpectEquality(t, header.ROM.String(), "ROM")
	test.ExpectEquality(t, header.ROMRAM.String(), "ROM+RAM")
	test.ExpectEquality(t, header.ROMSA1RAMBattery.String(), "ROM+SA-1+RAM+Battery")
	test.ExpectEquality(t, header.CartridgeType(0x13).String(), "0x13")
	test.ExpectFailure(t, header.ROMSA1RAM.HasBattery())
}

func TestDestination(t *testing.T) {
	test.ExpectEquality(t, header.Destination(0x00).String(), "Japan")
	test.ExpectEquality(t, header.Destination(0x00).VideoStandard(), "NTSC")
	test.ExpectEquality(t, header.Destination(0x01).String(), "North America")
	test.ExpectEquality(t, header.Destination(0x11).VideoStandard(), "PAL")
	test.ExpectEquality(t, header.Destination(0x40).String(), "unknown (0x40)")
	test.ExpectEquality(t, header.Destination(0x40).VideoStandard(), "NTSC")
}
