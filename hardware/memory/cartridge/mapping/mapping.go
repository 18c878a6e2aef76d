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

// Package mapping defines the memory-mapping conventions a cartridge can be
// built with. The mapping decides where in the cartridge data the header and
// the interrupt vectors are found.
package mapping

import "fmt"

// Mode is a cartridge mapping mode.
type Mode int

// List of valid Mode values. Only LoROM and HiROM are ever detected by
// probing. ExLoROM and ExHiROM are recognised when declared in a header.
const (
	LoROM Mode = iota
	HiROM
	ExLoROM
	ExHiROM
)

func (m Mode) String() string {
	switch m {
	case LoROM:
		return "LoROM"
	case HiROM:
		return "HiROM"
	case ExLoROM:
		return "ExLoROM"
	case ExHiROM:
		return "ExHiROM"
	}
	return fmt.Sprintf("unknown mapping (%d)", int(m))
}

// Probed is the list of mapping modes to try, in order, when detecting the
// header of an image.
var Probed = [...]Mode{LoROM, HiROM}

// HeaderBase returns the offset of the header in the cartridge data, not
// accounting for any copier header. ExLoROM shares the LoROM location. The
// ExHiROM header is in the upper part of the cartridge data.
func (m Mode) HeaderBase() int {
	switch m {
	case HiROM:
		return 0xffc0
	case ExHiROM:
		return 0x40ffc0
	}
	return 0x7fc0
}

// VectorBase returns the offset from which the interrupt vector offsets are
// measured. ExLoROM follows LoROM and ExHiROM follows HiROM.
func (m Mode) VectorBase() int {
	switch m {
	case LoROM, ExLoROM:
		return 0x7000
	}
	return 0xf000
}

// FromSubMapping returns the mapping mode declared by the low nibble of a
// header's mode byte. The second return value is false if the nibble is not
// recognised.
//
//	0   LoROM
//	1   HiROM
//	2   ExLoROM (also used by S-DD1 cartridges)
//	3   LoROM with SA-1
//	5   ExHiROM
//	10  HiROM with SPC7110
func FromSubMapping(nibble uint8) (Mode, bool) {
	switch nibble & 0x0f {
	case 0x0, 0x3:
		return LoROM, true
	case 0x1, 0xa:
		return HiROM, true
	case 0x2:
		return ExLoROM, true
	case 0x5:
		return ExHiROM, true
	}
	return LoROM, false
}
