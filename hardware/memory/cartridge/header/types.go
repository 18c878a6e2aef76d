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

import "fmt"

// CartridgeType is the hardware present on the cartridge board.
type CartridgeType uint8

// List of named CartridgeType values. Other values are possible and are not
// an error.
const (
	ROM              CartridgeType = 0x00
	ROMRAM           CartridgeType = 0x01
	ROMRAMBattery    CartridgeType = 0x02
	ROMSA1           CartridgeType = 0x33
	ROMSA1RAM        CartridgeType = 0x34
	ROMSA1RAMBattery CartridgeType = 0x35
)

func (t CartridgeType) String() string {
	switch t {
	case ROM:
		return "ROM"
	case ROMRAM:
		return "ROM+RAM"
	case ROMRAMBattery:
		return "ROM+RAM+Battery"
	case ROMSA1:
		return "ROM+SA-1"
	case ROMSA1RAM:
		return "ROM+SA-1+RAM"
	case ROMSA1RAMBattery:
		return "ROM+SA-1+RAM+Battery"
	}
	return fmt.Sprintf("0x%02x", uint8(t))
}

// HasBattery returns true if the cartridge type includes battery backed RAM.
func (t CartridgeType) HasBattery() bool {
	return t == ROMRAMBattery || t == ROMSA1RAMBattery
}

// Destination is the region the cartridge was released in.
type Destination uint8

// destination names indexed by destination code
var destinations = [...]string{
	"Japan",
	"North America",
	"Europe",
	"Sweden",
	"Finland",
	"Denmark",
	"France",
	"Netherlands",
	"Spain",
	"Germany",
	"Italy",
	"China",
	"Indonesia",
	"South Korea",
	"International",
	"Canada",
	"Brazil",
	"Australia",
}

func (d Destination) String() string {
	if int(d) < len(destinations) {
		return destinations[d]
	}
	return fmt.Sprintf("unknown (0x%02x)", uint8(d))
}

// VideoStandard returns the television standard normally used in the
// destination region. Unknown destinations are assumed to be NTSC.
func (d Destination) VideoStandard() string {
	switch d {
	case 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x11:
		return "PAL"
	}
	return "NTSC"
}
