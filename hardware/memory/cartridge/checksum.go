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

package cartridge

import "math/bits"

// Checksum returns the 16 bit sum of the cartridge data. The data should not
// include any copier header.
//
// Cartridge data that is not a power of two in size is summed as though it
// were. The largest power of two part is summed as normal and the remainder
// is repeated until it is the same size as that part.
func Checksum(rom []byte) uint16 {
	if len(rom) == 0 {
		return 0
	}

	// size of the largest power of two that fits in the data
	p := 1 << (bits.Len(uint(len(rom))) - 1)

	var sum uint16
	for _, b := range rom[:p] {
		sum += uint16(b)
	}

	rem := rom[p:]
	if len(rem) == 0 {
		return sum
	}

	// mirror the remainder
	var r uint16
	for _, b := range rem {
		r += uint16(b)
	}
	sum += r * uint16(p/len(rem))
	for _, b := range rem[:p%len(rem)] {
		sum += uint16(b)
	}

	return sum
}
