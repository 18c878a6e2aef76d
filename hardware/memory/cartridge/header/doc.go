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

// Package header parses and detects the cartridge header.
//
// The mapping mode of a cartridge is not recorded anywhere that can be read
// without first knowing the mapping mode. Detection therefore tries to parse a
// header at the fixed location for each mapping mode and accepts the first
// one that is self-consistent.
//
// A header is self-consistent if the top three bits of the mode byte are 001
// and if the checksum and inverse checksum fields complement one another. The
// mode byte is checked first and is enough to reject most candidates that
// are really program code or graphics data.
//
// The layout of the 32 byte header, relative to the start of the header:
//
//	0x00  title (21 bytes)
//	0x15  mode byte
//	0x16  cartridge type
//	0x17  log2 ROM size in kilobytes
//	0x18  log2 RAM size in kilobytes
//	0x19  destination code
//	0x1a  licensee
//	0x1b  version
//	0x1c  inverse checksum
//	0x1e  checksum
package header
