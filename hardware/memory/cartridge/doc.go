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

// Package cartridge brings together the stages of loading a cartridge. The
// data is loaded with the cartridgeloader package, the header and mapping mode
// are found with the header package and the interrupt vectors are resolved
// with the vectors package.
//
// The Cartridge type is the result of those stages. It is constructed once by
// NewCartridge() and is not changed afterwards. No Cartridge is returned if
// any stage fails.
//
// The checksum recorded in the header is compared against a checksum computed
// from the data, but a mismatch is not an error. Many images in circulation
// have been patched without the checksum being updated.
package cartridge
