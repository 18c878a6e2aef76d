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

// Package report writes human readable descriptions of a cartridge.
//
// The Summary() function writes the header fields, the mapping mode, the
// checksum status and both interrupt vector tables. The output can be styled
// with colour for display on a terminal. The Line() function writes a single
// line for use when describing many cartridges in one go.
//
// The Memviz() function writes a graphviz description of the data structures
// describing the cartridge, which is useful when debugging.
package report
