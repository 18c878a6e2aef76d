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

// Package cartridgeloader is used to specify and load the data of a cartridge
// image.
//
// The simplest instance of the Loader type:
//
//	cl := cartridgeloader.Loader{
//		Filename: "roms/game.sfc",
//	}
//
// It is preferred however that the NewLoader() function is used.
//
// The Load() function reads the file, which can be inside a zip or 7z archive
// (see the archivefs package), and checks that the size of the data is
// plausible for a cartridge image. The data is not otherwise interpreted.
//
// If the Filename names an archive rather than a file inside an archive, the
// first file at the root of the archive with one of the FileExtensions is
// loaded.
package cartridgeloader
