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

// Package archivefs presents archive files as directories in the file
// system. A path such as "roms/games.zip/game.sfc" names the file game.sfc
// inside the zip archive games.zip.
//
// Zip and 7z archives are supported. Directories inside an archive need not
// be stored explicitly. They are implied by the names of the files inside
// them.
package archivefs

import "io"

// Open and return an io.ReadSeeker for the specified filename. Filename can be
// inside an archive supported by archivefs
//
// The io.ReadSeeker also implements io.Closer and should be closed when it is
// no longer required. For a file inside an archive, closing the reader also
// closes the archive.
//
// Returns the io.ReadSeeker, the size of the data behind the ReadSeeker and any
// errors.
func Open(filename string) (io.ReadSeeker, int, error) {
	var afs Path
	err := afs.Set(filename)
	if err != nil {
		return nil, 0, err
	}

	r, sz, err := afs.Open()
	if err != nil {
		afs.Close()
		return nil, 0, err
	}

	// the archive is now owned by the entry reader
	if er, ok := r.(*entryReader); ok {
		er.arc = afs.arc
		afs.arc = nil
	}
	afs.Close()

	return r, sz, nil
}
