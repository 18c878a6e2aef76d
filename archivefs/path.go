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

package archivefs

import (
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gophersnes/curated"
)

// Node represents a single part of a full path
type Node struct {
	Name string

	// a directory has the the field of IsDir set to true
	IsDir bool

	// a recognised archive file has IsArchive set to true. note that an
	// archive file is also considered to be directory
	IsArchive bool
}

func (e Node) String() string {
	return e.Name
}

// Path represents a single destination in the file system
type Path struct {
	current string
	isDir   bool

	arc archive

	// if the path is inside an archive, we split the in-archive path into the
	// path to a directory and the file itself
	inArchivePath string
	inArchiveFile string
}

// String returns the current path
func (afs Path) String() string {
	return afs.current
}

// Base returns the last element of the current path
func (afs Path) Base() string {
	return filepath.Base(afs.current)
}

// Dir returns all but the last element of path
func (afs Path) Dir() string {
	if afs.isDir {
		return afs.current
	}
	return filepath.Dir(afs.current)
}

// IsDir returns true if Path is currently set to a directory. For the purposes
// of archivefs, the root of an archive is treated as a directory
func (afs Path) IsDir() bool {
	return afs.isDir
}

// InArchive returns true if path is currently inside an archive
func (afs Path) InArchive() bool {
	return afs.arc != nil
}

// Open and return an io.ReadSeeker for the filename previously set by the Set()
// function. The io.ReadSeeker also implements io.Closer.
//
// Data inside an archive is not read until the io.ReadSeeker is read from. The
// returned size is the size recorded by the archive and the reader will
// never return more data than that. The reader must be closed before the
// Path is closed or set to a new path.
//
// Returns the io.ReadSeeker, the size of the data behind the ReadSeeker and any
// errors.
func (afs Path) Open() (io.ReadSeeker, int, error) {
	if afs.isDir {
		return nil, 0, curated.Errorf("archivefs: open: %s is a directory", afs.current)
	}

	if afs.arc != nil {
		e, ok := lookup(afs.arc, path.Join(afs.inArchivePath, afs.inArchiveFile))
		if !ok || e.open == nil {
			return nil, 0, curated.Errorf("archivefs: open: %s not found", afs.current)
		}

		er, err := newEntryReader(e)
		if err != nil {
			return nil, 0, err
		}

		return er, int(e.size), nil
	}

	f, err := os.Open(afs.current)
	if err != nil {
		return nil, 0, curated.Errorf("archivefs: open: %v", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, curated.Errorf("archivefs: open: %v", err)
	}

	return f, int(info.Size()), nil
}

// Close any open archive files and reset path
func (afs *Path) Close() {
	afs.current = ""
	afs.isDir = false
	afs.inArchivePath = ""
	afs.inArchiveFile = ""
	if afs.arc != nil {
		afs.arc.Close()
		afs.arc = nil
	}
}

// List returns the child entries for the current path location. If the current
// path is a file then the list will be the contents of the containing directory
// of that file
func (afs *Path) List() ([]Node, error) {
	var ent []Node

	if afs.arc != nil {
		ent = children(afs.arc, afs.inArchivePath)
	} else {
		dir := afs.current
		if !afs.isDir {
			dir = filepath.Dir(dir)
		}

		lst, err := os.ReadDir(dir)
		if err != nil {
			return []Node{}, curated.Errorf("archivefs: entries: %v", err)
		}

		for _, d := range lst {
			// using os.Stat() to get file information otherwise links to
			// directories do not have the IsDir() property
			fi, err := os.Stat(filepath.Join(dir, d.Name()))
			if err != nil {
				continue
			}

			if fi.IsDir() {
				ent = append(ent, Node{
					Name:  d.Name(),
					IsDir: true,
				})
			} else if IsArchive(d.Name()) {
				ent = append(ent, Node{
					Name:      d.Name(),
					IsDir:     true,
					IsArchive: true,
				})
			} else {
				ent = append(ent, Node{
					Name: d.Name(),
				})
			}
		}
	}

	Sort(ent)

	return ent, nil
}

// Set the path. Paths can pass through an archive file, in which case the
// archive is treated as a directory and the remainder of the path is
// resolved inside the archive.
func (afs *Path) Set(pth string) error {
	afs.Close()

	// clean path and split into parts
	pth = filepath.Clean(pth)
	lst := strings.Split(pth, string(filepath.Separator))

	// strings.Split will remove a leading filepath.Separator. we need to add
	// one back so that filepath.Join() works as expected
	if lst[0] == "" {
		lst[0] = string(filepath.Separator)
	}

	// reuse path string
	pth = ""

	for _, l := range lst {
		pth = filepath.Join(pth, l)

		if afs.arc != nil {
			if !afs.isDir {
				afs.Close()
				return curated.Errorf("archivefs: set: %s is not a directory", pth)
			}

			p := path.Join(afs.inArchivePath, l)

			e, ok := lookup(afs.arc, p)
			if !ok {
				afs.Close()
				return curated.Errorf("archivefs: set: %s not found in archive", p)
			}

			afs.isDir = e.isDir
			if afs.isDir {
				afs.inArchivePath = p
				afs.inArchiveFile = ""
			} else {
				afs.inArchiveFile = l
			}

		} else {
			fi, err := os.Stat(pth)
			if err != nil {
				afs.Close()
				return curated.Errorf("archivefs: set: %v", err)
			}

			afs.isDir = fi.IsDir()
			if afs.isDir {
				continue
			}

			afs.arc, err = openArchive(pth)
			if err != nil {
				afs.Close()
				return curated.Errorf("archivefs: set: %v", err)
			}

			// the root of an archive file is considered to be a directory
			if afs.arc != nil {
				afs.isDir = true
			}
		}
	}

	// make sure path is clean
	afs.current = filepath.Clean(pth)

	return nil
}
