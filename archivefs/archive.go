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
	"archive/zip"
	"io"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/jetsetilly/gophersnes/curated"
)

// entry is a single file or directory inside an archive. names always use the
// forward slash as a separator, regardless of the host system
type entry struct {
	name  string
	isDir bool
	size  int64
	open  func() (io.ReadCloser, error)
}

// archive is the common interface for the supported archive formats.
type archive interface {
	entries() []entry
	Close() error
}

type zipArchive struct {
	rc *zip.ReadCloser
}

func (z zipArchive) entries() []entry {
	ent := make([]entry, 0, len(z.rc.File))
	for _, f := range z.rc.File {
		ent = append(ent, entry{
			name:  strings.TrimSuffix(f.Name, "/"),
			isDir: f.FileInfo().IsDir(),
			size:  int64(f.UncompressedSize64),
			open:  f.Open,
		})
	}
	return ent
}

func (z zipArchive) Close() error {
	return z.rc.Close()
}

type sevenZipArchive struct {
	rc *sevenzip.ReadCloser
}

func (s sevenZipArchive) entries() []entry {
	ent := make([]entry, 0, len(s.rc.File))
	for _, f := range s.rc.File {
		fi := f.FileInfo()
		ent = append(ent, entry{
			name:  strings.TrimSuffix(filepath.ToSlash(f.Name), "/"),
			isDir: fi.IsDir(),
			size:  fi.Size(),
			open:  f.Open,
		})
	}
	return ent
}

func (s sevenZipArchive) Close() error {
	return s.rc.Close()
}

// openArchive opens the file as an archive if the file extension is one of
// ArchiveExtensions. Returns nil and no error if the extension is not
// recognised.
func openArchive(filename string) (archive, error) {
	switch strings.ToUpper(filepath.Ext(filename)) {
	case ".ZIP":
		rc, err := zip.OpenReader(filename)
		if err != nil {
			return nil, curated.Errorf("zip: %v", err)
		}
		return zipArchive{rc: rc}, nil
	case ".7Z":
		rc, err := sevenzip.OpenReader(filename)
		if err != nil {
			return nil, curated.Errorf("7z: %v", err)
		}
		return sevenZipArchive{rc: rc}, nil
	}
	return nil, nil
}

// lookup the named entry in the archive. directories that are not explicitly
// stored in the archive are implied by the names of the files inside them
func lookup(arc archive, name string) (entry, bool) {
	if name == "" || name == "." {
		return entry{isDir: true}, true
	}

	prefix := name + "/"
	for _, e := range arc.entries() {
		if e.name == name {
			return e, true
		}
		if strings.HasPrefix(e.name, prefix) {
			return entry{name: name, isDir: true}, true
		}
	}
	return entry{}, false
}

// children of the directory in the archive. implied directories are included
func children(arc archive, dir string) []Node {
	var nodes []Node
	seen := make(map[string]bool)

	for _, e := range arc.entries() {
		rel := e.name
		if dir != "" {
			if !strings.HasPrefix(rel, dir+"/") {
				continue
			}
			rel = strings.TrimPrefix(rel, dir+"/")
		}
		if rel == "" {
			continue
		}

		name, _, nested := strings.Cut(rel, "/")
		if seen[name] {
			continue
		}
		seen[name] = true

		nodes = append(nodes, Node{
			Name:  name,
			IsDir: nested || e.isDir,
		})
	}

	return nodes
}
