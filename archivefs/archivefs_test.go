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

package archivefs_test

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gophersnes/archivefs"
	"github.com/jetsetilly/gophersnes/test"
)

// testdir creates a directory containing a plain file and a zip archive. the
// archive stores one directory explicitly and implies another
func testdir(t *testing.T) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "testdir")
	test.DemandSuccess(t, os.Mkdir(dir, 0o755))
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "testfile"), []byte("testfile contents\n"), 0o644))

	f, err := os.Create(filepath.Join(dir, "testarchive.zip"))
	test.DemandSuccess(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	_, err = zw.Create("archivedir/")
	test.DemandSuccess(t, err)

	files := []struct {
		name     string
		contents string
	}{
		{"archivefile1", "archivefile1 contents\n"},
		{"archivefile2", "archivefile2 contents\n"},
		{"archivedir/archivefile3", "archivefile3 contents\n"},
		{"archivedir/archivedir2/archivefile4", "archivefile4 contents\n"},
		{"implied/archivefile5", "archivefile5 contents\n"},
	}
	for _, c := range files {
		w, err := zw.Create(c.name)
		test.DemandSuccess(t, err)
		_, err = w.Write([]byte(c.contents))
		test.DemandSuccess(t, err)
	}
	test.DemandSuccess(t, zw.Close())

	return dir
}

func TestArchivefsPath(t *testing.T) {
	dir := testdir(t)

	var afs archivefs.Path
	defer afs.Close()

	var path string
	var entries []archivefs.Node
	var err error

	// non-existant file
	path = filepath.Join(dir, "foo")
	err = afs.Set(path)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, afs.String(), "")

	// a real directory
	err = afs.Set(dir)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), dir)
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectFailure(t, afs.InArchive())

	// entries in a directory. the archive is listed as a directory
	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[testarchive.zip testfile]")
	test.ExpectSuccess(t, entries[0].IsArchive)

	// a real file in directory
	path = filepath.Join(dir, "testfile")
	err = afs.Set(path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), path)
	test.ExpectFailure(t, afs.IsDir())
	test.ExpectFailure(t, afs.InArchive())

	// calling List() when path is set to a file type (ie not a direcotry) the
	// list returned should be of the containing directory
	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[testarchive.zip testfile]")

	// a real archive
	path = filepath.Join(dir, "testarchive.zip")
	err = afs.Set(path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), path)
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())

	// entries in an archive. directories first
	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[archivedir implied archivefile1 archivefile2]")

	// file in a real archive
	path = filepath.Join(dir, "testarchive.zip", "archivefile1")
	err = afs.Set(path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), path)
	test.ExpectFailure(t, afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())

	// directory in a real archive
	path = filepath.Join(dir, "testarchive.zip", "archivedir")
	err = afs.Set(path)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())

	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[archivedir2 archivefile3]")

	// implied directory in a real archive
	path = filepath.Join(dir, "testarchive.zip", "implied")
	err = afs.Set(path)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, afs.IsDir())

	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[archivefile5]")

	// missing file in a real archive
	path = filepath.Join(dir, "testarchive.zip", "foo")
	err = afs.Set(path)
	test.ExpectFailure(t, err)
	test.ExpectFailure(t, afs.InArchive())

	// a path that continues past a file in an archive
	path = filepath.Join(dir, "testarchive.zip", "archivefile1", "foo")
	err = afs.Set(path)
	test.ExpectFailure(t, err)
}

func TestArchivefsOpen(t *testing.T) {
	dir := testdir(t)

	r, sz, err := archivefs.Open(filepath.Join(dir, "testarchive.zip", "archivefile1"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sz, 22)
	d, err := io.ReadAll(r)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(d), "archivefile1 contents\n")
	test.ExpectSuccess(t, r.(io.Closer).Close())

	r, sz, err = archivefs.Open(filepath.Join(dir, "testarchive.zip", "archivedir", "archivedir2", "archivefile4"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sz, 22)
	d, err = io.ReadAll(r)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(d), "archivefile4 contents\n")
	test.ExpectSuccess(t, r.(io.Closer).Close())

	r, sz, err = archivefs.Open(filepath.Join(dir, "testfile"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sz, 18)
	d, err = io.ReadAll(r)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(d), "testfile contents\n")
	test.ExpectSuccess(t, r.(io.Closer).Close())

	// directories can not be opened
	_, _, err = archivefs.Open(filepath.Join(dir, "testarchive.zip"))
	test.ExpectFailure(t, err)
}

func TestArchivefsSeek(t *testing.T) {
	dir := testdir(t)

	r, sz, err := archivefs.Open(filepath.Join(dir, "testarchive.zip", "archivefile1"))
	test.DemandSuccess(t, err)
	defer r.(io.Closer).Close()
	test.ExpectEquality(t, sz, 22)

	b := make([]byte, 4)
	_, err = io.ReadFull(r, b)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(b), "arch")

	pos, err := r.Seek(0, io.SeekCurrent)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pos, int64(4))

	// forward from the end of the entry
	pos, err = r.Seek(-4, io.SeekEnd)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pos, int64(18))
	_, err = io.ReadFull(r, b)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(b), "nts\n")

	// backward
	pos, err = r.Seek(12, io.SeekStart)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pos, int64(12))
	b = make([]byte, 9)
	_, err = io.ReadFull(r, b)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(b), " contents")

	// past the end
	pos, err = r.Seek(100, io.SeekStart)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pos, int64(100))
	n, err := r.Read(b)
	test.ExpectEquality(t, n, 0)
	test.ExpectEquality(t, err, io.EOF)

	_, err = r.Seek(-1, io.SeekStart)
	test.ExpectFailure(t, err)
}

// writeDeclaredZip creates a zip archive with a single stored entry that
// declares more data than it contains
func writeDeclaredZip(t *testing.T, name string, declared uint64) string {
	t.Helper()

	fn := filepath.Join(t.TempDir(), "declared.zip")
	f, err := os.Create(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.CreateRaw(&zip.FileHeader{
		Name:               name,
		Method:             zip.Store,
		CompressedSize64:   4,
		UncompressedSize64: declared,
	})
	test.DemandSuccess(t, err)
	_, err = w.Write([]byte("data"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, zw.Close())

	return fn
}

// the size of an archive entry is the declared size and is known before any
// data is read
func TestArchivefsDeclaredSize(t *testing.T) {
	fn := writeDeclaredZip(t, "big.bin", 0x100000)

	r, sz, err := archivefs.Open(filepath.Join(fn, "big.bin"))
	test.DemandSuccess(t, err)
	defer r.(io.Closer).Close()
	test.ExpectEquality(t, sz, 0x100000)

	// the entry does not contain the declared amount of data
	_, err = io.ReadAll(r)
	test.ExpectFailure(t, err)
}

func TestArchivefsSevenZip(t *testing.T) {
	fn := filepath.Join("testdata", "game.7z")

	var afs archivefs.Path
	defer afs.Close()

	err := afs.Set(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())

	entries, err := afs.List()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[docs game.sfc]")
	test.ExpectSuccess(t, entries[0].IsDir)
	test.ExpectFailure(t, entries[1].IsDir)

	// directory stored in the archive
	err = afs.Set(filepath.Join(fn, "docs"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, afs.IsDir())

	entries, err = afs.List()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[readme.txt]")

	err = afs.Set(filepath.Join(fn, "docs", "readme.txt"))
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, afs.IsDir())

	r, sz, err := afs.Open()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sz, 16)
	d, err := io.ReadAll(r)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(d), "readme contents\n")
	test.ExpectSuccess(t, r.(io.Closer).Close())

	// the cartridge file follows the readme in the same packed stream
	r, sz, err = archivefs.Open(filepath.Join(fn, "game.sfc"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sz, 0x8000)
	d, err = io.ReadAll(r)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(d), 0x8000)
	test.ExpectEquality(t, string(d[0x7fc0:0x7fcd]), "SEVENZIP GAME")
	test.ExpectSuccess(t, r.(io.Closer).Close())

	// missing file
	err = afs.Set(filepath.Join(fn, "missing.sfc"))
	test.ExpectFailure(t, err)
}

// a file with the 7z extension that is not a 7z archive fails when the path
// passes through it
func TestArchivefsBadSevenZip(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "broken.7z")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not an archive"), 0o644))

	var afs archivefs.Path
	err := afs.Set(fn)
	test.ExpectFailure(t, err)
	test.ExpectFailure(t, afs.InArchive())
}

func TestArchiveExtensions(t *testing.T) {
	test.ExpectSuccess(t, archivefs.IsArchive("game.zip"))
	test.ExpectSuccess(t, archivefs.IsArchive("game.7Z"))
	test.ExpectFailure(t, archivefs.IsArchive("game.sfc"))
	test.ExpectEquality(t, archivefs.TrimArchiveExt("game.zip"), "game")
	test.ExpectEquality(t, archivefs.TrimArchiveExt("game.sfc"), "game.sfc")
	test.ExpectEquality(t, archivefs.RemoveArchiveExt(filepath.Join("roms.7z", "game.sfc")), filepath.Join("roms", "game.sfc"))
}
