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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gophersnes/archivefs"
	"github.com/jetsetilly/gophersnes/curated"
	"github.com/jetsetilly/gophersnes/hardware/memory/cartridge/image"
	"github.com/jetsetilly/gophersnes/logger"
)

// Sentinal errors.
const (
	HashMismatch  = "unexpected hash value (%s)"
	NoCartridge   = "no cartridge file in %s"
	AlreadyLoaded = "cartridge data already loaded"
)

// Loader is used to specify the cartridge to load.
type Loader struct {
	// filename of cartridge to load. the file can be inside an archive
	Filename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. the data includes any copier header
	Data []byte

	// the loaded data as a cartridge image
	img image.Image
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The hash argument is the expected SHA-1 of the cartridge data. An empty
// hash means that the data is not checked.
func NewLoader(filename string, hash string) Loader {
	return Loader{
		Filename: filename,
		Hash:     strings.ToLower(strings.TrimSpace(hash)),
	}
}

// ShortName returns a shortened version of the CartridgeLoader filename.
func (cl Loader) ShortName() string {
	shortCartName := filepath.Base(cl.Filename)
	shortCartName = strings.TrimSuffix(shortCartName, filepath.Ext(shortCartName))
	return shortCartName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Image returns the loaded data as a cartridge image. The zero value of
// image.Image is returned if Load() has not been successfully called.
func (cl Loader) Image() image.Image {
	return cl.img
}

// CopierOffset returns the size of the copier header in the loaded data.
func (cl Loader) CopierOffset() int {
	return cl.img.CopierOffset()
}

// Load the cartridge data. The size of the data is checked before it is read
// from the file and the copier header size is decided from the length of the
// data.
//
// Returns an error if the file can not be read, if the size is not plausible
// (image.SizeError) or if the hash does not match the expected hash
// (HashMismatch).
func (cl *Loader) Load() error {
	if cl.HasLoaded() {
		return curated.Errorf("cartridgeloader: %v", curated.Errorf(AlreadyLoaded))
	}

	filename, err := resolve(cl.Filename)
	if err != nil {
		return curated.Errorf("cartridgeloader: %v", err)
	}

	r, size, err := archivefs.Open(filename)
	if err != nil {
		return curated.Errorf("cartridgeloader: %v", err)
	}
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}

	logger.Logf(logger.Allow, "cartridgeloader", "%s: %d bytes", filename, size)

	// reject files that are too large before reading them
	if size > image.MaxSize {
		_, err := image.CopierOffset(size)
		return curated.Errorf("cartridgeloader: %v", err)
	}

	data := make([]byte, size)
	if _, err := io.ReadFull(r, data); err != nil {
		return curated.Errorf("cartridgeloader: %v", err)
	}

	img, err := image.New(data)
	if err != nil {
		return curated.Errorf("cartridgeloader: %v", err)
	}

	if img.CopierOffset() > 0 {
		logger.Logf(logger.Allow, "cartridgeloader", "copier header of %d bytes", img.CopierOffset())
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(data))
	logger.Logf(logger.Allow, "cartridgeloader", "sha1: %s", hash)

	// check for hash consistency
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf("cartridgeloader: %v", curated.Errorf(HashMismatch, hash))
	}

	cl.Filename = filename
	cl.Hash = hash
	cl.Data = data
	cl.img = img

	return nil
}

// resolve the filename to a file. an archive is resolved to the first
// cartridge file in the root of the archive
func resolve(filename string) (string, error) {
	var afs archivefs.Path
	defer afs.Close()

	if err := afs.Set(filename); err != nil {
		return "", err
	}

	if !afs.IsDir() {
		return filename, nil
	}

	if !afs.InArchive() {
		return "", curated.Errorf("%s is a directory", filename)
	}

	nodes, err := afs.List()
	if err != nil {
		return "", err
	}

	for _, n := range nodes {
		if !n.IsDir && IsCartridgeFile(n.Name) {
			return filepath.Join(afs.String(), n.Name), nil
		}
	}

	return "", curated.Errorf(NoCartridge, filename)
}
