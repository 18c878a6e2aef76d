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

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gophersnes/cartridgeloader"
	"github.com/jetsetilly/gophersnes/curated"
	"github.com/jetsetilly/gophersnes/hardware/cpu/vectors"
	"github.com/jetsetilly/gophersnes/hardware/memory/cartridge/header"
	"github.com/jetsetilly/gophersnes/hardware/memory/cartridge/image"
	"github.com/jetsetilly/gophersnes/hardware/memory/cartridge/mapping"
	"github.com/jetsetilly/gophersnes/logger"
)

// Cartridge defines the information found in a cartridge image
type Cartridge struct {
	Filename string
	Hash     string

	// size of the copier header in the image. zero if there is no copier
	// header
	CopierOffset int

	// the mapping mode that the header was found with
	Mapping mapping.Mode

	Header  header.Header
	Vectors vectors.Vectors

	// checksum computed from the cartridge data. compare with Header.Checksum
	ComputedChecksum uint16

	img image.Image
}

// NewCartridge is the preferred method of initialisation for the cartridge
// type. The loader is loaded if it has not been already.
func NewCartridge(cl *cartridgeloader.Loader) (*Cartridge, error) {
	if !cl.HasLoaded() {
		if err := cl.Load(); err != nil {
			return nil, curated.Errorf("cartridge: %v", err)
		}
	}

	img := cl.Image()
	cart := &Cartridge{
		Filename:     cl.Filename,
		Hash:         cl.Hash,
		CopierOffset: img.CopierOffset(),
		img:          img,
	}

	var err error

	cart.Header, cart.Mapping, err = header.Detect(img, cart.CopierOffset)
	if err != nil {
		return nil, curated.Errorf("cartridge: %v", err)
	}

	cart.Vectors, err = vectors.Resolve(img, cart.Mapping, cart.CopierOffset)
	if err != nil {
		return nil, curated.Errorf("cartridge: %v", err)
	}

	cart.ComputedChecksum = Checksum(img.ROM())
	if cart.ChecksumVerified() {
		logger.Logf(logger.Allow, "cartridge", "checksum verified (%#04x)", cart.ComputedChecksum)
	} else {
		logger.Logf(logger.Allow, "cartridge", "checksum in header (%#04x) does not match data (%#04x)",
			cart.Header.Checksum, cart.ComputedChecksum)
	}

	return cart, nil
}

// ChecksumVerified returns true if the checksum in the header matches the
// checksum computed from the data.
func (cart Cartridge) ChecksumVerified() bool {
	return cart.Header.Checksum == cart.ComputedChecksum
}

// Image returns the cartridge image.
func (cart Cartridge) Image() image.Image {
	return cart.img
}

// ResetVector returns the address at which execution starts. Reset always
// happens in emulation mode.
func (cart Cartridge) ResetVector() uint16 {
	// the emulation table always has a RES vector
	a, _ := cart.Vectors.Emulation.Dispatch(vectors.RES)
	return a
}

func (cart Cartridge) String() string {
	return cart.Summary()
}

// Summary returns brief information about the cartridge. Two lines: first line
// is the path to the cartridge and the second line is information about the
// header and the mapping mode
func (cart Cartridge) Summary() string {
	s := strings.Builder{}
	s.WriteString(cart.Filename)
	s.WriteString("\n")
	s.WriteString(fmt.Sprintf("%q %s %s ROM=%dk RAM=%dk reset=%#04x",
		cart.Header.Title(), cart.Mapping, cart.Header.Destination.VideoStandard(),
		cart.Header.ROMSizeBytes/1024, cart.Header.RAMSizeBytes/1024,
		cart.ResetVector()))
	return s.String()
}
