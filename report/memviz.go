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

package report

import (
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gophersnes/hardware/cpu/vectors"
	"github.com/jetsetilly/gophersnes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophersnes/hardware/memory/cartridge/header"
)

// graph is the structure given to memviz. the vector tables are converted to
// maps because the fields of vectors.Table are not exported
type graph struct {
	Filename     string
	Hash         string
	Mapping      string
	CopierOffset int
	Header       *header.Header
	Native       map[string]uint16
	Emulation    map[string]uint16
}

func table(tab vectors.Table) map[string]uint16 {
	m := make(map[string]uint16)
	for _, k := range vectors.Kinds {
		if a, err := tab.Dispatch(k); err == nil {
			m[k.String()] = a
		}
	}
	return m
}

// Memviz writes a graphviz description of the cartridge to the writer.
func Memviz(w io.Writer, cart *cartridge.Cartridge) {
	h := cart.Header
	memviz.Map(w, &graph{
		Filename:     cart.Filename,
		Hash:         cart.Hash,
		Mapping:      cart.Mapping.String(),
		CopierOffset: cart.CopierOffset,
		Header:       &h,
		Native:       table(cart.Vectors.Native),
		Emulation:    table(cart.Vectors.Emulation),
	})
}
