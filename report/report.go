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
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/jetsetilly/gophersnes/hardware/cpu/vectors"
	"github.com/jetsetilly/gophersnes/hardware/memory/cartridge"
)

// width of the label column in the summary
const labelWidth = 12

// Summary writes a description of the cartridge to the writer. Styled output
// uses ANSI escape sequences and should only be used when the writer is a
// terminal. See IsTerminal().
func Summary(w io.Writer, cart *cartridge.Cartridge, styled bool) {
	st := newStyles(w, styled)
	h := cart.Header

	field := func(label string, value string) {
		fmt.Fprintf(w, "%s %s\n", st.label.Render(fmt.Sprintf("%-*s", labelWidth, label)), value)
	}

	field("file", st.value.Render(cart.Filename))
	field("title", st.title.Render(fmt.Sprintf("%q", h.Title())))

	m := cart.Mapping.String()
	if d, ok := h.DeclaredMapping(); !ok {
		m = fmt.Sprintf("%s %s", m, st.dim.Render(fmt.Sprintf("(unrecognised sub-mapping 0x%x)", h.SubMappingMode)))
	} else if d != cart.Mapping {
		m = fmt.Sprintf("%s %s", m, st.dim.Render(fmt.Sprintf("(declared %s)", d)))
	}
	field("mapping", m)

	if cart.CopierOffset > 0 {
		field("copier", fmt.Sprintf("%d bytes", cart.CopierOffset))
	} else {
		field("copier", st.dim.Render("none"))
	}

	speed := "slow"
	if h.FastClock {
		speed = "fast"
	}
	field("speed", fmt.Sprintf("%s %s", speed, st.dim.Render(fmt.Sprintf("(mode 0x%02x)", h.Mode))))
	field("type", h.Type.String())
	field("rom size", size(h.ROMSizeBytes))
	field("ram size", size(h.RAMSizeBytes))
	field("destination", fmt.Sprintf("%s (%s)", h.Destination, h.Destination.VideoStandard()))
	field("licensee", fmt.Sprintf("0x%02x", h.Licensee))
	field("version", fmt.Sprintf("1.%d", h.Version))

	chk := fmt.Sprintf("0x%04x %s", h.Checksum, st.dim.Render(fmt.Sprintf("(inverse 0x%04x)", h.InverseChecksum)))
	if cart.ChecksumVerified() {
		chk = fmt.Sprintf("%s %s", chk, st.good.Render("verified"))
	} else {
		chk = fmt.Sprintf("%s %s", chk, st.bad.Render(fmt.Sprintf("computed 0x%04x", cart.ComputedChecksum)))
	}
	field("checksum", chk)
	field("sha1", cart.Hash)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s %s\n",
		st.heading.Render(fmt.Sprintf("%-*s", labelWidth, "vector")),
		st.heading.Render(fmt.Sprintf("%-9s", vectors.Native)),
		st.heading.Render(vectors.Emulation.String()))

	for _, k := range vectors.Kinds {
		fmt.Fprintf(w, "%s %s %s\n",
			st.label.Render(fmt.Sprintf("%-*s", labelWidth, k)),
			address(st, cart.Vectors.Native, k, 9),
			address(st, cart.Vectors.Emulation, k, 0))
	}
}

// size in bytes as a short string
func size(n uint64) string {
	switch {
	case n == math.MaxUint64:
		return "too large"
	case n >= 1<<20 && n%(1<<20) == 0:
		return fmt.Sprintf("%dM", n>>20)
	case n%(1<<10) == 0:
		return fmt.Sprintf("%dk", n>>10)
	}
	return fmt.Sprintf("%d bytes", n)
}

// address of the interrupt kind in the table, padded to width
func address(st styles, tab vectors.Table, k vectors.Kind, width int) string {
	a, err := tab.Dispatch(k)
	if err != nil {
		return st.dim.Render(fmt.Sprintf("%-*s", width, "-"))
	}
	return st.value.Render(fmt.Sprintf("%-*s", width, fmt.Sprintf("0x%04x", a)))
}

// Line writes a one line description of the cartridge. If err is not nil
// then the error is written instead.
func Line(w io.Writer, filename string, cart *cartridge.Cartridge, err error, styled bool) {
	st := newStyles(w, styled)

	if err != nil {
		fmt.Fprintf(w, "%s: %s\n", filename, st.bad.Render(err.Error()))
		return
	}

	h := cart.Header
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s %s %s rom=%s",
		filename, st.title.Render(fmt.Sprintf("%q", h.Title())), cart.Mapping,
		h.Destination.VideoStandard(), size(h.ROMSizeBytes)))
	if cart.CopierOffset > 0 {
		s.WriteString(" copier")
	}
	if cart.ChecksumVerified() {
		s.WriteString(" " + st.good.Render("verified"))
	} else {
		s.WriteString(" " + st.bad.Render("unverified"))
	}
	fmt.Fprintln(w, s.String())
}
