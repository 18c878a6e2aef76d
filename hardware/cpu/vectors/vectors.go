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

// Package vectors resolves the interrupt vector tables of a cartridge. The
// 65C816 has one table for native mode and one for emulation mode. Each entry
// is a 16 bit address stored little-endian in the cartridge data.
//
// Resolution only reads the addresses. Whether an address points to anything
// sensible is not checked.
package vectors

import (
	"fmt"

	"github.com/jetsetilly/gophersnes/curated"
	"github.com/jetsetilly/gophersnes/hardware/memory/cartridge/image"
	"github.com/jetsetilly/gophersnes/hardware/memory/cartridge/mapping"
)

// Kind of interrupt.
type Kind int

// List of valid Kind values.
const (
	COP Kind = iota
	BRK
	ABORT
	NMI
	IRQ
	RES
)

// Kinds lists every Kind in table order.
var Kinds = [...]Kind{COP, BRK, ABORT, NMI, IRQ, RES}

func (k Kind) String() string {
	switch k {
	case COP:
		return "COP"
	case BRK:
		return "BRK"
	case ABORT:
		return "ABORT"
	case NMI:
		return "NMI"
	case IRQ:
		return "IRQ"
	case RES:
		return "RES"
	}
	return fmt.Sprintf("unknown interrupt (%d)", int(k))
}

// ProcessorMode selects between the two vector tables.
type ProcessorMode int

// List of valid ProcessorMode values.
const (
	Native ProcessorMode = iota
	Emulation
)

func (m ProcessorMode) String() string {
	switch m {
	case Native:
		return "native"
	case Emulation:
		return "emulation"
	}
	return fmt.Sprintf("unknown processor mode (%d)", int(m))
}

// UnsupportedInterrupt is returned by Dispatch() when the table has no entry
// for the interrupt kind. The native table has no RES entry because reset
// always starts the processor in emulation mode.
const UnsupportedInterrupt = "unsupported interrupt: %v in %v mode"

// offsets of each vector from the vector base. a negative value means the
// table has no entry for the kind
//
// BRK and IRQ share an entry in emulation mode
var offsets = map[ProcessorMode][len(Kinds)]int{
	Native:    {COP: 0xfe4, BRK: 0xfe6, ABORT: 0xfe8, NMI: 0xfea, IRQ: 0xfee, RES: -1},
	Emulation: {COP: 0xff4, BRK: 0xffe, ABORT: 0xff8, NMI: 0xffa, IRQ: 0xffe, RES: 0xffc},
}

// Table is the interrupt vector table for one processor mode.
type Table struct {
	Mode ProcessorMode

	addresses [len(Kinds)]uint16
	present   [len(Kinds)]bool
}

// Dispatch returns the address for the interrupt kind. Returns an
// UnsupportedInterrupt error if the table has no entry for the kind.
func (tab Table) Dispatch(kind Kind) (uint16, error) {
	if kind < 0 || int(kind) >= len(tab.present) || !tab.present[kind] {
		return 0, curated.Errorf(UnsupportedInterrupt, kind, tab.Mode)
	}
	return tab.addresses[kind], nil
}

// Supports returns true if the table has an entry for the interrupt kind.
func (tab Table) Supports(kind Kind) bool {
	return kind >= 0 && int(kind) < len(tab.present) && tab.present[kind]
}

// Vectors is the pair of tables for a cartridge.
type Vectors struct {
	Native    Table
	Emulation Table
}

// Table returns the table for the processor mode.
func (v Vectors) Table(mode ProcessorMode) Table {
	if mode == Emulation {
		return v.Emulation
	}
	return v.Native
}

// Resolve the vector tables of the image for the mapping mode. The
// copierOffset is added to every vector offset in the same way as it is added
// to the header offset.
//
// Returns an error only if a vector lies outside the image.
func Resolve(img image.Image, mode mapping.Mode, copierOffset int) (Vectors, error) {
	base := mode.VectorBase() + copierOffset

	var v Vectors
	var err error

	v.Native, err = resolve(img, Native, base)
	if err != nil {
		return Vectors{}, err
	}
	v.Emulation, err = resolve(img, Emulation, base)
	if err != nil {
		return Vectors{}, err
	}

	return v, nil
}

func resolve(img image.Image, mode ProcessorMode, base int) (Table, error) {
	tab := Table{Mode: mode}
	for _, k := range Kinds {
		o := offsets[mode][k]
		if o < 0 {
			continue
		}
		a, err := img.Read16(base + o)
		if err != nil {
			return Table{}, curated.Errorf("vectors: %v: %v", k, err)
		}
		tab.addresses[k] = a
		tab.present[k] = true
	}
	return tab, nil
}
