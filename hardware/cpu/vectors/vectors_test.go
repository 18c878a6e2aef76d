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

package vectors_test

import (
	"testing"

	"github.com/jetsetilly/gophersnes/curated"
	"github.com/jetsetilly/gophersnes/hardware/cpu/vectors"
	"github.com/jetsetilly/gophersnes/hardware/memory/cartridge/image"
	"github.com/jetsetilly/gophersnes/hardware/memory/cartridge/mapping"
	"github.com/jetsetilly/gophersnes/test"
	"github.com/jetsetilly/gophersnes/test/romimage"
)

// write a distinct address at every vector offset. the address is derived from
// the offset so that a read from the wrong offset is obvious
func pattern(data []byte, base int) {
	for o := 0xfe0; o < 0x1000; o += 2 {
		romimage.Write16(data, base+o, uint16(0x8000|o))
	}
}

func TestResolve(t *testing.T) {
	type expected struct {
		mode    vectors.ProcessorMode
		kind    vectors.Kind
		address uint16
	}

	want := []expected{
		{vectors.Native, vectors.COP, 0x8fe4},
		{vectors.Native, vectors.BRK, 0x8fe6},
		{vectors.Native, vectors.ABORT, 0x8fe8},
		{vectors.Native, vectors.NMI, 0x8fea},
		{vectors.Native, vectors.IRQ, 0x8fee},
		{vectors.Emulation, vectors.COP, 0x8ff4},
		{vectors.Emulation, vectors.BRK, 0x8ffe},
		{vectors.Emulation, vectors.ABORT, 0x8ff8},
		{vectors.Emulation, vectors.NMI, 0x8ffa},
		{vectors.Emulation, vectors.RES, 0x8ffc},
		{vectors.Emulation, vectors.IRQ, 0x8ffe},
	}

	for _, m := range []mapping.Mode{mapping.LoROM, mapping.HiROM} {
		for _, co := range []int{0, 0x200} {
			data := romimage.New(0x20000, co > 0)
			pattern(data, m.VectorBase()+co)

			img, err := image.New(data)
			test.DemandSuccess(t, err)

			v, err := vectors.Resolve(img, m, co)
			test.DemandSuccess(t, err, m, co)

			for _, w := range want {
				a, err := v.Table(w.mode).Dispatch(w.kind)
				test.ExpectSuccess(t, err, m, co, w.mode, w.kind)
				test.ExpectEquality(t, a, w.address, m, co, w.mode, w.kind)
			}
		}
	}
}

func TestNativeReset(t *testing.T) {
	data := romimage.New(0x8000, false)
	pattern(data, mapping.LoROM.VectorBase())

	img, err := image.New(data)
	test.DemandSuccess(t, err)

	v, err := vectors.Resolve(img, mapping.LoROM, 0)
	test.DemandSuccess(t, err)

	_, err = v.Native.Dispatch(vectors.RES)
	test.ExpectSuccess(t, curated.Is(err, vectors.UnsupportedInterrupt))
	test.ExpectFailure(t, v.Native.Supports(vectors.RES))
	test.ExpectSuccess(t, v.Emulation.Supports(vectors.RES))

	_, err = v.Emulation.Dispatch(vectors.Kind(99))
	test.ExpectSuccess(t, curated.Is(err, vectors.UnsupportedInterrupt))
}

func TestBRKSharesIRQInEmulation(t *testing.T) {
	data := romimage.New(0x8000, false)
	romimage.Write16(data, 0x7ffe, 0xbeef)

	img, err := image.New(data)
	test.DemandSuccess(t, err)

	v, err := vectors.Resolve(img, mapping.LoROM, 0)
	test.DemandSuccess(t, err)

	brk, err := v.Emulation.Dispatch(vectors.BRK)
	test.DemandSuccess(t, err)
	irq, err := v.Emulation.Dispatch(vectors.IRQ)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, brk, 0xbeef)
	test.ExpectEquality(t, irq, 0xbeef)
}

// the HiROM vector base is beyond the end of a 32k image
func TestResolveOutOfBounds(t *testing.T) {
	img, err := image.New(romimage.New(0x8000, false))
	test.DemandSuccess(t, err)

	_, err = vectors.Resolve(img, mapping.HiROM, 0)
	test.ExpectSuccess(t, curated.Has(err, image.OutOfBounds))
}

func TestExtendedMappings(t *testing.T) {
	data := romimage.New(0x10000, false)
	romimage.Write16(data, 0x7ffc, 0x1111)
	romimage.Write16(data, 0xfffc, 0x2222)

	img, err := image.New(data)
	test.DemandSuccess(t, err)

	v, err := vectors.Resolve(img, mapping.ExLoROM, 0)
	test.DemandSuccess(t, err)
	a, _ := v.Emulation.Dispatch(vectors.RES)
	test.ExpectEquality(t, a, 0x1111)

	v, err = vectors.Resolve(img, mapping.ExHiROM, 0)
	test.DemandSuccess(t, err)
	a, _ = v.Emulation.Dispatch(vectors.RES)
	test.ExpectEquality(t, a, 0x2222)
}

func TestStrings(t *testing.T) {
	test.ExpectEquality(t, vectors.ABORT.String(), "ABORT")
	test.ExpectEquality(t, vectors.Kind(10).String(), "unknown interrupt (10)")
	test.ExpectEquality(t, vectors.Emulation.String(), "emulation")
}
