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

package image

// Cursor reads consecutive fields from an Image. Every read advances the
// cursor by the width of the field, even if the read fails.
type Cursor struct {
	img    Image
	offset int
}

// NewCursor returns a Cursor positioned at offset.
func (img Image) NewCursor(offset int) *Cursor {
	return &Cursor{
		img:    img,
		offset: offset,
	}
}

// Offset returns the position of the next read.
func (c *Cursor) Offset() int {
	return c.offset
}

// Next8 reads one byte.
func (c *Cursor) Next8() (uint8, error) {
	v, err := c.img.Read8(c.offset)
	c.offset++
	return v, err
}

// Next16 reads a little-endian 16 bit value.
func (c *Cursor) Next16() (uint16, error) {
	v, err := c.img.Read16(c.offset)
	c.offset += 2
	return v, err
}

// NextBytes fills b.
func (c *Cursor) NextBytes(b []byte) error {
	err := c.img.ReadBytes(c.offset, b)
	c.offset += len(b)
	return err
}
