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

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ANSI Color reference
// 1	Red
// 2	Green
// 3	Yellow
// 4	Blue
// 6	Cyan
// 8	Bright Black (Gray)

type styles struct {
	label   lipgloss.Style
	value   lipgloss.Style
	title   lipgloss.Style
	good    lipgloss.Style
	bad     lipgloss.Style
	dim     lipgloss.Style
	heading lipgloss.Style
}

// newStyles returns the styles for the writer. if styled is false then every
// style renders as plain text
func newStyles(w io.Writer, styled bool) styles {
	r := lipgloss.NewRenderer(w)
	if styled {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return styles{
		label:   r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(4)),
		value:   r.NewStyle(),
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		good:    r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(2)),
		bad:     r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
		dim:     r.NewStyle().Foreground(lipgloss.ANSIColor(8)),
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
	}
}
