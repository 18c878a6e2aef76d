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

package header

import (
	"github.com/jetsetilly/gophersnes/curated"
	"github.com/jetsetilly/gophersnes/hardware/memory/cartridge/image"
	"github.com/jetsetilly/gophersnes/hardware/memory/cartridge/mapping"
	"github.com/jetsetilly/gophersnes/logger"
)

// NoValidHeader is returned by Detect() when none of the candidate offsets
// contain a valid header.
const NoValidHeader = "no valid header (tried %#06x and %#06x)"

// Detect the header and the mapping mode of the image. The copierOffset is
// added to the fixed header offset of each mapping mode.
//
// Candidates are tried in the order given by mapping.Probed and the first
// valid header is returned. Returns a NoValidHeader error if no candidate is
// valid.
func Detect(img image.Image, copierOffset int) (Header, mapping.Mode, error) {
	return detect(img, copierOffset, logger.Allow)
}

// DetectQuietly is the same as Detect() except that the rejected and accepted
// candidates are not logged.
func DetectQuietly(img image.Image, copierOffset int) (Header, mapping.Mode, error) {
	return detect(img, copierOffset, logger.Deny)
}

func detect(img image.Image, copierOffset int, perm logger.Permission) (Header, mapping.Mode, error) {
	var offsets [len(mapping.Probed)]int

	for i, m := range mapping.Probed {
		offsets[i] = m.HeaderBase() + copierOffset

		h, err := Parse(img, offsets[i])
		if err == nil {
			logger.Logf(perm, "header", "%s header at %#06x", m, offsets[i])
			if d, ok := h.DeclaredMapping(); !ok {
				logger.Logf(perm, "header", "unrecognised sub-mapping mode (%#x)", h.SubMappingMode)
			} else if d != m {
				logger.Logf(perm, "header", "header declares %s (header at %#06x) but was found as %s", d, d.HeaderBase()+copierOffset, m)
			}
			return h, m, nil
		}

		logger.Logf(perm, "header", "rejected %s candidate: %v", m, err)
	}

	return Header{}, mapping.LoROM, curated.Errorf(NoValidHeader, offsets[0], offsets[1])
}
