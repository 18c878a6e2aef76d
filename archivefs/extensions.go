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

package archivefs

import (
	"fmt"
	"path/filepath"
	"strings"
)

// list of file extensions for the supported archive types
var ArchiveExtensions = [...]string{".ZIP", ".7Z"}

// IsArchive returns true if the filename has the extension of a supported
// archive type
func IsArchive(filename string) bool {
	ext := strings.ToUpper(filepath.Ext(filename))
	for _, e := range ArchiveExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// RemoveArchiveExt removes the file extension of any supported/recognised
// archive type from within the string. Only the first instance of the extension
// is removed
func RemoveArchiveExt(s string) string {
	t := strings.ToUpper(s)
	for _, ext := range ArchiveExtensions {
		i := strings.Index(t, ext+string(filepath.Separator))
		if i >= 0 {
			return fmt.Sprintf("%s%s", s[:i], s[i+len(ext):])
		}
	}

	return TrimArchiveExt(s)
}

// TrimArchiveExt removes the file extension of any supported/recognised archive
// type from the end of the string
func TrimArchiveExt(s string) string {
	if IsArchive(s) {
		return strings.TrimSuffix(s, filepath.Ext(s))
	}
	return s
}
