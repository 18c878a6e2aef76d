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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function, which takes a
// pattern and placeholder values in the same way as fmt.Errorf(). The pattern
// is remembered and is what identifies the error. Packages that need typed
// failures export their patterns as constants. For example, the header
// package exports:
//
//	const NoValidHeader = "no valid header (tried %#06x and %#06x)"
//
// and callers can test for it with:
//
//	if curated.Is(err, header.NoValidHeader) {
//		...
//	}
//
// Is() only looks at the outermost error. Has() walks the chain of curated
// errors passed as values to Errorf(), so a wrapped error can be found:
//
//	err := curated.Errorf("cartridge: %v", header.Detect(img, 0))
//
//	curated.Has(err, header.NoValidHeader) // true
//	curated.Is(err, header.NoValidHeader)  // false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). An uncurated error is an unexpected error.
//
// The Error() implementation normalises the message by removing duplicate
// adjacent parts, where parts are separated by ": ". This means that each
// layer of a program can prefix its own name without worrying about whether
// the layer below did the same thing:
//
//	cartridgeloader: cartridgeloader: file not found
//
// is printed as:
//
//	cartridgeloader: file not found
package curated
