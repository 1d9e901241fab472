// This file is part of Gopherpsx.
//
// Gopherpsx is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherpsx is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherpsx.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, in the same way as fmt.Errorf().
//
// The pattern string given to Errorf() is kept with the error. Is() and Has()
// use the pattern to test an error without resorting to string comparison of
// the formatted message:
//
//	var BIOSError = "bios: %v"
//
//	err := curated.Errorf(BIOSError, "file is too short")
//	if curated.Is(err, BIOSError) {
//		...
//	}
//
// Has() walks the chain of curated errors given as values to Errorf().
//
// The Error() function normalises the message by removing duplicate adjacent
// parts. For example "bios: bios: file is too short" becomes "bios: file is
// too short".
//
// Curated errors also implement Unwrap() so the errors.Is() and errors.As()
// functions of the standard library work with the values used to create the
// error.
package curated
