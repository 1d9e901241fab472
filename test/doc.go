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

// Package test bundles helper functions to remove common boilerplate from the
// package tests.
//
// The Expect*() functions report a failure with t.Errorf() and let the test
// continue. The Demand*() functions stop the test with t.Fatalf().
//
// Success and failure are judged by the type of the value. A bool is a
// success if it is true. An error is a success if it is nil. An untyped nil is
// also considered a success because of how errors are usually handled in Go.
//
// The optional tags arguments are printed at the start of a failure message.
// They are useful for identifying which iteration of a loop failed.
//
// The CompareWriter type implements the io.Writer interface and is used to
// capture output for comparison.
package test
