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

// Package paths contains functions to prepare paths to gopherpsx resources.
//
// The ResourcePath() function returns the supplied resource path prepended
// with the appropriate config directory. For example, the following will
// return the path to the preferences file:
//
//	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
//
// If a directory named ".gopherpsx" is present in the current directory then
// that is used as the base path. Otherwise the user's config directory is
// used, as reported by os.UserConfigDir(). On a Linux system that will
// typically be:
//
//	/home/user/.config/gopherpsx/preferences
//
// Any missing directories in the path are created.
package paths
