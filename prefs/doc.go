// This file is part of glcanvas.
//
// glcanvas is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// glcanvas is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with glcanvas.  If not, see <https://www.gnu.org/licenses/>.

// Package prefs facilitates the storage of preferences on disk. Values are
// held in the typed Bool, Int, Float and String types. Each type can have a
// hook function that is called before and after a new value is stored.
//
// A Disk instance associates preference values with keys and saves them to a
// plain text file. Each line of the file has the form:
//
//	key :: value
//
// Entries in the file that belong to keys not added to the Disk instance are
// preserved when the file is saved. This allows more than one Disk instance
// to share a single file.
//
// The command line stack allows preferences to be overridden for the
// duration of a single run. See PushCommandLineStack() for the format of the
// override string.
package prefs
