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

// Package logger is the central log for glcanvas. Entries are tagged and
// stored in a ring of fixed size. Identical consecutive entries are collapsed
// into one entry with a repeat count.
//
// The package level functions log to the central logger. Additional loggers
// can be created with NewLogger(), which is useful for testing.
//
// Every logging request is accompanied by a Permission. A Permission
// implementation decides whether the request should result in a new entry.
// The Allow value is the default when an entry should always be made.
package logger
