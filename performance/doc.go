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

// Package performance contains helper functions relating to performance.
//
// RunProfiler() runs a function with the profiles requested by the Profile
// argument. The profiles are written to the resources directory.
//
// CalcFPS() calculates frames-per-second in aggregate along with an accuracy
// value as compared to the requested frame rate. It is used to summarise a
// headless run and is not suitable for live monitoring. For live monitoring
// see the Measure type in the limiter sub-package.
package performance
