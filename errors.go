// seehuhn.de/go/raster - a 2D rendering library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package rasterquad

import "github.com/pkg/errors"

// Error kinds returned by this package. Callers compare with errors.Is.
var (
	// ErrInvalidRect is returned when a rectangle is inverted or has a
	// non-finite extent.
	ErrInvalidRect = errors.New("rasterquad: invalid rect")

	// ErrDegenerateSubdivision names the case where a child bbox would
	// be invalid. The quadtree builder never returns it: getChildBounds
	// reports that case with ok=false and the builder finalizes the
	// parent cell as a leaf instead.
	ErrDegenerateSubdivision = errors.New("rasterquad: degenerate subdivision")

	// ErrUnsupportedSegment is returned when a segment kind other than
	// Linear is supplied; the core only handles pre-linearized input.
	ErrUnsupportedSegment = errors.New("rasterquad: unsupported segment kind")

	// ErrOverflow is returned when the requested image size or the
	// worst-case entry-array growth across max_depth levels would
	// exceed safe allocation limits.
	ErrOverflow = errors.New("rasterquad: size would overflow")
)
