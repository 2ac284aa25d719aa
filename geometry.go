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

import (
	"github.com/chewxy/math32"
	"github.com/pkg/errors"
)

// Point is a screen-space coordinate pair. Y grows downward.
type Point struct {
	X, Y float32
}

// Rect is an axis-aligned rectangle with left <= right and top <= bottom.
// The zero value is the empty Rect at the origin; use NewRect to build
// any other Rect with validation.
type Rect struct {
	Left, Top, Right, Bottom float32
}

// checkedSub returns a-b, failing if the result is not finite.
func checkedSub(a, b float32) (float32, bool) {
	d := a - b
	if math32.IsInf(d, 0) || math32.IsNaN(d) {
		return 0, false
	}
	return d, true
}

// NewRect constructs a Rect from its edges, validating that it is
// non-inverted and that both extents are finite.
func NewRect(left, top, right, bottom float32) (Rect, error) {
	if left > right || top > bottom {
		return Rect{}, errors.Wrapf(ErrInvalidRect, "inverted rect (%v,%v,%v,%v)", left, top, right, bottom)
	}
	if _, ok := checkedSub(right, left); !ok {
		return Rect{}, errors.Wrapf(ErrInvalidRect, "non-finite width (%v,%v,%v,%v)", left, top, right, bottom)
	}
	if _, ok := checkedSub(bottom, top); !ok {
		return Rect{}, errors.Wrapf(ErrInvalidRect, "non-finite height (%v,%v,%v,%v)", left, top, right, bottom)
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}, nil
}

// Width returns right-left.
func (r Rect) Width() float32 { return r.Right - r.Left }

// Height returns bottom-top.
func (r Rect) Height() float32 { return r.Bottom - r.Top }

// Midpoint returns the center of r.
func (r Rect) Midpoint() Point {
	return Point{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Contains reports whether p lies within r, using a closed range on
// all four edges.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Intersect returns the overlap of r and other. The second return
// value is false if the rectangles are disjoint; rectangles that only
// touch along an edge or at a corner yield a zero-width or zero-height
// result with true.
func (r Rect) Intersect(other Rect) (Rect, bool) {
	left := math32.Max(r.Left, other.Left)
	top := math32.Max(r.Top, other.Top)
	right := math32.Min(r.Right, other.Right)
	bottom := math32.Min(r.Bottom, other.Bottom)
	out, err := NewRect(left, top, right, bottom)
	if err != nil {
		return Rect{}, false
	}
	return out, true
}
