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

// directionEpsilon is the |dy| threshold below which a segment is
// classified as Horizontal rather than one of the four diagonal
// quadrants.
const directionEpsilon = 1e-6

// shortcutEpsilon is the |b| threshold below which a segment's
// implicit line is considered horizontal for the purposes of the
// shortcut predicate.
const shortcutEpsilon = 1e-6

// Direction classifies the (dx, dy) of a segment into one of five
// buckets, used both for winding contribution and for the half-open
// classification's constant-sign regions.
type Direction int

const (
	NE Direction = iota
	NW
	SE
	SW
	Horizontal
)

// WindingInc returns the signed winding contribution of d: NE and NW
// contribute +1, SE and SW contribute -1, Horizontal contributes 0.
func (d Direction) WindingInc() int32 {
	switch d {
	case NE, NW:
		return 1
	case SE, SW:
		return -1
	default:
		return 0
	}
}

// directionOf classifies (dx, dy) the same way the original SVG
// importer does: a near-zero dy always wins, regardless of dx.
func directionOf(dx, dy float32) Direction {
	if math32.Abs(dy) < directionEpsilon {
		return Horizontal
	}
	right := dx >= 0
	up := dy >= 0
	switch {
	case right && up:
		return NE
	case !right && up:
		return NW
	case right && !up:
		return SE
	default:
		return SW
	}
}

// SegKind identifies the geometric kind of a segment. Only Linear is
// implemented by this package; the other kinds are recognized so that
// a caller supplying one gets ErrUnsupportedSegment rather than silent
// misinterpretation. (The original source also carries path/compositor
// tags — Path, LastGeom, FirstStack, Push, PopFill, PopClip, Commit,
// LastStack — that belong to a clip-stack machinery never exercised by
// the core pipeline; they are not represented here at all.)
type SegKind int

const (
	Linear SegKind = iota
	Quadratic
	Cubic
	Arc
)

// AbstractSegment is a single directed line segment p0->p1 belonging
// to a path, represented as a canonicalized implicit line
// a*x + b*y + c = 0 together with its bounding box and direction.
type AbstractSegment struct {
	P0, P1  Point
	BBox    Rect
	Dir     Direction
	A, B, C float32
	PathIdx int
}

// NewAbstractSegment builds a canonicalized segment from p0 to p1.
// Zero-length segments are accepted and classified as Horizontal.
// kind must be Linear; any other value fails with
// ErrUnsupportedSegment, since the core assumes pre-linearized input.
func NewAbstractSegment(p0, p1 Point, kind SegKind, pathIdx int) (AbstractSegment, error) {
	if kind != Linear {
		return AbstractSegment{}, errors.Wrapf(ErrUnsupportedSegment, "segment kind %d", kind)
	}

	left, right := p0.X, p1.X
	if left > right {
		left, right = right, left
	}
	top, bottom := p0.Y, p1.Y
	if top > bottom {
		top, bottom = bottom, top
	}
	bbox, err := NewRect(left, top, right, bottom)
	if err != nil {
		return AbstractSegment{}, err
	}

	a := p0.Y - p1.Y
	b := p1.X - p0.X
	c := p0.X*p1.Y - p1.X*p0.Y
	if a < 0 || (a == 0 && b < 0) {
		a, b, c = -a, -b, -c
	}

	return AbstractSegment{
		P0:      p0,
		P1:      p1,
		BBox:    bbox,
		Dir:     directionOf(p1.X-p0.X, p1.Y-p0.Y),
		A:       a,
		B:       b,
		C:       c,
		PathIdx: pathIdx,
	}, nil
}

// Eval evaluates the canonicalized implicit line at (x, y). Because of
// canonicalization the sign does not depend on which endpoint is p0: a
// negative result means (x, y) is to the left of the line when it is
// traversed from its larger-y end to its smaller-y end (for a
// horizontal line, from left to right); zero means the point is on
// the line.
func (s AbstractSegment) Eval(x, y float32) float32 {
	return s.A*x + s.B*y + s.C
}

// IsLeft reports whether (x, y) is strictly to the left of the segment.
func (s AbstractSegment) IsLeft(x, y float32) bool {
	return s.Eval(x, y) < 0
}

// GoingUp reports whether the segment's direction is NE or NW.
func (s AbstractSegment) GoingUp() bool {
	return s.Dir == NE || s.Dir == NW
}

// GoingRight reports whether the segment's direction is NE, SE, or
// Horizontal.
func (s AbstractSegment) GoingRight() bool {
	return s.Dir == NE || s.Dir == SE || s.Dir == Horizontal
}

// IntersectWithBB reports whether the segment crosses any edge of bb.
// It returns false early when the segment's bbox is entirely inside bb
// or the two bboxes are disjoint; otherwise it tests each of bb's four
// edges for a sign change of Eval between its endpoints.
func (s AbstractSegment) IntersectWithBB(bb Rect) bool {
	if s.isInsideBB(bb) {
		return false
	}
	if s.BBox.Right < bb.Left || s.BBox.Left > bb.Right ||
		s.BBox.Bottom < bb.Top || s.BBox.Top > bb.Bottom {
		return false
	}

	// top edge
	if signChange(s.Eval(bb.Left, bb.Top), s.Eval(bb.Right, bb.Top)) {
		return true
	}
	// right edge
	if signChange(s.Eval(bb.Right, bb.Top), s.Eval(bb.Right, bb.Bottom)) {
		return true
	}
	// bottom edge
	if signChange(s.Eval(bb.Right, bb.Bottom), s.Eval(bb.Left, bb.Bottom)) {
		return true
	}
	// left edge
	if signChange(s.Eval(bb.Left, bb.Bottom), s.Eval(bb.Left, bb.Top)) {
		return true
	}
	return false
}

func signChange(a, b float32) bool {
	return (a < 0) != (b < 0)
}

func (s AbstractSegment) isInsideBB(bb Rect) bool {
	return s.BBox.Left >= bb.Left && s.BBox.Right <= bb.Right &&
		s.BBox.Top >= bb.Top && s.BBox.Bottom <= bb.Bottom
}

// ShortcutBase returns the segment endpoint with the larger x
// coordinate, the reference point a shortcut contribution is measured
// against.
func (s AbstractSegment) ShortcutBase() Point {
	if s.P0.X >= s.P1.X {
		return s.P0
	}
	return s.P1
}

// HitShortcut reports whether sampling at (sx, sy) should receive a
// shortcut's winding contribution: the segment must not be horizontal,
// the sample must lie above the shortcut base, and must lie to the
// left of the cell's right edge.
func (s AbstractSegment) HitShortcut(cell Rect, sx, sy float32) bool {
	if math32.Abs(s.B) < shortcutEpsilon {
		return false
	}
	base := s.ShortcutBase()
	if sy >= base.Y {
		return false
	}
	return sx < cell.Right
}

// chullResult is the outcome of a convex-hull hit test against a
// segment. Only chullUnknown is ever produced today; a future
// curve-segment extension may populate chullInside/chullOutside.
type chullResult int

const (
	chullUnknown chullResult = iota
	chullInside
	chullOutside
)

// chullHit is a placeholder convex-hull predicate. The pipeline
// degrades to implicit evaluation whenever it reports chullUnknown,
// which is all it ever reports for Linear segments. Kept as a
// pluggable hook (not inlined) so a curve-segment extension has
// somewhere to attach without reshaping halfOpenEval.
func (s AbstractSegment) chullHit(sample Point) chullResult {
	return chullUnknown
}

// halfOpenEval classifies sample against the segment using the
// half-open band (T, B] on y and the half-open range [L, R) on x. The
// result is 0 outside the segment's vertical band and outside its
// horizontal range, and otherwise +1 or -1, chosen so that a segment
// and its neighbor sharing an endpoint contribute exactly one
// crossing rather than zero or two.
func halfOpenEval(s AbstractSegment, sample Point) int32 {
	top, bottom := s.BBox.Top, s.BBox.Bottom
	left, right := s.BBox.Left, s.BBox.Right

	if sample.Y > bottom || sample.Y <= top {
		if sample.X < left || sample.X >= right {
			return 0
		}
		sameDir := s.GoingRight() == s.GoingUp()
		if sample.Y <= top {
			if sameDir {
				return -1
			}
			return 1
		}
		if sameDir {
			return 1
		}
		return -1
	}

	if sample.X >= right {
		return 1
	}
	if sample.X < left {
		return -1
	}

	if hit := s.chullHit(sample); hit != chullUnknown {
		if hit == chullInside {
			return -1
		}
		return 1
	}

	if s.Eval(sample.X, sample.Y) < 0 {
		return -1
	}
	return 1
}
