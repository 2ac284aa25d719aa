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

// AbstractPath is a contiguous run of segments, filled with the
// even-odd rule and painted with PaintID.
type AbstractPath struct {
	SegStart, SegEnd int // [SegStart, SegEnd) into the segments slice
	PaintID          int
	BBox             Rect
}

// Paint is the fill style for a path. SolidColor is the only variant;
// the interface is kept open so a gradient or pattern paint could be
// added without touching the renderer's dispatch.
type Paint interface {
	isPaint()
}

// SolidColor is a flat RGBA8 non-premultiplied fill color.
type SolidColor struct {
	R, G, B, A uint8
}

func (SolidColor) isPaint() {}

// PathBuilder accumulates segments and paths for a single image. It
// is the in-process substitute for the SVG parser collaborator named
// in the external interfaces: callers construct paths programmatically
// (or from their own parser) and hand the result to Builder.Build.
type PathBuilder struct {
	Segments []AbstractSegment
	Paths    []AbstractPath
	Paints   []Paint
}

// AddPaint appends a paint and returns its id.
func (b *PathBuilder) AddPaint(p Paint) int {
	b.Paints = append(b.Paints, p)
	return len(b.Paints) - 1
}

// AddPath appends a closed polygon given by pts (implicitly closed
// back to pts[0]) as a sequence of Linear segments, painted with
// paintID. It returns an error if any consecutive pair fails segment
// construction (only possible via ErrInvalidRect on non-finite input).
func (b *PathBuilder) AddPath(pts []Point, paintID int) error {
	if len(pts) < 2 {
		return nil
	}
	pathIdx := len(b.Paths)
	start := len(b.Segments)

	left, top := pts[0].X, pts[0].Y
	right, bottom := pts[0].X, pts[0].Y
	extend := func(p Point) {
		if p.X < left {
			left = p.X
		}
		if p.X > right {
			right = p.X
		}
		if p.Y < top {
			top = p.Y
		}
		if p.Y > bottom {
			bottom = p.Y
		}
	}

	n := len(pts)
	for i := 0; i < n; i++ {
		p0 := pts[i]
		p1 := pts[(i+1)%n]
		seg, err := NewAbstractSegment(p0, p1, Linear, pathIdx)
		if err != nil {
			return err
		}
		b.Segments = append(b.Segments, seg)
		extend(p1)
	}

	bbox, err := NewRect(left, top, right, bottom)
	if err != nil {
		return err
	}
	b.Paths = append(b.Paths, AbstractPath{
		SegStart: start,
		SegEnd:   len(b.Segments),
		PaintID:  paintID,
		BBox:     bbox,
	})
	return nil
}
