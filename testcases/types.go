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

// Package testcases provides named scenario builders shared by the
// package's own tests: each TestCase names one or more closed
// polygonal paths, the canvas size to render them into, and (for
// paths with more than one ring) the winding relationship between
// the rings.
package testcases

import "rasterquad.dev/core"

// TestCase defines a single rendering scenario.
type TestCase struct {
	Name      string // lowercase a-z and _ only
	Width     int    // canvas width in pixels
	Height    int    // canvas height in pixels
	MaxDepth  int    // quadtree depth cap to use; 0 means "use the caller's default"
	MinSeg    int    // split threshold; 0 means "use the caller's default"
	Rings     [][]rasterquad.Point
	PaintRGBA [4]uint8
}

// pt is a helper to build a rasterquad.Point from x, y coordinates.
func pt(x, y float32) rasterquad.Point {
	return rasterquad.Point{X: x, Y: y}
}

// Build constructs the PathBuilder, segments, paths and paints that
// correspond to tc. Each ring in tc.Rings becomes its own
// AbstractPath sharing tc.PaintRGBA. The renderer applies the even-odd
// rule to each path separately, so the rings of one TestCase do not
// cut holes in each other: where they overlap, the later ring is
// painted over the earlier one.
func (tc TestCase) Build() (*rasterquad.PathBuilder, error) {
	b := &rasterquad.PathBuilder{}
	paintID := b.AddPaint(rasterquad.SolidColor{
		R: tc.PaintRGBA[0], G: tc.PaintRGBA[1], B: tc.PaintRGBA[2], A: tc.PaintRGBA[3],
	})
	for _, ring := range tc.Rings {
		if err := b.AddPath(ring, paintID); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// RootRect returns the (0, 0, Width, Height) root bounding box for tc.
func (tc TestCase) RootRect() (rasterquad.Rect, error) {
	return rasterquad.NewRect(0, 0, float32(tc.Width), float32(tc.Height))
}
