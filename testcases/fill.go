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

package testcases

import (
	"math"

	rasterquad "rasterquad.dev/core"
)

type point = rasterquad.Point

var red = [4]uint8{255, 0, 0, 255}

var fillCases = []TestCase{
	{Name: "triangle", Width: 64, Height: 64, Rings: ring(triangle(10, 50, 32, 10, 54, 50)), PaintRGBA: red},
	{Name: "star", Width: 64, Height: 64, Rings: ring(fivePointStar(32, 32, 25)), PaintRGBA: red},
	{Name: "rectangle", Width: 64, Height: 64, Rings: ring(rectangle(10, 10, 44, 44)), PaintRGBA: red},
	{Name: "concentric_rect", Width: 64, Height: 64, Rings: concentricRectangles(32, 32, 25, 12), PaintRGBA: red},
	{Name: "overlapping_polygons", Width: 64, Height: 64, Rings: overlappingPolygons(24, 32, 44, 32, 16), PaintRGBA: red},
	{Name: "figure_eight", Width: 64, Height: 64, Rings: ring(figureEight(32, 32, 20, 10)), PaintRGBA: red},
	{Name: "high_winding", Width: 64, Height: 64, Rings: highWindingRect(32, 32, 20, 3), PaintRGBA: red},
	{Name: "alternating_winding", Width: 64, Height: 64, Rings: concentricRectangles(32, 32, 25, 12), PaintRGBA: red},
	{Name: "horizontal_edges", Width: 64, Height: 64, Rings: ring(rectangle(10, 20, 54, 44)), PaintRGBA: red},
	{Name: "vertical_edges", Width: 64, Height: 64, Rings: ring(rectangle(28, 5, 36, 59)), PaintRGBA: red},
	{Name: "diagonal_45deg", Width: 64, Height: 64, Rings: ring(diamond(32, 32, 20)), PaintRGBA: red},
	{Name: "near_horizontal", Width: 64, Height: 64, Rings: ring(nearHorizontalQuad(10, 30, 54, 30.4)), PaintRGBA: red},
	{Name: "near_vertical", Width: 64, Height: 64, Rings: ring(nearVerticalQuad(30, 10, 30.4, 54)), PaintRGBA: red},
	{Name: "single_pixel", Width: 64, Height: 64, Rings: ring(triangle(30, 32, 32, 30, 34, 32)), PaintRGBA: red},
	{Name: "touching_edge", Width: 64, Height: 64, Rings: ring(rectangle(0, 10, 54, 54)), PaintRGBA: red},
	{Name: "partially_clipped", Width: 64, Height: 64, Rings: ring(rectangle(-10, 20, 40, 74)), PaintRGBA: red},
	{Name: "fully_outside", Width: 64, Height: 64, Rings: ring(rectangle(70, 70, 100, 100)), PaintRGBA: red},
	{Name: "pixel_aligned", Width: 64, Height: 64, Rings: ring(rectangle(10, 10, 50, 50)), PaintRGBA: red},
	{Name: "half_pixel_offset", Width: 64, Height: 64, Rings: ring(rectangle(10.5, 10.5, 50.5, 50.5)), PaintRGBA: red},
	{Name: "clipped_nested_rects", Width: 32, Height: 32, Rings: clippedNestedRects(), PaintRGBA: red},

	// S1, S2, S4 and S6: the single-paint boundary scenarios named
	// directly. S3 and S5 need two paints, which a TestCase cannot
	// express; render_test.go covers them.
	{Name: "s1_single_diagonal", Width: 100, Height: 100, MaxDepth: 1, MinSeg: 0, Rings: ring(diagonalSquare(20, 20, 80, 80)), PaintRGBA: red},
	{Name: "s2_shortcut", Width: 150, Height: 100, MaxDepth: 1, MinSeg: 0, Rings: ring(rectangle(110, 40, 111, 60)), PaintRGBA: red},
	{Name: "s4_horizontal_only", Width: 100, Height: 100, Rings: ring(rectangle(10, 50, 90, 50)), PaintRGBA: red},
	{Name: "s6_canonicalization_forward", Width: 100, Height: 100, Rings: ring(diagonalSquare(20, 20, 80, 80)), PaintRGBA: red},
	{Name: "s6_canonicalization_reversed", Width: 100, Height: 100, Rings: ring(reverseRing(diagonalSquare(20, 20, 80, 80))), PaintRGBA: red},
}

func ring(pts []point) [][]point {
	return [][]point{pts}
}

func reverseRing(pts []point) []point {
	out := make([]point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// triangle builds a triangular ring.
func triangle(x1, y1, x2, y2, x3, y3 float32) []point {
	return []point{pt(x1, y1), pt(x2, y2), pt(x3, y3)}
}

// fivePointStar builds a five-pointed, self-intersecting star ring.
func fivePointStar(cx, cy, r float32) []point {
	var raw [5]point
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		raw[i] = pt(cx+r*float32(math.Cos(angle)), cy+r*float32(math.Sin(angle)))
	}
	order := [5]int{0, 2, 4, 1, 3}
	out := make([]point, 5)
	for i, idx := range order {
		out[i] = raw[idx]
	}
	return out
}

// rectangle builds a rectangular ring.
func rectangle(x1, y1, x2, y2 float32) []point {
	return []point{pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2)}
}

// diagonalSquare builds the S1 diagonal path M x1 y1 L x2 y2 Z, whose
// closing edge is implicit: two points make a degenerate "ring" that
// PathBuilder still turns into the two directed segments the
// scenario calls for.
func diagonalSquare(x1, y1, x2, y2 float32) []point {
	return []point{pt(x1, y1), pt(x2, y2)}
}

// concentricRectangles builds two nested rectangular rings, outer and
// inner wound oppositely. Build turns each ring into its own path, so
// the inner ring is painted over the outer one rather than cutting a
// hole in it.
func concentricRectangles(cx, cy, outerSize, innerSize float32) [][]point {
	outer := []point{
		pt(cx-outerSize, cy-outerSize), pt(cx+outerSize, cy-outerSize),
		pt(cx+outerSize, cy+outerSize), pt(cx-outerSize, cy+outerSize),
	}
	inner := []point{
		pt(cx-innerSize, cy-innerSize), pt(cx-innerSize, cy+innerSize),
		pt(cx+innerSize, cy+innerSize), pt(cx+innerSize, cy-innerSize),
	}
	return [][]point{outer, inner}
}

// overlappingPolygons approximates the teacher's overlapping-circles
// scenario with two overlapping regular 16-gons, since this package's
// segments are linear only (curve flattening is out of scope).
func overlappingPolygons(cx1, cy1, cx2, cy2, r float32) [][]point {
	return [][]point{regularPolygon(cx1, cy1, r, 16), regularPolygon(cx2, cy2, r, 16)}
}

func regularPolygon(cx, cy, r float32, n int) []point {
	out := make([]point, n)
	for i := 0; i < n; i++ {
		angle := float64(i) * 2 * math.Pi / float64(n)
		out[i] = pt(cx+r*float32(math.Cos(angle)), cy+r*float32(math.Sin(angle)))
	}
	return out
}

// figureEight builds a self-crossing figure-eight ring.
func figureEight(cx, cy, width, height float32) []point {
	return []point{
		pt(cx-width, cy-height), pt(cx+width, cy+height),
		pt(cx+width, cy-height), pt(cx-width, cy+height),
	}
}

// highWindingRect builds the same rectangle wound multiple times, as
// separate same-direction rings.
func highWindingRect(cx, cy, size float32, windings int) [][]point {
	r := []point{
		pt(cx-size, cy-size), pt(cx+size, cy-size),
		pt(cx+size, cy+size), pt(cx-size, cy+size),
	}
	out := make([][]point, windings)
	for i := range out {
		out[i] = r
	}
	return out
}

// diamond builds a diamond (45-degree rotated square) ring.
func diamond(cx, cy, size float32) []point {
	return []point{pt(cx, cy-size), pt(cx+size, cy), pt(cx, cy+size), pt(cx-size, cy)}
}

// nearHorizontalQuad builds a quadrilateral with near-horizontal
// top/bottom edges.
func nearHorizontalQuad(x1, y1, x2, y2 float32) []point {
	const height = 10
	return []point{pt(x1, y1), pt(x2, y2), pt(x2, y2+height), pt(x1, y1+height)}
}

// nearVerticalQuad builds a quadrilateral with near-vertical
// left/right edges.
func nearVerticalQuad(x1, y1, x2, y2 float32) []point {
	const width = 10
	return []point{pt(x1, y1), pt(x1+width, y1), pt(x2+width, y2), pt(x2, y2)}
}

// clippedNestedRects builds two nested rectangles extending outside
// the canvas, wound oppositely.
func clippedNestedRects() [][]point {
	outer := []point{pt(-4, -8), pt(36, -8), pt(36, 28), pt(-4, 28)}
	inner := []point{pt(4, -4), pt(4, 20), pt(28, 20), pt(28, -4)}
	return [][]point{outer, inner}
}
