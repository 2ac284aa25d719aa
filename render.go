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
	"image"
	"image/color"
)

// debugLineWidth is the thickness, in pixels, of the shortcut/winding
// debug strips drawn along a leaf's right edge when DebugOverlay is
// enabled.
const debugLineWidth = 6

// Rasterizer walks a QuadTree's leaf cells and paints pixels using
// the even-odd rule. Create one instance and reuse it across renders;
// it holds no per-render state of its own, only configuration.
type Rasterizer struct {
	// DebugOverlay draws quadtree cell boundaries plus per-leaf
	// shortcut/winding indicator strips, for visual debugging. It
	// never affects which pixels are considered inside a path.
	DebugOverlay bool
}

// NewRasterizer returns a Rasterizer with the debug overlay disabled.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{}
}

// Render paints tree into a freshly allocated RGBA image of the given
// size. Pixels not covered by any path are left at the image's zero
// value (transparent black).
func (r *Rasterizer) Render(tree *QuadTree, segments []AbstractSegment, paths []AbstractPath, paints []Paint, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for _, cell := range tree.Cells {
		if !cell.IsLeaf() {
			continue
		}
		entries := tree.Entries[cell.LeafStart:cell.LeafEnd]
		if len(entries) == 0 {
			continue
		}

		left := clampInt(cell.BBox.Left, 0, width)
		right := clampInt(cell.BBox.Right, 0, width)
		top := clampInt(cell.BBox.Top, 0, height)
		bottom := clampInt(cell.BBox.Bottom, 0, height)

		cellHasShortcut := false

		for y := top; y < bottom; y++ {
			for x := left; x < right; x++ {
				sx, sy := float32(x), float32(y)
				var out color.RGBA
				var winc int32
				hitShortcut := false
				count := 0

				for i, e := range entries {
					switch e.Kind {
					case EntrySegment:
						seg := segments[e.SegIdx]
						if seg.IsLeft(sx, sy) && sy >= seg.BBox.Top && sy < seg.BBox.Bottom {
							count++
						}
						if e.Data != 0 && seg.HitShortcut(cell.BBox, sx, sy) {
							hitShortcut = true
							count += int(e.Data)
						}
					case EntryWinding:
						count += int(e.Data)
						winc += e.Data
					}

					last := i == len(entries)-1
					if last || entries[i+1].PathIdx != e.PathIdx {
						if count%2 != 0 {
							path := paths[e.PathIdx]
							if sc, ok := paints[path.PaintID].(SolidColor); ok {
								out = color.RGBA{R: sc.R, G: sc.G, B: sc.B, A: sc.A}
							}
						}
						count = 0
					}
				}

				if r.DebugOverlay {
					if hitShortcut && right-debugLineWidth <= x && x <= right {
						out = color.RGBA{G: 255, A: 255}
					}
					curr := 8
					for i := 0; i < absInt32(winc); i++ {
						if winc != 0 && right-(curr+debugLineWidth) <= x && x <= right-curr {
							if winc < 0 {
								out = color.RGBA{R: 255, A: 255}
							} else {
								out = color.RGBA{B: 255, A: 255}
							}
						}
						curr += debugLineWidth + 6
					}
				}

				img.SetRGBA(x, y, out)
				if hitShortcut {
					cellHasShortcut = true
				}
			}
		}

		if r.DebugOverlay {
			_ = cellHasShortcut
			line := color.RGBA{R: 255, G: 255, B: 255, A: 255}
			drawLine(img, left, top, right-1, top, line)
			drawLine(img, right-1, top, right-1, bottom-1, line)
			drawLine(img, left, bottom-1, right-1, bottom-1, line)
			drawLine(img, left, top, left, bottom-1, line)
		}
	}

	return img
}

func clampInt(v float32, lo, hi int) int {
	n := int(v)
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func absInt32(v int32) int {
	if v < 0 {
		return int(-v)
	}
	return int(v)
}

// drawLine draws an axis-aligned or diagonal debug line from (x1,y1)
// to (x2,y2) using Bresenham-style stepping on the steep axis.
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, c color.RGBA) {
	w := x1 - x2
	if w < 0 {
		w = -w
	}
	h := y1 - y2
	if h < 0 {
		h = -h
	}
	steep := w < h
	if steep {
		x1, y1 = y1, x1
		x2, y2 = y2, x2
	}
	if x1 > x2 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
	}
	if x1 == x2 {
		if steep {
			setPixel(img, y1, x1, c)
		} else {
			setPixel(img, x1, y1, c)
		}
		return
	}
	step := float64(y2-y1) / float64(x2-x1)
	y := float64(y1)
	for x := x1; x <= x2; x++ {
		py := int(y + 0.5)
		if steep {
			setPixel(img, py, x, c)
		} else {
			setPixel(img, x, py, c)
		}
		y += step
	}
}

func setPixel(img *image.RGBA, x, y int, c color.RGBA) {
	b := img.Bounds()
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		return
	}
	img.SetRGBA(x, y, c)
}
