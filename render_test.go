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
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildAndRender(t *testing.T, b *PathBuilder, width, height, maxDepth, minSeg int) *imageRGBAResult {
	t.Helper()
	root, err := NewRect(0, 0, float32(width), float32(height))
	require.NoError(t, err)
	tree, err := (&Builder{MaxDepth: maxDepth, MinSeg: minSeg}).Build(b.Segments, root)
	require.NoError(t, err)
	img := NewRasterizer().Render(tree, b.Segments, b.Paths, b.Paints, width, height)
	return &imageRGBAResult{width: width, height: height, pix: img.Pix, stride: img.Stride}
}

type imageRGBAResult struct {
	width, height, stride int
	pix                    []uint8
}

func (r *imageRGBAResult) at(x, y int) color.RGBA {
	i := y*r.stride + x*4
	return color.RGBA{R: r.pix[i], G: r.pix[i+1], B: r.pix[i+2], A: r.pix[i+3]}
}

// TestS1SingleDiagonal exercises boundary scenario S1: a single
// diagonal path inside a 100x100 root, split once. The pixel at
// (50,50) lies to the right of the line and must be painted; (20,80)
// must remain background.
func TestS1SingleDiagonal(t *testing.T) {
	b := &PathBuilder{}
	paintID := b.AddPaint(SolidColor{R: 200, A: 255})
	require.NoError(t, b.AddPath([]Point{{X: 20, Y: 20}, {X: 80, Y: 80}}, paintID))

	img := buildAndRender(t, b, 100, 100, 1, 0)
	require.Equal(t, uint8(255), img.at(50, 50).A)
	require.Equal(t, uint8(0), img.at(20, 80).A)
}

// TestS2Shortcut exercises boundary scenario S2: a segment entirely
// to the right of the root cell must still produce exactly one
// crossing for a ray test from inside the root, via the shortcut
// mechanism.
func TestS2Shortcut(t *testing.T) {
	b := &PathBuilder{}
	paintID := b.AddPaint(SolidColor{R: 200, A: 255})
	require.NoError(t, b.AddPath([]Point{{X: 110, Y: 40}, {X: 110, Y: 60}}, paintID))

	img := buildAndRender(t, b, 150, 100, 1, 0)
	// A ray test crossing the segment exactly once at (50,50) means
	// the even-odd count there is odd, so the pixel is painted.
	require.Equal(t, uint8(255), img.at(50, 50).A)
}

// TestS3TwoOverlappingSquares exercises boundary scenario S3: later
// paths overwrite earlier ones on overlap.
func TestS3TwoOverlappingSquares(t *testing.T) {
	b := &PathBuilder{}
	paintA := b.AddPaint(SolidColor{R: 255, A: 255})
	paintB := b.AddPaint(SolidColor{G: 255, A: 255})
	require.NoError(t, b.AddPath([]Point{{X: 10, Y: 10}, {X: 90, Y: 10}, {X: 90, Y: 90}, {X: 10, Y: 90}}, paintA))
	require.NoError(t, b.AddPath([]Point{{X: 40, Y: 40}, {X: 120, Y: 40}, {X: 120, Y: 120}, {X: 40, Y: 120}}, paintB))

	img := buildAndRender(t, b, 130, 130, 4, 2)

	require.Equal(t, color.RGBA{G: 255, A: 255}, img.at(50, 50))
	require.Equal(t, color.RGBA{G: 255, A: 255}, img.at(95, 45))
	require.Equal(t, color.RGBA{R: 255, A: 255}, img.at(20, 20))
}

// TestS4HorizontalOnlyPath exercises boundary scenario S4: a
// degenerate horizontal-only path covers zero area; every pixel stays
// background.
func TestS4HorizontalOnlyPath(t *testing.T) {
	b := &PathBuilder{}
	paintID := b.AddPaint(SolidColor{R: 255, A: 255})
	require.NoError(t, b.AddPath([]Point{{X: 10, Y: 50}, {X: 90, Y: 50}}, paintID))

	img := buildAndRender(t, b, 100, 100, 3, 1)
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			require.Equal(t, uint8(0), img.at(x, y).A, "pixel (%d,%d) should be background", x, y)
		}
	}
}

// TestS5PathBoundaryIsolation exercises boundary scenario S5: two
// overlapping paths, each with net winding +1 at the shared pixel,
// never sum across the path boundary (the even-odd accumulator resets
// there); the later path's color wins, not a double-counted clear.
func TestS5PathBoundaryIsolation(t *testing.T) {
	b := &PathBuilder{}
	paintA := b.AddPaint(SolidColor{R: 255, A: 255})
	paintB := b.AddPaint(SolidColor{B: 255, A: 255})
	require.NoError(t, b.AddPath([]Point{{X: 10, Y: 10}, {X: 90, Y: 10}, {X: 90, Y: 90}, {X: 10, Y: 90}}, paintA))
	require.NoError(t, b.AddPath([]Point{{X: 10, Y: 10}, {X: 90, Y: 10}, {X: 90, Y: 90}, {X: 10, Y: 90}}, paintB))

	img := buildAndRender(t, b, 100, 100, 2, 2)
	require.Equal(t, color.RGBA{B: 255, A: 255}, img.at(50, 50))
}

// TestS6Canonicalization exercises boundary scenario S6: building a
// quadtree from a path and from the same path with every segment
// reversed produces a bit-identical image.
func TestS6Canonicalization(t *testing.T) {
	forward := &PathBuilder{}
	paintID := forward.AddPaint(SolidColor{R: 255, A: 255})
	pts := []Point{{X: 20, Y: 20}, {X: 80, Y: 20}, {X: 80, Y: 80}, {X: 20, Y: 80}}
	require.NoError(t, forward.AddPath(pts, paintID))

	reversed := &PathBuilder{}
	paintID2 := reversed.AddPaint(SolidColor{R: 255, A: 255})
	rev := make([]Point, len(pts))
	for i, p := range pts {
		rev[len(pts)-1-i] = p
	}
	require.NoError(t, reversed.AddPath(rev, paintID2))

	imgF := buildAndRender(t, forward, 100, 100, 3, 2)
	imgR := buildAndRender(t, reversed, 100, 100, 3, 2)
	require.Equal(t, imgF.pix, imgR.pix)
}

// evenOddReference computes the even-odd inside test for a simple
// closed polygon using standard ray casting, independent of the
// quadtree pipeline, to check property 3 (winding consistency).
func evenOddReference(pts []Point, x, y float32) bool {
	inside := false
	n := len(pts)
	for i := 0; i < n; i++ {
		p0 := pts[i]
		p1 := pts[(i+1)%n]
		if (p0.Y > y) != (p1.Y > y) {
			xCross := p0.X + (y-p0.Y)/(p1.Y-p0.Y)*(p1.X-p0.X)
			if x < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

func TestWindingConsistency(t *testing.T) {
	pts := []Point{{X: 10, Y: 10}, {X: 90, Y: 20}, {X: 70, Y: 90}, {X: 20, Y: 60}}
	b := &PathBuilder{}
	paintID := b.AddPaint(SolidColor{R: 255, A: 255})
	require.NoError(t, b.AddPath(pts, paintID))

	img := buildAndRender(t, b, 100, 100, 4, 2)

	for y := 0; y < 100; y += 3 {
		for x := 0; x < 100; x += 3 {
			want := evenOddReference(pts, float32(x), float32(y))
			got := img.at(x, y).A != 0
			require.Equal(t, want, got, "pixel (%d,%d)", x, y)
		}
	}
}

func BenchmarkRender(b *testing.B) {
	pb := &PathBuilder{}
	paintID := pb.AddPaint(SolidColor{R: 255, A: 255})
	_ = pb.AddPath([]Point{{X: 10, Y: 10}, {X: 240, Y: 30}, {X: 200, Y: 240}, {X: 30, Y: 200}}, paintID)

	root, _ := NewRect(0, 0, 256, 256)
	tree, _ := NewBuilder().Build(pb.Segments, root)
	r := NewRasterizer()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Render(tree, pb.Segments, pb.Paths, pb.Paints, 256, 256)
	}
}
