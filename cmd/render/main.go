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

// Command render walks the scenario catalogue in the testcases package,
// rasterizes each one with the quadtree pipeline, and writes the result
// as a PNG next to a magnified, debug-annotated copy. Run from the
// module root directory; output goes to the directory named by -out.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/image/draw"

	rasterquad "rasterquad.dev/core"
	"rasterquad.dev/core/testcases"
)

func main() {
	outDir := flag.String("out", "testdata/out", "directory to write rendered PNGs into")
	scale := flag.Int("scale", 4, "magnification factor for the debug overlay copy")
	maxDepth := flag.Int("max-depth", 6, "quadtree depth cap used when a scenario does not set one")
	minSeg := flag.Int("min-seg", 8, "split threshold used when a scenario does not set one")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, "render:", err)
		os.Exit(1)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			if err := renderOne(*outDir, category, tc, *maxDepth, *minSeg, *scale); err != nil {
				fmt.Fprintf(os.Stderr, "render: %s/%s: %v\n", category, tc.Name, err)
				os.Exit(1)
			}
		}
	}
}

func renderOne(outDir, category string, tc testcases.TestCase, defaultMaxDepth, defaultMinSeg, scale int) error {
	depth, minSeg := tc.MaxDepth, tc.MinSeg
	if depth == 0 {
		depth = defaultMaxDepth
	}
	if minSeg == 0 {
		minSeg = defaultMinSeg
	}

	pb, err := tc.Build()
	if err != nil {
		return fmt.Errorf("build path: %w", err)
	}
	root, err := tc.RootRect()
	if err != nil {
		return fmt.Errorf("root rect: %w", err)
	}

	builder := &rasterquad.Builder{MaxDepth: depth, MinSeg: minSeg}
	tree, err := builder.Build(pb.Segments, root)
	if err != nil {
		return fmt.Errorf("build quadtree: %w", err)
	}

	name := category + "_" + tc.Name

	plain := rasterquad.NewRasterizer().Render(tree, pb.Segments, pb.Paths, pb.Paints, tc.Width, tc.Height)
	if err := writePNG(filepath.Join(outDir, name+".png"), plain); err != nil {
		return err
	}

	debugRasterizer := &rasterquad.Rasterizer{DebugOverlay: true}
	debugImg := debugRasterizer.Render(tree, pb.Segments, pb.Paths, pb.Paints, tc.Width, tc.Height)
	magnified := magnify(debugImg, scale)
	if err := writePNG(filepath.Join(outDir, name+"_debug.png"), magnified); err != nil {
		return err
	}

	return nil
}

// magnify scales src up by factor using nearest-neighbor interpolation,
// which keeps the debug overlay's cell-boundary lines crisp.
func magnify(src *image.RGBA, factor int) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
