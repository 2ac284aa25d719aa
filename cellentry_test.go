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
	"testing"

	"github.com/stretchr/testify/require"
)

// TestScanCorrectness is property 5: the production direct pass
// (consolidateWindings) must be bit-identical to the independently
// implemented block-wise Hillis-Steele + carry reference
// (scanWindingsBlockwise), for several path segmentations and block
// sizes.
func TestScanCorrectness(t *testing.T) {
	cases := [][]int{
		{0, 0, 0, 1, 1, 2, 2, 2, 2},
		{0},
		{0, 1, 2, 3},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 1, 1, 0, 0},
	}

	for _, pathIdxs := range cases {
		records := make([]splitRecord, len(pathIdxs))
		directItems := make([]scanItem, len(pathIdxs))
		for i, p := range pathIdxs {
			w := [4]int32{int32(i%3 - 1), int32(i % 2), 0, int32(-(i % 4))}
			records[i] = splitRecord{entry: CellEntry{PathIdx: p}, sd: splitData{winding: w}}
			directItems[i] = scanItem{PathIdx: p, Winding: w}
		}

		consolidateWindings(records)

		for _, blockSize := range []int{1, 2, 3, 4, 7} {
			items := make([]scanItem, len(pathIdxs))
			for i, p := range pathIdxs {
				items[i] = scanItem{PathIdx: p, Winding: directItems[i].Winding}
			}
			scanWindingsBlockwiseSized(items, blockSize)

			for i := range records {
				require.Equal(t, records[i].sd.winding, items[i].Winding, "blockSize=%d index=%d", blockSize, i)
			}
		}
	}
}

// TestScatterUniqueness is property 6: after K4, no two output
// entries share the same (cell_id, path_idx, seg_idx) triple for
// SEGMENT entries, and every path contributes at most one WINDING
// entry per cell.
func TestScatterUniqueness(t *testing.T) {
	b := &PathBuilder{}
	paintID := b.AddPaint(SolidColor{R: 255, A: 255})
	require.NoError(t, b.AddPath([]Point{{X: 10, Y: 10}, {X: 90, Y: 10}, {X: 90, Y: 90}, {X: 10, Y: 90}}, paintID))
	require.NoError(t, b.AddPath([]Point{{X: 40, Y: 40}, {X: 120, Y: 40}, {X: 120, Y: 120}, {X: 40, Y: 120}}, paintID))

	root, err := NewRect(0, 0, 130, 130)
	require.NoError(t, err)

	entries := initRootCellEntries(b.Segments)
	out := subdivideCellEntries(entries, b.Segments, 0, root)

	type key struct {
		cellID  uint64
		pathIdx int
		segIdx  int
	}
	seen := map[key]bool{}
	windingSeen := map[[2]int]bool{} // (cellPos, pathIdx)

	for _, e := range out {
		if e.Kind == EntrySegment {
			k := key{cellID: e.CellID, pathIdx: e.PathIdx, segIdx: e.SegIdx}
			require.False(t, seen[k], "duplicate segment entry %+v", k)
			seen[k] = true
		} else {
			wk := [2]int{int(e.CellPos), e.PathIdx}
			require.False(t, windingSeen[wk], "duplicate winding entry for %+v", wk)
			windingSeen[wk] = true
		}
	}
}

// TestSubdivisionConservation is property 4: a tree built with
// max_depth = 0 renders identically to one built with a larger depth.
func TestSubdivisionConservation(t *testing.T) {
	b := &PathBuilder{}
	paintID := b.AddPaint(SolidColor{R: 10, G: 20, B: 30, A: 255})
	require.NoError(t, b.AddPath([]Point{{X: 10, Y: 10}, {X: 54, Y: 10}, {X: 32, Y: 50}}, paintID))

	root, err := NewRect(0, 0, 64, 64)
	require.NoError(t, err)

	shallow, err := (&Builder{MaxDepth: 0, MinSeg: 8}).Build(b.Segments, root)
	require.NoError(t, err)
	deep, err := (&Builder{MaxDepth: 5, MinSeg: 1}).Build(b.Segments, root)
	require.NoError(t, err)

	r := NewRasterizer()
	imgShallow := r.Render(shallow, b.Segments, b.Paths, b.Paints, 64, 64)
	imgDeep := r.Render(deep, b.Segments, b.Paths, b.Paints, 64, 64)

	require.Equal(t, imgShallow.Pix, imgDeep.Pix)
}
