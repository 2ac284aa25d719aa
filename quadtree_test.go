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

// TestLeafCompleteness is property 7: every cell is either internal
// (has four children) or a leaf with a finalized entry range; never
// neither nor both.
func TestLeafCompleteness(t *testing.T) {
	b := &PathBuilder{}
	paintID := b.AddPaint(SolidColor{R: 1, A: 255})
	require.NoError(t, b.AddPath([]Point{{X: 4, Y: 4}, {X: 60, Y: 4}, {X: 60, Y: 60}, {X: 4, Y: 60}}, paintID))

	root, err := NewRect(0, 0, 64, 64)
	require.NoError(t, err)

	tree, err := (&Builder{MaxDepth: 3, MinSeg: 0}).Build(b.Segments, root)
	require.NoError(t, err)

	for _, cell := range tree.Cells {
		if cell.Children != nil {
			require.LessOrEqual(t, cell.LeafEnd, cell.LeafStart, "internal cell %d should not carry a leaf range", cell.ID)
			for _, c := range cell.Children {
				require.Less(t, int(c), len(tree.Cells))
			}
		} else {
			require.LessOrEqual(t, cell.LeafStart, cell.LeafEnd)
			require.LessOrEqual(t, cell.LeafEnd, len(tree.Entries))
		}
	}
}

func TestBuilderOverflow(t *testing.T) {
	root, err := NewRect(0, 0, 1<<20, 1<<20)
	require.NoError(t, err)
	_, err = (&Builder{MaxDepth: 30, MinSeg: 1}).Build(nil, root)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestGetChildBoundsOrder(t *testing.T) {
	bound, err := NewRect(0, 0, 10, 20)
	require.NoError(t, err)
	mid := bound.Midpoint()
	bounds, ok := getChildBounds(bound, mid)
	require.True(t, ok)
	require.Equal(t, Rect{Left: 0, Top: 0, Right: 5, Bottom: 10}, bounds[TL])
	require.Equal(t, Rect{Left: 5, Top: 0, Right: 10, Bottom: 10}, bounds[TR])
	require.Equal(t, Rect{Left: 0, Top: 10, Right: 5, Bottom: 20}, bounds[BL])
	require.Equal(t, Rect{Left: 5, Top: 10, Right: 10, Bottom: 20}, bounds[BR])
}
