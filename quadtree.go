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

import "github.com/pkg/errors"

// QuadCell is an arena node. Children is nil for a leaf, in which case
// LeafStart/LeafEnd index into QuadTree.Entries; otherwise Children
// holds the four child cell ids in TL, TR, BL, BR order. A cell never
// has both set, and always has one of the two (leaf completeness).
type QuadCell struct {
	ID                 uint64
	Depth              int
	BBox               Rect
	Children           *[4]uint64
	LeafStart, LeafEnd int
}

// IsLeaf reports whether c is a leaf cell.
func (c QuadCell) IsLeaf() bool { return c.Children == nil }

// QuadTree is an arena of cells plus the flat, concatenated leaf
// entries buffer. It is built once and immutable thereafter.
type QuadTree struct {
	Cells   []QuadCell
	Entries []CellEntry
}

// Builder configures quadtree construction. The zero value is not
// useful; use NewBuilder for the documented defaults.
type Builder struct {
	// MaxDepth caps the number of subdivision levels.
	MaxDepth int
	// MinSeg is the split threshold: a cell with at most MinSeg
	// SEGMENT entries becomes a leaf instead of splitting further.
	MinSeg int
}

// NewBuilder returns a Builder with MaxDepth 6 and MinSeg 8, the same
// values cmd/render uses as its flag defaults.
func NewBuilder() *Builder {
	return &Builder{MaxDepth: 6, MinSeg: 8}
}

// maxAllocation is a conservative guard against pathological
// max_depth/segment-count combinations; it bounds both the target
// image's pixel buffer size and the worst-case entry-array growth
// across all subdivision levels.
const maxAllocation = 1 << 30

func checkOverflow(root Rect, numSegments int, maxDepth int) error {
	pixelBytes := int64(root.Width()) * int64(root.Height()) * 4
	if pixelBytes > maxAllocation {
		return errors.Wrapf(ErrOverflow, "image of %d bytes exceeds limit", pixelBytes)
	}
	growth := int64(numSegments)
	for i := 0; i < maxDepth; i++ {
		growth *= 4
		if growth > maxAllocation {
			return errors.Wrapf(ErrOverflow, "entry growth at depth %d exceeds limit", i+1)
		}
	}
	return nil
}

// getChildBounds splits bbox into its four quadrants around mid, in
// TL, TR, BL, BR order. It returns ok=false if any quadrant would be
// degenerate (non-finite or inverted), in which case the caller must
// finalize the parent as a leaf instead of splitting.
func getChildBounds(bbox Rect, mid Point) (bounds [4]Rect, ok bool) {
	var err error
	bounds[TL], err = NewRect(bbox.Left, bbox.Top, mid.X, mid.Y)
	if err != nil {
		return bounds, false
	}
	bounds[TR], err = NewRect(mid.X, bbox.Top, bbox.Right, mid.Y)
	if err != nil {
		return bounds, false
	}
	bounds[BL], err = NewRect(bbox.Left, mid.Y, mid.X, bbox.Bottom)
	if err != nil {
		return bounds, false
	}
	bounds[BR], err = NewRect(mid.X, mid.Y, bbox.Right, bbox.Bottom)
	if err != nil {
		return bounds, false
	}
	return bounds, true
}

func countSegmentEntries(entries []CellEntry) int {
	n := 0
	for _, e := range entries {
		if e.Kind == EntrySegment {
			n++
		}
	}
	return n
}

// frontierCell is one not-yet-finalized cell awaiting K1-K4 or
// leafing, tracked alongside the arena rather than inside QuadCell so
// that QuadCell stays a plain, small, append-only record.
type frontierCell struct {
	cellID  uint64
	bbox    Rect
	depth   int
	entries []CellEntry
}

// Build constructs a QuadTree from segments via level-order BFS,
// subdividing each frontier cell with more than MinSeg SEGMENT
// entries (and a constructible set of child bboxes) until MaxDepth is
// reached, at which point all remaining frontier cells are finalized
// as leaves.
func (b *Builder) Build(segments []AbstractSegment, root Rect) (*QuadTree, error) {
	if err := checkOverflow(root, len(segments), b.MaxDepth); err != nil {
		return nil, err
	}

	tree := &QuadTree{
		Cells: []QuadCell{{ID: 0, Depth: 0, BBox: root}},
	}

	frontier := []frontierCell{{cellID: 0, bbox: root, depth: 0, entries: initRootCellEntries(segments)}}
	for len(frontier) > 0 {
		var next []frontierCell
		for _, item := range frontier {
			segCount := countSegmentEntries(item.entries)
			canSplit := segCount > b.MinSeg && item.depth < b.MaxDepth

			var childBounds [4]Rect
			if canSplit {
				mid := item.bbox.Midpoint()
				var ok bool
				childBounds, ok = getChildBounds(item.bbox, mid)
				if !ok {
					canSplit = false
				}
			}

			if !canSplit {
				finalizeLeaf(tree, item.cellID, item.entries)
				continue
			}

			childEntries := subdivideCellEntries(item.entries, segments, item.cellID, item.bbox)

			var childIDs [4]uint64
			for c := CellPos(0); c < 4; c++ {
				childID := uint64(len(tree.Cells))
				childIDs[c] = childID
				tree.Cells = append(tree.Cells, QuadCell{ID: childID, Depth: item.depth + 1, BBox: childBounds[c]})
			}
			tree.Cells[item.cellID].Children = &childIDs

			// K4 stamps entries with a parentCellID*4+c id that only
			// matches the arena's own numbering for a perfectly
			// balanced tree; since leaves prune the frontier early,
			// rewrite each entry's CellID to its real arena id here.
			var buckets [4][]CellEntry
			for _, e := range childEntries {
				e.CellID = childIDs[e.CellPos]
				buckets[e.CellPos] = append(buckets[e.CellPos], e)
			}

			for c := CellPos(0); c < 4; c++ {
				if len(buckets[c]) == 0 {
					finalizeLeaf(tree, childIDs[c], nil)
					continue
				}
				next = append(next, frontierCell{
					cellID:  childIDs[c],
					bbox:    childBounds[c],
					depth:   item.depth + 1,
					entries: buckets[c],
				})
			}
		}
		frontier = next
	}

	return tree, nil
}

func finalizeLeaf(tree *QuadTree, cellID uint64, entries []CellEntry) {
	start := len(tree.Entries)
	tree.Entries = append(tree.Entries, entries...)
	cell := &tree.Cells[cellID]
	cell.Children = nil
	cell.LeafStart = start
	cell.LeafEnd = len(tree.Entries)
}
