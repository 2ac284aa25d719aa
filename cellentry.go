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

// EntryKind tags the two kinds of record carried through the
// subdivision pipeline.
type EntryKind int

const (
	EntrySegment EntryKind = iota
	EntryWinding
)

// CellPos identifies which child of a split parent an entry belongs
// to. The order TL, TR, BL, BR is the fixed iteration order used by
// K3's nested exclusive scan and by the quadtree builder's child bbox
// computation.
type CellPos int

const (
	TL CellPos = iota
	TR
	BL
	BR
)

// CellEntry is the currency of the subdivision pipeline: a tagged
// record referring either to a segment that may still intersect a
// cell, or to a path's accumulated winding contribution to that cell.
type CellEntry struct {
	Kind    EntryKind
	SegIdx  int // valid iff Kind == EntrySegment, else -1
	PathIdx int
	Data    int32 // SEGMENT: shortcut marker in {-1,0,+1}; WINDING: signed increment
	CellPos CellPos
	CellID  uint64
}

// initRootCellEntries builds the root level's entry list: one
// EntrySegment record per segment, with no shortcut and cell id 0.
func initRootCellEntries(segments []AbstractSegment) []CellEntry {
	out := make([]CellEntry, len(segments))
	for i, seg := range segments {
		out[i] = CellEntry{
			Kind:    EntrySegment,
			SegIdx:  i,
			PathIdx: seg.PathIdx,
			Data:    0,
			CellPos: TL,
			CellID:  0,
		}
	}
	return out
}

// farRayMultiplier scales a cell's width to build a ray endpoint far
// enough to the right that no real segment can extend past it.
const farRayMultiplier = 1024

// splitData is the per-segment output of K1: which children the
// segment fills, which children receive an up/down shortcut marker,
// and the signed winding contribution to each child.
type splitData struct {
	fillMask uint8
	upMask   uint8
	downMask uint8
	winding  [4]int32
}

func setBit(mask *uint8, c CellPos) { *mask |= 1 << uint(c) }
func hasBit(mask uint8, c CellPos) bool { return mask&(1<<uint(c)) != 0 }

// childOf returns which child quadrant point p falls in relative to
// mid, used to force-fill the child containing a segment endpoint.
func childOf(p, mid Point) CellPos {
	left := p.X < mid.X
	top := p.Y < mid.Y
	switch {
	case left && top:
		return TL
	case !left && top:
		return TR
	case left && !top:
		return BL
	default:
		return BR
	}
}

// crosses reports a sign flip between two half-open classifications.
// A zero reading (sample outside the segment's relevant band) never
// registers a crossing, matching the half-open contract.
func crosses(a, b int32) bool {
	return a*b < 0
}

// computeSplitData runs the K1 kernel for a single segment against a
// parent cell of bounds `bound` with midpoint `mid`, propagating any
// shortcut marker carried on the incoming entry.
func computeSplitData(seg AbstractSegment, bound Rect, mid Point, incomingShortcut int32) splitData {
	farX := bound.Right + (bound.Width()+1)*farRayMultiplier

	// 3x3 grid plus the three rightward rays to infinity.
	pTL := Point{bound.Left, bound.Top}
	pT := Point{mid.X, bound.Top}
	pTR := Point{bound.Right, bound.Top}
	pL := Point{bound.Left, mid.Y}
	pC := Point{mid.X, mid.Y}
	pR := Point{bound.Right, mid.Y}
	pBL := Point{bound.Left, bound.Bottom}
	pB := Point{mid.X, bound.Bottom}
	pBR := Point{bound.Right, bound.Bottom}
	pTI := Point{farX, bound.Top}
	pI := Point{farX, mid.Y}
	pBI := Point{farX, bound.Bottom}

	vTL := halfOpenEval(seg, pTL)
	vT := halfOpenEval(seg, pT)
	vTR := halfOpenEval(seg, pTR)
	vL := halfOpenEval(seg, pL)
	vC := halfOpenEval(seg, pC)
	vR := halfOpenEval(seg, pR)
	vBL := halfOpenEval(seg, pBL)
	vB := halfOpenEval(seg, pB)
	vBR := halfOpenEval(seg, pBR)
	vTI := halfOpenEval(seg, pTI)
	vI := halfOpenEval(seg, pI)
	vBI := halfOpenEval(seg, pBI)

	cross0 := crosses(vBL, vB)
	cross1 := crosses(vB, vBR)
	cross2 := crosses(vBL, vL)
	cross3 := crosses(vB, vC)
	cross4 := crosses(vBR, vR)
	cross5 := crosses(vL, vC)
	cross6 := crosses(vC, vR)
	cross7 := crosses(vL, vTL)
	cross8 := crosses(vC, vT)
	cross9 := crosses(vR, vTR)
	cross10 := crosses(vTL, vT)
	cross11 := crosses(vT, vTR)
	cross12 := crosses(vBR, vBI)
	cross13 := crosses(vR, vI)
	cross14 := crosses(vTR, vTI)
	cross15 := crosses(vT, vTI)
	cross16 := crosses(vC, vI)
	cross17 := crosses(vB, vBI)

	goingUp := int32(-1)
	if seg.GoingUp() {
		goingUp = 1
	}
	goingRight := int32(-1)
	if seg.GoingRight() {
		goingRight = 1
	}

	var sd splitData

	if bound.Contains(seg.P0) {
		setBit(&sd.fillMask, childOf(seg.P0, mid))
	}
	if bound.Contains(seg.P1) {
		setBit(&sd.fillMask, childOf(seg.P1, mid))
	}

	emitShortcut := func(c CellPos) {
		if goingRight > 0 {
			setBit(&sd.upMask, c)
		} else {
			setBit(&sd.downMask, c)
		}
	}

	if cross0 {
		setBit(&sd.fillMask, BL)
	}
	if cross1 {
		setBit(&sd.fillMask, BR)
		sd.winding[BL] += goingUp
	}
	if cross2 {
		setBit(&sd.fillMask, BL)
	}
	if cross3 {
		setBit(&sd.fillMask, BL)
		setBit(&sd.fillMask, BR)
		if !cross16 {
			if !cross17 {
				emitShortcut(BL)
			} else {
				sd.winding[BL] += goingRight
			}
		}
	}
	if cross4 {
		setBit(&sd.fillMask, BR)
		if !cross13 {
			if !cross12 {
				emitShortcut(BR)
			} else {
				sd.winding[BR] += goingRight
			}
		}
	}
	if cross5 {
		setBit(&sd.fillMask, BL)
		setBit(&sd.fillMask, TL)
	}
	if cross6 {
		setBit(&sd.fillMask, BR)
		setBit(&sd.fillMask, TR)
		sd.winding[TL] += goingUp
	}
	if cross7 {
		setBit(&sd.fillMask, TL)
	}
	if cross8 {
		setBit(&sd.fillMask, TL)
		setBit(&sd.fillMask, TR)
		if !cross15 {
			if !cross16 {
				emitShortcut(TL)
			} else {
				sd.winding[TL] += goingRight
			}
		}
	}
	if cross9 {
		setBit(&sd.fillMask, TR)
		if !cross14 {
			if !cross13 {
				emitShortcut(TR)
			} else {
				sd.winding[TR] += goingRight
			}
		}
	}
	if cross10 {
		setBit(&sd.fillMask, TL)
	}
	if cross11 {
		setBit(&sd.fillMask, TR)
	}
	if cross12 {
		sd.winding[BR] += goingUp
		sd.winding[BL] += goingUp
	}
	if cross13 {
		sd.winding[TR] += goingUp
		sd.winding[TL] += goingUp
	}

	if incomingShortcut != 0 {
		base := seg.ShortcutBase()
		x, y := base.X, base.Y
		inRange := !(y <= bound.Top || x < bound.Left) && x >= bound.Right && y >= mid.Y
		if inRange {
			sd.winding[TL] += incomingShortcut
			sd.winding[TR] += incomingShortcut
			if y >= bound.Bottom {
				sd.winding[BL] += incomingShortcut
				sd.winding[BR] += incomingShortcut
			}
		}
	}

	return sd
}

// splitRecord is the per-input-entry working record threaded through
// K1 -> K2 -> K3 -> K4.
type splitRecord struct {
	entry   CellEntry
	sd      splitData
	offsets [4]uint32
}

// buildSplitEntries is kernel K1: it computes a splitRecord for every
// input entry, either by running computeSplitData (SEGMENT entries)
// or by broadcasting the parent winding unchanged (WINDING entries).
func buildSplitEntries(entries []CellEntry, segments []AbstractSegment, bound Rect, mid Point) []splitRecord {
	out := make([]splitRecord, len(entries))
	for i, e := range entries {
		if e.Kind == EntrySegment {
			seg := segments[e.SegIdx]
			out[i] = splitRecord{entry: e, sd: computeSplitData(seg, bound, mid, e.Data)}
		} else {
			var sd splitData
			sd.winding = [4]int32{e.Data, e.Data, e.Data, e.Data}
			out[i] = splitRecord{entry: e, sd: sd}
		}
	}
	return out
}

// consolidateWindings is kernel K2: an inclusive prefix sum of
// winding[cell] segmented by path_idx. This direct left-to-right pass
// is required to be bit-identical to the block-wise Hillis-Steele +
// carry shape implemented independently in scan.go.
func consolidateWindings(records []splitRecord) {
	for i := 1; i < len(records); i++ {
		if records[i].entry.PathIdx != records[i-1].entry.PathIdx {
			continue
		}
		for c := 0; c < 4; c++ {
			records[i].sd.winding[c] += records[i-1].sd.winding[c]
		}
	}
}

// assignGlobalOffsets is kernel K3: for each child in fixed TL, TR,
// BL, BR order, and within that child for each path-run in input
// order, it computes the exclusive prefix sum of per-record output
// counts and writes it into each record's per-cell offset. Offsets
// are global across all four children's blocks, since K4 lays
// children out as contiguous blocks in that same order.
func assignGlobalOffsets(records []splitRecord) (total int, childCounts [4]int) {
	for c := CellPos(0); c < 4; c++ {
		local := uint32(0)
		i := 0
		for i < len(records) {
			j := i
			for j < len(records) && records[j].entry.PathIdx == records[i].entry.PathIdx {
				j++
			}
			tail := j - 1
			for k := i; k < j; k++ {
				records[k].offsets[c] = local
				segOut := uint32(0)
				if hasBit(records[k].sd.fillMask, c) {
					segOut = 1
				}
				wincOut := uint32(0)
				if k == tail && records[k].sd.winding[c] != 0 {
					wincOut = 1
				}
				local += segOut + wincOut
			}
			i = j
		}
		childCounts[c] = int(local)
	}

	base := [4]uint32{}
	for c := 1; c < 4; c++ {
		base[c] = base[c-1] + uint32(childCounts[c-1])
	}
	for k := range records {
		for c := CellPos(0); c < 4; c++ {
			records[k].offsets[c] += base[c]
		}
	}
	for _, n := range childCounts {
		total += n
	}
	return total, childCounts
}

// scatterSplitEntries is kernel K4: for each child, for each
// path-run, it writes a SEGMENT entry (if the fill bit is set) and a
// WINDING entry (if this record is the run's tail and its winding is
// non-zero) at the record's precomputed offset. Because K3 sizes the
// output exactly to the number of writes, no two records ever target
// the same slot; the result is already deduplicated by construction.
func scatterSplitEntries(records []splitRecord, parentCellID uint64, total int) []CellEntry {
	out := make([]CellEntry, total)
	for c := CellPos(0); c < 4; c++ {
		i := 0
		for i < len(records) {
			j := i
			for j < len(records) && records[j].entry.PathIdx == records[i].entry.PathIdx {
				j++
			}
			tail := j - 1
			for k := i; k < j; k++ {
				rec := records[k]
				pos := rec.offsets[c]
				cellID := parentCellID*4 + uint64(c)
				if hasBit(rec.sd.fillMask, c) {
					shortcut := int32(0)
					if hasBit(rec.sd.upMask, c) {
						shortcut = 1
					} else if hasBit(rec.sd.downMask, c) {
						shortcut = -1
					}
					out[pos] = CellEntry{
						Kind:    EntrySegment,
						SegIdx:  rec.entry.SegIdx,
						PathIdx: rec.entry.PathIdx,
						Data:    shortcut,
						CellPos: c,
						CellID:  cellID,
					}
					pos++
				}
				if k == tail && rec.sd.winding[c] != 0 {
					out[pos] = CellEntry{
						Kind:    EntryWinding,
						SegIdx:  -1,
						PathIdx: rec.entry.PathIdx,
						Data:    rec.sd.winding[c],
						CellPos: c,
						CellID:  cellID,
					}
				}
			}
			i = j
		}
	}
	return out
}

// subdivideCellEntries runs K1 -> K2 -> K3 -> K4 for one parent cell,
// returning the flat entry list for all four children combined (each
// child's slice contiguous, in TL, TR, BL, BR order).
func subdivideCellEntries(entries []CellEntry, segments []AbstractSegment, parentCellID uint64, bound Rect) []CellEntry {
	mid := bound.Midpoint()
	records := buildSplitEntries(entries, segments, bound, mid)
	consolidateWindings(records)
	total, _ := assignGlobalOffsets(records)
	return scatterSplitEntries(records, parentCellID, total)
}
