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

// scanItem is the minimal shape consolidateWindings operates on: a
// path membership and a per-child signed winding value.
type scanItem struct {
	PathIdx int
	Winding [4]int32
}

// defaultScanBlockSize is the block width used by scanWindingsBlockwise.
// It has no effect on the result, only on how much intra-block work
// happens before a carry is folded in; it exists so the block/carry
// shape required by the GPU lowering has something concrete to tune.
const defaultScanBlockSize = 4

// scanWindingsBlockwise computes the same path-segmented inclusive
// prefix sum as consolidateWindings, but shaped as the specification
// requires for a GPU lowering: an intra-block Hillis-Steele scan
// (segmented by path, reset at block boundaries) followed by a
// separate carry-propagation pass across block boundaries. It exists
// so tests can assert it is bit-identical to the direct pass used in
// production; it is never called outside tests.
func scanWindingsBlockwise(items []scanItem) {
	scanWindingsBlockwiseSized(items, defaultScanBlockSize)
}

func scanWindingsBlockwiseSized(items []scanItem, blockSize int) {
	n := len(items)
	if blockSize < 1 {
		blockSize = 1
	}

	for start := 0; start < n; start += blockSize {
		end := start + blockSize
		if end > n {
			end = n
		}
		hillisSteeleSegmentedScan(items[start:end])
	}

	var carry [4]int32
	carryPath := 0
	hasCarry := false
	for start := 0; start < n; start += blockSize {
		end := start + blockSize
		if end > n {
			end = n
		}
		if hasCarry {
			for i := start; i < end; i++ {
				if items[i].PathIdx != carryPath {
					break
				}
				for c := 0; c < 4; c++ {
					items[i].Winding[c] += carry[c]
				}
			}
		}
		last := end - 1
		carry = items[last].Winding
		carryPath = items[last].PathIdx
		hasCarry = true
	}
}

// hillisSteeleSegmentedScan performs an inclusive, path-segmented
// prefix sum over a single block in place, using the classic
// doubling-distance Hillis-Steele shape: at each step, an element
// absorbs the value `d` positions to its left only if no path
// boundary separates them.
func hillisSteeleSegmentedScan(block []scanItem) {
	n := len(block)
	flag := make([]bool, n)
	for i := range block {
		flag[i] = i == 0 || block[i].PathIdx != block[i-1].PathIdx
	}

	for d := 1; d < n; d *= 2 {
		newFlag := make([]bool, n)
		copy(newFlag, flag)
		newWinding := make([][4]int32, n)
		for i := range block {
			newWinding[i] = block[i].Winding
		}
		for i := d; i < n; i++ {
			if flag[i] {
				continue
			}
			for c := 0; c < 4; c++ {
				newWinding[i][c] = block[i].Winding[c] + block[i-d].Winding[c]
			}
			newFlag[i] = flag[i] || flag[i-d]
		}
		for i := range block {
			block[i].Winding = newWinding[i]
		}
		flag = newFlag
	}
}
