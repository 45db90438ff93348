// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package lcs aligns two sequences using a longest-common-subsequence table and translates the
// alignment into an ordered edit script.
//
// The edit script order is stable: backtracking resolves ties by preferring Added over Removed.
// Callers rely on the exact row order of the output, so the tie-break must not change.
package lcs

// Op describes a row-level edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Common  Op = iota // The row exists in both sequences.
	Removed           // The row only exists in the before sequence.
	Added             // The row only exists in the after sequence.
)

// Edit describes a single edit of a diff. Before and After are indices into the original input
// sequences and are -1 when the edit doesn't touch that sequence:
//
//   - For Common, both Before and After are set.
//   - For Removed, Before is set and After is -1.
//   - For Added, After is set and Before is -1.
type Edit struct {
	Op            Op
	Before, After int
}

// Diff compares before and after and returns the ordered edit script that transforms one into the
// other. The script contains one edit per output row: every element of before appears in exactly
// one Removed or Common edit and every element of after in exactly one Added or Common edit, both
// in their original order.
//
// The function is total: it never fails for any pair of finite inputs.
func Diff[T comparable](before, after []T) []Edit {
	switch {
	case len(after) == 0:
		edits := make([]Edit, len(before))
		for j := range before {
			edits[j] = Edit{Op: Removed, Before: j, After: -1}
		}
		return edits
	case len(before) == 0:
		edits := make([]Edit, len(after))
		for i := range after {
			edits[i] = Edit{Op: Added, Before: -1, After: i}
		}
		return edits
	}

	// Strip the common prefix and suffix first: the table below is quadratic in the size of its
	// input and screenshots usually only differ in a small band of rows. Trimming never changes
	// the resulting edit script, it only shrinks the region the table has to cover.
	prefix, suffix := trim(before, after)
	bmid := before[prefix : len(before)-suffix]
	amid := after[prefix : len(after)-suffix]

	edits := make([]Edit, 0, len(bmid)+len(amid)+prefix+suffix)
	for k := range prefix {
		edits = append(edits, Edit{Op: Common, Before: k, After: k})
	}

	t := newTable(bmid, amid)
	i, j := 0, 0
	for i < len(amid) && j < len(bmid) {
		switch {
		case amid[i] == bmid[j]:
			edits = append(edits, Edit{Op: Common, Before: j + prefix, After: i + prefix})
			i++
			j++
		case t.at(i+1, j) >= t.at(i, j+1):
			// Tie-break: prefer Added when skipping either row is equally good.
			edits = append(edits, Edit{Op: Added, Before: -1, After: i + prefix})
			i++
		default:
			edits = append(edits, Edit{Op: Removed, Before: j + prefix, After: -1})
			j++
		}
	}
	for ; i < len(amid); i++ {
		edits = append(edits, Edit{Op: Added, Before: -1, After: i + prefix})
	}
	for ; j < len(bmid); j++ {
		edits = append(edits, Edit{Op: Removed, Before: j + prefix, After: -1})
	}

	for k := range suffix {
		edits = append(edits, Edit{
			Op:     Common,
			Before: len(before) - suffix + k,
			After:  len(after) - suffix + k,
		})
	}
	return edits
}

// trim returns the length of the common prefix and suffix of before and after. The suffix scan is
// limited to min(len(before), len(after)) - prefix elements so that prefix and suffix never
// overlap when one input is entirely contained in the other.
func trim[T comparable](before, after []T) (prefix, suffix int) {
	n := min(len(before), len(after))
	for prefix < n && before[prefix] == after[prefix] {
		prefix++
	}
	for suffix < n-prefix && before[len(before)-1-suffix] == after[len(after)-1-suffix] {
		suffix++
	}
	return prefix, suffix
}

// table holds LCS lengths for the trimmed middle region. Cell (i, j) is the length of the longest
// common subsequence of after[i:] and before[j:], so cell (0, 0) is the LCS length of the full
// middle region. The table is transient: it only exists during backtracking.
type table struct {
	cells  []int32
	stride int
}

func newTable[T comparable](before, after []T) table {
	nb, na := len(before), len(after)
	t := table{
		cells:  make([]int32, (na+1)*(nb+1)),
		stride: nb + 1,
	}
	for i := na - 1; i >= 0; i-- {
		for j := nb - 1; j >= 0; j-- {
			if after[i] == before[j] {
				t.cells[i*t.stride+j] = t.at(i+1, j+1) + 1
			} else {
				t.cells[i*t.stride+j] = max(t.at(i+1, j), t.at(i, j+1))
			}
		}
	}
	return t
}

func (t table) at(i, j int) int32 {
	return t.cells[i*t.stride+j]
}
