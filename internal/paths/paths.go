// Package paths builds the universe of placement patterns a single digit
// can take on a Sudoku grid: one cell per row, column and 3x3 box.
package paths

import "svw.info/pathdoku/internal/cellset"

const (
	// NumPermutations is 9!.
	NumPermutations = 362880
	// UniverseSize is the number of permutations that survive the box rule.
	UniverseSize = 46656
)

// Permutations returns every ordering of the column indexes 0..8, one column
// per row. Each of the 9! orderings appears exactly once, always in the same
// order, so anything derived from the result is deterministic.
func Permutations() [][9]int {
	out := make([][9]int, 0, NumPermutations)
	var cur [9]int
	var rec func(row int, used uint16)
	rec = func(row int, used uint16) {
		if row == 9 {
			out = append(out, cur)
			return
		}
		for col := 0; col < 9; col++ {
			bit := uint16(1) << col
			if used&bit != 0 {
				continue
			}
			cur[row] = col
			rec(row+1, used|bit)
		}
	}
	rec(0, 0)
	return out
}

// Universe returns every valid path. Row and column uniqueness come free
// from permutation construction; only the box rule needs checking, which
// cuts 362,880 permutations down to 46,656 paths. The result depends only
// on grid geometry, never on puzzle clues, so callers build it once and
// share it read-only across solves.
func Universe() []cellset.Set {
	var boxes [9]cellset.Set
	for i := range boxes {
		boxes[i] = cellset.Box(i)
	}

	out := make([]cellset.Set, 0, UniverseSize)
perms:
	for _, perm := range Permutations() {
		var p cellset.Set
		for row, col := range perm {
			p = p.Union(cellset.Cell(row, col))
		}
		for _, box := range boxes {
			if box.Intersect(p).Count() != 1 {
				continue perms
			}
		}
		out = append(out, p)
	}
	return out
}
