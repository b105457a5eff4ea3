// Package cellset implements a fixed 81-bit set over the cells of a 9x9
// Sudoku grid, addressed by (row, col) at bit index 9*row+col.
package cellset

import (
	"fmt"
	"strings"

	"lukechampine.com/uint128"
)

// Set is a boolean field over the 81 cells of the grid. The zero value is
// the empty set. Sets are values: every operation returns a new set and ==
// compares bit patterns.
type Set struct {
	bits uint128.Uint128
}

// mask keeps only the 81 meaningful bits. Complement filters through it so
// bits 81..127 can never become set.
var mask = uint128.From64(1).Lsh(81).Sub(uint128.From64(1))

// Cell returns the singleton set holding the cell at row, col. Both must be
// in [0,9); anything else is a programming error and panics.
func Cell(row, col int) Set {
	if row < 0 || row >= 9 || col < 0 || col >= 9 {
		panic(fmt.Sprintf("cellset: cell (%d,%d) out of range", row, col))
	}
	return Set{bits: uint128.From64(1).Lsh(uint(9*row + col))}
}

// Union returns the cells in s, t or both.
func (s Set) Union(t Set) Set { return Set{bits: s.bits.Or(t.bits)} }

// Intersect returns the cells in both s and t.
func (s Set) Intersect(t Set) Set { return Set{bits: s.bits.And(t.bits)} }

// Complement returns every cell of the grid not in s.
func (s Set) Complement() Set { return Set{bits: s.bits.Xor(mask)} }

// IsEmpty reports whether no cell is in the set.
func (s Set) IsEmpty() bool { return s.bits.IsZero() }

// Count returns the number of cells in the set.
func (s Set) Count() int { return s.bits.OnesCount() }

// Contains reports whether s is a complete superset of t.
func (s Set) Contains(t Set) bool { return t.bits.And(s.bits).Equals(t.bits) }

// Has reports whether the cell at row, col is in the set.
func (s Set) Has(row, col int) bool { return s.Contains(Cell(row, col)) }

const frame = "+-----+-+-----+-+-----+"

// String renders the set as an ASCII-art board, marking set cells with "!".
// This exists mostly so tests over the more complex layers stay readable.
func (s Set) String() string {
	var b strings.Builder
	for row := 0; row < 9; row++ {
		if row%3 == 0 {
			b.WriteString(frame)
			b.WriteByte('\n')
		}
		b.WriteByte('|')
		for col := 0; col < 9; col++ {
			if col != 0 {
				if col%3 == 0 {
					b.WriteString("| |")
				} else {
					b.WriteByte(' ')
				}
			}
			if s.Has(row, col) {
				b.WriteByte('!')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString("|\n")
	}
	b.WriteString(frame)
	return b.String()
}

// Binary renders the set as exactly 81 bits, highest cell index first.
func (s Set) Binary() string {
	var b strings.Builder
	b.Grow(81)
	for i := 80; i >= 0; i-- {
		if s.bits.And(uint128.From64(1).Lsh(uint(i))).IsZero() {
			b.WriteByte('0')
		} else {
			b.WriteByte('1')
		}
	}
	return b.String()
}
