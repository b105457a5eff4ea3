package domain

import (
	"errors"
	"fmt"
	"strings"

	"svw.info/pathdoku/internal/cellset"
)

// Board stores a Sudoku by digit rather than by cell: for each digit, the
// set of cells currently holding it. This is the orientation the path
// solver wants, since a solved digit is exactly one placement path.
type Board struct {
	placements [9]cellset.Set
}

// Placement returns the cells currently holding d.
func (b *Board) Placement(d Digit) cellset.Set { return b.placements[d-1] }

// SetPlacement replaces the cells holding d.
func (b *Board) SetPlacement(d Digit, s cellset.Set) { b.placements[d-1] = s }

// Filled returns every cell holding any digit.
func (b *Board) Filled() cellset.Set {
	var total cellset.Set
	for _, p := range b.placements {
		total = total.Union(p)
	}
	return total
}

// Valid checks internal consistency only: no digit placed more than nine
// times, and no cell claimed by two digits. It says nothing about whether
// the board follows the rules of Sudoku. Both checks are kept even though
// disjointness over 81 cells nearly implies the cardinality bound; they
// guard different mistakes.
func (b *Board) Valid() bool {
	var total cellset.Set
	for _, cur := range b.placements {
		if cur.Count() > 9 {
			return false
		}
		if !cur.Intersect(total).IsEmpty() {
			return false
		}
		total = total.Union(cur)
	}
	return true
}

// ErrBadBoard reports input that is not a well-formed puzzle.
var ErrBadBoard = errors.New("invalid board format")

// Parse reads the standard text representation: the 81 cells row-major in a
// single string, digits as themselves and '.' for empty cells.
func Parse(input string) (*Board, error) {
	if len(input) != 81 {
		return nil, fmt.Errorf("%w: need 81 cells, got %d", ErrBadBoard, len(input))
	}
	var b Board
	for idx := 0; idx < 81; idx++ {
		ch := input[idx]
		if ch == '.' {
			continue
		}
		d, ok := ParseDigit(ch)
		if !ok {
			return nil, fmt.Errorf("%w: bad character %q at cell %d", ErrBadBoard, ch, idx)
		}
		b.placements[d-1] = b.placements[d-1].Union(cellset.Cell(idx/9, idx%9))
	}
	if !b.Valid() {
		return nil, fmt.Errorf("%w: inconsistent clues", ErrBadBoard)
	}
	return &b, nil
}

// Encode writes the board back into the 81-character text form.
func (b *Board) Encode() string {
	out := make([]byte, 81)
	for idx := range out {
		out[idx] = '.'
		for _, d := range Digits() {
			if b.placements[d-1].Has(idx/9, idx%9) {
				out[idx] = byte('0' + d)
				break
			}
		}
	}
	return string(out)
}

const frame = "+-----+-+-----+-+-----+"

// String renders the board as ASCII art with box separators.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < 9; row++ {
		if row%3 == 0 {
			sb.WriteString(frame)
			sb.WriteByte('\n')
		}
		sb.WriteByte('|')
		for col := 0; col < 9; col++ {
			if col != 0 {
				if col%3 == 0 {
					sb.WriteString("| |")
				} else {
					sb.WriteByte(' ')
				}
			}
			ch := byte(' ')
			for _, d := range Digits() {
				if b.placements[d-1].Has(row, col) {
					ch = byte('0' + d)
					break
				}
			}
			sb.WriteByte(ch)
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(frame)
	return sb.String()
}
