package hint

import (
	"context"
	"testing"

	"svw.info/pathdoku/internal/cellset"
	"svw.info/pathdoku/internal/domain"
	"svw.info/pathdoku/internal/paths"
)

var universe = paths.Universe()

// solvedBoard builds a full valid solution by shifting one base pattern:
// digit s+1 occupies column (3*(r%3) + r/3 + s) mod 9 in row r. Every shift
// satisfies the box rule and the nine shifts partition the grid.
func solvedBoard() *domain.Board {
	var b domain.Board
	for s := 0; s < 9; s++ {
		var p cellset.Set
		for r := 0; r < 9; r++ {
			p = p.Union(cellset.Cell(r, (3*(r%3)+r/3+s)%9))
		}
		b.SetPlacement(domain.Digit(s+1), p)
	}
	return &b
}

func TestNoHintOnFullBoard(t *testing.T) {
	h := NewForced(universe)
	_, found, err := h.Hint(context.Background(), solvedBoard())
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if found {
		t.Fatal("full board should not yield a hint")
	}
}

func TestHintFindsForcedCell(t *testing.T) {
	b := solvedBoard()
	// Blank digit 5's cell in row 0; it is the only empty cell left, so the
	// single surviving candidate path forces it back.
	row, col := 0, (3*(0%3)+0/3+4)%9
	p := b.Placement(5).Intersect(cellset.Cell(row, col).Complement())
	b.SetPlacement(5, p)

	h := NewForced(universe)
	got, found, err := h.Hint(context.Background(), b)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if !found {
		t.Fatal("expected a forced placement")
	}
	if got.Digit != 5 || got.Cell != (domain.CellCoord{Row: row, Col: col}) {
		t.Fatalf("hint = %+v, want digit 5 at (%d,%d)", got, row, col)
	}
}

func TestNoHintWithoutCandidates(t *testing.T) {
	// Two 7s in one box leave digit 7 with no candidate paths at all; the
	// hinter must skip it rather than invent a placement.
	var b domain.Board
	b.SetPlacement(7, cellset.Cell(0, 0).Union(cellset.Cell(1, 1)))

	h := NewForced(universe)
	_, found, err := h.Hint(context.Background(), &b)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if found {
		t.Fatal("contradictory board should not yield a hint")
	}
}
