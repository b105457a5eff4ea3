package cellset

import (
	"strings"
	"testing"
)

func TestCellsAreDistinctSingletons(t *testing.T) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			s := Cell(r, c)
			if s.Count() != 1 {
				t.Fatalf("Cell(%d,%d) has %d cells, want 1", r, c, s.Count())
			}
			for r2 := 0; r2 < 9; r2++ {
				for c2 := 0; c2 < 9; c2++ {
					if (r != r2 || c != c2) && s == Cell(r2, c2) {
						t.Fatalf("Cell(%d,%d) == Cell(%d,%d)", r, c, r2, c2)
					}
				}
			}
		}
	}
}

func TestCellOutOfRangePanics(t *testing.T) {
	cases := [][2]int{{-1, 0}, {0, -1}, {9, 0}, {0, 9}, {12, 12}}
	for _, tc := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("Cell(%d,%d) did not panic", tc[0], tc[1])
				}
			}()
			Cell(tc[0], tc[1])
		}()
	}
}

func TestIsEmpty(t *testing.T) {
	var zero Set
	if !zero.IsEmpty() {
		t.Fatal("zero set should be empty")
	}
	if Cell(3, 6).IsEmpty() {
		t.Fatal("singleton should not be empty")
	}
}

func TestContains(t *testing.T) {
	small := Cell(5, 4)
	big := small.Union(Cell(3, 7))
	biggest := big.Union(Cell(1, 1))

	if !biggest.Contains(big) || !biggest.Contains(small) || !big.Contains(small) {
		t.Fatal("superset relation broken upward")
	}
	if small.Contains(big) || small.Contains(biggest) || big.Contains(biggest) {
		t.Fatal("superset relation broken downward")
	}
}

func TestCount(t *testing.T) {
	small := Cell(5, 4)
	big := small.Union(Cell(3, 7))
	biggest := big.Union(Cell(1, 1))

	cases := []struct {
		s    Set
		want int
	}{{small, 1}, {big, 2}, {biggest, 3}}
	for _, tc := range cases {
		if got := tc.s.Count(); got != tc.want {
			t.Fatalf("Count() = %d, want %d", got, tc.want)
		}
	}
}

func TestComplementStaysWithinGrid(t *testing.T) {
	var zero Set
	full := zero.Complement()
	if full.Count() != 81 {
		t.Fatalf("complement of empty has %d cells, want 81", full.Count())
	}
	s := Cell(0, 0).Union(Cell(8, 8))
	if got := s.Complement().Count(); got != 79 {
		t.Fatalf("complement has %d cells, want 79", got)
	}
	if s.Complement().Complement() != s {
		t.Fatal("double complement should round-trip")
	}
}

func TestBinary(t *testing.T) {
	s := Cell(3, 6).Union(Cell(4, 5))
	bin := s.Binary()
	if len(bin) != 81 {
		t.Fatalf("Binary() length = %d, want 81", len(bin))
	}
	if ones := strings.Count(bin, "1"); ones != 2 {
		t.Fatalf("Binary() has %d ones, want 2", ones)
	}
	if zeros := strings.Count(bin, "0"); zeros != 79 {
		t.Fatalf("Binary() has %d zeros, want 79", zeros)
	}
}

func TestStringFormat(t *testing.T) {
	s := Cell(3, 6).Union(Cell(1, 2)).Union(Cell(8, 8))
	var lines []string
	for _, line := range strings.Split(s.String(), "\n") {
		lines = append(lines, strings.TrimSpace(line))
	}
	want := []string{
		"+-----+-+-----+-+-----+",
		"|     | |     | |     |",
		"|    !| |     | |     |",
		"|     | |     | |     |",
		"+-----+-+-----+-+-----+",
		"|     | |     | |!    |",
		"|     | |     | |     |",
		"|     | |     | |     |",
		"+-----+-+-----+-+-----+",
		"|     | |     | |     |",
		"|     | |     | |     |",
		"|     | |     | |    !|",
		"+-----+-+-----+-+-----+",
	}
	if len(lines) != len(want) {
		t.Fatalf("String() has %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestGeometryMasks(t *testing.T) {
	for i := 0; i < 9; i++ {
		if Row(i).Count() != 9 || Col(i).Count() != 9 || Box(i).Count() != 9 {
			t.Fatalf("house %d is not nine cells", i)
		}
	}
	// boxes partition the grid
	var all Set
	for i := 0; i < 9; i++ {
		if !all.Intersect(Box(i)).IsEmpty() {
			t.Fatalf("box %d overlaps an earlier box", i)
		}
		all = all.Union(Box(i))
	}
	if all.Count() != 81 {
		t.Fatalf("boxes cover %d cells, want 81", all.Count())
	}
	if !Box(4).Has(4, 4) || Box(4).Has(0, 0) {
		t.Fatal("Box(4) is not the center box")
	}
	if BoxAt(7, 1) != Box(6) {
		t.Fatal("BoxAt(7,1) should be the bottom-left box")
	}
}
