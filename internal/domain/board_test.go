package domain

import (
	"errors"
	"strings"
	"testing"

	"svw.info/pathdoku/internal/cellset"
)

const canonical = "........8..3...4...9..2..6.....79.......612...6.5.2.7...8...5...1.....2.4.5.....3"

func cells(coords ...[2]int) cellset.Set {
	var s cellset.Set
	for _, c := range coords {
		s = s.Union(cellset.Cell(c[0], c[1]))
	}
	return s
}

func TestParseCanonical(t *testing.T) {
	b, err := Parse(canonical)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := map[Digit]cellset.Set{
		1: cells([2]int{7, 1}, [2]int{4, 5}),
		2: cells([2]int{2, 4}, [2]int{4, 6}, [2]int{5, 5}, [2]int{7, 7}),
		3: cells([2]int{1, 2}, [2]int{8, 8}),
		4: cells([2]int{1, 6}, [2]int{8, 0}),
		5: cells([2]int{5, 3}, [2]int{6, 6}, [2]int{8, 2}),
		6: cells([2]int{2, 7}, [2]int{4, 4}, [2]int{5, 1}),
		7: cells([2]int{3, 4}, [2]int{5, 7}),
		8: cells([2]int{0, 8}, [2]int{6, 2}),
		9: cells([2]int{2, 1}, [2]int{3, 5}),
	}
	for d, w := range want {
		if got := b.Placement(d); got != w {
			t.Fatalf("digit %v placed wrong:\ngot\n%v\nwant\n%v", d, got, w)
		}
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too long", strings.Repeat(".", 90)},
		{"bad character", "........Q" + strings.Repeat(".", 72)},
		{"too many of one digit", strings.Repeat("1", 10) + strings.Repeat(".", 71)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.input); !errors.Is(err, ErrBadBoard) {
				t.Fatalf("Parse(%q) err = %v, want ErrBadBoard", tc.input, err)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	b, err := Parse(canonical)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := b.Encode(); got != canonical {
		t.Fatalf("Encode() = %q, want %q", got, canonical)
	}
}

func TestValid(t *testing.T) {
	var b Board
	if !b.Valid() {
		t.Fatal("empty board should be valid")
	}
	b.SetPlacement(1, cells([2]int{5, 5}))
	b.SetPlacement(2, cells([2]int{4, 5}))
	b.SetPlacement(3, cells([2]int{3, 5}))
	if !b.Valid() {
		t.Fatal("disjoint placements should be valid")
	}
	b.SetPlacement(5, cells([2]int{5, 5}))
	if b.Valid() {
		t.Fatal("two digits in one cell should be invalid")
	}
}

func TestString(t *testing.T) {
	b, err := Parse(canonical)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	var lines []string
	for _, line := range strings.Split(b.String(), "\n") {
		lines = append(lines, strings.TrimSpace(line))
	}
	want := []string{
		"+-----+-+-----+-+-----+",
		"|     | |     | |    8|",
		"|    3| |     | |4    |",
		"|  9  | |  2  | |  6  |",
		"+-----+-+-----+-+-----+",
		"|     | |  7 9| |     |",
		"|     | |  6 1| |2    |",
		"|  6  | |5   2| |  7  |",
		"+-----+-+-----+-+-----+",
		"|    8| |     | |5    |",
		"|  1  | |     | |  2  |",
		"|4   5| |     | |    3|",
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
