package cellset

// Row returns the set of all nine cells in row r.
func Row(r int) Set {
	var s Set
	for c := 0; c < 9; c++ {
		s = s.Union(Cell(r, c))
	}
	return s
}

// Col returns the set of all nine cells in column c.
func Col(c int) Set {
	var s Set
	for r := 0; r < 9; r++ {
		s = s.Union(Cell(r, c))
	}
	return s
}

// Box returns the set of the nine cells of 3x3 box i. Boxes are numbered
// 0..8, left to right then top to bottom.
func Box(i int) Set {
	if i < 0 || i >= 9 {
		panic("cellset: box index out of range")
	}
	var s Set
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			s = s.Union(Cell(3*(i/3)+dr, 3*(i%3)+dc))
		}
	}
	return s
}

// BoxAt returns the box containing the cell at row, col.
func BoxAt(row, col int) Set {
	return Box(3*(row/3) + col/3)
}
