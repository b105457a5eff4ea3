package domain

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint describes a forced placement for the UI.
type Hint struct {
	Message string    `json:"message,omitempty"`
	Digit   Digit     `json:"digit,omitempty"`
	Cell    CellCoord `json:"cell"`
}

// Puzzle is a persisted Sudoku with metadata. Clues holds the 81-character
// text form.
type Puzzle struct {
	ID        string `json:"id,omitempty"`
	Clues     string `json:"clues"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}
