package hint

import (
	"context"
	"fmt"

	"svw.info/pathdoku/internal/cellset"
	"svw.info/pathdoku/internal/domain"
)

// Forced is a minimal Hinter built on the path universe: intersect all of a
// digit's candidate paths, and any cell in the intersection beyond the
// existing clues is a placement every remaining completion agrees on.
type Forced struct {
	universe []cellset.Set
}

// NewForced wires a hinter around a path universe, normally
// paths.Universe().
func NewForced(universe []cellset.Set) *Forced {
	return &Forced{universe: universe}
}

// Hint returns the first forced placement found, scanning digits in order
// and cells row-major.
func (h *Forced) Hint(ctx context.Context, b *domain.Board) (domain.Hint, bool, error) {
	total := b.Filled()
	for _, d := range domain.Digits() {
		if err := ctx.Err(); err != nil {
			return domain.Hint{}, false, err
		}
		clues := b.Placement(d)
		if clues.Count() == 9 {
			continue
		}
		opposing := total.Intersect(clues.Complement())

		forced := cellset.Set{}.Complement()
		seen := false
		for _, p := range h.universe {
			if !p.Contains(clues) || !p.Intersect(opposing).IsEmpty() {
				continue
			}
			forced = forced.Intersect(p)
			seen = true
			if forced.Count() == clues.Count() {
				break // nothing beyond the clues is common anymore
			}
		}
		if !seen {
			continue
		}
		extra := forced.Intersect(clues.Complement())
		if extra.IsEmpty() {
			continue
		}
		for r := 0; r < 9; r++ {
			for c := 0; c < 9; c++ {
				if extra.Has(r, c) {
					return domain.Hint{
						Message: fmt.Sprintf("Forced: %v can only go here", d),
						Digit:   d,
						Cell:    domain.CellCoord{Row: r, Col: c},
					}, true, nil
				}
			}
		}
	}
	return domain.Hint{}, false, nil
}
