package validator

import (
	"context"

	"svw.info/pathdoku/internal/cellset"
	"svw.info/pathdoku/internal/domain"
)

// FastValidator reports the cells breaking board consistency: a cell claimed
// by two digits, or a digit repeated within a row, column or box.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	var bad cellset.Set

	// cells claimed by more than one digit
	var seen cellset.Set
	for _, d := range domain.Digits() {
		cur := b.Placement(d)
		bad = bad.Union(cur.Intersect(seen))
		seen = seen.Union(cur)
	}

	// a digit appearing twice within any single house
	houses := make([]cellset.Set, 0, 27)
	for i := 0; i < 9; i++ {
		houses = append(houses, cellset.Row(i), cellset.Col(i), cellset.Box(i))
	}
	for _, d := range domain.Digits() {
		cur := b.Placement(d)
		for _, h := range houses {
			if m := cur.Intersect(h); m.Count() > 1 {
				bad = bad.Union(m)
			}
		}
	}

	if bad.IsEmpty() {
		return true, nil, nil
	}
	conf := make([]domain.CellCoord, 0, bad.Count())
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if bad.Has(r, c) {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
		}
	}
	return false, conf, nil
}
