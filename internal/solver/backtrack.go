package solver

import (
	"context"
	"time"

	"svw.info/pathdoku/internal/cellset"
	"svw.info/pathdoku/internal/domain"
	"svw.info/pathdoku/internal/ports"
)

// BacktrackingSolver fills one cell at a time, the classic way. It exists as
// an alternative to PathSolver behind the same port: no precomputed
// universe, so it starts instantly but prunes far less per step.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

func firstEmpty(open cellset.Set) (int, int, bool) {
	if open.IsEmpty() {
		return 0, 0, false
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if open.Has(r, c) {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	work := *b
	nodes := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		row, col, ok := firstEmpty(work.Filled().Complement())
		if !ok {
			return true
		}
		cell := cellset.Cell(row, col)
		house := cellset.Row(row).Union(cellset.Col(col)).Union(cellset.BoxAt(row, col))
		for _, d := range domain.Digits() {
			nodes++
			cur := work.Placement(d)
			if !cur.Intersect(house).IsEmpty() {
				continue
			}
			work.SetPlacement(d, cur.Union(cell))
			if dfs() {
				return true
			}
			work.SetPlacement(d, cur)
		}
		return false
	}

	if !dfs() {
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, ErrNoSolution
	}
	out := work
	return &out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
