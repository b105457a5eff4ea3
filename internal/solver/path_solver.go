package solver

import (
	"context"
	"errors"
	"time"

	"github.com/samber/lo"

	"svw.info/pathdoku/internal/cellset"
	"svw.info/pathdoku/internal/domain"
	"svw.info/pathdoku/internal/ports"
)

// ErrNoSolution reports that no consistent assignment exists for the given
// clues. It is an ordinary outcome of a solve, not a fault.
var ErrNoSolution = errors.New("no solution")

// PathSolver solves by choosing one placement path per digit so that the
// nine chosen paths are pairwise disjoint. The path universe is built once,
// never mutated, and shared by every solve, so a single PathSolver is safe
// to use from concurrent solve calls.
type PathSolver struct {
	universe []cellset.Set
}

// NewPathSolver wires a solver around a path universe, normally
// paths.Universe().
func NewPathSolver(universe []cellset.Set) *PathSolver {
	return &PathSolver{universe: universe}
}

func (s *PathSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()

	// Narrow the universe per digit: a candidate must place the digit on
	// every one of its clues and must avoid every cell some other digit
	// already claims.
	total := b.Filled()
	var candidates [9][]cellset.Set
	for i, d := range domain.Digits() {
		clues := b.Placement(d)
		opposing := total.Intersect(clues.Complement())
		candidates[i] = lo.Filter(s.universe, func(p cellset.Set, _ int) bool {
			return p.Contains(clues) && p.Intersect(opposing).IsEmpty()
		})
	}

	// Depth-first over digits 1..9 in candidate-list order, pruning on the
	// cells taken so far. First full assignment wins.
	nodes := 0
	var chosen [9]cellset.Set
	var assign func(pos int, taken cellset.Set) bool
	assign = func(pos int, taken cellset.Set) bool {
		if ctx.Err() != nil {
			return false
		}
		if pos == len(candidates) {
			return true
		}
		for _, p := range candidates[pos] {
			nodes++
			if !p.Intersect(taken).IsEmpty() {
				continue
			}
			chosen[pos] = p
			if assign(pos+1, taken.Union(p)) {
				return true
			}
		}
		return false
	}

	if !assign(0, cellset.Set{}) {
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, ErrNoSolution
	}

	out := &domain.Board{}
	for i, d := range domain.Digits() {
		out.SetPlacement(d, chosen[i])
	}
	return out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
