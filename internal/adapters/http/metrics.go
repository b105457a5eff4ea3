package httpadapter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSolved     = "solved"
	outcomeNoSolution = "no_solution"
	outcomeBadBoard   = "bad_board"
	outcomeError      = "error"
)

var (
	solveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pathdoku_solve_requests_total",
		Help: "Solve requests by outcome.",
	}, []string{"outcome"})

	solveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pathdoku_solve_duration_seconds",
		Help:    "Wall time spent in the solver per request.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12), // 0.1ms to ~400ms
	})

	solveNodes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pathdoku_solve_nodes",
		Help:    "Backtracking nodes visited per solve.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	})
)
