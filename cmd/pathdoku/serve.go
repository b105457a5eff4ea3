package main

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	httpadapter "svw.info/pathdoku/internal/adapters/http"
	"svw.info/pathdoku/internal/hint"
	"svw.info/pathdoku/internal/infrastructure/storage"
	"svw.info/pathdoku/internal/paths"
	"svw.info/pathdoku/internal/ports"
	"svw.info/pathdoku/internal/solver"
	"svw.info/pathdoku/internal/usecase"
	"svw.info/pathdoku/internal/validator"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration in a human-readable format.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		dur := time.Since(start)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", dur.Round(time.Millisecond),
		)
	})
}

func newServeCommand() *cobra.Command {
	var (
		addr       string
		persist    string
		levelStr   string
		solverKind string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver as a JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl := slog.LevelInfo
			switch strings.ToLower(levelStr) {
			case "debug":
				lvl = slog.LevelDebug
			case "warn":
				lvl = slog.LevelWarn
			case "error":
				lvl = slog.LevelError
			}
			logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
			_ = os.MkdirAll(persist, 0o755)

			universe := paths.Universe()

			// Choose solver: paths by default, cell-wise backtracking via flag.
			var s ports.Solver
			switch strings.ToLower(strings.TrimSpace(solverKind)) {
			case "backtrack", "backtracking":
				s = solver.NewBacktrackingSolver()
			default:
				s = solver.NewPathSolver(universe)
			}

			// Wire providers → use cases → HTTP adapter
			v := validator.New()
			st := storage.NewFS(persist)
			hin := hint.NewForced(universe)
			uc := usecase.NewService(s, v, hin, st)
			h := httpadapter.New(uc)

			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			h.Register(mux)

			srv := &http.Server{
				Addr:              addr,
				Handler:           requestLogger(logger, mux),
				ReadHeaderTimeout: 5 * time.Second,
			}
			logger.Info("listening", "addr", addr, "persist", persist, "solver", solverKind, "paths", len(universe))
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("server error", "err", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&persist, "persist-path", "./data", "save directory")
	cmd.Flags().StringVar(&levelStr, "log-level", "info", "debug|info|warn|error")
	cmd.Flags().StringVar(&solverKind, "solver", "paths", "solver to use: paths|backtrack")
	return cmd
}
