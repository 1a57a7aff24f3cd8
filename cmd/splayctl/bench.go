package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
	"github.com/urfave/cli/v2"

	"github.com/cbehopkins/splaytree"
	"github.com/cbehopkins/splaytree/internal/workload"
	"github.com/cbehopkins/splaytree/metrics"
)

var benchFlags = []cli.Flag{
	&cli.IntFlag{
		Name:    "ops",
		Aliases: []string{"n"},
		Usage:   "number of operations to generate",
		Value:   100000,
	},
	&cli.Int64Flag{
		Name:  "seed",
		Usage: "random seed; the same seed replays the same workload",
		Value: 1,
	},
	&cli.IntFlag{
		Name:  "key-space",
		Usage: "number of distinct keys to draw from",
		Value: 10000,
	},
	&cli.BoolFlag{
		Name:  "string-keys",
		Usage: "use fake words as keys instead of integers",
	},
	&cli.Float64Flag{
		Name:  "insert-ratio",
		Usage: "fraction of operations that insert",
		Value: 0.5,
	},
	&cli.Float64Flag{
		Name:  "search-ratio",
		Usage: "fraction of operations that search",
		Value: 0.3,
	},
	&cli.Float64Flag{
		Name:  "delete-ratio",
		Usage: "fraction of operations that delete; the remainder queries min/max",
		Value: 0.2,
	},
	&cli.StringFlag{
		Name:  "save",
		Usage: "write the generated workload to this path as a replayable script",
	},
	&cli.StringFlag{
		Name:    "metrics-addr",
		Usage:   "serve prometheus metrics on this address during the run (e.g. :9464)",
		EnvVars: []string{"SPLAYCTL_METRICS_ADDR"},
	},
	&cli.DurationFlag{
		Name:  "linger",
		Usage: "keep serving metrics this long after the run finishes",
		Value: 0,
	},
}

func runBench(cctx *cli.Context) error {
	logger, err := configLogger(cctx)
	if err != nil {
		return err
	}

	cfg := workload.Config{
		Ops:         cctx.Int("ops"),
		Seed:        cctx.Int64("seed"),
		KeySpace:    cctx.Int("key-space"),
		StringKeys:  cctx.Bool("string-keys"),
		InsertRatio: cctx.Float64("insert-ratio"),
		SearchRatio: cctx.Float64("search-ratio"),
		DeleteRatio: cctx.Float64("delete-ratio"),
	}
	ops, err := workload.Generate(cfg)
	if err != nil {
		return err
	}
	logger.Info("generated workload", "ops", len(ops), "seed", cfg.Seed, "string_keys", cfg.StringKeys)

	if path := cctx.String("save"); path != "" {
		if err := saveScript(path, ops); err != nil {
			return err
		}
		logger.Info("saved workload", "path", path)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	collector := metrics.NewCollector(reg, "bench")

	ctx, stop := signal.NotifyContext(cctx.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var srv *http.Server
	if addr := cctx.String("metrics-addr"); addr != "" {
		srv = serveMetrics(addr, reg, logger)
	}

	start := time.Now()
	var res workload.Result
	if cfg.StringKeys {
		tree := metrics.NewTree[string, string](collector, splaytree.Natural[string]())
		res, err = workload.Run[string](tree, ops, workload.ParseStringKey, logger, nil)
	} else {
		tree := metrics.NewTree[int64, string](collector, splaytree.Natural[int64]())
		res, err = workload.Run[int64](tree, ops, workload.ParseInt64Key, logger, nil)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	printSummary(res)
	if err := printBenchStats(reg, len(ops), elapsed); err != nil {
		return err
	}

	if srv != nil {
		if linger := cctx.Duration("linger"); linger > 0 {
			logger.Info("lingering for metrics scrape", "duration", linger)
			select {
			case <-ctx.Done():
			case <-time.After(linger):
			}
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("metrics server shutdown", "err", err)
		}
	}
	return nil
}

func saveScript(path string, ops []workload.Op) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating script: %w", err)
	}
	if err := workload.WriteScript(f, ops); err != nil {
		f.Close()
		return fmt.Errorf("writing script: %w", err)
	}
	return f.Close()
}

func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "err", err)
		}
	}()
	return srv
}

// benchStats pulls the rotation totals back out of the registry.
type benchStats struct {
	rotations float64
	splays    uint64
	splaySum  float64
}

func gatherBenchStats(reg prometheus.Gatherer) (benchStats, error) {
	families, err := reg.Gather()
	if err != nil {
		return benchStats{}, fmt.Errorf("gathering metrics: %w", err)
	}
	var stats benchStats
	for _, mf := range families {
		switch {
		case mf.GetName() == "splaytree_rotations_total" && mf.GetType() == dto.MetricType_COUNTER:
			for _, m := range mf.GetMetric() {
				stats.rotations += m.GetCounter().GetValue()
			}
		case mf.GetName() == "splaytree_splay_rotations" && mf.GetType() == dto.MetricType_HISTOGRAM:
			for _, m := range mf.GetMetric() {
				h := m.GetHistogram()
				stats.splays += h.GetSampleCount()
				stats.splaySum += h.GetSampleSum()
			}
		}
	}
	return stats, nil
}

func printBenchStats(reg prometheus.Gatherer, ops int, elapsed time.Duration) error {
	stats, err := gatherBenchStats(reg)
	if err != nil {
		return err
	}
	fmt.Printf("elapsed  %s\n", elapsed)
	if elapsed > 0 {
		fmt.Printf("ops/sec  %.0f\n", float64(ops)/elapsed.Seconds())
	}
	fmt.Printf("rotations %.0f\n", stats.rotations)
	if stats.splays > 0 {
		fmt.Printf("mean splay %.2f rotations over %d splays\n", stats.splaySum/float64(stats.splays), stats.splays)
	}
	return nil
}
