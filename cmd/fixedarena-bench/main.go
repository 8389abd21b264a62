// Command fixedarena-bench measures fixed-element arena allocation
// against the builtin allocator for a configurable workload.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/lmittmann/tint"
	"github.com/pavanmanishd/fixedarena"
	"github.com/spf13/pflag"
)

var Help = pflag.BoolP("help", "h", false, "show this help text")

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	// Flag defaults come from the environment, flags win
	pflag.IntVarP(&cfg.Rounds, "rounds", "r", cfg.Rounds, "allocation rounds (each ends with a reset)")
	pflag.IntVarP(&cfg.Allocs, "allocs", "n", cfg.Allocs, "allocations per round")
	pflag.IntVarP(&cfg.ElemSize, "elem-size", "s", cfg.ElemSize, "element size in bytes")
	pflag.IntVarP(&cfg.ChunkElems, "chunk-elems", "c", cfg.ChunkElems, "elements per chunk")
	pflag.StringVarP(&cfg.LogLevel, "log-level", "L", cfg.LogLevel, "log level (debug, info, warn, error)")
	pflag.BoolVar(&cfg.LogJSON, "log-json", cfg.LogJSON, "use json logs")
	pflag.Parse()

	if *Help || pflag.NArg() != 0 {
		fmt.Printf("usage: %s [options]\n%s", os.Args[0], pflag.CommandLine.FlagUsages())
		if *Help {
			return
		}
		os.Exit(2)
	}

	if err := ValidateConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	level, _ := ParseLogLevel(cfg.LogLevel)
	if cfg.LogJSON {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})))
	} else {
		slog.SetDefault(slog.New(tint.NewHandler(os.Stdout, &tint.Options{
			Level: level,
		})))
	}

	if err := run(cfg); err != nil {
		slog.Error("benchmark failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *Config) error {
	total := cfg.Rounds * cfg.Allocs
	slog.Info("starting benchmark",
		"rounds", cfg.Rounds,
		"allocs_per_round", cfg.Allocs,
		"elem_size", cfg.ElemSize,
		"chunk_elems", cfg.ChunkElems,
	)

	arenaDur, metrics, err := benchArena(cfg)
	if err != nil {
		return err
	}
	slog.Info("arena",
		"elapsed", arenaDur,
		"ns_per_alloc", arenaDur.Nanoseconds()/int64(total),
		"chunks", metrics.NumChunks,
		"capacity_bytes", metrics.Capacity,
		"utilization", fmt.Sprintf("%.3f", metrics.Utilization),
	)

	builtinDur := benchBuiltin(cfg)
	slog.Info("builtin",
		"elapsed", builtinDur,
		"ns_per_alloc", builtinDur.Nanoseconds()/int64(total),
	)

	slog.Info("summary",
		"total_allocs", total,
		"speedup", fmt.Sprintf("%.2fx", float64(builtinDur)/float64(arenaDur)),
	)
	return nil
}

// benchArena allocates and resets for the configured rounds, returning a
// metrics snapshot from before the final reset.
func benchArena(cfg *Config) (time.Duration, fixedarena.ArenaMetrics, error) {
	a, err := fixedarena.New(cfg.ChunkElems, cfg.ElemSize)
	if err != nil {
		return 0, fixedarena.ArenaMetrics{}, err
	}
	defer a.Release()

	var metrics fixedarena.ArenaMetrics
	start := time.Now()
	for r := 0; r < cfg.Rounds; r++ {
		for i := 0; i < cfg.Allocs; i++ {
			b, err := a.Alloc()
			if err != nil {
				return 0, metrics, err
			}
			b[0] = byte(i)
		}
		if r == cfg.Rounds-1 {
			metrics = a.Metrics()
		}
		a.Reset()
	}
	return time.Since(start), metrics, nil
}

// benchBuiltin performs the same workload with make, letting rounds be
// reclaimed by the garbage collector.
func benchBuiltin(cfg *Config) time.Duration {
	var sink []byte
	start := time.Now()
	for r := 0; r < cfg.Rounds; r++ {
		for i := 0; i < cfg.Allocs; i++ {
			b := make([]byte, cfg.ElemSize)
			b[0] = byte(i)
			sink = b
		}
		runtime.Gosched()
	}
	_ = sink
	return time.Since(start)
}
