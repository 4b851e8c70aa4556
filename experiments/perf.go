package experiments

import (
	"fmt"
	"time"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Perf phases, in the order they run
const (
	PhaseClassify      = "classify"
	PhaseClassifyLines = "classify_lines"
	PhaseUncached      = "minimax_uncached"
	PhaseCold          = "minimax"
	PhasePrecomputed   = "minimax_precomputed"
)

// Phases that use no memo table are recorded under this backend
const noBackend = "none"

// Keeps results alive so the timed loops are not optimized away
var sink game.Outcome

func newMemo(backend string) searcher.Memo {
	if backend == BackendMap {
		return searcher.NewMapMemo()
	}
	return searcher.NewDenseMemo()
}

func boardSet(cfg Config) []game.Position {
	if cfg.Boards == BoardsFull {
		return game.GenAll()
	}
	return game.GenRandom(cfg.Count, rand.New(rand.NewSource(cfg.Seed)))
}

func timed(backend, phase string, run int, boards []game.Position, fn func(game.Position)) metrics.TimingRecord {
	start := time.Now()
	for _, b := range boards {
		fn(b)
	}
	return metrics.TimingRecord{
		Backend:  backend,
		Phase:    phase,
		Run:      run,
		Boards:   len(boards),
		Duration: time.Since(start),
	}
}

// RunPerfExperiment times classification and search over one board set, with
// and without memoization, for every configured memo backend.
func RunPerfExperiment(cfg Config) ([]metrics.TimingSummary, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	boards := boardSet(cfg)
	log.Info().Msgf("starting perf experiment on %d %s boards...", len(boards), cfg.Boards)

	minimaxes := make(map[string]*searcher.Minimax, len(cfg.Backends))
	for _, backend := range cfg.Backends {
		minimaxes[backend] = searcher.NewMinimax(searcher.WithMemo(newMemo(backend)))
	}

	records := []metrics.TimingRecord{}
	for run := 1; run <= cfg.Repeats; run++ {
		log.Info().Msgf("starting run %d of %d...", run, cfg.Repeats)

		records = append(records,
			timed(noBackend, PhaseClassify, run, boards, func(b game.Position) {
				sink = b.Classify()
			}),
			timed(noBackend, PhaseClassifyLines, run, boards, func(b game.Position) {
				sink = b.ClassifyLines()
			}),
			timed(noBackend, PhaseUncached, run, boards, func(b game.Position) {
				sink = searcher.EvaluateUncached(b, game.First)
				sink = searcher.EvaluateUncached(b, game.Second)
			}),
		)

		for _, backend := range cfg.Backends {
			m := minimaxes[backend]
			evaluate := func(b game.Position) {
				sink = m.Evaluate(b, game.First)
				sink = m.Evaluate(b, game.Second)
			}

			// Every run starts from an empty table
			m.Clear()
			records = append(records, timed(backend, PhaseCold, run, boards, evaluate))

			m.Precompute()
			records = append(records, timed(backend, PhasePrecomputed, run, boards, evaluate))
			log.Debug().Str("backend", backend).Int("entries", m.Size()).Msg("memo table filled")
		}
		log.Info().Msgf("completed run %d of %d", run, cfg.Repeats)
	}

	summaries := Summarize(records)
	for _, s := range summaries {
		log.Info().
			Str("backend", s.Backend).
			Str("phase", s.Phase).
			Float64("mean_ms", s.MeanMs).
			Float64("stddev_ms", s.StdDev).
			Msg("timing")
	}

	writer, err := metrics.NewWriter(cfg.OutputDir, "perf")
	if err != nil {
		return summaries, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = writer.WriteTimings(records)
	if err != nil {
		return summaries, fmt.Errorf("failed to write timings: %w", err)
	}
	err = writer.WriteTimingSummaries(summaries)
	if err != nil {
		return summaries, fmt.Errorf("failed to write timing summary: %w", err)
	}
	log.Info().Msgf("stored perf results in %s", writer.Dir())

	return summaries, nil
}

// Summarize groups records by backend and phase, in first-seen order
func Summarize(records []metrics.TimingRecord) []metrics.TimingSummary {
	type group struct {
		backend, phase string
	}
	order := []group{}
	samples := map[group][]float64{}
	for _, r := range records {
		g := group{r.Backend, r.Phase}
		if _, ok := samples[g]; !ok {
			order = append(order, g)
		}
		samples[g] = append(samples[g], float64(r.Duration)/float64(time.Millisecond))
	}

	summaries := make([]metrics.TimingSummary, 0, len(order))
	for _, g := range order {
		xs := samples[g]
		mean, std := stat.MeanStdDev(xs, nil)
		if len(xs) < 2 {
			std = 0
		}
		summaries = append(summaries, metrics.TimingSummary{
			Backend: g.backend,
			Phase:   g.phase,
			Runs:    len(xs),
			MeanMs:  mean,
			StdDev:  std,
			MinMs:   floats.Min(xs),
			MaxMs:   floats.Max(xs),
		})
	}
	return summaries
}
