package main

import (
	"flag"
	"fmt"
	"os"

	"tictactoe/agent"
	"tictactoe/engine"
	"tictactoe/experiments"
	"tictactoe/game"
	"tictactoe/meta"
	"tictactoe/searcher"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	mode := flag.String("mode", "demo", "One of demo, play, classify, perf, match")
	configPath := flag.String("config", "", "YAML experiment config for perf and match")
	seed := flag.Uint64("seed", meta.SEED, "Seed for random boards and tie-breaks")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	seedSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})

	var err error
	switch *mode {
	case "demo":
		runDemo()
	case "play":
		err = runPlay(*seed)
	case "classify":
		runClassify(*seed)
	case "perf", "match":
		cfg := experiments.DefaultConfig()
		if *configPath != "" {
			cfg, err = experiments.LoadConfig(*configPath)
			if err != nil {
				log.Fatal().Err(err).Msg("failed to load config")
			}
		}
		if seedSet {
			cfg.Seed = *seed
		}
		if *mode == "perf" {
			_, err = experiments.RunPerfExperiment(cfg)
		} else {
			err = runMatch(cfg)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

// runDemo evaluates a board with one free cell left
func runDemo() {
	pos := game.FromIndices([]int{0, 1, 5, 6, 7}, []int{2, 3, 4})
	m := searcher.NewMinimax()

	fmt.Println(pos)
	fmt.Printf("Best outcome: %v\n", m.Evaluate(pos, game.Second))
	fmt.Printf("Best moves: %v\n", m.BestMoves(pos, game.Second))
}

func runPlay(seed uint64) error {
	m := searcher.NewMinimax()
	m.Precompute()

	rng := rand.New(rand.NewSource(seed))
	e := engine.LocalEngine([2]agent.Agent{
		agent.NewOptimalAgent(m, rng),
		agent.NewOptimalAgent(m, rng),
	}, m)

	result, _, moves, err := e.Run()
	if err != nil {
		return err
	}
	for _, mm := range moves {
		fmt.Printf("%d. %v -> %d (%d equally good)\n", mm.Step, mm.Player, mm.Cell, mm.Candidates)
	}
	fmt.Println(colored(e.Match.Position()))
	fmt.Printf("Result: %v\n", result)
	return nil
}

func runClassify(seed uint64) {
	rng := rand.New(rand.NewSource(seed))
	for _, pos := range game.GenRandom(5, rng) {
		fmt.Println(colored(pos))
		fmt.Printf("Classified: %c\n\n", pos.Classify().Symbol())
	}
}

func runMatch(cfg experiments.Config) error {
	results, err := experiments.RunMatchExperiment(cfg)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Printf("%s (X) vs %s (O): X %d, draw %d, O %d\n",
			r.Agent1.Kind, r.Agent2.Kind, r.FirstWins, r.Draws, r.SecondWins)
	}
	return nil
}

func colored(pos game.Position) string {
	output := termenv.NewOutput(os.Stdout)
	return pos.Render(func(mark game.Mark) string {
		switch mark {
		case game.X:
			return output.String(mark.String()).Foreground(output.Color("1")).Bold().String()
		case game.O:
			return output.String(mark.String()).Foreground(output.Color("4")).Bold().String()
		default:
			return mark.String()
		}
	})
}
