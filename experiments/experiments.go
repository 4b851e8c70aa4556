package experiments

import (
	"fmt"

	"tictactoe/agent"
	"tictactoe/engine"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const (
	KindOptimal = "optimal"
	KindRandom  = "random"
)

var agentConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: KindOptimal},
	{ID: 2, Kind: KindRandom},
}

// MatchupResult tallies the games of one match up
type MatchupResult struct {
	Agent1     metrics.AgentConfig // plays X
	Agent2     metrics.AgentConfig // plays O
	FirstWins  int
	Draws      int
	SecondWins int
}

func (r *MatchupResult) add(result game.Outcome) {
	switch result {
	case game.FirstWins:
		r.FirstWins++
	case game.SecondWins:
		r.SecondWins++
	default:
		r.Draws++
	}
}

func newAgent(config metrics.AgentConfig, minimax *searcher.Minimax, rng *rand.Rand) (agent.Agent, error) {
	switch config.Kind {
	case KindOptimal:
		return agent.NewOptimalAgent(minimax, rng), nil
	case KindRandom:
		return agent.NewRandomAgent(rng), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
	}
}

// RunMatchExperiment plays the optimal agent against itself and against a
// random agent from both sides
func RunMatchExperiment(cfg Config) ([]MatchupResult, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	optimal, random := agentConfigs[0], agentConfigs[1]
	matchUps := [][]metrics.AgentConfig{
		{optimal, optimal},
		{optimal, random},
		{random, optimal},
	}
	return runExperiment("match", cfg, agentConfigs, matchUps)
}

func runExperiment(name string, cfg Config, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) ([]MatchupResult, error) {
	minimax := searcher.NewMinimax()
	minimax.Precompute()
	rng := rand.New(rand.NewSource(cfg.Seed))

	count := 0
	results := []MatchupResult{}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]
		result := MatchupResult{Agent1: config1, Agent2: config2}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < cfg.Games; i++ {
			agent1, err := newAgent(config1, minimax, rng)
			if err != nil {
				return results, err
			}
			agent2, err := newAgent(config2, minimax, rng)
			if err != nil {
				return results, err
			}

			e := engine.LocalEngine([2]agent.Agent{agent1, agent2}, minimax)
			outcome, gameMetric, moveMetrics, err := e.Run()
			if err != nil {
				return results, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			count++
			result.add(outcome)
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Debug().Msgf("completed matchup %d of %d game %d with result: %v", mi+1, len(matchUps), i+1, outcome)
		}
		results = append(results, result)
		log.Info().Msgf("completed matchup %d of %d: %+v", mi+1, len(matchUps), result)
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(cfg.OutputDir, name)
	if err != nil {
		return results, fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return results, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return results, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return results, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return results, nil
}
