package engine

import (
	"fmt"
	"time"

	"tictactoe/agent"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/gamemaster"
	"tictactoe/searcher"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	Match   *gamemaster.Match
	Agents  [2]agent.Agent // indexed by game.Player
	minimax *searcher.Minimax
}

// LocalEngine plays agents[0] as X against agents[1] as O. When minimax is
// not nil every move is annotated with the position's value.
func LocalEngine(agents [2]agent.Agent, minimax *searcher.Minimax) *Engine {
	if agents[game.First] == nil || agents[game.Second] == nil {
		panic("need two agents")
	}
	return &Engine{
		Match:   gamemaster.NewMatch(),
		Agents:  agents,
		minimax: minimax,
	}
}

// Run executes the game loop until the match is over
func (e *Engine) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %v is starting", e.Match.Turn())

	for step := 1; !e.Match.Over() && step <= MaxMoves; step++ {
		player := e.Match.Turn()
		pos := e.Match.Position()

		start := time.Now()
		cell, err := e.Agents[player].FindMove(pos, player)
		if err != nil {
			return game.InProgress, gameMetric, moveMetrics, fmt.Errorf("player %v failed to move at step %d: %w", player, step, err)
		}
		moveMetric := metrics.MoveMetric{
			Step:     step,
			Player:   player,
			Cell:     cell,
			Duration: time.Since(start),
		}
		if e.minimax != nil {
			moveMetric.Value = e.minimax.Evaluate(pos, player)
			moveMetric.Candidates = len(e.minimax.BestMoves(pos, player))
		}

		err = e.Match.Play(cell)
		if err != nil {
			return game.InProgress, gameMetric, moveMetrics, fmt.Errorf("player %v played an illegal move: %w", player, err)
		}
		moveMetrics = append(moveMetrics, moveMetric)

		log.Debug().Int("step", step).Stringer("player", player).Int("cell", cell).Msg("move played")
	}

	result := e.Match.Result()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.Result = result
	gameMetric.TotalMoves = len(moveMetrics)

	log.Info().Msgf("game over after %d moves: %v", gameMetric.TotalMoves, result)
	return result, gameMetric, moveMetrics, nil
}
