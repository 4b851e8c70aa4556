package engine

import (
	"tictactoe/experiments/metrics"
	"tictactoe/game"
)

// A game never lasts longer than the number of cells
const MaxMoves = game.Cells

type Runner interface {
	// Run plays a game till it is decided or the board is full
	Run() (result game.Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
