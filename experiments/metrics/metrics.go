package metrics

import (
	"time"

	"tictactoe/game"
)

type MoveMetric struct {
	Step       int // 1-based ply
	Player     game.Player
	Cell       int
	Value      game.Outcome // Minimax value of the position before the move
	Candidates int          // Number of equally good moves
	Duration   time.Duration
}

type GameMetric struct {
	Result     game.Outcome
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// AgentConfig identifies one side of a match up
type AgentConfig struct {
	ID   int
	Kind string // "optimal" or "random"
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID playing X
	Agent2 int // AgentConfig.ID playing O
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// TimingRecord is one timed pass of a perf phase over a board set
type TimingRecord struct {
	Backend  string
	Phase    string
	Run      int
	Boards   int
	Duration time.Duration
}

// TimingSummary aggregates the runs of one backend and phase
type TimingSummary struct {
	Backend string
	Phase   string
	Runs    int
	MeanMs  float64
	StdDev  float64
	MinMs   float64
	MaxMs   float64
}
