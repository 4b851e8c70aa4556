package searcher

import (
	"sync"
	"sync/atomic"
	"time"

	"tictactoe/game"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax evaluates positions by exhaustive search over all continuations,
// remembering every (position, player) result in its memo table.
type Minimax struct {
	memo         Memo
	metrics      MetricsCollector
	synchronized bool

	mu          sync.Mutex // serializes Precompute and Clear
	precomputed atomic.Bool
}

func WithMemo(memo Memo) Option {
	return func(m *Minimax) {
		if memo != nil {
			m.memo = memo
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = NewMetricsCollector()
	}
}

// WithSynchronization makes the searcher safe for use from several goroutines
func WithSynchronization() Option {
	return func(m *Minimax) {
		m.synchronized = true
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		memo:    NewDenseMemo(),
		metrics: NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.synchronized {
		m.memo = NewLockedMemo(m.memo)
	}
	m.metrics.Start()
	return m
}

// Evaluate returns the outcome of perfect play from pos with player to move.
// First plays for FirstWins, Second for SecondWins.
func (m *Minimax) Evaluate(pos game.Position, player game.Player) game.Outcome {
	key := NewKey(pos, player)
	m.metrics.AddLookup()
	if outcome, ok := m.memo.Get(key); ok {
		m.metrics.AddHit()
		return outcome
	}

	outcome := m.search(pos, player)
	m.memo.Put(key, outcome)
	return outcome
}

func (m *Minimax) search(pos game.Position, player game.Player) game.Outcome {
	if outcome := pos.Classify(); outcome.Terminal() {
		return outcome
	}
	m.metrics.AddExpansion()

	mark := player.Mark()
	best := worst(player)
	for i := 0; i < game.Cells; i++ {
		if pos.Get(i) != game.Empty {
			continue
		}
		best = better(player, m.Evaluate(pos.Set(i, mark), player.Other()), best)
	}
	return best
}

// EvaluateUncached is Evaluate without a memo table. It returns the same
// outcome for every input, only slower.
func EvaluateUncached(pos game.Position, player game.Player) game.Outcome {
	if outcome := pos.Classify(); outcome.Terminal() {
		return outcome
	}

	mark := player.Mark()
	best := worst(player)
	for i := 0; i < game.Cells; i++ {
		if pos.Get(i) != game.Empty {
			continue
		}
		best = better(player, EvaluateUncached(pos.Set(i, mark), player.Other()), best)
	}
	return best
}

// BestMoves returns, in ascending order, every empty cell where placing the
// player's mark keeps the position's optimal outcome. It is empty for
// finished games; choosing among several moves is left to the caller.
func (m *Minimax) BestMoves(pos game.Position, player game.Player) []int {
	moves := make([]int, 0, game.Cells)
	if pos.Classify().Terminal() {
		return moves
	}

	best := m.Evaluate(pos, player)
	mark := player.Mark()
	for i := 0; i < game.Cells; i++ {
		if pos.Get(i) != game.Empty {
			continue
		}
		if m.Evaluate(pos.Set(i, mark), player.Other()) == best {
			moves = append(moves, i)
		}
	}
	return moves
}

// Precompute fills the memo table with every position reachable from the
// empty board, for either starting player. Later calls do nothing until Clear.
func (m *Minimax) Precompute() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.precomputed.Load() {
		return
	}

	start := time.Now()
	var empty game.Position
	m.Evaluate(empty, game.First)
	m.Evaluate(empty, game.Second)
	m.precomputed.Store(true)

	log.Info().
		Dur("elapsed", time.Since(start)).
		Int("entries", m.memo.Len()).
		Msg("precomputed minimax table")
}

// Clear drops every memo entry, e.g. to time a cold search
func (m *Minimax) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.memo.Clear()
	m.precomputed.Store(false)
	m.metrics.Start()
	log.Debug().Msg("cleared minimax table")
}

func (m *Minimax) Precomputed() bool {
	return m.precomputed.Load()
}

// Size is the number of memo entries
func (m *Minimax) Size() int {
	return m.memo.Len()
}

func (m *Minimax) Memo() Memo {
	return m.memo
}

func (m *Minimax) Metrics() SearchMetric {
	return m.metrics.Complete()
}
