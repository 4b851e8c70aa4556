package searcher

import (
	"sync"
	"testing"

	"tictactoe/game"

	"github.com/stretchr/testify/require"
)

var players = []game.Player{game.First, game.Second}

func wellFormed() []game.Position {
	boards := []game.Position{}
	for _, p := range game.GenAll() {
		if p.WellFormed() {
			boards = append(boards, p)
		}
	}
	return boards
}

func snapshot(memo Memo) map[Key]game.Outcome {
	entries := make(map[Key]game.Outcome, memo.Len())
	memo.Each(func(k Key, o game.Outcome) {
		entries[k] = o
	})
	return entries
}

func TestMinimaxScenarios(t *testing.T) {
	m := NewMinimax()

	t.Run("empty board is a draw", func(t *testing.T) {
		require.Equal(t, game.Draw, m.Evaluate(0, game.First))
		require.Equal(t, game.Draw, m.Evaluate(0, game.Second))
	})

	t.Run("last free cell gives a draw", func(t *testing.T) {
		pos := game.FromIndices([]int{0, 1, 5, 6, 7}, []int{2, 3, 4})

		require.Equal(t, game.Draw, m.Evaluate(pos, game.Second))
		require.Equal(t, []int{8}, m.BestMoves(pos, game.Second))
	})

	t.Run("corner replies to a centre opening", func(t *testing.T) {
		pos := game.FromIndices(nil, []int{4})

		require.Equal(t, []int{0, 2, 6, 8}, m.BestMoves(pos, game.First),
			"Only corners keep the draw, edges lose")
		require.Equal(t, game.Draw, m.Evaluate(pos, game.First))
	})

	t.Run("completing a line is the only winning move", func(t *testing.T) {
		pos := game.FromIndices([]int{0, 1}, []int{3, 4})

		require.Equal(t, []int{2}, m.BestMoves(pos, game.First))
		require.Equal(t, game.FirstWins, m.Evaluate(pos.Set(2, game.X), game.Second))
	})

	t.Run("an open two on an empty board has several winning moves", func(t *testing.T) {
		pos := game.FromIndices([]int{0, 1}, nil)
		moves := m.BestMoves(pos, game.First)

		require.Contains(t, moves, 2)
		require.Equal(t, game.FirstWins, m.Evaluate(pos, game.First))
		require.Equal(t, game.FirstWins, m.Evaluate(pos.Set(2, game.X), game.Second))
	})
}

func TestMinimaxMatchesUncached(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive uncached search")
	}
	m := NewMinimax()
	for _, pos := range wellFormed() {
		for _, player := range players {
			require.Equal(t, EvaluateUncached(pos, player), m.Evaluate(pos, player),
				"Cached and uncached search disagree for %v to move\n%v", player, pos)
		}
	}
}

func TestMinimaxTerminalPositions(t *testing.T) {
	m := NewMinimax()
	for _, pos := range game.GenAll() {
		outcome := pos.Classify()
		if !outcome.Terminal() {
			continue
		}
		for _, player := range players {
			require.Equal(t, outcome, m.Evaluate(pos, player), "Terminal board should evaluate to its classification\n%v", pos)
			require.Empty(t, m.BestMoves(pos, player), "A finished game has no best moves\n%v", pos)
		}
	}
}

func TestBestMoves(t *testing.T) {
	m := NewMinimax()
	for _, pos := range wellFormed() {
		if pos.Classify().Terminal() {
			continue
		}
		for _, player := range players {
			best := m.Evaluate(pos, player)
			want := []int{}
			for _, i := range pos.EmptyCells() {
				if m.Evaluate(pos.Set(i, player.Mark()), player.Other()) == best {
					want = append(want, i)
				}
			}

			got := m.BestMoves(pos, player)
			require.NotEmpty(t, got, "Some move must realize the optimal value\n%v", pos)
			require.Equal(t, want, got)
		}
	}
}

func TestMinimaxRoleSymmetry(t *testing.T) {
	m := NewMinimax()
	for _, pos := range game.GenAll() {
		for _, player := range players {
			require.Equal(t, m.Evaluate(pos, player).Swap(), m.Evaluate(pos.Swap(), player.Other()),
				"Swapping marks and mover should swap the outcome\n%v", pos)
		}
	}
}

func TestPrecompute(t *testing.T) {
	t.Run("fills every reachable key", func(t *testing.T) {
		seen := map[Key]bool{}
		var visit func(pos game.Position, player game.Player)
		visit = func(pos game.Position, player game.Player) {
			key := NewKey(pos, player)
			if seen[key] {
				return
			}
			seen[key] = true
			if pos.Classify().Terminal() {
				return
			}
			for _, i := range pos.EmptyCells() {
				visit(pos.Set(i, player.Mark()), player.Other())
			}
		}
		visit(0, game.First)
		visit(0, game.Second)

		m := NewMinimax()
		require.False(t, m.Precomputed())
		m.Precompute()

		require.True(t, m.Precomputed())
		require.Equal(t, len(seen), m.Size())
		require.Equal(t, 2*5478, m.Size(), "5478 legal positions for each starting player")
		for key := range seen {
			_, ok := m.Memo().Get(key)
			require.True(t, ok, "Key %d should be cached", key)
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		m := NewMinimax()
		m.Precompute()
		once := snapshot(m.Memo())

		m.Precompute()
		require.Equal(t, once, snapshot(m.Memo()))
	})

	t.Run("clear then precompute reproduces the table", func(t *testing.T) {
		m := NewMinimax()
		m.Precompute()
		once := snapshot(m.Memo())

		m.Clear()
		require.False(t, m.Precomputed())
		require.Zero(t, m.Size())

		m.Precompute()
		require.Equal(t, once, snapshot(m.Memo()))
	})

	t.Run("repeat calls do no searching", func(t *testing.T) {
		m := NewMinimax(WithMetrics())
		m.Precompute()
		before := m.Metrics()
		require.Positive(t, before.Expansions)

		m.Precompute()
		after := m.Metrics()
		require.Equal(t, before.Lookups, after.Lookups)
		require.Equal(t, before.Expansions, after.Expansions)
	})

	t.Run("later queries are table hits", func(t *testing.T) {
		m := NewMinimax(WithMetrics())
		m.Precompute()
		before := m.Metrics()

		pos := game.FromIndices([]int{4}, []int{0})
		m.Evaluate(pos, game.First)
		after := m.Metrics()
		require.Equal(t, before.Hits+1, after.Hits)
		require.Equal(t, before.Expansions, after.Expansions)
	})
}

func TestMemoBackendsAgree(t *testing.T) {
	dense := NewMinimax(WithMemo(NewDenseMemo()))
	sparse := NewMinimax(WithMemo(NewMapMemo()))
	for _, pos := range game.GenAll() {
		for _, player := range players {
			require.Equal(t, dense.Evaluate(pos, player), sparse.Evaluate(pos, player))
		}
	}
	require.Equal(t, snapshot(dense.Memo()), snapshot(sparse.Memo()))
}

func TestMinimaxConcurrent(t *testing.T) {
	reference := NewMinimax()
	shared := NewMinimax(WithSynchronization(), WithMemo(NewMapMemo()))
	boards := wellFormed()

	var wg sync.WaitGroup
	const goroutines = 8
	results := make([][]game.Outcome, goroutines)
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			if g == 0 {
				shared.Precompute()
			}
			for _, pos := range boards {
				results[g] = append(results[g], shared.Evaluate(pos, pos.ToMove()))
			}
		}(g)
	}
	wg.Wait()

	for i, pos := range boards {
		want := reference.Evaluate(pos, pos.ToMove())
		for g := 0; g < goroutines; g++ {
			require.Equal(t, want, results[g][i])
		}
	}
	require.True(t, shared.Precomputed())
}
