package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestPositionSetGet(t *testing.T) {
	t.Run("setting every cell", func(t *testing.T) {
		var p Position
		for i := 0; i < Cells; i++ {
			p = p.Set(i, X)
			require.Equal(t, X, p.Get(i), "Cell %d should hold X", i)
		}
		for i := 0; i < Cells; i++ {
			p = p.Set(i, O)
			require.Equal(t, O, p.Get(i), "Cell %d should be overwritten with O", i)
		}
		for i := 0; i < Cells; i++ {
			p = p.Set(i, Empty)
		}
		require.Equal(t, Position(0), p, "Clearing every cell should give the empty board")
	})

	t.Run("cells are independent", func(t *testing.T) {
		p := Position(0).Set(4, O)
		for i := 0; i < Cells; i++ {
			if i == 4 {
				continue
			}
			require.Equal(t, Empty, p.Get(i), "Only cell 4 should be set")
		}
		require.Equal(t, Position(O)<<8, p, "Cell 4 occupies bits 8 and 9")
	})

	t.Run("row and column addressing", func(t *testing.T) {
		p := Position(0).SetAt(2, 1, X)
		require.Equal(t, X, p.Get(7), "Row 2 column 1 is cell 7")
		require.Equal(t, X, p.GetAt(2, 1))
		require.Equal(t, 5, Index(1, 2))
	})

	t.Run("value semantics", func(t *testing.T) {
		p := Position(0)
		_ = p.Set(0, X)
		require.Equal(t, Position(0), p, "Set should not modify the receiver")
	})
}

func TestFromIndices(t *testing.T) {
	t.Run("two index collections", func(t *testing.T) {
		p := FromIndices([]int{0, 1, 5, 6, 7}, []int{2, 3, 4})
		want := []Mark{X, X, O, O, O, X, X, X, Empty}
		for i, m := range want {
			require.Equal(t, m, p.Get(i), "Unexpected mark at cell %d", i)
		}
	})

	t.Run("padding indices are skipped", func(t *testing.T) {
		p := FromIndices([]int{-1, 4, -1}, []int{-1, -1})
		require.Equal(t, Position(0).Set(4, X), p)
	})

	t.Run("empty collections", func(t *testing.T) {
		require.Equal(t, Position(0), FromIndices(nil, nil))
	})
}

func TestFromInt(t *testing.T) {
	t.Run("base 3 digits map to marks", func(t *testing.T) {
		// 1 + 2*3 + 1*9 = 16 -> X, O, X
		p := FromInt(16)
		require.Equal(t, X, p.Get(0))
		require.Equal(t, O, p.Get(1))
		require.Equal(t, X, p.Get(2))
		for i := 3; i < Cells; i++ {
			require.Equal(t, Empty, p.Get(i), "Higher digits are zero")
		}
	})

	t.Run("all boards are distinct and valid", func(t *testing.T) {
		boards := GenAll()
		require.Len(t, boards, NumBoards)
		seen := make(map[Position]bool, NumBoards)
		for _, b := range boards {
			require.False(t, seen[b], "Board %d generated twice", b)
			seen[b] = true
			for i := 0; i < Cells; i++ {
				require.NotEqual(t, Mark(2), b.Get(i), "No cell may hold the reserved pattern")
			}
		}
	})

	t.Run("random boards", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		boards := GenRandom(100, rng)
		require.Len(t, boards, 100)
		for _, b := range boards {
			require.Zero(t, b>>(2*Cells), "Random boards use 18 bits")
		}
	})
}

func TestPositionQueries(t *testing.T) {
	p := FromIndices([]int{0, 8}, []int{4})

	require.Equal(t, []int{1, 2, 3, 5, 6, 7}, p.EmptyCells())
	require.Equal(t, 2, p.Count(X))
	require.Equal(t, 1, p.Count(O))
	require.False(t, p.Full())
	require.Equal(t, Second, p.ToMove())
	require.True(t, p.WellFormed())

	t.Run("swap exchanges marks", func(t *testing.T) {
		s := p.Swap()
		require.Equal(t, FromIndices([]int{4}, []int{0, 8}), s)
		require.Equal(t, p, s.Swap(), "Swapping twice should restore the board")
	})

	t.Run("ill formed boards", func(t *testing.T) {
		require.False(t, FromIndices([]int{0, 1, 2}, nil).WellFormed(), "X two marks ahead")
		require.False(t, FromIndices(nil, []int{0}).WellFormed(), "O ahead of X")
		require.False(t, Position(2).WellFormed(), "Reserved cell pattern")
	})
}

func TestPositionString(t *testing.T) {
	p := FromIndices([]int{0, 4}, []int{8})

	want := "[196865]\n" +
		"X │   │  \n" +
		"──┼───┼──\n" +
		"  │ X │  \n" +
		"──┼───┼──\n" +
		"  │   │ O\n"
	require.Equal(t, want, p.String())
}

func TestSymbols(t *testing.T) {
	require.Equal(t, byte(' '), Empty.Symbol())
	require.Equal(t, byte('X'), X.Symbol())
	require.Equal(t, byte('O'), O.Symbol())
	require.Equal(t, byte('-'), Draw.Symbol())
	require.Equal(t, byte('X'), FirstWins.Symbol())
	require.Equal(t, byte('O'), SecondWins.Symbol())
}

func TestPlayer(t *testing.T) {
	require.Equal(t, X, First.Mark())
	require.Equal(t, O, Second.Mark())
	require.Equal(t, Second, First.Other())
	require.Equal(t, First, Second.Other())
	require.Equal(t, uint32(1), First.Bit())
	require.Equal(t, uint32(0), Second.Bit())
	require.Equal(t, FirstWins, WinFor(First))
	require.Equal(t, SecondWins, WinFor(Second))

	winner, ok := SecondWins.Winner()
	require.True(t, ok)
	require.Equal(t, Second, winner)
	_, ok = Draw.Winner()
	require.False(t, ok)

	require.True(t, FirstWins < Draw && Draw < SecondWins, "Outcome ordering is relied on by the search")
}
