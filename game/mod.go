package game

import "fmt"

// Mark is the content of a single cell, stored in 2 bits of a Position.
// The bit pattern 2 is never a cell value.
type Mark uint8

const (
	Empty Mark = 0
	X     Mark = 1 // First player's mark
	O     Mark = 3 // Second player's mark
)

const markMask = 3

func (m Mark) Symbol() byte {
	switch m {
	case X:
		return 'X'
	case O:
		return 'O'
	default:
		return ' '
	}
}

func (m Mark) String() string {
	return string(m.Symbol())
}

// Player is the side about to place the next mark. It is not part of a Position.
type Player uint8

const (
	First Player = iota
	Second
)

func (p Player) Mark() Mark {
	if p == First {
		return X
	}
	return O
}

func (p Player) Other() Player {
	if p == First {
		return Second
	}
	return First
}

// Bit is the player's contribution to a search key
func (p Player) Bit() uint32 {
	if p == First {
		return 1
	}
	return 0
}

func (p Player) String() string {
	if p == First {
		return "X"
	}
	return "O"
}

// Outcome is the result of a finished game, or InProgress when the
// classifier finds no result yet. Terminal outcomes keep the ordering
// FirstWins < Draw < SecondWins.
type Outcome uint8

const (
	InProgress Outcome = iota
	FirstWins
	Draw
	SecondWins
)

func (o Outcome) Terminal() bool {
	return o == FirstWins || o == Draw || o == SecondWins
}

// Swap exchanges the roles of the two players
func (o Outcome) Swap() Outcome {
	switch o {
	case FirstWins:
		return SecondWins
	case SecondWins:
		return FirstWins
	default:
		return o
	}
}

// Winner returns the winning player, ok is false for draws and unfinished games
func (o Outcome) Winner() (winner Player, ok bool) {
	switch o {
	case FirstWins:
		return First, true
	case SecondWins:
		return Second, true
	default:
		return First, false
	}
}

func (o Outcome) Symbol() byte {
	switch o {
	case FirstWins:
		return 'X'
	case Draw:
		return '-'
	case SecondWins:
		return 'O'
	default:
		return ' '
	}
}

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in progress"
	case FirstWins:
		return "X wins"
	case Draw:
		return "draw"
	case SecondWins:
		return "O wins"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

// WinFor is the outcome in which the given player wins
func WinFor(p Player) Outcome {
	if p == First {
		return FirstWins
	}
	return SecondWins
}
