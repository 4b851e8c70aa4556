package gamemaster

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"tictactoe/game"
)

var (
	ErrOutOfRange = errors.New("cell out of range")
	ErrOccupied   = errors.New("cell already taken")
	ErrGameOver   = errors.New("game is over")
)

// Move is a mark placed by a player
type Move struct {
	Player game.Player
	Cell   int
}

// Match tracks which cells belong to which player as plain index lists and
// enforces turn order and move legality. X always starts.
type Match struct {
	cells   [2][]int // occupied cells per player, in play order
	history []Move
}

func NewMatch() *Match {
	return &Match{
		cells: [2][]int{{}, {}},
	}
}

func (m *Match) Turn() game.Player {
	if len(m.history)%2 == 0 {
		return game.First
	}
	return game.Second
}

// Positions returns the cells held by the player
func (m *Match) Positions(player game.Player) []int {
	return append([]int(nil), m.cells[player]...)
}

func (m *Match) Position() game.Position {
	return game.FromIndices(m.cells[game.First], m.cells[game.Second])
}

func (m *Match) Result() game.Outcome {
	return m.Position().Classify()
}

func (m *Match) Over() bool {
	return m.Result().Terminal()
}

func (m *Match) History() []Move {
	return append([]Move(nil), m.history...)
}

func (m *Match) occupied(cell int) bool {
	return slices.Contains(m.cells[game.First], cell) || slices.Contains(m.cells[game.Second], cell)
}

// Play places the mark of the player to move on cell
func (m *Match) Play(cell int) error {
	if m.Over() {
		return ErrGameOver
	}
	if cell < 0 || cell >= game.Cells {
		return fmt.Errorf("illegal move %d: %w", cell, ErrOutOfRange)
	}
	if m.occupied(cell) {
		return fmt.Errorf("illegal move %d: %w", cell, ErrOccupied)
	}

	player := m.Turn()
	m.cells[player] = append(m.cells[player], cell)
	m.history = append(m.history, Move{Player: player, Cell: cell})
	return nil
}

func (m *Match) String() string {
	var sb strings.Builder
	for cell := 0; cell < game.Cells; cell++ {
		sb.WriteString(" ")
		switch {
		case slices.Contains(m.cells[game.First], cell):
			sb.WriteString("X ")
		case slices.Contains(m.cells[game.Second], cell):
			sb.WriteString("O ")
		default:
			sb.WriteString("  ")
		}
		if cell == game.Cells-1 {
			break
		}
		if cell%game.Size == game.Size-1 {
			sb.WriteString("\n---+---+---\n")
		} else {
			sb.WriteString("|")
		}
	}
	return sb.String()
}
