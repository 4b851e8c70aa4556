package agent

import (
	"errors"

	"tictactoe/game"
)

var ErrNoMoves = errors.New("no moves available")

type Agent interface {
	// FindMove returns the cell to mark for player in pos
	FindMove(pos game.Position, player game.Player) (int, error)
}
