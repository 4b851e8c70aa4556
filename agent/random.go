package agent

import (
	"fmt"

	"tictactoe/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays any free cell
func NewRandomAgent(rng *rand.Rand) Agent {
	return randomAgent{rng: rng}
}

func (a randomAgent) FindMove(pos game.Position, player game.Player) (int, error) {
	if pos.Classify().Terminal() {
		return -1, fmt.Errorf("random agent for %v: %w", player, ErrNoMoves)
	}
	cells := pos.EmptyCells()
	return cells[a.rng.Intn(len(cells))], nil
}
