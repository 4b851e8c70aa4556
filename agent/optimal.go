package agent

import (
	"fmt"

	"tictactoe/game"
	"tictactoe/searcher"

	"golang.org/x/exp/rand"
)

type optimalAgent struct {
	minimax *searcher.Minimax
	rng     *rand.Rand
}

// NewOptimalAgent returns an agent that never plays a move worse than the
// position's minimax value, choosing uniformly among equally good moves.
func NewOptimalAgent(minimax *searcher.Minimax, rng *rand.Rand) Agent {
	return optimalAgent{minimax: minimax, rng: rng}
}

func (a optimalAgent) FindMove(pos game.Position, player game.Player) (int, error) {
	moves := a.minimax.BestMoves(pos, player)
	if len(moves) == 0 {
		return -1, fmt.Errorf("optimal agent for %v: %w", player, ErrNoMoves)
	}
	return moves[a.rng.Intn(len(moves))], nil
}
