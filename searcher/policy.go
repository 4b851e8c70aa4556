package searcher

import "tictactoe/game"

// First prefers FirstWins over Draw over SecondWins, Second the reverse.
// rank returns 0 for the player's most preferred outcome.
func rank(player game.Player, outcome game.Outcome) int {
	switch outcome {
	case game.WinFor(player):
		return 0
	case game.Draw:
		return 1
	default:
		return 2
	}
}

// better returns whichever outcome the player prefers, b on ties
func better(player game.Player, a, b game.Outcome) game.Outcome {
	if rank(player, a) < rank(player, b) {
		return a
	}
	return b
}

// worst is the starting value of a search for the player
func worst(player game.Player) game.Outcome {
	return game.WinFor(player.Other())
}
