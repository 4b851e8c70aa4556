package game

// Cells of the eight winning lines
var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

// Line templates with the low bit of each line cell set. Multiplying a
// template by a mark gives the packed line filled with that mark.
var templates [8]Position

// Low bit of every cell, set for both X and O
const fullTemplate Position = 0b010101010101010101

func init() {
	for i, line := range lines {
		for _, cell := range line {
			templates[i] |= 1 << (2 * cell)
		}
	}
}

// Classify returns the winner if any line is filled with one mark, Draw if the
// board is full, and InProgress otherwise.
func (p Position) Classify() Outcome {
	for _, t := range templates {
		line := p & (t * markMask)
		if line == t*Position(X) {
			return FirstWins
		}
		if line == t*Position(O) {
			return SecondWins
		}
	}
	if p&fullTemplate == fullTemplate {
		return Draw
	}
	return InProgress
}

// ClassifyLines is Classify done cell by cell; both agree on every board
func (p Position) ClassifyLines() Outcome {
	for _, line := range lines {
		a, b, c := p.Get(line[0]), p.Get(line[1]), p.Get(line[2])
		if a == X && b == X && c == X {
			return FirstWins
		}
		if a == O && b == O && c == O {
			return SecondWins
		}
	}
	for i := 0; i < Cells; i++ {
		if p.Get(i) == Empty {
			return InProgress
		}
	}
	return Draw
}
