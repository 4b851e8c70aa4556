package game

import (
	"strconv"
	"strings"

	"golang.org/x/exp/rand"
)

const (
	Size  = 3
	Cells = Size * Size

	// Number of distinct boards with every cell in {Empty, X, O}
	NumBoards = 19683
)

// Position packs 9 cells, 2 bits each, row-major with cell 0 in the lowest bits.
// Positions are values: every setter returns a new Position.
type Position uint32

// Marks used when decoding a base-3 board number
var digitMarks = [3]Mark{Empty, X, O}

func Index(row, col int) int {
	return row*Size + col
}

func (p Position) Get(index int) Mark {
	return Mark((p >> (2 * index)) & markMask)
}

func (p Position) Set(index int, mark Mark) Position {
	p &^= markMask << (2 * index)
	return p | Position(mark)<<(2*index)
}

func (p Position) GetAt(row, col int) Mark {
	return p.Get(Index(row, col))
}

func (p Position) SetAt(row, col int, mark Mark) Position {
	return p.Set(Index(row, col), mark)
}

// FromIndices builds a position from the cells occupied by each player.
// Negative indices are skipped. An index listed for both players, or one
// greater than 8, gives an unspecified position.
func FromIndices(first, second []int) Position {
	var p Position
	for _, i := range first {
		if i < 0 {
			continue
		}
		p |= Position(X) << (2 * i)
	}
	for _, i := range second {
		if i < 0 {
			continue
		}
		p |= Position(O) << (2 * i)
	}
	return p
}

// FromInt decodes n as 9 base-3 digits, cell 0 first (0 empty, 1 X, 2 O).
// Digits above the ninth are ignored.
func FromInt(n int) Position {
	var p Position
	for i := 0; i < Cells; i++ {
		p = p.Set(i, digitMarks[n%3])
		n /= 3
	}
	return p
}

// Random returns an arbitrary board, not necessarily reachable in play
func Random(rng *rand.Rand) Position {
	return FromInt(rng.Intn(NumBoards))
}

func GenRandom(n int, rng *rand.Rand) []Position {
	boards := make([]Position, n)
	for i := range boards {
		boards[i] = Random(rng)
	}
	return boards
}

// GenAll returns every board with cells in {Empty, X, O}, reachable or not
func GenAll() []Position {
	boards := make([]Position, NumBoards)
	for i := range boards {
		boards[i] = FromInt(i)
	}
	return boards
}

// EmptyCells lists the free cell indices in ascending order
func (p Position) EmptyCells() []int {
	cells := make([]int, 0, Cells)
	for i := 0; i < Cells; i++ {
		if p.Get(i) == Empty {
			cells = append(cells, i)
		}
	}
	return cells
}

func (p Position) Count(mark Mark) int {
	n := 0
	for i := 0; i < Cells; i++ {
		if p.Get(i) == mark {
			n++
		}
	}
	return n
}

func (p Position) Full() bool {
	return p.Count(Empty) == 0
}

// Swap exchanges every X and O on the board
func (p Position) Swap() Position {
	var swapped Position
	for i := 0; i < Cells; i++ {
		switch p.Get(i) {
		case X:
			swapped = swapped.Set(i, O)
		case O:
			swapped = swapped.Set(i, X)
		}
	}
	return swapped
}

// WellFormed reports whether every cell holds a valid mark and X is at most
// one mark ahead of O. Reachability is not checked.
func (p Position) WellFormed() bool {
	if p>>(2*Cells) != 0 {
		return false
	}
	x, o := 0, 0
	for i := 0; i < Cells; i++ {
		switch p.Get(i) {
		case X:
			x++
		case O:
			o++
		case Empty:
		default:
			return false
		}
	}
	return x == o || x == o+1
}

// ToMove is the player whose turn it is when X moved first
func (p Position) ToMove() Player {
	if p.Count(X) > p.Count(O) {
		return Second
	}
	return First
}

func (p Position) String() string {
	return p.Render(func(m Mark) string { return m.String() })
}

// Render draws the packed value followed by the 3x3 grid, using symbol for each cell
func (p Position) Render(symbol func(Mark) string) string {
	var sb strings.Builder
	sb.WriteString("[" + strconv.FormatUint(uint64(p), 10) + "]\n")
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			sb.WriteString(symbol(p.GetAt(row, col)))
			if col+1 == Size {
				sb.WriteString("\n")
			} else {
				sb.WriteString(" │ ")
			}
		}
		if row+1 != Size {
			sb.WriteString("──┼───┼──\n")
		}
	}
	return sb.String()
}
