package game

import "fmt"

// Board geometry: a hexagon with 5 cells per side laid out on a 9x9
// rectangle where only cells with |row-col| <= Rings are playable.
const (
	Rings    = 4
	Size     = Rings*2 + 1 // 9 rows and columns
	Center   = Rings + 1   // row and column of the centre cell
	NumCells = 61
)

// Position addresses a cell by row and column, both counted from 1.
type Position struct {
	Row int8
	Col int8
}

// Direction is a step between neighbouring cells.
type Direction struct {
	Row int8
	Col int8
}

// Directions holds the six unit hex directions in enumeration order.
var Directions = [6]Direction{
	{-1, -1}, {-1, 0}, {0, -1},
	{0, 1}, {1, 0}, {1, 1},
}

var positions = buildPositions()

func buildPositions() []Position {
	all := make([]Position, 0, NumCells)
	for row := int8(1); row <= Size; row++ {
		lo, hi := ColRange(row)
		for col := lo; col <= hi; col++ {
			all = append(all, Position{row, col})
		}
	}
	return all
}

// Positions returns every playable cell in row-major order.
func Positions() []Position {
	out := make([]Position, len(positions))
	copy(out, positions)
	return out
}

// ColRange returns the first and last playable column of a row.
func ColRange(row int8) (lo, hi int8) {
	return max(1, row-Rings), min(Size, row+Rings)
}

// OnBoard reports whether p is one of the 61 playable cells.
func (p Position) OnBoard() bool {
	if p.Row < 1 || p.Row > Size || p.Col < 1 || p.Col > Size {
		return false
	}
	d := p.Row - p.Col
	return d >= -Rings && d <= Rings
}

func (p Position) Add(d Direction) Position {
	return Position{p.Row + d.Row, p.Col + d.Col}
}

// Step moves n cells in direction d.
func (p Position) Step(d Direction, n int) Position {
	return Position{p.Row + d.Row*int8(n), p.Col + d.Col*int8(n)}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// index packs an on-board position into the flat grid.
func (p Position) index() int {
	return int(p.Row-1)*Size + int(p.Col-1)
}

// Ring returns the hex distance of p from the centre cell.
func Ring(p Position) int {
	dr := int(Center - p.Row)
	dc := int(Center - p.Col)
	if (dr > 0) == (dc > 0) {
		return max(abs(dr), abs(dc))
	}
	return abs(dr - dc)
}

// IsUnit reports whether d is one of the six hex directions.
func (d Direction) IsUnit() bool {
	if d.Row < -1 || d.Row > 1 || d.Col < -1 || d.Col > 1 {
		return false
	}
	return d.Row+d.Col != 0
}

func (d Direction) Negate() Direction {
	return Direction{-d.Row, -d.Col}
}

func abs[T ~int | ~int8](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
