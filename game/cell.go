package game

// Cell is the content of a board location.
type Cell int8

const (
	OffBoard Cell = iota // outside the hexagon
	Empty
	Black
	White
)

// Text tokens used by the board encoding.
const (
	tokenEmpty = "+"
	tokenBlack = "b"
	tokenWhite = "w"
)

// Opponent returns the other colour; any non-colour is returned as is.
func (c Cell) Opponent() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return c
	}
}

// IsPiece reports whether the cell holds a marble.
func (c Cell) IsPiece() bool {
	return c == Black || c == White
}

func (c Cell) String() string {
	switch c {
	case OffBoard:
		return "OffBoard"
	case Empty:
		return "Empty"
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Cell(?)"
	}
}

func (c Cell) token() string {
	switch c {
	case Black:
		return tokenBlack
	case White:
		return tokenWhite
	default:
		return tokenEmpty
	}
}
