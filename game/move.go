package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidMove = errors.New("invalid move encoding")

// Move selects a line of one to three pieces from Start to End and
// shifts every one of them by Dir. A move is a plain value and says
// nothing about whether it is legal on a particular board.
type Move struct {
	Start Position
	End   Position
	Dir   Direction
}

// NewMove builds a move from its endpoints and the cell the End piece
// moves to.
func NewMove(start, end, target Position) Move {
	return Move{
		Start: start,
		End:   end,
		Dir:   Direction{target.Row - end.Row, target.Col - end.Col},
	}
}

// ParseMove decodes "(rS,cS)-(rE,cE):(rT,cT)". Parentheses, commas,
// dashes, colons, spaces and tabs all separate numbers.
func ParseMove(source string) (Move, error) {
	tokens := strings.FieldsFunc(source, func(r rune) bool {
		return strings.ContainsRune("(),-: \t", r)
	})
	if len(tokens) < 6 {
		return Move{}, fmt.Errorf("%w: missing value in %q", ErrInvalidMove, source)
	}
	if len(tokens) > 6 {
		return Move{}, fmt.Errorf("%w: too many numbers, unexpected %q", ErrInvalidMove, tokens[6])
	}

	var v [6]int8
	for i, token := range tokens {
		n, err := strconv.ParseInt(token, 10, 8)
		if err != nil {
			return Move{}, fmt.Errorf("%w: bad number %q", ErrInvalidMove, token)
		}
		v[i] = int8(n)
	}
	return NewMove(Position{v[0], v[1]}, Position{v[2], v[3]}, Position{v[4], v[5]}), nil
}

// MustParseMove is ParseMove for literals known to be well formed.
func MustParseMove(source string) Move {
	m, err := ParseMove(source)
	if err != nil {
		panic(err)
	}
	return m
}

// Target is where the End piece lands.
func (m Move) Target() Position {
	return m.End.Add(m.Dir)
}

func (m Move) String() string {
	t := m.Target()
	return fmt.Sprintf("(%d,%d)-(%d,%d):(%d,%d)",
		m.Start.Row, m.Start.Col, m.End.Row, m.End.Col, t.Row, t.Col)
}

// IsZero reports whether m is the zero Move, used for "no move".
func (m Move) IsZero() bool {
	return m == Move{}
}

// Count returns the number of pieces the move selects.
func (m Move) Count() int {
	return 1 + max(abs(int(m.End.Row-m.Start.Row)), abs(int(m.End.Col-m.Start.Col)))
}

// axis is the unit step from Start towards End, zero for single pieces.
func (m Move) axis() Direction {
	return Direction{sign(m.End.Row - m.Start.Row), sign(m.End.Col - m.Start.Col)}
}

// Middle returns the centre of a three piece group.
func (m Move) Middle() (Position, bool) {
	if m.Count() < 3 || !m.IsGroup() {
		return Position{}, false
	}
	return Position{(m.Start.Row + m.End.Row) / 2, (m.Start.Col + m.End.Col) / 2}, true
}

// Cells lists the selected positions from Start to End.
func (m Move) Cells() []Position {
	n := m.Count()
	axis := m.axis()
	cells := make([]Position, n)
	for i := range cells {
		cells[i] = m.Start.Step(axis, i)
	}
	return cells
}

// IsGroup reports whether Start and End bound a straight hex line of at
// most three cells.
func (m Move) IsGroup() bool {
	dr := m.End.Row - m.Start.Row
	dc := m.End.Col - m.Start.Col
	if abs(dr) > 2 || abs(dc) > 2 {
		return false
	}
	return dr == 0 || dc == 0 || dr == dc
}

// IsLinear reports whether the move travels along the axis of its
// group. A single piece move is never linear.
func (m Move) IsLinear() bool {
	dr := m.End.Row - m.Start.Row
	dc := m.End.Col - m.Start.Col
	return (dr == 0) == (m.Dir.Row == 0) && (dc == 0) == (m.Dir.Col == 0)
}

// IsBroadside reports whether the move travels across its group.
func (m Move) IsBroadside() bool {
	return !m.IsLinear()
}

// IsValid reports whether the move could be legal on some board: all
// selected endpoints and their targets are playable cells, the group is
// a line of up to three and the direction is a hex unit step.
func (m Move) IsValid() bool {
	if !m.Start.OnBoard() || !m.End.OnBoard() {
		return false
	}
	if !m.Start.Add(m.Dir).OnBoard() || !m.End.Add(m.Dir).OnBoard() {
		return false
	}
	return m.IsGroup() && m.Dir.IsUnit()
}

// Equal treats a move and the same move with its endpoints swapped as
// one physical action.
func (m Move) Equal(other Move) bool {
	if m.Dir != other.Dir {
		return false
	}
	return (m.Start == other.Start && m.End == other.End) ||
		(m.Start == other.End && m.End == other.Start)
}

// Canonical orders the endpoints so that Equal moves compare equal with
// ==, which makes them usable as map keys.
func (m Move) Canonical() Move {
	if less(m.End, m.Start) {
		m.Start, m.End = m.End, m.Start
	}
	return m
}

func less(a, b Position) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}

func sign(v int8) int8 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
