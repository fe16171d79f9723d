package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// PiecesPerSide is the number of marbles each colour starts with.
const PiecesPerSide = 14

// WinningScore is the number of captures that ends the game.
const WinningScore = 6

// groupShapes are the offsets from a group's lower endpoint to its upper
// endpoint, in the order LegalMoves tries them.
var groupShapes = []Direction{
	{0, 0},
	{1, 0}, {0, 1}, {1, 1},
	{2, 0}, {0, 2}, {2, 2},
}

// Board is an immutable snapshot of an Abalone game including which
// colour moves next. Boards are shared freely between goroutines; every
// transition returns a new Board.
type Board struct {
	cells      [Size * Size]Cell
	scoreBlack int // white pieces pushed off by black
	scoreWhite int // black pieces pushed off by white
	countBlack int
	countWhite int
	next       Cell
}

// empty returns a board with no pieces and black to move.
func empty() *Board {
	b := &Board{next: Black}
	for _, p := range positions {
		b.cells[p.index()] = Empty
	}
	return b
}

// NewBoard returns the standard opening position.
func NewBoard() *Board {
	b := empty()
	for _, row := range []struct {
		row    int8
		lo, hi int8
		color  Cell
	}{
		{1, 1, 5, Black}, {2, 1, 6, Black}, {3, 3, 5, Black},
		{9, 5, 9, White}, {8, 4, 9, White}, {7, 5, 7, White},
	} {
		for col := row.lo; col <= row.hi; col++ {
			b.place(Position{row.row, col}, row.color)
		}
	}
	b.settleScores()
	return b
}

// NewBoardFromPieces builds a position from explicit piece lists. Scores
// are derived from the pieces missing from each side.
func NewBoardFromPieces(next Cell, black, white []Position) (*Board, error) {
	if !next.IsPiece() {
		return nil, fmt.Errorf("%w: side to move must be Black or White, got %s", ErrInvalidBoard, next)
	}
	b := empty()
	b.next = next
	for _, side := range []struct {
		color  Cell
		pieces []Position
	}{{Black, black}, {White, white}} {
		for _, p := range side.pieces {
			if !p.OnBoard() {
				return nil, fmt.Errorf("%w: %s is off the board", ErrInvalidBoard, p)
			}
			if b.At(p) != Empty {
				return nil, fmt.Errorf("%w: %s is occupied twice", ErrInvalidBoard, p)
			}
			b.place(p, side.color)
		}
	}
	if err := b.checkCounts(); err != nil {
		return nil, err
	}
	b.settleScores()
	return b, nil
}

// At returns the content of a cell; anything off the hexagon is OffBoard.
func (b *Board) At(p Position) Cell {
	if !p.OnBoard() {
		return OffBoard
	}
	return b.cells[p.index()]
}

// ToPlay reports whether the cell holds a piece of the side to move.
func (b *Board) ToPlay(p Position) bool {
	return b.At(p) == b.next
}

func (b *Board) Next() Cell        { return b.next }
func (b *Board) BlackToPlay() bool { return b.next == Black }
func (b *Board) WhiteToPlay() bool { return b.next == White }

// ScoreBlack returns the number of white pieces black has pushed off.
func (b *Board) ScoreBlack() int { return b.scoreBlack }

// ScoreWhite returns the number of black pieces white has pushed off.
func (b *Board) ScoreWhite() int { return b.scoreWhite }

func (b *Board) CountBlack() int { return b.countBlack }
func (b *Board) CountWhite() int { return b.countWhite }

// Score returns the captures made by colour c.
func (b *Board) Score(c Cell) int {
	switch c {
	case Black:
		return b.scoreBlack
	case White:
		return b.scoreWhite
	default:
		return 0
	}
}

// Count returns the pieces colour c has on the board.
func (b *Board) Count(c Cell) int {
	switch c {
	case Black:
		return b.countBlack
	case White:
		return b.countWhite
	default:
		return 0
	}
}

// Winner returns the colour that has won, or Empty while the game is
// still undecided. A draw is impossible.
func (b *Board) Winner() Cell {
	if b.scoreBlack < WinningScore && b.scoreWhite < WinningScore {
		return Empty
	}
	switch {
	case b.scoreBlack > b.scoreWhite:
		return Black
	case b.scoreWhite > b.scoreBlack:
		return White
	default:
		return Empty
	}
}

// IsGameOver reports whether a winner has been decided.
func (b *Board) IsGameOver() bool {
	return b.Winner() != Empty
}

// Equal compares piece placement and the side to move. Scores follow
// from the piece counts.
func (b *Board) Equal(other *Board) bool {
	if other == nil {
		return false
	}
	return b.next == other.next && b.cells == other.cells
}

// isGroupOf reports whether every cell of the group holds color.
func (b *Board) isGroupOf(m Move, color Cell) bool {
	for _, p := range m.Cells() {
		if b.At(p) != color {
			return false
		}
	}
	return true
}

// SizeLegalGroup returns the number of pieces between start and end when
// they form a group of the side to move, or zero otherwise.
func (b *Board) SizeLegalGroup(start, end Position) int {
	m := Move{Start: start, End: end}
	if !start.OnBoard() || !end.OnBoard() || !m.IsGroup() || !b.isGroupOf(m, b.next) {
		return 0
	}
	return m.Count()
}

// IsLegalMove reports whether m can be played on this board.
func (b *Board) IsLegalMove(m Move) bool {
	active := b.next
	if !m.IsValid() || !b.isGroupOf(m, active) {
		return false
	}

	if m.IsBroadside() {
		for _, p := range m.Cells() {
			if b.At(p.Add(m.Dir)) != Empty {
				return false
			}
		}
		return true
	}

	// The leading edge is whichever end is not backed by a friendly piece.
	lead := m.End.Add(m.Dir)
	if b.At(lead) == active {
		lead = m.Start.Add(m.Dir)
	}
	if b.At(lead) == OffBoard {
		return false
	}

	// Sumito: the opposing run must be shorter than the group.
	count := m.Count()
	for i := 0; i < count; i++ {
		switch b.At(lead.Step(m.Dir, i)) {
		case Empty, OffBoard:
			return true
		case active:
			return false
		}
	}
	return false
}

// MakeMove returns the board after m, or nil when m is not legal.
func (b *Board) MakeMove(m Move) *Board {
	return b.play(m, true)
}

func (b *Board) play(m Move, check bool) *Board {
	if check && !b.IsLegalMove(m) {
		return nil
	}

	result := b.clone()
	if m.IsLinear() {
		if b.At(m.Start.Add(m.Dir)) == b.next {
			result.push(m.Start, m.Dir)
		} else {
			result.push(m.End, m.Dir)
		}
	} else {
		for _, p := range m.Cells() {
			result.push(p, m.Dir)
		}
	}
	result.next = b.next.Opponent()
	return result
}

// LegalMoves returns every legal move in a fixed order. Each group is
// generated once, from its lower endpoint, so the result holds no two
// Equal moves.
func (b *Board) LegalMoves() []Move {
	var moves []Move
	for _, start := range positions {
		if b.At(start) != b.next {
			continue
		}
		for _, dir := range Directions {
			for _, shape := range groupShapes {
				m := Move{Start: start, End: start.Add(shape), Dir: dir}
				if b.IsLegalMove(m) {
					moves = append(moves, m)
				}
			}
		}
	}
	return moves
}

func (b *Board) clone() *Board {
	c := *b
	return &c
}

// push displaces the chain of pieces starting at start by one step until
// an empty cell or the edge of the board is reached.
func (b *Board) push(start Position, dir Direction) {
	inner := b.At(start)
	b.set(start, Empty)

	p := start.Add(dir)
	for {
		outer := b.At(p)
		if outer == Empty || outer == OffBoard {
			break
		}
		b.set(p, inner)
		inner = outer
		p = p.Add(dir)
	}

	if b.At(p) == OffBoard {
		b.capture(inner)
		return
	}
	b.set(p, inner)
}

func (b *Board) capture(c Cell) {
	switch c {
	case Black:
		b.countBlack--
		b.scoreWhite++
	case White:
		b.countWhite--
		b.scoreBlack++
	default:
		panic(fmt.Sprintf("pushed %s off the board", c))
	}
}

func (b *Board) set(p Position, c Cell) {
	if !p.OnBoard() {
		panic(fmt.Sprintf("write to %s outside the board", p))
	}
	b.cells[p.index()] = c
}

func (b *Board) place(p Position, c Cell) {
	b.set(p, c)
	switch c {
	case Black:
		b.countBlack++
	case White:
		b.countWhite++
	}
}

func (b *Board) checkCounts() error {
	if b.countBlack > PiecesPerSide {
		return fmt.Errorf("%w: %d black pieces, at most %d allowed", ErrInvalidBoard, b.countBlack, PiecesPerSide)
	}
	if b.countWhite > PiecesPerSide {
		return fmt.Errorf("%w: %d white pieces, at most %d allowed", ErrInvalidBoard, b.countWhite, PiecesPerSide)
	}
	return nil
}

// settleScores derives captures from the pieces left on the board.
func (b *Board) settleScores() {
	b.scoreBlack = PiecesPerSide - b.countWhite
	b.scoreWhite = PiecesPerSide - b.countBlack
}

// Child pairs a legal move with the board it produces.
type Child struct {
	Move  Move
	Board *Board
}

// Children expands every legal move. The moves come from LegalMoves and
// are applied without a second legality check.
func (b *Board) Children() []Child {
	moves := b.LegalMoves()
	children := make([]Child, len(moves))
	for i, m := range moves {
		children[i] = Child{Move: m, Board: b.play(m, false)}
	}
	return children
}

// UniqueMoves drops moves Equal to an earlier one, keeping the order.
func UniqueMoves(moves []Move) []Move {
	seen := make(map[Move]struct{}, len(moves))
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		key := m.Canonical()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, m)
	}
	return out
}

// ContainsMove reports whether moves holds a move Equal to m.
func ContainsMove(moves []Move, m Move) bool {
	return slices.ContainsFunc(moves, m.Equal)
}
