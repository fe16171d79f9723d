package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// openingLine is a legal sequence of moves from the standard opening.
var openingLine = []string{
	"(1,1)-(3,3):(4,4)", "(7,7)-(9,9):(8,8)",
	"(1,2)-(3,4):(4,5)", "(7,5)-(9,5):(8,5)",
	"(2,2)-(4,4):(5,5)", "(6,6)-(8,6):(7,6)",
	"(2,3)-(4,5):(5,6)", "(6,6)-(7,6):(6,6)",
}

// blackReserve and whiteReserve fill the back rows with pieces that take
// no part in a test but keep the capture counts realistic.
var blackReserve = []Position{
	{1, 1}, {1, 2}, {1, 3}, {1, 4}, {1, 5},
	{2, 1}, {2, 2}, {2, 3}, {2, 4}, {2, 5}, {2, 6},
}

var whiteReserve = []Position{
	{9, 5}, {9, 6}, {9, 7}, {9, 8}, {9, 9},
	{8, 4}, {8, 5}, {8, 6}, {8, 7}, {8, 8}, {8, 9},
}

func mustPieces(t *testing.T, next Cell, black, white []Position) *Board {
	t.Helper()
	b, err := NewBoardFromPieces(next, black, white)
	require.NoError(t, err)
	return b
}

func requireConserved(t *testing.T, b *Board) {
	t.Helper()
	require.Equal(t, PiecesPerSide, b.CountBlack()+b.ScoreWhite(), "Black pieces should be conserved")
	require.Equal(t, PiecesPerSide, b.CountWhite()+b.ScoreBlack(), "White pieces should be conserved")
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	require.Equal(t, Black, b.Next())
	require.Equal(t, 14, b.CountBlack())
	require.Equal(t, 14, b.CountWhite())
	require.Zero(t, b.ScoreBlack())
	require.Zero(t, b.ScoreWhite())
	require.Equal(t, Black, b.At(Position{1, 1}))
	require.Equal(t, White, b.At(Position{9, 9}))
	require.Equal(t, Empty, b.At(Position{5, 5}))
	require.Equal(t, OffBoard, b.At(Position{1, 6}), "Cells outside the hexagon are off the board")
	require.Equal(t, OffBoard, b.At(Position{0, 0}))
	require.Equal(t, OffBoard, b.At(Position{10, 10}))
	require.Equal(t, Empty, b.Winner())
}

func TestOpeningLine(t *testing.T) {
	b := NewBoard()
	for _, source := range openingLine {
		m := MustParseMove(source)
		require.True(t, b.IsLegalMove(m), "Move %s should be legal", m)

		next := b.MakeMove(m)
		require.NotNil(t, next)
		require.Equal(t, b.Next().Opponent(), next.Next(), "Turn should pass to the opponent")
		requireConserved(t, next)
		b = next
	}

	require.Equal(t, White, b.At(Position{6, 7}), "Black's sumito should have pushed white to (6,7)")
	require.Equal(t, White, b.At(Position{5, 6}))
	require.Equal(t, Black, b.At(Position{4, 6}), "White's sumito should push the black piece back")
}

func TestMakeMoveDoesNotMutate(t *testing.T) {
	b := NewBoard()
	before := b.String()

	next := b.MakeMove(MustParseMove("(1,1)-(3,3):(4,4)"))

	require.NotNil(t, next)
	require.Equal(t, before, b.String(), "The original board should be unchanged")
	require.Equal(t, Empty, next.At(Position{1, 1}))
	require.Equal(t, Black, next.At(Position{4, 4}))
}

func TestIllegalMoves(t *testing.T) {
	b := NewBoard()
	for _, tt := range []struct {
		name string
		move string
	}{
		{"opponent pieces", "(9,5)-(9,5):(8,5)"},
		{"empty cell", "(5,5)-(5,5):(6,6)"},
		{"mixed group", "(3,3)-(5,5):(6,6)"},
		{"broadside into friendly piece", "(1,1)-(1,3):(2,3)"},
		{"in-line into own piece", "(1,1)-(1,2):(1,3)"},
		{"pushing own piece off the board", "(1,4)-(1,5):(1,6)"},
		{"malformed group", "(1,1)-(2,3):(3,4)"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			m := MustParseMove(tt.move)

			require.False(t, b.IsLegalMove(m))
			require.Nil(t, b.MakeMove(m), "Illegal moves should yield no board")
		})
	}
}

func TestCapture(t *testing.T) {
	black := append([]Position{{5, 6}, {5, 7}, {5, 8}}, blackReserve[:2]...)
	white := append([]Position{{5, 9}}, whiteReserve...)
	b := mustPieces(t, Black, black, white)
	m := MustParseMove("(5,6)-(5,8):(5,9)")

	require.True(t, b.IsLegalMove(m))
	next := b.MakeMove(m)

	require.NotNil(t, next)
	require.Equal(t, b.ScoreBlack()+1, next.ScoreBlack(), "Black should score the capture")
	require.Equal(t, b.CountWhite()-1, next.CountWhite(), "White should lose a piece")
	require.Equal(t, b.CountBlack(), next.CountBlack())
	require.Equal(t, Black, next.At(Position{5, 9}))
	require.Equal(t, Empty, next.At(Position{5, 6}))
	requireConserved(t, next)
	for _, p := range Positions() {
		if next.At(p) == White {
			require.Contains(t, whiteReserve, p, "Only the reserve should remain white")
		}
	}
}

func TestCaptureFromEitherEnd(t *testing.T) {
	// The same push written with reversed endpoints.
	black := []Position{{5, 6}, {5, 7}, {5, 8}}
	white := append([]Position{{5, 9}}, whiteReserve...)
	b := mustPieces(t, Black, black, white)

	next := b.MakeMove(MustParseMove("(5,8)-(5,6):(5,7)"))

	require.NotNil(t, next)
	require.Equal(t, b.ScoreBlack()+1, next.ScoreBlack())
	require.Equal(t, []Cell{Empty, Black, Black, Black},
		[]Cell{next.At(Position{5, 6}), next.At(Position{5, 7}), next.At(Position{5, 8}), next.At(Position{5, 9})})
}

func TestSumito(t *testing.T) {
	tests := []struct {
		name  string
		black []Position
		white []Position
		move  string
		legal bool
	}{
		{
			name:  "two cannot push two",
			black: []Position{{5, 6}, {5, 7}},
			white: []Position{{5, 8}, {5, 9}},
			move:  "(5,6)-(5,7):(5,8)",
			legal: false,
		},
		{
			name:  "two push one",
			black: []Position{{5, 5}, {5, 6}},
			white: []Position{{5, 7}},
			move:  "(5,5)-(5,6):(5,7)",
			legal: true,
		},
		{
			name:  "three push two into empty",
			black: []Position{{5, 2}, {5, 3}, {5, 4}},
			white: []Position{{5, 5}, {5, 6}},
			move:  "(5,2)-(5,4):(5,5)",
			legal: true,
		},
		{
			name:  "three cannot push three",
			black: []Position{{5, 1}, {5, 2}, {5, 3}},
			white: []Position{{5, 4}, {5, 5}, {5, 6}},
			move:  "(5,1)-(5,3):(5,4)",
			legal: false,
		},
		{
			name:  "friendly piece behind the opponent blocks",
			black: []Position{{5, 2}, {5, 3}, {5, 4}, {5, 6}},
			white: []Position{{5, 5}},
			move:  "(5,2)-(5,4):(5,5)",
			legal: false,
		},
		{
			name:  "single piece cannot push",
			black: []Position{{5, 5}},
			white: []Position{{5, 6}},
			move:  "(5,5)-(5,5):(5,6)",
			legal: false,
		},
		{
			name:  "broadside never pushes",
			black: []Position{{5, 4}, {5, 5}},
			white: []Position{{6, 6}},
			move:  "(5,4)-(5,5):(6,6)",
			legal: false,
		},
		{
			name:  "broadside into empty cells",
			black: []Position{{5, 4}, {5, 5}},
			white: []Position{{7, 7}},
			move:  "(5,4)-(5,5):(6,6)",
			legal: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustPieces(t, Black, tt.black, tt.white)
			m := MustParseMove(tt.move)

			require.Equal(t, tt.legal, b.IsLegalMove(m))
			if tt.legal {
				next := b.MakeMove(m)
				require.NotNil(t, next)
				require.Equal(t, len(tt.black), next.CountBlack())
				require.Equal(t, len(tt.white), next.CountWhite(), "Nothing is pushed off in these positions")
			}
		})
	}
}

func TestWinner(t *testing.T) {
	t.Run("six captures win", func(t *testing.T) {
		b := mustPieces(t, White, blackReserve[:9], whiteReserve[:8])

		require.Equal(t, 6, b.ScoreBlack())
		require.Less(t, b.ScoreWhite(), 6)
		require.Equal(t, Black, b.Winner())
		require.True(t, b.IsGameOver())
	})

	t.Run("white wins symmetrically", func(t *testing.T) {
		b := mustPieces(t, Black, blackReserve[:8], whiteReserve)

		require.Equal(t, 6, b.ScoreWhite())
		require.Equal(t, 3, b.ScoreBlack())
		require.Equal(t, White, b.Winner())
	})

	t.Run("no winner below six", func(t *testing.T) {
		b := mustPieces(t, Black, blackReserve[:9], whiteReserve[:9])

		require.Equal(t, 5, b.ScoreBlack())
		require.Equal(t, 5, b.ScoreWhite())
		require.Equal(t, Empty, b.Winner())
	})

	t.Run("capturing the sixth piece ends the game", func(t *testing.T) {
		black := append([]Position{{5, 6}, {5, 7}, {5, 8}}, blackReserve[:6]...)
		white := append([]Position{{5, 9}}, whiteReserve[:8]...)
		b := mustPieces(t, Black, black, white)
		require.Equal(t, 5, b.ScoreBlack())
		require.Equal(t, 5, b.ScoreWhite())
		require.Equal(t, Empty, b.Winner())

		next := b.MakeMove(MustParseMove("(5,6)-(5,8):(5,9)"))

		require.Equal(t, Black, next.Winner())
	})
}

func TestLegalMoves(t *testing.T) {
	boards := []*Board{NewBoard()}
	b := NewBoard()
	for _, source := range openingLine {
		b = b.MakeMove(MustParseMove(source))
		boards = append(boards, b)
	}

	for _, b := range boards {
		moves := b.LegalMoves()
		require.NotEmpty(t, moves)
		require.Len(t, UniqueMoves(moves), len(moves), "Enumeration should not repeat a move")
		for _, m := range moves {
			require.True(t, b.IsLegalMove(m), "Enumerated move %s should be legal", m)
			next := b.MakeMove(m)
			require.NotNil(t, next)
			requireConserved(t, next)
		}
	}

	t.Run("enumeration is deterministic", func(t *testing.T) {
		require.Equal(t, NewBoard().LegalMoves(), NewBoard().LegalMoves())
	})

	t.Run("children match their moves", func(t *testing.T) {
		b := NewBoard()
		for _, child := range b.Children() {
			require.True(t, child.Board.Equal(b.MakeMove(child.Move)))
		}
	})

	t.Run("opening moves include the in-line and the reversed form", func(t *testing.T) {
		moves := NewBoard().LegalMoves()

		require.True(t, ContainsMove(moves, MustParseMove("(1,1)-(3,3):(4,4)")))
		require.True(t, ContainsMove(moves, MustParseMove("(3,3)-(1,1):(2,2)")))
		require.False(t, ContainsMove(moves, MustParseMove("(9,5)-(9,5):(8,5)")))
	})
}

func TestSizeLegalGroup(t *testing.T) {
	b := NewBoard()

	require.Equal(t, 3, b.SizeLegalGroup(Position{1, 1}, Position{3, 3}))
	require.Equal(t, 2, b.SizeLegalGroup(Position{2, 1}, Position{2, 2}))
	require.Equal(t, 1, b.SizeLegalGroup(Position{1, 1}, Position{1, 1}))
	require.Zero(t, b.SizeLegalGroup(Position{1, 1}, Position{1, 5}), "Groups are at most three long")
	require.Zero(t, b.SizeLegalGroup(Position{9, 9}, Position{9, 9}), "White pieces are not black's to move")
}

func TestNewBoardFromPieces(t *testing.T) {
	_, err := NewBoardFromPieces(Empty, nil, nil)
	require.ErrorIs(t, err, ErrInvalidBoard)

	_, err = NewBoardFromPieces(Black, []Position{{1, 6}}, nil)
	require.ErrorIs(t, err, ErrInvalidBoard)

	_, err = NewBoardFromPieces(Black, []Position{{1, 1}}, []Position{{1, 1}})
	require.ErrorIs(t, err, ErrInvalidBoard)
}

func TestHash(t *testing.T) {
	a := NewBoard()
	b := MustParseBoard(a.String())
	require.Equal(t, a.Hash(), b.Hash())

	next := a.MakeMove(MustParseMove("(1,1)-(3,3):(4,4)"))
	require.NotEqual(t, a.Hash(), next.Hash())
}
