package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const openingEncoding = `b:
      b b b b b
     b b b b b b
    + + b b b + +
   + + + + + + + +
  + + + + + + + + +
   + + + + + + + +
    + + w w w + +
     w w w w w w
      w w w w w
`

func TestBoardString(t *testing.T) {
	require.Equal(t, openingEncoding, NewBoard().String())
}

func TestParseBoard(t *testing.T) {
	t.Run("round trip of reachable boards", func(t *testing.T) {
		b := NewBoard()
		for _, source := range openingLine {
			b = b.MakeMove(MustParseMove(source))

			decoded, err := ParseBoard(b.String())
			require.NoError(t, err)
			require.True(t, decoded.Equal(b), "Decoded board should equal the original")
			require.Equal(t, b.Next(), decoded.Next())
			require.Equal(t, b.ScoreBlack(), decoded.ScoreBlack(), "Scores should be derived from counts")
			require.Equal(t, b.ScoreWhite(), decoded.ScoreWhite())
		}
	})

	t.Run("round trip after a capture", func(t *testing.T) {
		black := append([]Position{{5, 6}, {5, 7}, {5, 8}}, blackReserve...)
		white := append([]Position{{5, 9}}, whiteReserve...)
		b := mustPieces(t, Black, black, white).MakeMove(MustParseMove("(5,6)-(5,8):(5,9)"))

		decoded, err := ParseBoard(b.String())

		require.NoError(t, err)
		require.True(t, decoded.Equal(b))
		require.Equal(t, b.ScoreBlack(), decoded.ScoreBlack())
	})

	t.Run("padding is ignored", func(t *testing.T) {
		compact := strings.Join(strings.Fields(openingEncoding), " ")

		b, err := ParseBoard(compact)

		require.NoError(t, err)
		require.True(t, b.Equal(NewBoard()))
	})

	t.Run("white to move", func(t *testing.T) {
		b, err := ParseBoard("w" + openingEncoding[1:])

		require.NoError(t, err)
		require.Equal(t, White, b.Next())
		require.False(t, b.Equal(NewBoard()), "Side to move is part of board equality")
	})
}

func TestParseBoardErrors(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		message string
	}{
		{"empty input", "", "missing tokens"},
		{"bad side to move", "x" + openingEncoding[1:], `"x"`},
		{"missing cells", "b: + + +", "missing tokens"},
		{"unknown cell token", strings.Replace(openingEncoding, "+", "?", 1), `"?"`},
		{"trailing token", openingEncoding + " +", "unexpected token"},
		{"too many black pieces", "b:" + strings.Repeat(" b", 15) + strings.Repeat(" +", NumCells-15), "black pieces"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBoard(tt.source)

			require.ErrorIs(t, err, ErrInvalidBoard)
			require.ErrorContains(t, err, tt.message)
		})
	}
}
