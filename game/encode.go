package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidBoard = errors.New("invalid board encoding")

// String encodes the board as the side to move followed by one token per
// playable cell, one row per line. Leading spaces only align the rows.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString(b.next.token())
	sb.WriteString(":\n")
	for row := int8(1); row <= Size; row++ {
		lo, hi := ColRange(row)
		sb.WriteString(strings.Repeat(" ", Size-int(hi-lo+1)+1))
		for col := lo; col <= hi; col++ {
			sb.WriteByte(' ')
			sb.WriteString(b.At(Position{row, col}).token())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard decodes the output of Board.String. Whitespace and colons
// separate tokens; the captures of each side are whatever is missing
// from the opponent's fourteen pieces.
func ParseBoard(source string) (*Board, error) {
	tokens := strings.FieldsFunc(source, func(r rune) bool {
		return strings.ContainsRune(": \t\f\r\n", r)
	})
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: missing tokens", ErrInvalidBoard)
	}

	b := empty()
	switch tokens[0] {
	case tokenBlack:
		b.next = Black
	case tokenWhite:
		b.next = White
	default:
		return nil, fmt.Errorf("%w: invalid side to move %q", ErrInvalidBoard, tokens[0])
	}

	cells := tokens[1:]
	if len(cells) < NumCells {
		return nil, fmt.Errorf("%w: missing tokens, got %d of %d cells", ErrInvalidBoard, len(cells), NumCells)
	}
	if len(cells) > NumCells {
		return nil, fmt.Errorf("%w: unexpected token %q after the last cell", ErrInvalidBoard, cells[NumCells])
	}

	for i, p := range positions {
		switch cells[i] {
		case tokenEmpty:
		case tokenBlack:
			b.place(p, Black)
		case tokenWhite:
			b.place(p, White)
		default:
			return nil, fmt.Errorf("%w: invalid token %q at %s", ErrInvalidBoard, cells[i], p)
		}
	}
	if err := b.checkCounts(); err != nil {
		return nil, err
	}
	b.settleScores()
	return b, nil
}

// MustParseBoard is ParseBoard for literals known to be well formed.
func MustParseBoard(source string) *Board {
	b, err := ParseBoard(source)
	if err != nil {
		panic(err)
	}
	return b
}
