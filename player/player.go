package player

import (
	"abalone/game"
	"sync"
	"time"
)

// Player is one side of a game. Calls are serialised by the driver, except
// that SetBoard may arrive while MakeMove is running; a player that sees its
// board replaced mid-move gives up the move.
type Player interface {
	// SetBoard replaces the current position.
	SetBoard(b *game.Board, timeBlack, timeWhite time.Duration)
	// NoteMove applies a move made by the other side. Illegal or zero moves
	// are ignored.
	NoteMove(m game.Move, timeBlack, timeWhite time.Duration)
	// MakeMove applies last like NoteMove, then returns this player's move.
	// A false result means the player resigns.
	MakeMove(last game.Move, timeBlack, timeWhite time.Duration) (game.Move, bool)
}

// tracker keeps a player's view of the game in step with the driver.
type tracker struct {
	mu         sync.Mutex
	board      *game.Board
	generation uint64
	timeBlack  time.Duration
	timeWhite  time.Duration
}

func newTracker() *tracker {
	return &tracker{board: game.NewBoard()}
}

func (t *tracker) SetBoard(b *game.Board, timeBlack, timeWhite time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if b == nil {
		b = game.NewBoard()
	}
	t.board = b
	t.generation++
	t.timeBlack, t.timeWhite = timeBlack, timeWhite
}

func (t *tracker) NoteMove(m game.Move, timeBlack, timeWhite time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.apply(m)
	t.timeBlack, t.timeWhite = timeBlack, timeWhite
}

// Board returns the position the player currently believes in.
func (t *tracker) Board() *game.Board {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.board
}

// begin notes last and snapshots the position to move from.
func (t *tracker) begin(last game.Move, timeBlack, timeWhite time.Duration) (*game.Board, uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.apply(last)
	t.timeBlack, t.timeWhite = timeBlack, timeWhite
	return t.board, t.generation
}

// commit plays m if the board was not replaced since begin.
func (t *tracker) commit(m game.Move, generation uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if generation != t.generation {
		return false
	}
	t.apply(m)
	return true
}

func (t *tracker) apply(m game.Move) {
	if m.IsZero() {
		return
	}
	if next := t.board.MakeMove(m); next != nil {
		t.board = next
	}
}
