package player

import (
	"abalone/game"
	"time"

	"golang.org/x/exp/rand"
)

// RandomPlayer picks uniformly among the legal moves.
type RandomPlayer struct {
	*tracker
	rng *rand.Rand
}

func NewRandomPlayer(seed uint64) *RandomPlayer {
	return &RandomPlayer{
		tracker: newTracker(),
		rng:     rand.New(rand.NewSource(seed)),
	}
}

func (p *RandomPlayer) MakeMove(last game.Move, timeBlack, timeWhite time.Duration) (game.Move, bool) {
	board, generation := p.begin(last, timeBlack, timeWhite)

	moves := board.LegalMoves()
	if len(moves) == 0 || board.IsGameOver() {
		return game.Move{}, false
	}
	m := moves[p.rng.Intn(len(moves))]
	if !p.commit(m, generation) {
		return game.Move{}, false
	}
	return m, true
}
