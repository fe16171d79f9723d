package player

import (
	"abalone/game"
	"time"

	"github.com/rs/zerolog/log"
)

// ExternalPlayer takes its moves from a channel fed by someone else, such as
// a person at a terminal. Closing the channel resigns.
type ExternalPlayer struct {
	*tracker
	moves    <-chan game.Move
	rejected func(b *game.Board, m game.Move)
}

// NewExternalPlayer reads moves from moves. Illegal moves are passed to
// rejected, if set, and the player waits for another.
func NewExternalPlayer(moves <-chan game.Move, rejected func(b *game.Board, m game.Move)) *ExternalPlayer {
	return &ExternalPlayer{
		tracker:  newTracker(),
		moves:    moves,
		rejected: rejected,
	}
}

func (p *ExternalPlayer) MakeMove(last game.Move, timeBlack, timeWhite time.Duration) (game.Move, bool) {
	board, generation := p.begin(last, timeBlack, timeWhite)
	if board.IsGameOver() {
		return game.Move{}, false
	}

	for m := range p.moves {
		if !board.IsLegalMove(m) {
			log.Debug().Str("move", m.String()).Msg("rejected illegal move")
			if p.rejected != nil {
				p.rejected(board, m)
			}
			continue
		}
		if !p.commit(m, generation) {
			return game.Move{}, false
		}
		return m, true
	}
	return game.Move{}, false
}
