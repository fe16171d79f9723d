package player

import (
	"abalone/experiments/metrics"
	"abalone/game"
	"abalone/searcher"
	"time"

	"github.com/rs/zerolog/log"
)

// AutoPlayer moves by searching with a searcher.Searcher.
type AutoPlayer struct {
	*tracker
	searcher *searcher.Searcher
	last     metrics.SearchMetric
}

func NewAutoPlayer(s *searcher.Searcher) *AutoPlayer {
	if s == nil {
		s = searcher.New()
	}
	return &AutoPlayer{
		tracker:  newTracker(),
		searcher: s,
	}
}

func (p *AutoPlayer) MakeMove(last game.Move, timeBlack, timeWhite time.Duration) (game.Move, bool) {
	board, generation := p.begin(last, timeBlack, timeWhite)

	m, ok, metric := p.searcher.FindMove(board)
	p.mu.Lock()
	p.last = metric
	p.mu.Unlock()

	if !ok {
		log.Info().Msgf("%s has no move to make", board.Next())
		return game.Move{}, false
	}
	if !p.commit(m, generation) {
		log.Info().Msgf("%s abandons search: board was replaced", board.Next())
		return game.Move{}, false
	}
	return m, true
}

// LastSearch returns the metrics of the most recent search.
func (p *AutoPlayer) LastSearch() metrics.SearchMetric {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}

func (p *AutoPlayer) Searcher() *searcher.Searcher {
	return p.searcher
}
