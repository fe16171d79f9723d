package searcher

import (
	"abalone/experiments/metrics"
	"abalone/game"
	"abalone/meta"
	"runtime"

	"github.com/rs/zerolog/log"
)

type Option func(s *Searcher)

// Searcher picks moves by a fixed-depth negamax search over the ring
// evaluation. A Searcher is not safe for concurrent searches.
type Searcher struct {
	depth    int
	friend   []float64
	enemy    []float64
	pruning  bool
	yield    func()
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

// WithRingWeights replaces the evaluation tables. Rings past the end of a
// table are worth nothing.
func WithRingWeights(friend, enemy []float64) Option {
	return func(s *Searcher) {
		s.friend = append([]float64(nil), friend...)
		s.enemy = append([]float64(nil), enemy...)
	}
}

func WithPruning(pruning bool) Option {
	return func(s *Searcher) {
		s.pruning = pruning
	}
}

func WithYield(yield func()) Option {
	return func(s *Searcher) {
		if yield != nil {
			s.yield = yield
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

func New(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		depth:   meta.DEPTH,
		friend:  FriendWeights,
		enemy:   EnemyWeights,
		pruning: meta.PRUNING,
		yield:   runtime.Gosched,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	if s.evaluate == nil {
		s.evaluate = s.Evaluate
	}
	return s
}

func (s *Searcher) Depth() int {
	return s.depth
}

func (s *Searcher) Pruning() bool {
	return s.pruning
}

// FindMove searches b to the configured depth. The boolean is false when the
// side to move has no move to make: the game is decided or no move is legal.
func (s *Searcher) FindMove(b *game.Board) (game.Move, bool, metrics.SearchMetric) {
	s.metrics.Start(s.depth, s.pruning)
	var best WeightedMove
	if s.pruning {
		best = s.AlphaBeta(b, s.depth, Loss, Win)
	} else {
		best = s.Minimax(b, s.depth)
	}
	metric := s.metrics.Complete()

	log.Debug().
		Str("player", b.Next().String()).
		Str("move", best.Move.String()).
		Float64("score", best.Score).
		Int("nodes", metric.Nodes).
		Int("cutoffs", metric.Cutoffs).
		Dur("elapsed", metric.Duration).
		Msg("search complete")

	return best.Move, best.Found(), metric
}
