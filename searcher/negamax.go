package searcher

import "abalone/game"

// Minimax returns the best move for the side to move and its negamax value,
// searching every line to depth plies.
func (s *Searcher) Minimax(b *game.Board, depth int) WeightedMove {
	s.metrics.AddNode()
	if depth <= 0 || b.IsGameOver() {
		return s.leaf(b)
	}
	children := b.Children()
	if len(children) == 0 {
		return s.leaf(b)
	}

	best := WeightedMove{Move: children[0].Move, Score: Loss}
	for _, child := range children {
		score := -s.Minimax(child.Board, depth-1).Score
		if score > best.Score {
			best = WeightedMove{Move: child.Move, Score: score}
		}
	}
	return best
}

// AlphaBeta is Minimax with fail-hard alpha-beta pruning. With the full
// window it returns the same value as Minimax.
func (s *Searcher) AlphaBeta(b *game.Board, depth int, alpha, beta float64) WeightedMove {
	s.metrics.AddNode()
	if depth <= 0 || b.IsGameOver() {
		return s.leaf(b)
	}
	children := b.Children()
	if len(children) == 0 {
		return s.leaf(b)
	}

	best := WeightedMove{Move: children[0].Move, Score: alpha}
	for _, child := range children {
		score := -s.AlphaBeta(child.Board, depth-1, -beta, -best.Score).Score
		if score > best.Score {
			best = WeightedMove{Move: child.Move, Score: score}
		}
		if best.Score >= beta {
			s.metrics.AddCutoff()
			break
		}
	}
	return best
}

func (s *Searcher) leaf(b *game.Board) WeightedMove {
	s.metrics.AddLeaf()
	s.yield()
	return WeightedMove{Score: s.evaluate(b)}
}
