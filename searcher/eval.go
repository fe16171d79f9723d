package searcher

import "abalone/game"

type ringCell struct {
	pos  game.Position
	ring int
}

var ringCells = buildRingCells()

func buildRingCells() []ringCell {
	cells := []ringCell{}
	for _, p := range game.Positions() {
		cells = append(cells, ringCell{p, game.Ring(p)})
	}
	return cells
}

// Evaluate scores b for the side to move. A decided game is worth Win or Loss;
// otherwise every marble adds the weight of its ring from the table of its
// owner.
func (s *Searcher) Evaluate(b *game.Board) float64 {
	friend := b.Next()
	switch winner := b.Winner(); winner {
	case game.Empty:
	case friend:
		return Win
	default:
		return Loss
	}

	score := 0.0
	for _, c := range ringCells {
		switch b.At(c.pos) {
		case friend:
			score += weight(s.friend, c.ring)
		case friend.Opponent():
			score += weight(s.enemy, c.ring)
		}
	}
	return score
}

func weight(table []float64, ring int) float64 {
	if ring < len(table) {
		return table[ring]
	}
	return 0
}
