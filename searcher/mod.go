package searcher

import (
	"abalone/game"
	"math"
)

var (
	Win  = math.Inf(1)
	Loss = math.Inf(-1)
)

// WeightedMove is a search result: the chosen move, if any, and its value
// from the perspective of the side to move.
type WeightedMove struct {
	Move  game.Move
	Score float64
}

func (wm WeightedMove) Found() bool {
	return !wm.Move.IsZero()
}
