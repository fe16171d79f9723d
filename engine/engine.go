package engine

import (
	"abalone/experiments/metrics"
	"abalone/game"
)

type EndReason string

const (
	Captures    EndReason = "captures"
	Resignation EndReason = "resignation"
	IllegalMove EndReason = "illegal move"
	TimeOut     EndReason = "time"
	MoveCap     EndReason = "move cap"
	Cancelled   EndReason = "cancelled"
)

type Update struct {
	Move  game.Move
	Board *game.Board
	Hash  game.StateHash
}

type Result struct {
	Winner      game.Cell // Empty when the game was stopped undecided
	Reason      EndReason
	Board       *game.Board
	Updates     []Update
	GameMetric  metrics.GameMetric
	MoveMetrics []metrics.MoveMetric
}

type Engine interface {
	// Run plays a game till there's a winner or a max number of moves is reached
	Run() Result
}

// Searching is implemented by players that can report on their last search.
type Searching interface {
	LastSearch() metrics.SearchMetric
}
