package engine

import (
	"abalone/experiments/metrics"
	"abalone/game"
	"abalone/meta"
	"abalone/player"
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Option func(e *Local)

// Local referees a game between two players in the same process.
type Local struct {
	players     map[game.Cell]player.Player
	start       *game.Board
	timeControl time.Duration
	maxMoves    int
	ctx         context.Context
}

// WithTimeControl gives each side d for the whole game. Zero means untimed.
func WithTimeControl(d time.Duration) Option {
	return func(e *Local) {
		if d > 0 {
			e.timeControl = d
		}
	}
}

func WithMaxMoves(n int) Option {
	return func(e *Local) {
		if n > 0 {
			e.maxMoves = n
		}
	}
}

// WithBoard starts the game from b instead of the standard opening.
func WithBoard(b *game.Board) Option {
	return func(e *Local) {
		if b != nil {
			e.start = b
		}
	}
}

// WithContext stops the game between moves once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(e *Local) {
		if ctx != nil {
			e.ctx = ctx
		}
	}
}

func NewLocal(black, white player.Player, options ...Option) *Local {
	if black == nil || white == nil {
		panic("need a player for each side")
	}

	e := &Local{ // Default values
		players:  map[game.Cell]player.Player{game.Black: black, game.White: white},
		start:    game.NewBoard(),
		maxMoves: meta.MAX_MOVES,
		ctx:      context.Background(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop until a winner is found.
func (e *Local) Run() Result {
	board := e.start
	clocks := map[game.Cell]time.Duration{game.Black: e.timeControl, game.White: e.timeControl}
	timed := e.timeControl > 0

	gameMetric := metrics.GameMetric{
		ID:        uuid.New(),
		Starting:  board.Next(),
		StartTime: time.Now(),
	}
	result := Result{Winner: game.Empty}

	e.players[game.Black].SetBoard(board, clocks[game.Black], clocks[game.White])
	e.players[game.White].SetBoard(board, clocks[game.Black], clocks[game.White])

	log.Info().Msgf("game %s: %s is starting", gameMetric.ID, board.Next())

	for step := 1; ; step++ {
		if winner := board.Winner(); winner != game.Empty {
			result.Winner, result.Reason = winner, Captures
			break
		}
		if step > e.maxMoves {
			result.Reason = MoveCap
			break
		}
		if e.ctx.Err() != nil {
			result.Reason = Cancelled
			break
		}

		mover := board.Next()
		current := e.players[mover]

		clock := time.Now()
		move, ok := current.MakeMove(game.Move{}, clocks[game.Black], clocks[game.White])
		elapsed := time.Since(clock)

		// Update the clock during timed games.
		if timed {
			clocks[mover] -= elapsed
			if clocks[mover] <= 0 {
				log.Info().Msgf("game %s: %s ran out of time", gameMetric.ID, mover)
				result.Winner, result.Reason = mover.Opponent(), TimeOut
				break
			}
		}
		if !ok {
			log.Info().Msgf("game %s: %s resigns", gameMetric.ID, mover)
			result.Winner, result.Reason = mover.Opponent(), Resignation
			break
		}

		next := board.MakeMove(move)
		if next == nil {
			log.Warn().Msgf("game %s: %s played illegal move %s", gameMetric.ID, mover, move)
			result.Winner, result.Reason = mover.Opponent(), IllegalMove
			break
		}

		moveMetric := metrics.MoveMetric{Step: step, Player: mover, Move: move, Duration: elapsed}
		if s, ok := current.(Searching); ok {
			moveMetric.SearchMetric = s.LastSearch()
		}
		result.MoveMetrics = append(result.MoveMetrics, moveMetric)
		result.Updates = append(result.Updates, Update{
			Move:  move,
			Board: next,
			Hash:  next.Hash(),
		})

		e.players[mover.Opponent()].NoteMove(move, clocks[game.Black], clocks[game.White])

		log.Debug().
			Int("step", step).
			Str("player", mover.String()).
			Str("move", move.String()).
			Dur("elapsed", elapsed).
			Msg("move played")

		board = next
	}

	result.Board = board
	gameMetric.Winner = result.Winner
	gameMetric.Reason = string(result.Reason)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(result.Updates)
	gameMetric.ScoreBlack = board.ScoreBlack()
	gameMetric.ScoreWhite = board.ScoreWhite()
	result.GameMetric = gameMetric

	log.Info().Msgf("game %s: ended by %s after %d moves, winner %s (%d-%d)",
		gameMetric.ID, result.Reason, gameMetric.TotalMoves, result.Winner, gameMetric.ScoreBlack, gameMetric.ScoreWhite)

	return result
}
