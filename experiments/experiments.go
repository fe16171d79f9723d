package experiments

import (
	"abalone/engine"
	"abalone/experiments/metrics"
	"abalone/meta"
	"abalone/player"
	"abalone/searcher"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidExperiment = errors.New("invalid experiment")

// MatchUp pairs two agents. The first plays Black in even games and White in
// odd ones.
type MatchUp [2]metrics.AgentConfig

type Option func(r *runner)

type runner struct {
	parallelism int
	outputDir   string
	timeControl time.Duration
	maxMoves    int
	write       bool
}

func WithParallelism(n int) Option {
	return func(r *runner) {
		if n > 0 {
			r.parallelism = n
		}
	}
}

// WithOutputDir stores the CSV reports under dir. Without it nothing is
// written.
func WithOutputDir(dir string) Option {
	return func(r *runner) {
		if dir != "" {
			r.outputDir = dir
			r.write = true
		}
	}
}

func WithTimeControl(d time.Duration) Option {
	return func(r *runner) {
		r.timeControl = d
	}
}

func WithMaxMoves(n int) Option {
	return func(r *runner) {
		if n > 0 {
			r.maxMoves = n
		}
	}
}

type Report struct {
	Dir   string // empty when nothing was written
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

// Run plays every match up games times and collects the records.
func Run(ctx context.Context, name string, configs []metrics.AgentConfig, matchUps []MatchUp, games int, options ...Option) (Report, error) {
	r := &runner{ // Default values
		parallelism: meta.PARALLELISM,
		maxMoves:    meta.MAX_MOVES,
	}
	for _, option := range options {
		option(r)
	}
	if err := validate(configs, matchUps, games); err != nil {
		return Report{}, err
	}

	log.Info().Msgf("starting %s experiment: %d match ups of %d games...", name, len(matchUps), games)

	results := make([]engine.Result, len(matchUps)*games)
	blacks := make([]int, len(results))
	whites := make([]int, len(results))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)
	for mi, matchUp := range matchUps {
		for i := 0; i < games; i++ {
			idx := mi*games + i
			black, white := matchUp[0], matchUp[1]
			if i%2 == 1 {
				black, white = white, black
			}
			blacks[idx], whites[idx] = black.ID, white.ID
			seed := uint64(idx)

			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				e := engine.NewLocal(
					NewPlayer(black, seed),
					NewPlayer(white, seed),
					engine.WithTimeControl(r.timeControl),
					engine.WithMaxMoves(r.maxMoves),
					engine.WithContext(gctx),
				)
				results[idx] = e.Run()
				log.Info().Msgf("completed match up %d of %d game %d of %d with winner: %s",
					mi+1, len(matchUps), i+1, games, results[idx].Winner)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return Report{}, fmt.Errorf("%s experiment: %w", name, err)
	}
	if err := ctx.Err(); err != nil {
		return Report{}, fmt.Errorf("%s experiment: %w", name, err)
	}

	log.Info().Msgf("completed %s experiment", name)

	report := Report{}
	for idx, result := range results {
		report.Games = append(report.Games, metrics.GameRecord{
			Black:      blacks[idx],
			White:      whites[idx],
			GameMetric: result.GameMetric,
		})
		for _, mm := range result.MoveMetrics {
			report.Moves = append(report.Moves, metrics.MoveRecord{
				Game:       result.GameMetric.ID,
				MoveMetric: mm,
			})
		}
	}

	if !r.write {
		return report, nil
	}
	dir, err := store(r.outputDir, name, configs, report)
	if err != nil {
		return Report{}, err
	}
	report.Dir = dir
	return report, nil
}

// NewPlayer builds the player described by config. Random players mix seed
// into their configured seed so repeated games differ.
func NewPlayer(config metrics.AgentConfig, seed uint64) player.Player {
	switch config.Kind {
	case metrics.RandomAgent:
		return player.NewRandomPlayer(config.Seed + seed)
	default:
		return player.NewAutoPlayer(searcher.New(
			searcher.WithDepth(config.Depth),
			searcher.WithPruning(config.Pruning),
			searcher.WithMetrics(),
		))
	}
}

func validate(configs []metrics.AgentConfig, matchUps []MatchUp, games int) error {
	if games <= 0 {
		return fmt.Errorf("%w: %d games per match up", ErrInvalidExperiment, games)
	}
	if len(matchUps) == 0 {
		return fmt.Errorf("%w: no match ups", ErrInvalidExperiment)
	}
	known := map[int]bool{}
	for _, config := range configs {
		if known[config.ID] {
			return fmt.Errorf("%w: agent %d configured twice", ErrInvalidExperiment, config.ID)
		}
		known[config.ID] = true
	}
	for _, matchUp := range matchUps {
		for _, config := range matchUp {
			if !known[config.ID] {
				return fmt.Errorf("%w: agent %d is not configured", ErrInvalidExperiment, config.ID)
			}
		}
	}
	return nil
}

func store(root, name string, configs []metrics.AgentConfig, report Report) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(report.Games)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(report.Moves)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
