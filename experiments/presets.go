package experiments

import (
	"abalone/experiments/metrics"
	"abalone/meta"
	"context"
)

// RunDepthExperiment pairs each search depth against a random baseline and
// against the next shallower depth.
func RunDepthExperiment(ctx context.Context, maxDepth, games int, options ...Option) (Report, error) {
	baseline := metrics.AgentConfig{ID: 0, Kind: metrics.RandomAgent, Seed: meta.SEED}
	configs := []metrics.AgentConfig{baseline}
	matchUps := []MatchUp{}
	for depth := 1; depth <= maxDepth; depth++ {
		config := metrics.AgentConfig{ID: depth, Kind: metrics.AutoAgent, Depth: depth, Pruning: true}
		configs = append(configs, config)
		matchUps = append(matchUps, MatchUp{baseline, config})
		if depth > 1 {
			matchUps = append(matchUps, MatchUp{configs[depth-1], config})
		}
	}

	return Run(ctx, "depth", configs, matchUps, games, options...)
}

// RunPruningExperiment plays a pruned and an unpruned searcher of the same
// depth against each other. Both pick the same moves, so the move records
// compare nodes and time.
func RunPruningExperiment(ctx context.Context, depth, games int, options ...Option) (Report, error) {
	pruned := metrics.AgentConfig{ID: 1, Kind: metrics.AutoAgent, Depth: depth, Pruning: true}
	full := metrics.AgentConfig{ID: 2, Kind: metrics.AutoAgent, Depth: depth, Pruning: false}
	configs := []metrics.AgentConfig{pruned, full}

	return Run(ctx, "pruning", configs, []MatchUp{{pruned, full}}, games, options...)
}
