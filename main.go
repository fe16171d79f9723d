package main

import (
	"abalone/engine"
	"abalone/experiments"
	"abalone/game"
	"abalone/meta"
	"abalone/player"
	"abalone/searcher"
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	mode        string
	depth       int
	board       string
	color       string
	games       int
	parallel    int
	out         string
	timeControl time.Duration
	maxMoves    int
}

func main() {
	var cfg config
	flag.StringVar(&cfg.mode, "mode", "selfplay", "selfplay, legal, human or experiment")
	flag.IntVar(&cfg.depth, "depth", meta.DEPTH, "Search depth in plies")
	flag.StringVar(&cfg.board, "board", "", "Starting board in text encoding, or @file to read it from a file")
	flag.StringVar(&cfg.color, "color", "black", "Colour played from stdin in human mode")
	flag.IntVar(&cfg.games, "games", meta.GAMES, "Games per match up in experiment mode")
	flag.IntVar(&cfg.parallel, "parallel", meta.PARALLELISM, "Games played at once in experiment mode")
	flag.StringVar(&cfg.out, "out", "experiments", "Directory for experiment reports")
	flag.DurationVar(&cfg.timeControl, "time", 0, "Time for each side per game, 0 for untimed")
	flag.IntVar(&cfg.maxMoves, "max-moves", meta.MAX_MOVES, "Stop a game after this many moves")
	level := flag.String("log-level", "info", "Log level")
	pretty := flag.Bool("pretty", false, "Human readable logs")
	flag.Parse()

	setupLogging(*level, *pretty)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msgf("%s failed", cfg.mode)
	}
}

func setupLogging(level string, pretty bool) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	if pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

func run(ctx context.Context, cfg config) error {
	start, err := loadBoard(cfg.board)
	if err != nil {
		return err
	}

	switch cfg.mode {
	case "legal":
		return printLegalMoves(start)
	case "selfplay":
		return selfPlay(ctx, start, cfg)
	case "human":
		return playHuman(ctx, start, cfg)
	case "experiment":
		return runExperiment(ctx, cfg)
	default:
		return fmt.Errorf("unknown mode %q", cfg.mode)
	}
}

func loadBoard(source string) (*game.Board, error) {
	if source == "" {
		return game.NewBoard(), nil
	}
	if path, ok := strings.CutPrefix(source, "@"); ok {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read board: %w", err)
		}
		source = string(data)
	}
	return game.ParseBoard(source)
}

func printLegalMoves(b *game.Board) error {
	fmt.Print(b)
	moves := b.LegalMoves()
	for _, m := range moves {
		fmt.Println(m)
	}
	fmt.Printf("%d legal moves for %s\n", len(moves), b.Next())
	return nil
}

func selfPlay(ctx context.Context, start *game.Board, cfg config) error {
	auto := player.NewAutoPlayer(searcher.New(searcher.WithDepth(cfg.depth), searcher.WithMetrics()))
	e := engine.NewLocal(auto, auto,
		engine.WithBoard(start),
		engine.WithTimeControl(cfg.timeControl),
		engine.WithMaxMoves(cfg.maxMoves),
		engine.WithContext(ctx),
	)

	result := e.Run()

	fmt.Println("Abalone AutoPlay")
	fmt.Println()
	fmt.Print(start)
	for i, u := range result.Updates {
		mm := result.MoveMetrics[i]
		fmt.Printf("%s moves: %s [%s, %d nodes]\n", mm.Player, u.Move, mm.Duration.Round(time.Millisecond), mm.Nodes)
		fmt.Print(u.Board)
	}
	printOutcome(result)
	return nil
}

// prompting shows the board before asking the terminal for a move.
type prompting struct {
	*player.ExternalPlayer
}

func (p prompting) MakeMove(last game.Move, timeBlack, timeWhite time.Duration) (game.Move, bool) {
	b := p.Board()
	if !b.IsGameOver() {
		fmt.Print(b)
		fmt.Printf("%s to move, e.g. (3,3)-(3,5):(4,5): ", b.Next())
	}
	return p.ExternalPlayer.MakeMove(last, timeBlack, timeWhite)
}

func playHuman(ctx context.Context, start *game.Board, cfg config) error {
	moves := make(chan game.Move)
	go readMoves(ctx, moves)

	human := prompting{player.NewExternalPlayer(moves, func(b *game.Board, m game.Move) {
		if b.SizeLegalGroup(m.Start, m.End) == 0 {
			fmt.Printf("%s to %s is not a group of your pieces, try again: ", m.Start, m.End)
			return
		}
		fmt.Printf("%s is not legal here, try again: ", m)
	})}
	auto := player.NewAutoPlayer(searcher.New(searcher.WithDepth(cfg.depth)))

	var black, white player.Player = human, auto
	switch cfg.color {
	case "black":
	case "white":
		black, white = auto, human
	default:
		return fmt.Errorf("unknown colour %q", cfg.color)
	}

	e := engine.NewLocal(black, white,
		engine.WithBoard(start),
		engine.WithTimeControl(cfg.timeControl),
		engine.WithMaxMoves(cfg.maxMoves),
		engine.WithContext(ctx),
	)
	result := e.Run()

	fmt.Print(result.Board)
	printOutcome(result)
	return nil
}

// readMoves parses moves from stdin until it closes or ctx is done.
func readMoves(ctx context.Context, moves chan<- game.Move) {
	defer close(moves)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "resign" {
			return
		}
		m, err := game.ParseMove(line)
		if err != nil {
			fmt.Printf("%v, try again: ", err)
			continue
		}
		select {
		case moves <- m:
		case <-ctx.Done():
			return
		}
	}
}

func runExperiment(ctx context.Context, cfg config) error {
	options := []experiments.Option{
		experiments.WithOutputDir(cfg.out),
		experiments.WithParallelism(cfg.parallel),
		experiments.WithTimeControl(cfg.timeControl),
		experiments.WithMaxMoves(cfg.maxMoves),
	}
	report, err := experiments.RunDepthExperiment(ctx, cfg.depth, cfg.games, options...)
	if err != nil {
		return err
	}

	wins := map[int]int{}
	for _, g := range report.Games {
		switch g.Winner {
		case game.Black:
			wins[g.Black]++
		case game.White:
			wins[g.White]++
		}
	}
	for id, count := range wins {
		log.Info().Int("agent", id).Int("wins", count).Msg("experiment result")
	}
	fmt.Printf("Reports written to %s\n", report.Dir)
	return nil
}

func printOutcome(result engine.Result) {
	if result.Winner == game.Empty {
		fmt.Printf("No winner: %s.\n", result.Reason)
	} else {
		fmt.Printf("%s wins by %s.\n", result.Winner, result.Reason)
	}
	fmt.Printf("Score: Black %d, White %d.\n", result.Board.ScoreBlack(), result.Board.ScoreWhite())
}
