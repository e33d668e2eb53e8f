// Command spoilsweep prints a minesweeper board as spoiler-tagged chat
// emoji, optionally with anti-mines and knight-move counting.
//
// Usage:
//
//	spoilsweep [-W 5] [-H 5] [-m 4] [-a 0] [-c adjacent|knight]
//	           [-mine-str :boom:] [-anti-mine-str :rosette:] [-spoiler-str "||"]
//	           [-no-limits] [-config file.yaml] [-seed N] [-rules=false]
//	           [-preview] [-log-level warn]
//
// Flags override values read from -config.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/spoilsweep/board"
	"github.com/katalvlaran/spoilsweep/config"
	"github.com/katalvlaran/spoilsweep/neighbor"
	"github.com/katalvlaran/spoilsweep/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// cliOptions are flags that are not part of config.Config.
type cliOptions struct {
	configPath string
	seed       int64
	rules      bool
	preview    bool
}

// newFlagSet binds flags onto cfg and cli, using their current values as defaults.
func newFlagSet(cfg *config.Config, cli *cliOptions, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("spoilsweep", flag.ContinueOnError)
	fs.SetOutput(out)

	fs.IntVar(&cfg.Width, "W", cfg.Width, "width of the board (shorthand)")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "width of the board")
	fs.IntVar(&cfg.Height, "H", cfg.Height, "height of the board (shorthand)")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "height of the board")
	fs.IntVar(&cfg.MineCount, "m", cfg.MineCount, "number of mines (shorthand)")
	fs.IntVar(&cfg.MineCount, "mines", cfg.MineCount, "number of mines")
	fs.IntVar(&cfg.AntiMineCount, "a", cfg.AntiMineCount, "number of anti-mines (shorthand)")
	fs.IntVar(&cfg.AntiMineCount, "anti-mines", cfg.AntiMineCount, "number of anti-mines")
	fs.Var(&cfg.CountRule, "c", "adjacency counting rules: adjacent or knight (shorthand)")
	fs.Var(&cfg.CountRule, "count-rules", "adjacency counting rules: adjacent or knight")
	fs.StringVar(&cfg.MineStr, "mine-str", cfg.MineStr, "string representing a mine")
	fs.StringVar(&cfg.AntiMineStr, "anti-mine-str", cfg.AntiMineStr, "string representing an anti-mine")
	fs.StringVar(&cfg.SpoilerStr, "spoiler-str", cfg.SpoilerStr, "string that makes the inside text a spoiler block")
	fs.BoolVar(&cfg.NoLimits, "no-limits", cfg.NoLimits, "uncap board size")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")

	fs.StringVar(&cli.configPath, "config", cli.configPath, "YAML config file")
	fs.Int64Var(&cli.seed, "seed", cli.seed, "random seed for a reproducible board")
	fs.BoolVar(&cli.rules, "rules", cli.rules, "print the rules legend above the board")
	fs.BoolVar(&cli.preview, "preview", cli.preview, "show an unspoilered preview in the terminal")
	return fs
}

// parseArgs resolves the run configuration: defaults, then -config, then flags.
func parseArgs(args []string, stderr io.Writer) (config.Config, cliOptions, error) {
	cfg := config.Default()
	cli := cliOptions{rules: true}

	fs := newFlagSet(&cfg, &cli, stderr)
	if err := fs.Parse(args); err != nil {
		return cfg, cli, err
	}
	if fs.NArg() > 0 {
		return cfg, cli, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if cli.configPath != "" {
		loaded, err := config.Load(cli.configPath)
		if err != nil {
			return cfg, cli, err
		}
		cfg = loaded
		// re-apply flags so they win over the file
		fs = newFlagSet(&cfg, &cli, io.Discard)
		if err := fs.Parse(args); err != nil {
			return cfg, cli, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seed := cli.seed
			cfg.Seed = &seed
		}
	})
	return cfg, cli, cfg.Validate()
}

// newLogger builds the stderr logger; level has already been validated.
func newLogger(w io.Writer, level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if lvl, err := logrus.ParseLevel(level); err == nil {
		log.SetLevel(lvl)
	}
	return log
}

// userMessage explains a generation failure the way a chat user needs it.
func userMessage(err error) string {
	switch {
	case errors.Is(err, board.ErrInsufficientArea):
		return "More mines than grid slots!"
	case errors.Is(err, board.ErrBoardTooLarge):
		return fmt.Sprintf("Over %d tiles which will not render in Discord, use -no-limits to override.",
			board.DefaultSizeLimit)
	default:
		return err.Error()
	}
}

// run is main without the process exit; it returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, cli, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	log := newLogger(stderr, cfg.LogLevel)
	b, err := cfg.Generate(log)
	if err != nil {
		log.WithError(err).Debug("generation failed")
		fmt.Fprintln(stderr, userMessage(err))
		return 1
	}
	log.WithFields(logrus.Fields{
		"width":    b.Width(),
		"height":   b.Height(),
		"rule":     cfg.CountRule.String(),
		"openings": len(neighbor.Openings(b, cfg.CountRule)),
	}).Info("board ready")

	if cli.rules {
		if err := render.Rules(stdout, cfg); err != nil {
			log.WithError(err).Error("write rules")
			return 1
		}
	}
	if err := render.Text(stdout, b, cfg.CountRule, cfg.Encoder(), cfg.SpoilerStr); err != nil {
		log.WithError(err).Error("write board")
		return 1
	}

	if cli.preview {
		if err := preview(cfg, b); err != nil {
			log.WithError(err).Error("terminal preview")
			return 1
		}
	}
	return 0
}

// preview shows the unspoilered board until a key is pressed.
func preview(cfg config.Config, b *board.Board) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	title := fmt.Sprintf("%dx%d %s preview, press any key to exit", b.Width(), b.Height(), cfg.CountRule)
	render.ShowPreview(s, title, render.Grid(b, cfg.CountRule, cfg.Encoder()), cfg.Symbols())
	return nil
}
