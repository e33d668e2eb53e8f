package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spoilsweep/board"
	"github.com/katalvlaran/spoilsweep/encode"
	"github.com/katalvlaran/spoilsweep/neighbor"
)

// MaxDimension bounds width, height and marker counts.
const MaxDimension = 255

var (
	// ErrNegativeCount indicates a negative mine or anti-mine count. It is the
	// generator's sentinel, so errors.Is matches whichever layer reports it.
	ErrNegativeCount = board.ErrNegativeCount
	// ErrOutOfRange indicates a dimension or count outside its allowed range.
	ErrOutOfRange = errors.New("config: value out of range")
	// ErrEmptySymbol indicates an empty marker or spoiler string.
	ErrEmptySymbol = errors.New("config: symbol must not be empty")
)

// Config is the input of one run.
type Config struct {
	Width         int           `yaml:"width"`
	Height        int           `yaml:"height"`
	MineCount     int           `yaml:"mine_count"`
	AntiMineCount int           `yaml:"anti_mine_count"`
	CountRule     neighbor.Rule `yaml:"count_rule"`
	MineStr       string        `yaml:"mine_str"`
	AntiMineStr   string        `yaml:"anti_mine_str"`
	SpoilerStr    string        `yaml:"spoiler_str"`
	NoLimits      bool          `yaml:"no_limits"`

	// Seed fixes the board layout when set.
	Seed *int64 `yaml:"seed,omitempty"`
	// LogLevel is a logrus level name.
	LogLevel string `yaml:"log_level"`
}

// Default returns the command-line defaults.
func Default() Config {
	return Config{
		Width:         5,
		Height:        5,
		MineCount:     4,
		AntiMineCount: 0,
		CountRule:     neighbor.Adjacent,
		MineStr:       encode.DefaultMine,
		AntiMineStr:   encode.DefaultAntiMine,
		SpoilerStr:    "||",
		NoLimits:      false,
		LogLevel:      logrus.WarnLevel.String(),
	}
}

// Validate checks field ranges. Board-level constraints (area versus
// markers, size cap) are left to board.Generate.
func (c Config) Validate() error {
	if c.MineCount < 0 || c.AntiMineCount < 0 {
		return fmt.Errorf("Validate: mine_count=%d, anti_mine_count=%d: %w",
			c.MineCount, c.AntiMineCount, ErrNegativeCount)
	}
	for _, f := range []struct {
		name     string
		val, min int
	}{
		{"width", c.Width, 1},
		{"height", c.Height, 1},
		{"mine_count", c.MineCount, 0},
		{"anti_mine_count", c.AntiMineCount, 0},
	} {
		if f.val < f.min || f.val > MaxDimension {
			return fmt.Errorf("Validate: %s=%d not in [%d,%d]: %w",
				f.name, f.val, f.min, MaxDimension, ErrOutOfRange)
		}
	}
	if len(neighbor.Offsets(c.CountRule)) == 0 {
		return fmt.Errorf("Validate: count_rule=%s: %w", c.CountRule, neighbor.ErrUnknownRule)
	}
	for _, f := range [...]struct{ name, val string }{
		{"mine_str", c.MineStr},
		{"anti_mine_str", c.AntiMineStr},
		{"spoiler_str", c.SpoilerStr},
	} {
		if f.val == "" {
			return fmt.Errorf("Validate: %s: %w", f.name, ErrEmptySymbol)
		}
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("Validate: log_level: %w", err)
	}
	return nil
}

// Decode reads YAML from r over the defaults. Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("Decode: %w", err)
	}
	return cfg, nil
}

// Load decodes the YAML file at path over the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("Load: %w", err)
	}
	return Decode(bytes.NewReader(data))
}

// Marshal encodes c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Symbols returns the marker tokens.
func (c Config) Symbols() encode.Symbols {
	return encode.Symbols{Mine: c.MineStr, AntiMine: c.AntiMineStr}
}

// Encoder returns the tile encoder for this configuration. The extended
// tables are enabled whenever anti-mines are requested.
func (c Config) Encoder() encode.Encoder {
	return encode.New(c.Symbols(), c.AntiMineCount > 0)
}

// Options maps c onto board generator options. log may be nil.
func (c Config) Options(log logrus.FieldLogger) []board.Option {
	opts := []board.Option{board.WithOversize(c.NoLimits)}
	if c.Seed != nil {
		opts = append(opts, board.WithSeed(*c.Seed))
	}
	if log != nil {
		opts = append(opts, board.WithLogger(log))
	}
	return opts
}

// Generate validates c and builds its board.
func (c Config) Generate(log logrus.FieldLogger) (*board.Board, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return board.Generate(c.Width, c.Height, c.MineCount, c.AntiMineCount, c.Options(log)...)
}
