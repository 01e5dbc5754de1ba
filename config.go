package aoc

import (
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Part selects which half of a day's puzzle to run.
type Part int

const (
	Part1 Part = 1
	Part2 Part = 2
)

// ParsePart returns Part2 for "part2" and Part1 for anything else,
// including the empty string.
func ParsePart(s string) Part {
	if s == "part2" {
		return Part2
	}
	return Part1
}

func (p Part) String() string {
	return "part" + p.Suffix()
}

// Suffix is the part as it appears in solver method names, e.g. "2" in D4p2.
func (p Part) Suffix() string {
	return strconv.Itoa(int(p))
}

func (p *Part) UnmarshalText(b []byte) error {
	*p = ParsePart(string(b))
	return nil
}

// Set and Type let a Part be used as a command line flag. Besides the
// ParsePart forms, the flag takes the method suffixes "1" and "2".
func (p *Part) Set(s string) error {
	if s == "2" {
		*p = Part2
		return nil
	}
	*p = ParsePart(s)
	return nil
}

func (p *Part) Type() string { return "part" }

// Config controls what a Runner runs.
type Config struct {
	// Day to run; -1 runs every day.
	Day int `env:"AOC_DAY" envDefault:"-1"`
	// Part to run, unless All is set.
	Part Part `env:"part" envDefault:"part1"`
	All  bool `env:"AOC_ALL_PARTS"`

	InputDir   string `env:"AOC_INPUT_DIR" envDefault:"."`
	OnlySample bool   `env:"AOC_SAMPLE"`
	SkipSample bool   `env:"AOC_SKIP_SAMPLE"`
	Debug      bool   `env:"AOC_DEBUG"`
}

// LoadConfig loads a Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// NewLogger returns a console logger writing to stderr.
func NewLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.DisableStacktrace = true
	return cfg.Build()
}
