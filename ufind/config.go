package ufind

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// MaxPathLen is the default limit on a constructed path, matching PATH_MAX.
const MaxPathLen = 4096

// Strategy selects how pending work is scheduled.
type Strategy int

const (
	// StrategyDepthFirst keeps an explicit stack and emits in the same order
	// as recursive descent.
	StrategyDepthFirst Strategy = iota
	// StrategyWaves processes the whole frontier one level at a time.
	StrategyWaves
)

func (s Strategy) String() string {
	switch s {
	case StrategyDepthFirst:
		return "depth"
	case StrategyWaves:
		return "waves"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy accepts "depth" or "waves" and a few aliases.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "depth", "depth-first", "dfs", "recursive":
		return StrategyDepthFirst, nil
	case "waves", "wave", "lists", "queue", "bfs":
		return StrategyWaves, nil
	}
	return 0, fmt.Errorf("unknown strategy %q (want depth or waves)", name)
}

// Config controls a single run.
type Config struct {
	// Separator terminates every emitted path.
	Separator byte
	// OneFileSystem skips entries on another device than the argument they
	// were reached from.
	OneFileSystem bool
	Strategy      Strategy
	// MaxPathLen bounds constructed child paths; 0 means MaxPathLen.
	MaxPathLen int
	// Capacity bounds the number of entries each registry container holds;
	// 0 means no limit beyond the handle space.
	Capacity int
}

// DefaultConfig returns newline separated output, crossing devices, depth first.
func DefaultConfig() Config {
	return Config{Separator: '\n', MaxPathLen: MaxPathLen}
}

// Option configures a Finder.
type Option func(*Finder)

// WithFilesystem replaces the host filesystem.
func WithFilesystem(fsys Filesystem) Option {
	return func(f *Finder) {
		if fsys != nil {
			f.fs = fsys
		}
	}
}

// WithLogger routes diagnostics to l.
func WithLogger(l logrus.Ext1FieldLogger) Option {
	return func(f *Finder) {
		if l != nil {
			f.log = l
		}
	}
}

// WithOutput sets where emitted paths are written.
func WithOutput(w io.Writer) Option {
	return func(f *Finder) {
		if w != nil {
			f.w = w
		}
	}
}
