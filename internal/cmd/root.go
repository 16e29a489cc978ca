package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dendrascience/ufind/ufind"
	"github.com/dendrascience/ufind/version"
)

const (
	// envUseLists selects the wave strategy when set to any non-empty value.
	envUseLists = "UFIND_USE_LISTS"
	// envStrategy names the strategy explicitly.
	envStrategy = "UFIND_STRATEGY"
)

// ErrNoPaths is returned when ufind is invoked without path arguments.
var ErrNoPaths = errors.New("at least one path is required")

type findOptions struct {
	zero      bool
	quiet     bool
	verbose   int
	oneFS     bool
	count     bool
	strategy  string
	lookupEnv func(string) (string, bool)
}

// NewRootCmd creates and returns the root cobra command for the ufind CLI.
func NewRootCmd() *cobra.Command {
	opts := findOptions{lookupEnv: os.LookupEnv}

	rootCmd := &cobra.Command{
		Use:   "ufind [flags] <path> [..<path>]",
		Short: "ufind - list every file under the given paths exactly once",
		Long: `ufind walks each path and prints the canonical absolute path of every
regular file it finds, once per file.

Files are identified by device and inode, so hard links to a file that was
already printed are suppressed. Symbolic links are followed, and a directory
reached a second time is not entered again, so link cycles terminate.

Errors on individual paths are reported on stderr and do not stop the walk.

Environment:
  UFIND_STRATEGY   traversal strategy, depth or waves
  UFIND_USE_LISTS  any non-empty value selects the waves strategy`,
		Version: version.Current().String(),
		// fang silences cobra's usage output, so a bare invocation prints it here
		SilenceUsage: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
				return ErrNoPaths
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, args, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.zero, "zero", "z", false, "Separate entries with \\0 instead of \\n")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress all diagnostics")
	flags.CountVarP(&opts.verbose, "verbose", "v", "Print more diagnostics (repeat up to 3 times)")
	flags.BoolVarP(&opts.oneFS, "one-file-system", "x", false, "Skip entries on other devices than their argument")
	flags.BoolVarP(&opts.count, "count", "c", false, "Print the number of unique files instead of their paths")
	flags.StringVar(&opts.strategy, "strategy", "", "Traversal strategy: depth or waves (default depth)")

	return rootCmd
}

func runFind(cmd *cobra.Command, args []string, opts findOptions) error {
	strategy, err := resolveStrategy(opts.strategy, opts.lookupEnv)
	if err != nil {
		return err
	}

	log := newLogger(cmd.ErrOrStderr(), opts.quiet, opts.verbose)
	log.Debugf("ufind %s, %s strategy", version.Current().Version, strategy)

	cfg := ufind.DefaultConfig()
	if opts.zero {
		cfg.Separator = 0
	}
	cfg.OneFileSystem = opts.oneFS
	cfg.Strategy = strategy

	var out io.Writer = cmd.OutOrStdout()
	if opts.count {
		out = io.Discard
	}

	f := ufind.New(cfg, ufind.WithLogger(log), ufind.WithOutput(out))
	defer func() {
		if err := f.Close(); err != nil {
			log.Errorf("releasing registry: %v", err)
		}
	}()

	if err := f.Run(args); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	st := f.Stats()
	log.Infof("%d files, %d duplicates, %d directories revisited, %d skipped, %d errors",
		st.Emitted, st.Duplicates, st.Revisits, st.Skipped, st.Errors)
	if opts.count {
		return printCount(cmd.OutOrStdout(), st)
	}
	return nil
}

// resolveStrategy picks the strategy from the flag, then the environment.
func resolveStrategy(flag string, lookupEnv func(string) (string, bool)) (ufind.Strategy, error) {
	if flag != "" {
		return ufind.ParseStrategy(flag)
	}
	if lookupEnv == nil {
		return ufind.StrategyDepthFirst, nil
	}
	if name, ok := lookupEnv(envStrategy); ok && name != "" {
		s, err := ufind.ParseStrategy(name)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", envStrategy, err)
		}
		return s, nil
	}
	if v, ok := lookupEnv(envUseLists); ok && v != "" {
		return ufind.StrategyWaves, nil
	}
	return ufind.StrategyDepthFirst, nil
}
