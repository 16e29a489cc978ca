//go:build linux || freebsd

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dendrascience/ufind/internal/fixture"
	"github.com/dendrascience/ufind/version"
)

// NewMountCmd creates the subcommand that serves a fixture tree over FUSE,
// giving ufind a second device to cross.
func NewMountCmd() *cobra.Command {
	l := fixture.DefaultLayout()

	cmd := &cobra.Command{
		Use:   "mount MOUNTPOINT",
		Short: "Serve a read-only fixture tree over FUSE",
		Long: `Mount an in-memory fixture tree at MOUNTPOINT until interrupted.

Place MOUNTPOINT inside another tree and run ufind with and without -x to
see the device boundary in effect.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMount(cmd.Context(), cmd.OutOrStdout(), args[0], l)
		},
	}
	layoutFlags(cmd, &l)
	return cmd
}

func runMount(ctx context.Context, w io.Writer, mountpoint string, l fixture.Layout) error {
	if ctx == nil {
		ctx = context.Background()
	}
	fmt.Fprintf(w, "ufind-seed %s starting...\n", version.Current().String())

	if err := os.MkdirAll(mountpoint, 0o755); err != nil {
		return fmt.Errorf("creating mountpoint: %w", err)
	}

	s, tree, err := fixture.BuildStatic(l)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	logrus.Infof("serving %d files at %s", tree.Unique(), mountpoint)
	if err := fixture.Mount(ctx, mountpoint, s); err != nil {
		return err
	}
	logrus.Info("shutdown complete")
	return nil
}
