package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dendrascience/ufind/internal/fixture"
	"github.com/dendrascience/ufind/version"
)

// NewSeedCmd creates the root command of the fixture generator. Its
// subcommands write trees full of hard links and symbolic link cycles for
// trying ufind by hand.
func NewSeedCmd() *cobra.Command {
	seedCmd := &cobra.Command{
		Use:     "ufind-seed",
		Short:   "Generate directory trees for exercising ufind",
		Version: version.Current().String(),
	}

	seedCmd.AddCommand(NewTreeCmd())
	seedCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version and build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return version.Current().Fprint(cmd.OutOrStdout(), "ufind-seed")
		},
	})
	if mountCmd := NewMountCmd(); mountCmd != nil {
		seedCmd.AddCommand(mountCmd)
	}
	return seedCmd
}

// layoutFlags registers the layout flags shared by the seed subcommands.
func layoutFlags(cmd *cobra.Command, l *fixture.Layout) {
	cmd.Flags().IntVarP(&l.Files, "count", "c", l.Files, "Number of distinct files to generate")
	cmd.Flags().IntVar(&l.Buckets, "buckets", l.Buckets, "Number of directories to spread files over")
	cmd.Flags().IntVar(&l.HardLinks, "hard-links", l.HardLinks, "Number of extra hard links to existing files")
	cmd.Flags().IntVar(&l.DirLinks, "dir-links", l.DirLinks, "Number of symbolic links back into the tree")
	cmd.Flags().IntVar(&l.FileLinks, "file-links", l.FileLinks, "Number of symbolic links to existing files")
	cmd.Flags().Uint64Var(&l.Seed, "seed", l.Seed, "Seed for choosing link targets")
}

// NewTreeCmd creates the subcommand that writes a fixture tree to disk.
func NewTreeCmd() *cobra.Command {
	var (
		outputPath string
		verbose    bool
	)
	l := fixture.DefaultLayout()

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Write a tree with hard links and symbolic link cycles",
		Long: `Write a directory tree for exercising ufind.

Files are spread over two levels of bucket directories, each holding a single
UUID line. Extra hard links, symbolic links to the root or other buckets, and
symbolic links to files are added on top, so running ufind over the tree must
print exactly --count paths.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(cmd.OutOrStdout(), outputPath, l, verbose)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&l.Workers, "jobs", "j", l.Workers, "Number of concurrent writers")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	layoutFlags(cmd, &l)

	cmd.MarkFlagRequired("output")

	return cmd
}

func runTree(w io.Writer, outputPath string, l fixture.Layout, verbose bool) error {
	if verbose {
		fmt.Fprintf(w, "Generating %d files in %s\n", l.Files, outputPath)
	}
	if _, err := os.Stat(outputPath); err == nil {
		entries, err := os.ReadDir(outputPath)
		if err != nil {
			return err
		}
		if len(entries) > 0 {
			return fmt.Errorf("output directory %s is not empty", outputPath)
		}
	}

	tree, err := fixture.Build(outputPath, l)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(w, "Created %d files across %d directories\n", tree.Unique(), len(tree.Buckets))
		fmt.Fprintf(w, "Hard links: %d, directory links: %d, file links: %d\n",
			len(tree.HardLinks), len(tree.DirLinks), len(tree.FileLinks))
	}
	return nil
}
