// Command ufind-seed generates directory trees for exercising ufind.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/dendrascience/ufind/internal/cmd"
	"github.com/dendrascience/ufind/version"
)

func main() {
	info := version.Current()
	if err := fang.Execute(context.Background(), cmd.NewSeedCmd(),
		fang.WithVersion(info.Version),
		fang.WithCommit(info.Commit),
	); err != nil {
		os.Exit(1)
	}
}
