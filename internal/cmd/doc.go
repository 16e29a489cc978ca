// Package cmd provides the command-line interface implementation for ufind.
//
// It uses the Cobra library for command structure and Fang for styling.
//
// The package builds two command trees:
//   - root: the ufind command itself, listing unique files under its arguments
//   - seed: fixture generation for manual testing, with subcommands
//     tree (write a tree to disk) and mount (serve a tree over FUSE)
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. Diagnostics go through a logrus
// logger configured from the -q and -v flags.
package cmd
