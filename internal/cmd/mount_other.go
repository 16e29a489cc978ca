//go:build !linux && !freebsd

package cmd

import "github.com/spf13/cobra"

// NewMountCmd returns nil where FUSE is not supported.
func NewMountCmd() *cobra.Command { return nil }
