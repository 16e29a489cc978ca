// Package version provides version information and build metadata for ufind.
//
// Version, Commit and Date are set at build time with -ldflags, for example
//
//	-ldflags "-X github.com/dendrascience/ufind/version.Version=v1.0.0 -X github.com/dendrascience/ufind/version.Commit=abc1234"
//
// and otherwise fall back to the module build info from debug.ReadBuildInfo,
// then to development defaults. Both ufind and ufind-seed report the same
// values through their --version flags.
package version
