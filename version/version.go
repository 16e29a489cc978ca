package version

import (
	"fmt"
	"io"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/dendrascience/ufind/version.Version=..."
// (likewise Commit and Date). Empty values fall back to the build info.
var (
	Version string
	Commit  string
	Date    string
)

// shortCommit is how many characters of the commit hash are displayed.
const shortCommit = 7

// Info describes the running build.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Current returns the build description. Values set at link time win over
// the module build info.
func Current() Info {
	return fromBuild(Info{Version: Version, Commit: Commit, Date: Date}, readBuildInfo)
}

func readBuildInfo() (*debug.BuildInfo, bool) { return debug.ReadBuildInfo() }

func fromBuild(info Info, read func() (*debug.BuildInfo, bool)) Info {
	if bi, ok := read(); ok {
		if info.Version == "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch {
			case s.Key == "vcs.revision" && info.Commit == "":
				info.Commit = s.Value
			case s.Key == "vcs.time" && info.Date == "":
				info.Date = s.Value
			}
		}
	}
	if info.Version == "" {
		info.Version = "development"
	}
	return info
}

// ShortCommit returns the abbreviated commit, or "" when it is unknown.
func (i Info) ShortCommit() string {
	if len(i.Commit) > shortCommit {
		return i.Commit[:shortCommit]
	}
	return i.Commit
}

// String formats the version with the short commit and build date when known.
func (i Info) String() string {
	switch c := i.ShortCommit(); {
	case c != "" && i.Date != "":
		return fmt.Sprintf("%s (%s, built %s)", i.Version, c, i.Date)
	case c != "":
		return fmt.Sprintf("%s (%s)", i.Version, c)
	}
	return i.Version
}

// Fprint writes the report shown by the version subcommands.
func (i Info) Fprint(w io.Writer, app string) error {
	_, err := fmt.Fprintf(w, "%s version %s\nCommit: %s\nBuild Date: %s\n",
		app, i, orUnknown(i.Commit), orUnknown(i.Date))
	return err
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
