package version

import (
	"fmt"
	"runtime/debug"
)

// Release builds stamp these with
// -ldflags "-X github.com/faizmokh/todo/internal/version.Version=v0.2.0".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// readBuildInfo is swapped out in tests.
var readBuildInfo = debug.ReadBuildInfo

// Info renders the --version line. Binaries built with `go install` carry no
// ldflags, so the module version and VCS stamps fill in whatever was left at
// its default.
func Info() string {
	version, commit, date := Version, Commit, Date
	if info, ok := readBuildInfo(); ok {
		if version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
		for _, setting := range info.Settings {
			switch {
			case setting.Key == "vcs.revision" && commit == "none":
				commit = shortRevision(setting.Value)
			case setting.Key == "vcs.time" && date == "unknown":
				date = setting.Value
			}
		}
	}
	return fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}
