// Package version exposes hari's build metadata.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set at link time with
// -ldflags "-X github.com/faizmokh/hari/internal/version.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

const shortCommitLen = 12

// Info returns "<version> (commit <sha>, built <date>)". Fields left unset by
// -ldflags fall back to the build info that go install embeds.
func Info() string {
	version, commit, date := resolve(debug.ReadBuildInfo)
	return fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}

// Banner is the line printed by `hari version`.
func Banner() string {
	return "hari " + Info()
}

func resolve(read func() (*debug.BuildInfo, bool)) (version, commit, date string) {
	version, commit, date = Version, Commit, Date

	info, ok := read()
	if !ok || info == nil {
		return version, commit, date
	}

	if version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if commit == "none" && setting.Value != "" {
				commit = setting.Value
				if len(commit) > shortCommitLen {
					commit = commit[:shortCommitLen]
				}
			}
		case "vcs.time":
			if date == "unknown" && setting.Value != "" {
				date = setting.Value
			}
		}
	}
	return version, commit, date
}
