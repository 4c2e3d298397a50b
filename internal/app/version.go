package app

import (
	"fmt"
	"runtime/debug"
)

// Overridden with -ldflags "-X github.com/heartmarshall/quiz-backend/internal/app.Version=v1.2.0".
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion describes the running binary. Commit and build time fall
// back to the VCS stamp embedded by the go tool.
func BuildVersion() string {
	return buildVersion(Version, Commit, BuildTime, readVCS)
}

func buildVersion(version, commit, built string, vcs func() (string, string)) string {
	if commit == "" || built == "" {
		rev, at := vcs()
		if commit == "" {
			commit = rev
		}
		if built == "" {
			built = at
		}
	}
	if commit == "" {
		return version
	}
	if len(commit) > 12 {
		commit = commit[:12]
	}
	if built == "" {
		return fmt.Sprintf("%s (%s)", version, commit)
	}
	return fmt.Sprintf("%s (%s, %s)", version, commit, built)
}

func readVCS() (rev, at string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.time":
			at = s.Value
		}
	}
	return rev, at
}
