// Package version reports build metadata for fleet --version.
package version

import (
	"fmt"
	"runtime/debug"
)

// Commit and BuildTime are set with -ldflags "-X". When left unset they are
// filled from the VCS stamp the go toolchain embeds in the binary.
var (
	Commit    = "unknown"
	BuildTime = "unknown"
)

const (
	unknown        = "unknown"
	shortCommitLen = 7
)

// build is the metadata shown by --version.
type build struct {
	commit string
	time   string
	dirty  bool
}

// String returns "fleet dev (commit: <c>, built: <t>)".
func String() string {
	b := build{commit: Commit, time: BuildTime}
	if info, ok := debug.ReadBuildInfo(); ok {
		b = b.withSettings(info.Settings)
	}
	return b.String()
}

func (b build) String() string {
	commit := b.commit
	if len(commit) > shortCommitLen {
		commit = commit[:shortCommitLen]
	}
	if b.dirty {
		commit += "+dirty"
	}
	return fmt.Sprintf("fleet dev (commit: %s, built: %s)", commit, b.time)
}

// withSettings fills unset fields from vcs.revision and vcs.time.
// vcs.modified only marks a commit that came from the stamp.
func (b build) withSettings(settings []debug.BuildSetting) build {
	fromStamp := b.commit == unknown
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if fromStamp && s.Value != "" {
				b.commit = s.Value
			}
		case "vcs.time":
			if b.time == unknown && s.Value != "" {
				b.time = s.Value
			}
		case "vcs.modified":
			b.dirty = fromStamp && b.commit != unknown && s.Value == "true"
		}
	}
	return b
}
