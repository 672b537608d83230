package app

import (
	"fmt"
	"runtime/debug"
)

// Build metadata, set with -ldflags "-X github.com/heartmarshall/yatube-backend/internal/app.Version=1.2.0".
// Commit falls back to the VCS revision stamped by the Go toolchain.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion formats the build metadata for the startup log and /health.
func BuildVersion() string {
	return formatVersion(Version, Commit, BuildTime, readBuildInfo)
}

func readBuildInfo() (*debug.BuildInfo, bool) { return debug.ReadBuildInfo() }

func formatVersion(version, commit, built string, info func() (*debug.BuildInfo, bool)) string {
	if commit == "unknown" {
		if bi, ok := info(); ok {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" && s.Value != "" {
					commit = s.Value
					if len(commit) > 12 {
						commit = commit[:12]
					}
				}
			}
		}
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, built)
}
