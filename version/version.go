// Package version holds build information, populated at build time via
// -ldflags.
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the release version.
	Version = "unknown"
	// GitCommit is the git commit the binary was built from.
	GitCommit = "unknown"
	// BuildDate is the build timestamp.
	BuildDate = "unknown"
	// GoVersion is the Go toolchain version used for the build.
	GoVersion = runtime.Version()
)

// String formats a multiline version report.
func String() string {
	return fmt.Sprintf("Version:    %s\nGit commit: %s\nBuild date: %s\nGo version: %s",
		Version, GitCommit, BuildDate, GoVersion)
}
