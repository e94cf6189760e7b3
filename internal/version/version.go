// Package version provides build-time version information for abscrub.
//
// Variables in this package are set at build time using ldflags:
//
//	go build -ldflags "-X github.com/jmylchreest/abscrub/internal/version.Version=1.0.0 ..."
package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/jmylchreest/abscrub/pkg/cleaner/abstract"
)

// Build-time variables set via ldflags
var (
	// Version is the semantic version (e.g., "1.0.0" or "1.0.0-dev.5+abc123")
	Version = "dev"

	// Commit is the git commit SHA
	Commit = "unknown"

	// Dirty indicates if the working tree had uncommitted changes
	Dirty = "false"

	// BuildDate is the UTC build timestamp in RFC3339 format
	BuildDate = "unknown"
)

// Info contains structured version information
type Info struct {
	Version           string `json:"version"`
	Commit            string `json:"commit"`
	Dirty             bool   `json:"dirty"`
	BuildDate         string `json:"build_date"`
	PatternVersion    string `json:"pattern_version"`
	ExceptionsVersion string `json:"exceptions_version"`
	GoVersion         string `json:"go_version"`
	Platform          string `json:"platform"`
}

// Get returns the current version information
func Get() Info {
	return Info{
		Version:           Version,
		Commit:            Commit,
		Dirty:             Dirty == "true",
		BuildDate:         BuildDate,
		PatternVersion:    abstract.PatternVersion,
		ExceptionsVersion: abstract.FundingExceptions.Version(),
		GoVersion:         runtime.Version(),
		Platform:          fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a single-line version string
func String() string {
	v := Version
	if Dirty == "true" {
		v += "-dirty"
	}
	return v
}

// Full returns a multi-line version string with all details
func Full() string {
	info := Get()
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("abscrub %s\n", String()))
	sb.WriteString(fmt.Sprintf("  Commit:     %s\n", info.Commit))
	if info.Dirty {
		sb.WriteString("  Dirty:      yes\n")
	}
	sb.WriteString(fmt.Sprintf("  Built:      %s\n", info.BuildDate))
	sb.WriteString(fmt.Sprintf("  Patterns:   %s (funding exceptions %s)\n", info.PatternVersion, info.ExceptionsVersion))
	sb.WriteString(fmt.Sprintf("  Go version: %s\n", info.GoVersion))
	sb.WriteString(fmt.Sprintf("  OS/Arch:    %s", info.Platform))
	return sb.String()
}
