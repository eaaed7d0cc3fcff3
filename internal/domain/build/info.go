// Package build carries the version stamped into the hoverpane binary.
package build

import (
	"fmt"
	"strings"
)

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// IsRelease reports whether the binary was built from a tagged version.
func (i Info) IsRelease() bool {
	return i.Version != "" && i.Version != "dev"
}

// String formats the info for `hoverpane --version`. Unknown fields are
// left out.
func (i Info) String() string {
	version := i.Version
	if version == "" {
		version = "dev"
	}
	var extra []string
	if i.Commit != "" && i.Commit != "unknown" {
		commit := i.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		extra = append(extra, commit)
	}
	if i.BuildDate != "" && i.BuildDate != "unknown" {
		extra = append(extra, "built "+i.BuildDate)
	}
	if i.GoVersion != "" {
		extra = append(extra, i.GoVersion)
	}
	if len(extra) == 0 {
		return version
	}
	return fmt.Sprintf("%s (%s)", version, strings.Join(extra, ", "))
}
