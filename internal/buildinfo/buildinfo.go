// Package buildinfo exposes version, commit, and build date set via ldflags.
package buildinfo

import "fmt"

// These variables are set at build time via -ldflags -X.
var (
	// Version is the semantic version or git describe output.
	Version = "dev"

	// Commit is the short git commit SHA.
	Commit = "unknown"

	// Date is the UTC build timestamp in RFC3339 format.
	Date = "unknown"
)

// Info holds structured build information suitable for serialization.
type Info struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
}

// GetInfo returns the current build information as a structured type.
func GetInfo() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("taskroll v%s (commit: %s, built: %s)", i.Version, i.Commit, i.Date)
}
