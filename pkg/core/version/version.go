// ============================================================================
// botparse - Bot Command Parser
// ============================================================================
//
// Package:     version
// Description: Build version information, overridable via -ldflags
// Author:      msto63
// Created:     2026-02-07
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Set at build time:
//
//	go build -ldflags "-X github.com/msto63/botparse/pkg/core/version.Version=1.2.0"
var (
	Version = "0.1.0"
	Commit  = "unknown"
	Date    = "unknown"
)

// BuildInfo describes the running binary
type BuildInfo struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Date      string `json:"date" yaml:"date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Info returns the build information of the running binary
func Info() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one-line version banner
func String() string {
	return fmt.Sprintf("botparse %s (commit %s, built %s)", Version, Commit, Date)
}
