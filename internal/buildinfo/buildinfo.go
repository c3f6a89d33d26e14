// Package buildinfo holds version information injected at build time via ldflags:
//
//	-X github.com/onetouch-io/onetouch/internal/buildinfo.Version=1.2.0
package buildinfo

import "fmt"

var (
	Version    = "dev"
	Codename   = "unknown"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// Summary returns a one-line description for logs.
func Summary() string {
	return fmt.Sprintf("%s (%s, commit %s, built %s)", Version, Codename, CommitHash, BuildDate)
}
