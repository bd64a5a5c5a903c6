// Package buildinfo carries version metadata stamped at build time.
package buildinfo

import "fmt"

// Set via -ldflags at release build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns the one-line version report printed by `webforge version`.
func String() string {
	return fmt.Sprintf("webforge %s (commit %s, built %s)", Version, Commit, Date)
}
