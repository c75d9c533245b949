package app

import "fmt"

// Version, Commit, and BuildTime are stamped via -ldflags:
//
//	-X github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/app.Version=1.0.0
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns a formatted version string for startup logs and health endpoints.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
