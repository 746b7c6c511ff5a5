// Package version provides build and version information.
package version

// Build information set via ldflags, for example:
//
//	go build -ldflags "-X github.com/tessro/tripid/internal/version.Version=v0.1.0" ./cmd/tripid
var (
	// Version is the semantic version.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)
