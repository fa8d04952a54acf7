// Package version provides build-time version information.
//
// Variables are set at build time via ldflags:
//
//	go build -ldflags "-X github.com/rickgao/playmoney/internal/version.Version=0.3.0 \
//	                   -X github.com/rickgao/playmoney/internal/version.Commit=$(git rev-parse --short HEAD) \
//	                   -X github.com/rickgao/playmoney/internal/version.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package version

// Product names this client in the User-Agent header.
const Product = "playmoney-go"

// Build-time variables (set via ldflags)
var (
	// Version is the semantic version (e.g., "0.3.0")
	Version = "dev"

	// Commit is the git commit hash (short form)
	Commit = "unknown"

	// BuildTime is the UTC build timestamp (ISO 8601)
	BuildTime = "unknown"
)

// String returns a formatted version string.
func String() string {
	return Version + " (" + Commit + ") built " + BuildTime
}

// UserAgent returns the User-Agent sent with every API request.
func UserAgent() string {
	return Product + "/" + Version
}
