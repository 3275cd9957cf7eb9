package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/sddkit/sddkit/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/sddkit/sddkit/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/sddkit/sddkit/internal/version.Date={{.Date}}
)
