package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/devw-tools/devw/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/devw-tools/devw/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/devw-tools/devw/internal/version.Date={{.Date}}
)
