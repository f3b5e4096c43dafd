package version

import "fmt"

const Name = "was"

// Set at build time through -ldflags "-X was/internal/version.Version=...".
var (
	Version   = "dev"
	BuildDate = "unknown"
	Commit    = "unknown"
)

func GetVersion() string {
	return fmt.Sprintf("%s %s (commit: %s, built: %s)", Name, Version, Commit, BuildDate)
}

func GetShortVersion() string {
	return Version
}
