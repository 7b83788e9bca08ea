package version

import "fmt"

// Set at build time with -ldflags "-X wrequest/internal/version.Version=...".
var (
	Version   = "dev"
	BuildDate = "unknown"
	Commit    = "unknown"
)

func Full() string {
	return fmt.Sprintf("wreq %s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// UserAgent is the User-Agent header value sent by wreq.
func UserAgent() string {
	if Version == "" {
		return "wreq"
	}
	return "wreq/" + Version
}
