package app

import "fmt"

// Build metadata printed by `wordlist --version` and logged at startup.
// Release builds stamp it with
//
//	-ldflags "-X github.com/aruytehno/english-trainer/internal/app.Version=v1.2.0 -X ...Commit=$(git rev-parse --short HEAD)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion renders the build metadata on one line.
func BuildVersion() string {
	return fmt.Sprintf("wordlist %s (%s, %s)", Version, Commit, BuildTime)
}
