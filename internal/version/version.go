package version

import (
	"fmt"
	"runtime"
)

// Version is the logshift version, overridden at build time with
// -ldflags "-X github.com/skalene/logshift/internal/version.Version=...".
var Version = "DEV"

// BuildDate is the build timestamp, also injected at build time.
var BuildDate = ""

// Info returns a human-readable version string.
func Info() string {
	out := Version
	if BuildDate != "" {
		out = fmt.Sprintf("%s (%s)", out, BuildDate)
	}
	return fmt.Sprintf("%s, Go Version: %s", out, runtime.Version())
}
