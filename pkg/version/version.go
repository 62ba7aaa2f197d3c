// Package version exposes build metadata for the avancement binary.
package version

import "runtime/debug"

// Populated via -ldflags at release build time. Defaults cover `go run`
// and test binaries.
var (
	// Version is the semantic version of the binary.
	Version = "dev"

	// Commit is the VCS revision the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// InitBinaryVersion fills in the VCS revision from the embedded build info
// when ldflags did not set it.
func InitBinaryVersion() {
	if Commit != "none" {
		return
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			Commit = setting.Value

			return
		}
	}
}
