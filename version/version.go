package version

import "fmt"

const (
	Major = 0
	Minor = 1
	Patch = 0
	Meta  = "unstable"
)

// Set at build time via -ldflags.
var (
	Commit = ""
	Date   = ""
)

var Version = fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)

var VersionWithMeta = func() string {
	v := Version
	if Meta != "" {
		v += "-" + Meta
	}
	return v
}()
