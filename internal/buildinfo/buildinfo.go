// Package buildinfo holds build-time information like the version.
// This is a separate package so that other packages can import it without
// worrying about introducing circular dependencies.
package buildinfo

import (
	"strings"

	"github.com/coreos/go-semver/semver"
)

// Updated by linker flags during build.
var (
	Version   string = "0.0.0"
	GitCommit string
	BuiltBy   string
)

// String renders the build information for --version output. A version that
// does not parse as semver is shown verbatim.
func String() string {
	var elems []string

	if Version != "" {
		if v, err := semver.NewVersion(strings.TrimPrefix(Version, "v")); err == nil {
			elems = append(elems, "v"+v.String())
		} else {
			elems = append(elems, Version)
		}
	} else {
		elems = append(elems, "dev")
	}
	if GitCommit != "" {
		elems = append(elems, "commit "+GitCommit)
	}
	if BuiltBy != "" {
		elems = append(elems, "built by "+BuiltBy)
	}

	return strings.Join(elems, ", ")
}
