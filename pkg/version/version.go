// Package version reports the build version of socialpulse.
package version

import "runtime/debug"

// version is set at build time:
//
//	go build -ldflags "-X github.com/rshade/socialpulse/pkg/version.version=v1.2.3"
//
//nolint:gochecknoglobals // Overridden by the linker.
var version = ""

const devVersion = "dev"

// GetVersion returns the linker-provided version, then the module version from
// the build info, then "dev".
func GetVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return devVersion
}
