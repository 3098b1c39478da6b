// Package version exposes the postview build version.
package version

import (
	"github.com/Masterminds/semver/v3"
)

// defaultVersion is reported when no version was injected at build time.
const defaultVersion = "0.0.0-dev"

// version is set at build time via:
//
//	-ldflags "-X github.com/rshade/postview/pkg/version.version=1.2.3"
//
//nolint:gochecknoglobals // Populated by the linker.
var version = defaultVersion

// GetVersion returns the build version string without a leading "v".
// Values that are not valid semver fall back to the development version.
func GetVersion() string {
	v, err := semver.NewVersion(version)
	if err != nil {
		return defaultVersion
	}
	return v.String()
}

// IsDevelopment reports whether the binary was built without a release version.
func IsDevelopment() bool {
	v, err := semver.NewVersion(GetVersion())
	if err != nil {
		return true
	}
	return v.Prerelease() == "dev"
}
