package version

// version is set at build time with:
// -ldflags "-X github.com/cbodonnell/drizzle/pkg/version.version=v0.1.0"
var version = "dev"

// Get returns the build version.
func Get() string {
	return version
}
