// Package version holds build metadata, set at link time:
//
//	go build -ldflags "-X github.com/mj1618/xrandroll/internal/version.Version=v0.3.0"
package version

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// String formats the build metadata for `xrandroll --version`.
func String() string {
	return Version + " (commit: " + Commit + ", built: " + BuildDate + ")"
}
