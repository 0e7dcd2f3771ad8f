// Package version carries build metadata injected at link time:
//
//	go build -ldflags "-X .../pkg/version.Commit=$(git rev-parse --short HEAD) \
//	                   -X .../pkg/version.BuildTime=$(TZ=Asia/Manila date +%FT%T)"
package version

// Set via -ldflags; defaults cover plain `go build`.
var (
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Info describes the running build.
type Info struct {
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
}

// Get returns the build info.
func Get() Info {
	return Info{Commit: Commit, BuildTime: BuildTime}
}
