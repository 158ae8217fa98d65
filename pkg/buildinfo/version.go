// Package buildinfo holds version information stamped in at link time:
//
//	go build -ldflags "-X github.com/matzehuels/protodiagram/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/protodiagram/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/protodiagram/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/protodiagram
package buildinfo

import "fmt"

var (
	Version = "dev"     // semantic version, e.g. v0.3.0
	Commit  = "none"    // git commit SHA
	Date    = "unknown" // build timestamp (RFC 3339)
)

// Info is the JSON form served by the HTTP health check.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Get returns the current build information.
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (commit %s, built %s)\n", Version, Commit, Date)
}
