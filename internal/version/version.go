// Package version holds the build version, overridable at link time:
//
//	go build -ldflags "-X microtpct/internal/version.Version=v1.2.3" ./cmd/microtpct
package version

var Version = "dev"
