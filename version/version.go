// Package version holds build information injected using
// -ldflags "-X github.com/TeamNorCal/ledarray/version.GitHash=... -X github.com/TeamNorCal/ledarray/version.BuildTime=..."
package version

var (
	// BuildTime is the UTC time the binary was built
	BuildTime string

	// GitHash is the commit the binary was built from
	GitHash string
)
