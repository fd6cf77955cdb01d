package version

import (
	"fmt"
	"strings"
	"sync"
)

// buildCharacters are the characters allowed in appBuild
const buildCharacters = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-"

const (
	appMajor uint = 0
	appMinor uint = 1
	appPatch uint = 0
)

// appBuild is set at link time with
// '-ldflags "-X github.com/danlabs/danwallet/version.appBuild=foo"'.
// It is ignored unless it only holds buildCharacters.
var appBuild string

var (
	version     string
	versionOnce sync.Once
)

// Version returns the danwallet version as a semver string
func Version() string {
	versionOnce.Do(func() {
		version = formatVersion(appBuild)
	})
	return version
}

func formatVersion(build string) string {
	formatted := fmt.Sprintf("%d.%d.%d", appMajor, appMinor, appPatch)
	if isValidBuild(build) {
		formatted += "-" + build
	}
	return formatted
}

func isValidBuild(build string) bool {
	return build != "" && strings.Trim(build, buildCharacters) == ""
}
