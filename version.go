// Package cellgrid is the root of the cellgrid module. The table model lives
// in grid, interaction state in session, and the terminal component in
// tableview.
package cellgrid

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the module version without the leading v.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns Version as a git tag.
func VersionTag() string {
	return "v" + Version()
}

// UserAgent identifies cellgrid tools in trace output and file metadata.
func UserAgent(tool string) string {
	tool = strings.TrimSpace(tool)
	if tool == "" {
		tool = "cellgrid"
	}
	return tool + "/" + Version()
}

// IsSemver reports whether v is a SemVer 2.0.0 version without a v prefix.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
