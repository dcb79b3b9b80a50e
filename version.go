// Package commasplit splits a line into comma-separated tokens after removing
// spaces. The work is done by the chars and tokenize packages; this package
// only carries the module version.
package commasplit

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the module version in SemVer format (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns Version with a leading `v`.
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

// Banner returns "<program> <tag>", e.g. "commasplit-demo v0.1.0".
func Banner(program string) string {
	program = strings.TrimSpace(program)
	if program == "" {
		return VersionTag()
	}
	return program + " " + VersionTag()
}
