package manifest

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/mod/semver"
)

// release[.minor[.patch]] with an optional aN, bN or rcN pre-release,
// an optional .postN and an optional .devN.
var versionPattern = regexp.MustCompile(
	`^v?(\d+(?:\.\d+){0,2})` +
		`(?:[-.]?(a|alpha|b|beta|rc|c)\.?(\d+))?` +
		`(?:[-.]?post\.?(\d+))?` +
		`(?:[-.]?dev\.?(\d+))?$`)

var preReleaseNames = map[string]string{
	"a":     "a",
	"alpha": "a",
	"b":     "b",
	"beta":  "b",
	"c":     "rc",
	"rc":    "rc",
}

// SemVer maps a package version such as "0.1.0" or "1.2rc1" to its
// canonical semantic version ("v0.1.0", "v1.2.0-rc1").
//
// A dev release of a plain version becomes the pre-release "0.dev.N" so it
// sorts before any a, b or rc. Post releases become build metadata, which
// the canonical form drops. Dev releases of pre or post releases have no
// semver equivalent and are rejected.
func SemVer(version string) (string, error) {
	m := versionPattern.FindStringSubmatch(strings.TrimSpace(version))
	if m == nil {
		return "", fmt.Errorf("%q is not a version identifier", version)
	}
	pre, preN, post, dev := m[2], m[3], m[4], m[5]
	if dev != "" && (pre != "" || post != "") {
		return "", fmt.Errorf("%q: dev releases are only supported on plain versions", version)
	}

	release := strings.Split(m[1], ".")
	for len(release) < 3 {
		release = append(release, "0")
	}

	v := "v" + strings.Join(release, ".")
	switch {
	case pre != "":
		v += "-" + preReleaseNames[pre] + preN
	case dev != "":
		v += "-0.dev." + dev
	}
	if post != "" {
		v += "+post." + post
	}

	if !semver.IsValid(v) {
		return "", fmt.Errorf("%q is not a version identifier", version)
	}
	return semver.Canonical(v), nil
}

// CompareVersions orders two package versions like semver.Compare.
func CompareVersions(a, b string) (int, error) {
	va, err := SemVer(a)
	if err != nil {
		return 0, err
	}
	vb, err := SemVer(b)
	if err != nil {
		return 0, err
	}
	return semver.Compare(va, vb), nil
}
