package domain

import (
	"regexp"
	"strings"
)

// LatestSpecifier selects the current stable release.
const LatestSpecifier = "latest"

var specifierPattern = regexp.MustCompile(`^v?(\d+)\.(\d+)(?:\.(\d+))?$`)

// Specifier is a validated version request.
type Specifier struct {
	// Raw is the trimmed input.
	Raw    string
	Latest bool
	Major  string
	Minor  string
	Patch  string
}

// HasPatch reports whether the specifier pins a patch release.
func (s Specifier) HasPatch() bool {
	return s.Patch != ""
}

// MajorMinor returns the "major.minor" line of the specifier.
func (s Specifier) MajorMinor() string {
	return s.Major + "." + s.Minor
}

// IsLatest reports whether raw asks for the latest stable release.
func IsLatest(raw string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), LatestSpecifier)
}

// ParseSpecifier validates raw and splits it into its components.
// It returns an *InvalidSpecifierError naming raw when it matches no accepted shape.
func ParseSpecifier(raw string) (Specifier, error) {
	if IsLatest(raw) {
		return Specifier{Raw: LatestSpecifier, Latest: true}, nil
	}

	cleaned := strings.TrimSpace(raw)
	m := specifierPattern.FindStringSubmatch(cleaned)
	if m == nil {
		return Specifier{}, &InvalidSpecifierError{Input: raw}
	}

	return Specifier{
		Raw:   cleaned,
		Major: m[1],
		Minor: m[2],
		Patch: m[3],
	}, nil
}

// EnsureVPrefix prepends "v" to version unless it already starts with one.
func EnsureVPrefix(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
