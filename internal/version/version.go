// Package version parses and orders the dotted release identifiers used by
// Minecraft server manifests ("1.20", "1.20.4").
//
// Only two or three numeric components are accepted. A missing patch sorts
// below any present patch, so "1.20" < "1.20.0" < "1.20.1".
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned when an identifier is not 2 or 3 dot-separated
// non-negative integers.
var ErrInvalidFormat = errors.New("invalid version format")

// Version is a parsed release identifier.
type Version struct {
	Major uint32
	Minor uint32
	Patch *uint32 // nil when the identifier has two components
}

// Parse parses s into a Version.
func Parse(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return Version{}, fmt.Errorf("%w: %q has %d components, want 2 or 3", ErrInvalidFormat, s, len(parts))
	}

	major, err := parseComponent(s, "major", parts[0])
	if err != nil {
		return Version{}, err
	}
	minor, err := parseComponent(s, "minor", parts[1])
	if err != nil {
		return Version{}, err
	}

	v := Version{Major: major, Minor: minor}
	if len(parts) == 3 {
		patch, err := parseComponent(s, "patch", parts[2])
		if err != nil {
			return Version{}, err
		}
		v.Patch = &patch
	}
	return v, nil
}

// MustParse is like Parse but panics on error. Intended for tests and constants.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func parseComponent(input, name, part string) (uint32, error) {
	// ParseUint accepts a leading '+', manifests never do
	if part == "" || part[0] == '+' {
		return 0, fmt.Errorf("%w: %q has an invalid %s component", ErrInvalidFormat, input, name)
	}
	n, err := strconv.ParseUint(part, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q has an invalid %s component", ErrInvalidFormat, input, name)
	}
	return uint32(n), nil
}

// Compare returns -1, 0 or 1 when v is less than, equal to or greater than o.
func (v Version) Compare(o Version) int {
	if c := cmpUint(v.Major, o.Major); c != 0 {
		return c
	}
	if c := cmpUint(v.Minor, o.Minor); c != 0 {
		return c
	}
	switch {
	case v.Patch == nil && o.Patch == nil:
		return 0
	case v.Patch == nil:
		return -1
	case o.Patch == nil:
		return 1
	}
	return cmpUint(*v.Patch, *o.Patch)
}

// Less reports whether v sorts before o.
func (v Version) Less(o Version) bool { return v.Compare(o) < 0 }

// Equal reports whether v and o have the same components, including patch presence.
func (v Version) Equal(o Version) bool { return v.Compare(o) == 0 }

func (v Version) String() string {
	if v.Patch == nil {
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	}
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, *v.Patch)
}

// CompareStrings parses a and b and compares them.
func CompareStrings(a, b string) (int, error) {
	va, err := Parse(a)
	if err != nil {
		return 0, err
	}
	vb, err := Parse(b)
	if err != nil {
		return 0, err
	}
	return va.Compare(vb), nil
}

func cmpUint(a, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
