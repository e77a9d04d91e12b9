package provider

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/handiism/mcinit/internal/version"
)

// Ordering decides whether a requested identifier sorts after the latest
// one on its axis.
type Ordering int

const (
	// NumericOrdering compares 2–3 component identifiers numerically
	// ("1.9" < "1.10"). Identifiers it cannot parse are retried as semver
	// ("0.4.8+build.155", "0.16.0-beta.1"). When neither parses, the
	// identifier is not treated as newer and manifest membership decides.
	NumericOrdering Ordering = iota

	// LexicalOrdering compares raw strings byte-wise, so "1.9" > "1.10".
	LexicalOrdering
)

// ParseOrdering parses "numeric" or "lexical".
func ParseOrdering(s string) (Ordering, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "numeric":
		return NumericOrdering, nil
	case "lexical":
		return LexicalOrdering, nil
	}
	return NumericOrdering, fmt.Errorf("unknown version ordering %q (want numeric or lexical)", s)
}

func (o Ordering) String() string {
	if o == LexicalOrdering {
		return "lexical"
	}
	return "numeric"
}

// Exceeds reports whether requested sorts strictly after latest.
func (o Ordering) Exceeds(requested, latest string) bool {
	if o == LexicalOrdering {
		return requested > latest
	}

	if c, err := version.CompareStrings(requested, latest); err == nil {
		return c > 0
	}

	rv, err := semver.NewVersion(requested)
	if err != nil {
		return false
	}
	lv, err := semver.NewVersion(latest)
	if err != nil {
		return false
	}
	return rv.GreaterThan(lv)
}
