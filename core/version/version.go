// Package version parses and orders plugin versions such as "1.0.9", "2.0.0-SNAPSHOT" or "3.1-BETA2".
//
// A version is a dot separated list of non-negative integers. Qualifiers are recognized and
// reported through IsSnapshot and IsUnstable but never take part in the ordering.
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lutece-go/lutece-sql/core/errs"
)

const snapshotSuffix = "-SNAPSHOT"

// Checked in this order, the first one found wins.
var unstableMarkers = []string{"BETA", "ALPHA", "RC"}

var (
	errEmpty        = errors.New("empty version")
	errEmptySegment = errors.New("empty segment")
)

// Version is immutable once built by Parse.
type Version struct {
	raw        string
	components []int
	snapshot   bool
	unstable   bool
}

// Parse builds a Version from its textual form.
//
// A case-insensitive trailing "-SNAPSHOT" is stripped and sets the snapshot flag. Otherwise, if the
// upper-cased text contains "-BETA", "-ALPHA" or "-RC" (in that order), the unstable flag is set and
// only the text before the first hyphen is kept. Every remaining dot separated segment must be an
// integer, or a *errs.ParseError is returned.
func Parse(text string) (*Version, error) {
	v := &Version{raw: text}

	numeric := text
	if hasSnapshotSuffix(text) {
		v.snapshot = true
		numeric = text[:len(text)-len(snapshotSuffix)]
	} else {
		upper := strings.ToUpper(text)
		for _, marker := range unstableMarkers {
			if strings.Contains(upper, "-"+marker) {
				v.unstable = true
				numeric, _, _ = strings.Cut(text, "-")
				break
			}
		}
	}

	if numeric == "" {
		return nil, errs.NewParseError(errs.KIND_VERSION, text, errEmpty)
	}

	for _, segment := range strings.Split(numeric, ".") {
		component, err := parseComponent(segment)
		if err != nil {
			return nil, errs.NewParseError(errs.KIND_VERSION, text, err)
		}
		v.components = append(v.components, component)
	}

	return v, nil
}

// ParseOptional is Parse for an optional input: a nil text gives a nil Version and no error.
func ParseOptional(text *string) (*Version, error) {
	if text == nil {
		return nil, nil
	}
	return Parse(*text)
}

// MustParse is like Parse but panics if the text cannot be parsed. It is meant for inputs already
// validated by a grammar, where a failure is a programming error.
func MustParse(text string) *Version {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return v
}

func hasSnapshotSuffix(text string) bool {
	return len(text) >= len(snapshotSuffix) &&
		strings.EqualFold(text[len(text)-len(snapshotSuffix):], snapshotSuffix)
}

func parseComponent(segment string) (int, error) {
	if segment == "" {
		return 0, errEmptySegment
	}
	for i := 0; i < len(segment); i++ {
		if segment[i] < '0' || segment[i] > '9' {
			return 0, fmt.Errorf("segment %q is not an integer", segment)
		}
	}
	return strconv.Atoi(segment)
}

// Compare returns a negative number, zero or a positive number when v is respectively lower than,
// equal to or greater than o.
//
// Components are compared pairwise; when all shared components are equal the version with fewer
// components is the lower one, so "1.0" < "1.0.0". Any version is greater than a nil one.
func (v *Version) Compare(o *Version) int {
	switch {
	case v == nil && o == nil:
		return 0
	case o == nil:
		return 1
	case v == nil:
		return -1
	}

	shared := min(len(v.components), len(o.components))
	for i := 0; i < shared; i++ {
		if v.components[i] != o.components[i] {
			if v.components[i] < o.components[i] {
				return -1
			}
			return 1
		}
	}

	switch {
	case len(v.components) < len(o.components):
		return -1
	case len(v.components) > len(o.components):
		return 1
	}
	return 0
}

// Equal reports whether both versions have the same components. Qualifiers are ignored.
func (v *Version) Equal(o *Version) bool {
	return v.Compare(o) == 0
}

// Components returns a copy of the integer components.
func (v *Version) Components() []int {
	return append([]int(nil), v.components...)
}

func (v *Version) IsSnapshot() bool {
	return v.snapshot
}

func (v *Version) IsUnstable() bool {
	return v.unstable
}

// Raw returns the text the version was parsed from.
func (v *Version) Raw() string {
	return v.raw
}

func (v *Version) String() string {
	parts := make([]string, len(v.components))
	for i, c := range v.components {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ".")
}
