package paths

import (
	"strings"

	"github.com/pkg/errors"
)

// Policy is the revisit rule applied to Small caves.
type Policy uint8

const (
	// SingleVisit admits a Small cave only if the path has not visited it yet.
	SingleVisit Policy = iota
	// OneExtraVisit additionally admits one Small cave a second time per path.
	OneExtraVisit
)

// Policies lists every defined policy in puzzle order.
func Policies() []Policy {
	return []Policy{SingleVisit, OneExtraVisit}
}

// Valid reports whether p is a defined policy.
func (p Policy) Valid() bool {
	return p <= OneExtraVisit
}

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case SingleVisit:
		return "single-visit"
	case OneExtraVisit:
		return "one-extra-visit"
	}

	return "unknown"
}

// ParsePolicy maps a user-facing name to a Policy. Accepted names are the
// String forms, their short forms "single" and "extra", and the puzzle part
// numbers "1" and "2". Matching is case-insensitive.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single-visit", "single", "1":
		return SingleVisit, nil
	case "one-extra-visit", "extra", "2":
		return OneExtraVisit, nil
	}

	return 0, errors.Wrapf(ErrUnknownPolicy, "%q", s)
}
