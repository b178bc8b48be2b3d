// Package version implements the plugin's mdbook compatibility gate.
package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Compatible is the mdbook version range this plugin was built against.
// A host outside the range is warned about, never rejected: the
// transform depends only on the wire-format shape, and refusing every
// patch-level host update would make the plugin needlessly brittle.
const Compatible = "^0.4.21"

// Check reports whether the host-declared version satisfies the
// constraint. A malformed version or constraint is an error; a clean
// parse that falls outside the range is (false, nil).
func Check(declared, constraint string) (bool, error) {
	v, err := semver.NewVersion(declared)
	if err != nil {
		return false, fmt.Errorf("parse mdbook version %q: %w", declared, err)
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parse version constraint %q: %w", constraint, err)
	}
	return c.Check(v), nil
}
