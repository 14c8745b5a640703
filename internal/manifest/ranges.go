package manifest

import (
	"fmt"
	"sort"

	"github.com/Masterminds/semver/v3"
)

// RangeIssue describes a dependency whose version range is not a valid semver constraint.
type RangeIssue struct {
	Dependency string
	Range      string
	Err        error
}

func (r RangeIssue) String() string {
	return fmt.Sprintf("%s@%s: %v", r.Dependency, r.Range, r.Err)
}

// CheckRanges parses every dependency range as a semver constraint and returns
// the ones that fail, sorted by dependency name.
func CheckRanges(pkg *PackageJSON) []RangeIssue {
	all := pkg.AllDependencies()
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)

	var issues []RangeIssue
	for _, name := range names {
		rng := all[name]
		if _, err := semver.NewConstraint(rng); err != nil {
			issues = append(issues, RangeIssue{Dependency: name, Range: rng, Err: err})
		}
	}
	return issues
}

// Satisfies reports whether version falls within the dependency's declared range.
func Satisfies(pkg *PackageJSON, dependency, version string) (bool, error) {
	rng, ok := pkg.AllDependencies()[dependency]
	if !ok {
		return false, fmt.Errorf("%s is not declared in %s", dependency, FileName)
	}
	c, err := semver.NewConstraint(rng)
	if err != nil {
		return false, fmt.Errorf("parsing range %q for %s: %w", rng, dependency, err)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", version, err)
	}
	return c.Check(v), nil
}
