package installer

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version runs "<bin> --version" and parses the first line of its output.
func (p *PackageManager) Version(ctx context.Context) (*semver.Version, error) {
	bin, err := exec.LookPath(p.Bin)
	if err != nil {
		return nil, fmt.Errorf("%s not found: %w", p.Name, err)
	}

	out, err := exec.CommandContext(ctx, bin, "--version").Output()
	if err != nil {
		return nil, fmt.Errorf("running %s --version: %w", p.Name, err)
	}

	line, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	v, err := parseSemver(strings.TrimSpace(line))
	if err != nil {
		return nil, fmt.Errorf("parsing %s version %q: %w", p.Name, line, err)
	}
	return v, nil
}

// MeetsMinimum reports whether the installed version is at least MinVersion.
// A manager without a MinVersion always passes.
func (p *PackageManager) MeetsMinimum(ctx context.Context) (bool, *semver.Version, error) {
	v, err := p.Version(ctx)
	if err != nil {
		return false, nil, err
	}
	if p.MinVersion == "" {
		return true, v, nil
	}
	cmp, err := CompareVersions(v.String(), p.MinVersion)
	if err != nil {
		return false, v, err
	}
	return cmp >= 0, v, nil
}

// CompareVersions compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
// A leading "v" is tolerated on either side.
func CompareVersions(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
