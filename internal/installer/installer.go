package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Supported package manager identifiers.
const (
	Yarn = "yarn"
	Npm  = "npm"
	Pnpm = "pnpm"
)

// PackageManager runs a JavaScript package manager as a child process.
type PackageManager struct {
	Name        string   // identifier, e.g. "yarn"
	DisplayName string   // e.g. "Yarn"
	Bin         string   // executable looked up on PATH
	InstallArgs []string // arguments for dependency installation
	MinVersion  string   // oldest version known to handle the generated manifest

	// Stdin, Stdout and Stderr can be set for testing; they default to the
	// process's own streams so the child's output shows up live.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

var registry = map[string]PackageManager{
	Yarn: {Name: Yarn, DisplayName: "Yarn", Bin: "yarn", InstallArgs: []string{"install"}, MinVersion: "1.22.0"},
	Npm:  {Name: Npm, DisplayName: "npm", Bin: "npm", InstallArgs: []string{"install"}, MinVersion: "8.0.0"},
	Pnpm: {Name: Pnpm, DisplayName: "pnpm", Bin: "pnpm", InstallArgs: []string{"install"}, MinVersion: "7.0.0"},
}

// Supported returns the known package manager names in sorted order.
func Supported() []string {
	names := lo.Keys(registry)
	sort.Strings(names)
	return names
}

// Lookup returns a fresh PackageManager for name.
func Lookup(name string) (*PackageManager, error) {
	pm, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown package manager %q: supported package managers are %s",
			name, strings.Join(Supported(), ", "))
	}
	return &pm, nil
}

// ExitError reports a package manager run that exited with a non-zero status.
type ExitError struct {
	Manager string
	Code    int
	Err     error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Manager, e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode returns the child's exit status.
func (e *ExitError) ExitCode() int { return e.Code }

// Label returns the name shown to users.
func (p *PackageManager) Label() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Name
}

// InstallCommand is the command a user would type to install dependencies.
func (p *PackageManager) InstallCommand() string {
	return strings.Join(append([]string{p.Name}, p.InstallArgs...), " ")
}

// StartCommand is the command a user would type to start the dev server.
func (p *PackageManager) StartCommand() string {
	return p.Name + " start"
}

// Install runs the install command in dir and blocks until it exits. The
// child inherits the configured standard streams; there is no timeout.
func (p *PackageManager) Install(ctx context.Context, dir string) error {
	bin, err := exec.LookPath(p.Bin)
	if err != nil {
		return fmt.Errorf("%s is required to install dependencies: %w", p.Name, err)
	}

	cmd := exec.CommandContext(ctx, bin, p.InstallArgs...)
	cmd.Dir = dir
	cmd.Stdin = p.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = p.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = p.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Manager: p.Name, Code: exitErr.ExitCode(), Err: err}
		}
		return fmt.Errorf("running %s: %w", p.InstallCommand(), err)
	}
	return nil
}
