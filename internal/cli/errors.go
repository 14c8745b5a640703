package cli

import (
	"errors"
	"io"
	"path/filepath"

	"github.com/ecruz165/react-webpack-scaffold/internal/branding"
	"github.com/ecruz165/react-webpack-scaffold/internal/scaffold"
	"github.com/ecruz165/react-webpack-scaffold/internal/ui"
)

// ExitCode maps an error returned by Execute to a process exit status. A
// failed dependency install passes the package manager's own status through.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var installErr *scaffold.DependencyInstallError
	if errors.As(err, &installErr) && installErr.ExitCode > 0 {
		return installErr.ExitCode
	}
	return 1
}

func reportError(w io.Writer, err error) {
	p := ui.New(w)

	var (
		dirErr     *scaffold.DirectoryExistsError
		fsErr      *scaffold.FileSystemError
		tmplErr    *scaffold.TemplateError
		installErr *scaffold.DependencyInstallError
	)

	switch {
	case errors.Is(err, scaffold.ErrMissingName):
		p.Fail("❌ Please provide a project name: %s my-app", branding.CLIName())
	case errors.As(err, &dirErr):
		p.Fail("❌ Folder %q already exists in this location.", dirErr.Name)
	case errors.As(err, &fsErr):
		p.Fail("❌ Could not create the project: %v", fsErr)
		p.Hint("   Files written before the failure were left in place.")
	case errors.As(err, &tmplErr):
		p.Fail("❌ Could not render %s: %v", tmplErr.Path, tmplErr.Err)
	case errors.As(err, &installErr):
		p.Fail("❌ Installing dependencies with %s failed: %v", installErr.Manager, installErr.Err)
		p.Hint("   The project files are in %s. To retry:", installErr.Dir)
		p.Hint("   cd %s && %s", retryDir(installErr), installErr.Command)
	default:
		p.Fail("❌ %v", err)
	}
}

// retryDir is the directory to cd into, relative to where the command ran.
func retryDir(e *scaffold.DependencyInstallError) string {
	if e.Name != "" {
		return e.Name
	}
	return filepath.Base(e.Dir)
}
