package scaffold

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingName is returned when no project name was supplied.
	ErrMissingName = errors.New("missing project name")

	// ErrDirectoryExists matches any *DirectoryExistsError via errors.Is.
	ErrDirectoryExists = errors.New("target directory already exists")
)

// DirectoryExistsError reports that something already occupies the target path.
type DirectoryExistsError struct {
	Name string
	Path string
}

func (e *DirectoryExistsError) Error() string {
	return fmt.Sprintf("folder %q already exists in this location", e.Name)
}

func (e *DirectoryExistsError) Is(target error) bool { return target == ErrDirectoryExists }

// FileSystemError reports a failed directory or file operation. Files written
// before the failure are left on disk.
type FileSystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileSystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileSystemError) Unwrap() error { return e.Err }

// TemplateError reports a template that could not be rendered or whose output
// failed validation. It is raised before anything is written.
type TemplateError struct {
	Path string
	Err  error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("rendering %s: %v", e.Path, e.Err)
}

func (e *TemplateError) Unwrap() error { return e.Err }

// DependencyInstallError reports a failed package manager run. The project
// files are in place; only the install needs retrying.
type DependencyInstallError struct {
	Manager  string
	Name     string // project name as given, used in the retry hint
	Dir      string
	Command  string // command to retry by hand, e.g. "yarn install"
	ExitCode int    // child's exit status, 0 if it never ran
	Err      error
}

func (e *DependencyInstallError) Error() string {
	return fmt.Sprintf("installing dependencies with %s: %v", e.Manager, e.Err)
}

func (e *DependencyInstallError) Unwrap() error { return e.Err }
