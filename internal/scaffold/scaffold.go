package scaffold

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"

	"github.com/ecruz165/react-webpack-scaffold/internal/ui"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// Installer installs a project's dependencies. *installer.PackageManager
// satisfies it.
type Installer interface {
	Label() string
	InstallCommand() string
	StartCommand() string
	Install(ctx context.Context, dir string) error
}

// Request describes one scaffolding run.
type Request struct {
	Name        string
	WorkDir     string // parent of the new project; defaults to the process working directory
	SkipInstall bool
}

// Result holds the outcome of a successful run.
type Result struct {
	Name      string
	TargetDir string
	Files     []string
	Bytes     int64
	Installed bool
}

// Scaffolder creates projects on a filesystem.
type Scaffolder struct {
	fs        afero.Fs
	installer Installer
	out       *ui.Printer
}

// New returns a Scaffolder writing through fsys, installing with inst and
// reporting progress to w.
func New(fsys afero.Fs, inst Installer, w io.Writer) *Scaffolder {
	return &Scaffolder{fs: fsys, installer: inst, out: ui.New(w)}
}

// Scaffold creates the project described by req.
//
// Validation failures (ErrMissingName, *DirectoryExistsError) happen before
// anything is created. A *FileSystemError during emission leaves the files
// written so far in place, and a *DependencyInstallError leaves the whole
// project on disk.
func (s *Scaffolder) Scaffold(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrMissingName
	}

	target, err := s.resolveTarget(req)
	if err != nil {
		return nil, err
	}

	found, err := exists(s.fs, target)
	if err != nil {
		return nil, &FileSystemError{Op: "stat", Path: target, Err: err}
	}
	if found {
		return nil, &DirectoryExistsError{Name: req.Name, Path: target}
	}

	files, err := RenderAll(&ProjectData{Name: req.Name})
	if err != nil {
		return nil, err
	}

	// Mkdir, not MkdirAll: the working directory must already exist, and a
	// concurrent run that won the race shows up as EEXIST.
	if err := s.fs.Mkdir(target, dirPerm); err != nil {
		if os.IsExist(err) {
			return nil, &DirectoryExistsError{Name: req.Name, Path: target}
		}
		return nil, &FileSystemError{Op: "mkdir", Path: target, Err: err}
	}

	s.out.Step("📁 Creating new project in %s...", target)

	result := &Result{Name: req.Name, TargetDir: target}
	for _, f := range files {
		if err := s.writeFile(target, f); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, f.Path)
		result.Bytes += int64(len(f.Content))
	}
	for _, f := range result.Files {
		s.out.Hint("   %s", f)
	}
	s.out.Hint("   %d files, %s", len(result.Files), humanize.Bytes(uint64(result.Bytes)))

	if !req.SkipInstall {
		s.out.Step("📦 Installing dependencies with %s...", s.installer.Label())
		if err := s.installer.Install(ctx, target); err != nil {
			return nil, s.installError(req.Name, target, err)
		}
		result.Installed = true
	}

	s.reportSuccess(result)
	return result, nil
}

func (s *Scaffolder) resolveTarget(req Request) (string, error) {
	workDir := req.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", &FileSystemError{Op: "getwd", Path: ".", Err: err}
		}
		workDir = wd
	}

	target := filepath.Join(workDir, req.Name)
	if !filepath.IsAbs(target) {
		abs, err := filepath.Abs(target)
		if err != nil {
			return "", &FileSystemError{Op: "abs", Path: target, Err: err}
		}
		target = abs
	}
	return target, nil
}

// writeFile creates any missing parent directories and then creates or
// truncates the file, so stale content is never merged.
func (s *Scaffolder) writeFile(target string, f RenderedFile) error {
	full := filepath.Join(target, filepath.FromSlash(f.Path))

	if err := s.fs.MkdirAll(filepath.Dir(full), dirPerm); err != nil {
		return &FileSystemError{Op: "mkdir", Path: filepath.Dir(full), Err: err}
	}
	if err := afero.WriteFile(s.fs, full, f.Content, filePerm); err != nil {
		return &FileSystemError{Op: "write", Path: full, Err: err}
	}
	return nil
}

func (s *Scaffolder) installError(name, target string, err error) error {
	ie := &DependencyInstallError{
		Manager: s.installer.Label(),
		Name:    name,
		Dir:     target,
		Command: s.installer.InstallCommand(),
		Err:     err,
	}
	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) {
		ie.ExitCode = coded.ExitCode()
	}
	return ie
}

func (s *Scaffolder) reportSuccess(r *Result) {
	s.out.Success("✅ Project %q created successfully!", r.Name)
	s.out.Plain("👉  Next steps:")
	s.out.Plain("   cd %s", r.Name)
	if !r.Installed {
		s.out.Plain("   %s", s.installer.InstallCommand())
	}
	s.out.Plain("   %s", s.installer.StartCommand())
}

// exists reports whether anything, including a dangling symlink, occupies path.
func exists(fsys afero.Fs, path string) (bool, error) {
	var err error
	if l, ok := fsys.(afero.Lstater); ok {
		_, _, err = l.LstatIfPossible(path)
	} else {
		_, err = fsys.Stat(path)
	}
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
