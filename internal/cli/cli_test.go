package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecruz165/react-webpack-scaffold/internal/manifest"
	"github.com/ecruz165/react-webpack-scaffold/internal/scaffold"
)

var projectFiles = []string{
	".babelrc",
	"package.json",
	"public/index.html",
	"src/App.jsx",
	"src/index.css",
	"src/index.jsx",
	"webpack.config.js",
}

// setup isolates config and working directory for one test and returns the
// working directory.
func setup(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("RWS_HOME", t.TempDir())
	t.Setenv("RWS_PACKAGE_MANAGER", "")
	t.Setenv("RWS_SKIP_INSTALL", "")
	t.Setenv("RWS_NO_COLOR", "true")

	wd := t.TempDir()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(wd); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(orig) })
	return wd
}

// fakeYarn puts a yarn stub on PATH that writes yarn.lock and exits with code.
func fakeYarn(t *testing.T, code int) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake yarn is a shell script")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	dir := t.TempDir()
	script := fmt.Sprintf(`#!/bin/sh
if [ "$1" = "--version" ]; then
  echo 1.22.19
  exit 0
fi
touch yarn.lock
exit %d
`, code)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "yarn"), []byte(script), 0755))
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if args == nil {
		// cobra falls back to os.Args when given nil.
		args = []string{}
	}
	cmd.SetArgs(args)
	err := run(context.Background(), cmd)
	return stdout.String(), stderr.String(), err
}

func listFiles(t *testing.T, root string) []string {
	t.Helper()
	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	require.NoError(t, err)
	sort.Strings(files)
	return files
}

func TestCreate_Success(t *testing.T) {
	wd := setup(t)
	fakeYarn(t, 0)

	stdout, stderr, err := execute(t, "my-app")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	target := filepath.Join(wd, "my-app")
	want := append([]string{}, projectFiles...)
	want = append(want, "yarn.lock")
	sort.Strings(want)
	assert.Equal(t, want, listFiles(t, target))

	pkg, err := manifest.ParseFile(filepath.Join(target, "package.json"))
	require.NoError(t, err)
	assert.Equal(t, "my-app", pkg.Name)

	assert.Contains(t, stdout, "Installing dependencies with Yarn")
	assert.Contains(t, stdout, `Project "my-app" created successfully!`)
	assert.Contains(t, stdout, "cd my-app")
	assert.Contains(t, stdout, "yarn start")
}

func TestCreate_MissingName(t *testing.T) {
	wd := setup(t)

	_, stderr, err := execute(t)
	require.ErrorIs(t, err, scaffold.ErrMissingName)
	assert.Equal(t, 1, ExitCode(err))
	assert.Contains(t, stderr, "Please provide a project name: react-webpack-scaffold my-app")

	entries, err := os.ReadDir(wd)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCreate_BlankName(t *testing.T) {
	setup(t)

	_, _, err := execute(t, "  ")
	require.ErrorIs(t, err, scaffold.ErrMissingName)
}

func TestCreate_ExistingDirectory(t *testing.T) {
	wd := setup(t)
	existing := filepath.Join(wd, "my-app")
	require.NoError(t, os.Mkdir(existing, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(existing, "README.md"), []byte("mine"), 0644))

	_, stderr, err := execute(t, "my-app", "--skip-install")
	require.ErrorIs(t, err, scaffold.ErrDirectoryExists)
	assert.Equal(t, 1, ExitCode(err))
	assert.Contains(t, stderr, `Folder "my-app" already exists in this location.`)

	assert.Equal(t, []string{"README.md"}, listFiles(t, existing))
	data, err := os.ReadFile(filepath.Join(existing, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "mine", string(data))
}

func TestCreate_InstallFailure(t *testing.T) {
	wd := setup(t)
	fakeYarn(t, 5)

	stdout, stderr, err := execute(t, "my-app")
	require.Error(t, err)
	assert.Equal(t, 5, ExitCode(err))

	var installErr *scaffold.DependencyInstallError
	require.ErrorAs(t, err, &installErr)
	assert.Equal(t, 5, installErr.ExitCode)

	target := filepath.Join(wd, "my-app")
	for _, f := range projectFiles {
		assert.FileExists(t, filepath.Join(target, filepath.FromSlash(f)))
	}
	pkg, err := manifest.ParseFile(filepath.Join(target, "package.json"))
	require.NoError(t, err)
	assert.Equal(t, "my-app", pkg.Name)

	assert.NotContains(t, stdout, "created successfully")
	assert.Contains(t, stderr, "Installing dependencies with Yarn failed")
	assert.Contains(t, stderr, "cd my-app && yarn install")
}

func TestCreate_MissingPackageManager(t *testing.T) {
	wd := setup(t)
	t.Setenv("PATH", t.TempDir())

	_, stderr, err := execute(t, "my-app", "-p", "pnpm")
	require.Error(t, err)
	assert.Equal(t, 1, ExitCode(err))
	assert.ErrorIs(t, err, exec.ErrNotFound)
	assert.Contains(t, stderr, "pnpm install")
	assert.Equal(t, projectFiles, listFiles(t, filepath.Join(wd, "my-app")))
}

func TestCreate_SkipInstallWithNpm(t *testing.T) {
	wd := setup(t)

	stdout, _, err := execute(t, "my-app", "--skip-install", "--package-manager", "npm")
	require.NoError(t, err)

	assert.Equal(t, projectFiles, listFiles(t, filepath.Join(wd, "my-app")))
	assert.NotContains(t, stdout, "Installing dependencies")
	assert.Contains(t, stdout, "npm install")
	assert.Contains(t, stdout, "npm start")
}

func TestCreate_PackageManagerFromEnv(t *testing.T) {
	setup(t)
	t.Setenv("RWS_PACKAGE_MANAGER", "pnpm")
	t.Setenv("RWS_SKIP_INSTALL", "true")

	stdout, _, err := execute(t, "from-env")
	require.NoError(t, err)
	assert.Contains(t, stdout, "pnpm start")
}

func TestCreate_FlagOverridesEnv(t *testing.T) {
	setup(t)
	t.Setenv("RWS_PACKAGE_MANAGER", "pnpm")

	stdout, _, err := execute(t, "flagged", "--skip-install", "-p", "npm")
	require.NoError(t, err)
	assert.Contains(t, stdout, "npm start")
	assert.NotContains(t, stdout, "pnpm")
}

func TestCreate_UnknownPackageManager(t *testing.T) {
	wd := setup(t)

	_, stderr, err := execute(t, "my-app", "-p", "bun")
	require.Error(t, err)
	assert.Contains(t, stderr, `unknown package manager "bun"`)

	_, statErr := os.Stat(filepath.Join(wd, "my-app"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestCreate_TooManyArgs(t *testing.T) {
	wd := setup(t)

	_, stderr, err := execute(t, "one", "two")
	require.Error(t, err)
	assert.Equal(t, 1, ExitCode(err))
	assert.Contains(t, stderr, "expected a single project name")

	entries, err := os.ReadDir(wd)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestVersionFlag(t *testing.T) {
	setup(t)

	stdout, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "react-webpack-scaffold version dev")
	assert.Contains(t, stdout, "https://github.com/ecruz165/react-webpack-scaffold")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(scaffold.ErrMissingName))
	assert.Equal(t, 1, ExitCode(&scaffold.DependencyInstallError{Manager: "yarn"}))
	assert.Equal(t, 9, ExitCode(fmt.Errorf("wrapped: %w", &scaffold.DependencyInstallError{ExitCode: 9})))
}

func TestCreate_InstallFailureNestedName(t *testing.T) {
	wd := setup(t)
	fakeYarn(t, 3)
	require.NoError(t, os.Mkdir(filepath.Join(wd, "apps"), 0755))

	_, stderr, err := execute(t, "apps/web")
	require.Error(t, err)
	assert.Equal(t, 3, ExitCode(err))
	assert.Contains(t, stderr, "cd apps/web && yarn install")
}

func TestCreate_PipedOutputHasNoColor(t *testing.T) {
	setup(t)
	t.Setenv("RWS_NO_COLOR", "")

	// fatih/color turns colors off when stdout is not a terminal.
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	stdout, _, err := execute(t, "piped", "--skip-install")
	require.NoError(t, err)
	assert.Contains(t, stdout, "created successfully")
	assert.NotContains(t, stdout, "\x1b[")
	assert.True(t, color.NoColor)
}

func TestCreate_ReservedNameAfterDoubleDash(t *testing.T) {
	wd := setup(t)

	stdout, _, err := execute(t, "--skip-install", "--", "doctor")
	require.NoError(t, err)
	assert.Contains(t, stdout, `Project "doctor" created successfully!`)
	assert.Equal(t, projectFiles, listFiles(t, filepath.Join(wd, "doctor")))
}

func TestCompletionIsNotACommand(t *testing.T) {
	wd := setup(t)

	stdout, _, err := execute(t, "completion", "--skip-install")
	require.NoError(t, err)
	assert.Contains(t, stdout, `Project "completion" created successfully!`)
	assert.DirExists(t, filepath.Join(wd, "completion"))
}
