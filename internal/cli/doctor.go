package cli

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/ecruz165/react-webpack-scaffold/internal/config"
	"github.com/ecruz165/react-webpack-scaffold/internal/installer"
	"github.com/ecruz165/react-webpack-scaffold/internal/manifest"
	"github.com/ecruz165/react-webpack-scaffold/internal/ui"
)

func newDoctorCmd() *cobra.Command {
	var checkManifest string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that a package manager is available",
		Long: `Look for yarn, npm and pnpm on PATH and report their versions. With
--check-manifest, validate a package.json against the schema used for
generated projects instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := ui.New(cmd.OutOrStdout())
			if checkManifest != "" {
				return runManifestCheck(p, checkManifest)
			}
			return runPackageManagerCheck(cmd.Context(), p, config.Current().PackageManager)
		},
	}
	cmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate a package.json file at the given path")
	return cmd
}

func runPackageManagerCheck(ctx context.Context, p *ui.Printer, configured string) error {
	want, err := installer.Lookup(configured)
	if err != nil {
		return err
	}

	p.Plain("Package manager check:")
	configuredFound := false
	for _, name := range installer.Supported() {
		pm, err := installer.Lookup(name)
		if err != nil {
			return err
		}

		path, err := exec.LookPath(pm.Bin)
		if err != nil {
			p.Check(ui.StatusMiss, "%s not found", pm.Name)
			continue
		}
		if pm.Name == want.Name {
			configuredFound = true
		}

		ok, v, err := pm.MeetsMinimum(ctx)
		switch {
		case err != nil:
			p.Check(ui.StatusWarn, "%s found at %s, version unknown: %v", pm.Name, path, err)
		case !ok:
			p.Check(ui.StatusWarn, "%s %s found at %s; %s or newer is recommended", pm.Name, v, path, pm.MinVersion)
		default:
			p.Check(ui.StatusOK, "%s %s found at %s", pm.Name, v, path)
		}
	}

	p.Check(ui.StatusInfo, "dependencies will be installed with %s", want.Name)
	if !configuredFound {
		return fmt.Errorf("configured package manager %s is not installed", want.Name)
	}
	return nil
}

func runManifestCheck(p *ui.Printer, path string) error {
	p.Plain("Manifest validation: %s", path)

	result, err := manifest.ValidateFile(path)
	if err != nil {
		p.Check(ui.StatusFail, "%v", err)
		return fmt.Errorf("manifest validation failed: %w", err)
	}

	if !result.Valid {
		p.Check(ui.StatusFail, "%d validation issue(s):", len(result.Issues))
		for _, issue := range result.Issues {
			p.Plain("    - %s", issue)
		}
		return fmt.Errorf("manifest %s has %d validation issue(s)", path, len(result.Issues))
	}

	pkg, err := manifest.ParseFile(path)
	if err != nil {
		p.Check(ui.StatusFail, "%v", err)
		return err
	}
	if issues := manifest.CheckRanges(pkg); len(issues) > 0 {
		p.Check(ui.StatusFail, "%d invalid dependency range(s):", len(issues))
		for _, issue := range issues {
			p.Plain("    - %s", issue)
		}
		return fmt.Errorf("manifest %s has %d invalid dependency range(s)", path, len(issues))
	}

	p.Check(ui.StatusOK, "Valid manifest: %s (v%s, %d dependencies)", pkg.Name, pkg.Version, len(pkg.AllDependencies()))
	return nil
}
