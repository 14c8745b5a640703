package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ecruz165/react-webpack-scaffold/internal/branding"
	"github.com/ecruz165/react-webpack-scaffold/internal/config"
	"github.com/ecruz165/react-webpack-scaffold/internal/installer"
	"github.com/ecruz165/react-webpack-scaffold/internal/ui"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   branding.CLIName() + " <project-name>",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` creates <project-name> in the current directory with a
package.json, .babelrc, webpack.config.js, public/index.html and a minimal React
app under src/, then installs the dependencies with yarn (or npm/pnpm).

The names doctor, config and help are commands. To create a project with one
of those names, put it after --, e.g. ` + branding.CLIName() + ` -- doctor.`,
		Example: fmt.Sprintf("  %[1]s my-app\n  %[1]s my-app --package-manager npm\n  %[1]s my-app --skip-install",
			branding.CLIName()),
		Args:          projectNameArgs,
		Version:       buildVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.Load()
			ui.SetColor(!config.Current().NoColor)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args[0])
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetVersionTemplate(fmt.Sprintf("%s version {{.Version}} (commit: %s, built: %s)\nhttps://github.com/%s\n",
		branding.CLIName(), buildCommit, buildDate, branding.GitHubRepo()))

	flags := cmd.Flags()
	flags.StringP("package-manager", "p", config.DefaultPackageManager,
		"Package manager used to install dependencies ("+strings.Join(installer.Supported(), ", ")+")")
	flags.Bool("skip-install", false, "Write the project files without installing dependencies")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	bindFlag(config.KeyPackageManager, flags.Lookup("package-manager"))
	bindFlag(config.KeySkipInstall, flags.Lookup("skip-install"))
	bindFlag(config.KeyNoColor, cmd.PersistentFlags().Lookup("no-color"))

	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newConfigCmd())
	return cmd
}

// bindFlag lets an explicitly set flag override env and config file values.
func bindFlag(key string, flag *pflag.Flag) {
	_ = viper.BindPFlag(key, flag)
}

// Execute runs the CLI with build info injected via ldflags. Errors are
// reported to stderr before being returned; use ExitCode to map them.
func Execute(ctx context.Context, version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return run(ctx, newRootCmd())
}

func run(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		reportError(cmd.ErrOrStderr(), err)
	}
	return err
}
