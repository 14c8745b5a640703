package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ecruz165/react-webpack-scaffold/internal/config"
	"github.com/ecruz165/react-webpack-scaffold/internal/installer"
	"github.com/ecruz165/react-webpack-scaffold/internal/scaffold"
)

// projectNameArgs accepts exactly one non-empty project name. The name is
// otherwise used verbatim.
func projectNameArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return scaffold.ErrMissingName
	}
	if len(args) > 1 {
		return fmt.Errorf("expected a single project name, got %d arguments: %s",
			len(args), strings.Join(args, " "))
	}
	return nil
}

func runCreate(cmd *cobra.Command, name string) error {
	settings := config.Current()

	pm, err := installer.Lookup(settings.PackageManager)
	if err != nil {
		return err
	}

	s := scaffold.New(afero.NewOsFs(), pm, cmd.OutOrStdout())
	_, err = s.Scaffold(cmd.Context(), scaffold.Request{
		Name:        name,
		SkipInstall: settings.SkipInstall,
	})
	return err
}
