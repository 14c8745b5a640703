// Package cli implements the cobra command tree. The root command takes the
// project name and runs the scaffolder; doctor and config are the only
// subcommands. Commands return errors, Execute prints them, and main turns
// them into an exit status with ExitCode.
package cli
