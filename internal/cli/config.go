package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/company/scapp/internal/config"
	"github.com/company/scapp/internal/exitcodes"
	"github.com/company/scapp/internal/ui"
)

func (a *App) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective defaults",
		Long:  "Show the answers pre-filled in every prompt, after the defaults file and SCAPP_* variables are applied.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConfigShow()
		},
	}
	cmd.AddCommand(a.newConfigInitCmd())
	return cmd
}

func (a *App) newConfigInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a defaults file with the built-in defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConfigInit(force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing defaults file")
	return cmd
}

func (a *App) runConfigShow() error {
	path := a.getConfigPath()
	d, err := config.LoadDefaults(path)
	if err != nil {
		return &ExitError{Code: exitcodes.ConfigError, Message: err.Error(), Err: err}
	}

	if config.DefaultsExist(path) {
		a.output.Info("Defaults file: %s", path)
	} else {
		a.output.Info("Defaults file: %s (not found, using built-in defaults)", path)
	}
	a.output.Info("")

	template := a.getTemplateDir(d)
	if template == "" {
		template = "(built-in)"
	}
	a.output.Table([]string{"KEY", "VALUE"}, [][]string{
		{"version", d.Version},
		{"standard", config.StandardLabel(d.Standard)},
		{"src_folder", strconv.FormatBool(d.SrcFolder)},
		{"src_folder_name", d.SrcFolderName},
		{"add_main", strconv.FormatBool(d.AddMain)},
		{"main_file_name", d.MainFileName},
		{"git", strconv.FormatBool(d.Git)},
		{"cmake", strconv.FormatBool(d.CMake)},
		{"vcpkg", strconv.FormatBool(d.Vcpkg)},
		{"editor_config", strconv.FormatBool(d.EditorConfig)},
		{"template_dir", template},
	})
	return nil
}

func (a *App) runConfigInit(force bool) error {
	path := a.getConfigPath()

	if config.DefaultsExist(path) && !force {
		if !a.interactive() {
			return &ExitError{
				Code:    exitcodes.UsageError,
				Message: fmt.Sprintf("%s already exists, use --force to overwrite it", path),
			}
		}
		ok, err := ui.Confirm(fmt.Sprintf("Overwrite %s?", path))
		if err != nil {
			return &ExitError{Code: exitcodes.Aborted, Message: "aborted", Err: err}
		}
		if !ok {
			a.output.Info("Kept %s", path)
			return nil
		}
	}

	if err := config.SaveDefaults(path, config.BuiltinDefaults()); err != nil {
		return &ExitError{Code: exitcodes.ConfigError, Message: err.Error(), Err: err}
	}
	a.output.Success("Wrote %s", path)
	return nil
}
