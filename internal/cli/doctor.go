package cli

import (
	"github.com/spf13/cobra"

	"github.com/company/scapp/internal/config"
	"github.com/company/scapp/internal/exitcodes"
	"github.com/company/scapp/internal/templates"
	"github.com/company/scapp/internal/ui"
	"github.com/company/scapp/internal/vcs"
)

func (a *App) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose common issues",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDoctor()
		},
	}
}

func (a *App) runDoctor() error {
	allOK := true

	// 1. Defaults file
	path := a.getConfigPath()
	d, err := config.LoadDefaults(path)
	switch {
	case err != nil:
		a.output.Error("Defaults file invalid: %v", err)
		allOK = false
	case config.DefaultsExist(path):
		a.output.Success("Defaults file %s is valid", path)
	default:
		a.output.Info("No defaults file at %s, built-in defaults apply", path)
	}

	// 2. Template
	src, err := templates.Resolve(a.getTemplateDir(d))
	if err != nil {
		a.output.Error("Template unavailable: %v", err)
		allOK = false
	} else if !a.checkTemplate(src) {
		allOK = false
	}

	// 3. Git
	if gitPath, ok := vcs.Available(); ok {
		a.output.Success("git found at %s", gitPath)
	} else {
		a.output.Warning("git not found, repositories will be created with the built-in go-git")
	}

	// 4. Terminal
	if a.interactive() {
		a.output.Success("Interactive terminal detected")
	} else if ui.IsCI() {
		a.output.Info("CI environment detected, use --yes to scaffold without prompts")
	} else {
		a.output.Info("No terminal detected, use --yes to scaffold without prompts")
	}

	if !allOK {
		return &ExitError{Code: exitcodes.ConfigError, Message: "doctor found problems"}
	}

	a.output.Info("")
	a.output.Success("Everything looks good!")
	return nil
}

// checkTemplate reports whether src provides every required entry and can be read whole.
func (a *App) checkTemplate(src templates.Source) bool {
	if result := src.Verify(); !result.OK {
		a.output.Error("Template %s is missing %v", src.Name, result.Missing)
		return false
	}
	files, err := src.Files()
	if err != nil {
		a.output.Error("Template %s could not be read: %v", src.Name, err)
		return false
	}
	a.output.Success("Template %s is complete (%d files)", src.Name, len(files))
	if fp, err := src.Fingerprint(); err == nil {
		a.debugf("template fingerprint: %s", fp)
	}
	return true
}
