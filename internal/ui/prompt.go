package ui

import (
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/company/scapp/internal/config"
)

// ErrAborted is returned when the user cancels a prompt.
var ErrAborted = errors.New("aborted by user")

// IsCI returns true if running in a CI environment.
// gitlab-ci-local sets GITLAB_CI=false, which should not be treated as CI.
func IsCI() bool {
	return isTruthy(os.Getenv("CI")) ||
		isTruthy(os.Getenv("SCAPP_CI")) ||
		isTruthy(os.Getenv("GITHUB_ACTIONS")) ||
		isTruthy(os.Getenv("GITLAB_CI"))
}

func isTruthy(v string) bool {
	return v != "" && v != "false" && v != "0"
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsInteractive reports whether prompts and spinners can be shown.
func IsInteractive() bool {
	return !IsCI() && isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

// StandardOptions returns the select options for the supported standards, oldest first.
func StandardOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(config.Standards))
	for _, std := range config.Standards {
		opts = append(opts, huh.NewOption(config.StandardLabel(std), std))
	}
	return opts
}

// AskProject fills p interactively. Fields already set on p are offered as
// the pre-filled answer. The app name is asked first because the folder
// name defaults to it.
func AskProject(p *config.Project) error {
	if err := runForm(huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Name of your C++ app").
			Value(&p.AppName).
			Validate(config.ValidateAppName),
	))); err != nil {
		return err
	}

	if p.FolderName == "" {
		p.FolderName = p.AppName
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Folder name for your C++ app").
				Value(&p.FolderName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					return config.ValidateFolderName(s)
				}),
			huh.NewInput().
				Title("Version").
				Value(&p.Version).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("version is mandatory")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Value(&p.Description),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Use a source folder?").
				Affirmative("Yes").
				Negative("No").
				Value(&p.SrcFolder),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Source folder name").
				Value(&p.SrcFolderName).
				Validate(func(s string) error { return config.ValidateEntryName("source folder name", s) }),
		).WithHideFunc(func() bool { return !p.SrcFolder }),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("C++ standard").
				Options(StandardOptions()...).
				Value(&p.Standard),
			huh.NewConfirm().
				Title("Add a main file?").
				Affirmative("Yes").
				Negative("No").
				Value(&p.AddMain),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Main file name").
				Value(&p.MainFileName).
				Validate(func(s string) error { return config.ValidateEntryName("main file name", s) }),
		).WithHideFunc(func() bool { return !p.AddMain }),
		huh.NewGroup(
			huh.NewConfirm().Title("Use Git?").Value(&p.Git),
			huh.NewConfirm().Title("Use CMake?").Value(&p.CMake),
			huh.NewConfirm().Title("Use vcpkg?").Value(&p.Vcpkg),
			huh.NewConfirm().Title("Use editorconfig?").Value(&p.EditorConfig),
		),
	)
	if err := runForm(form); err != nil {
		return err
	}

	if strings.TrimSpace(p.FolderName) == "" {
		p.FolderName = p.AppName
	}
	return nil
}

// Confirm prompts the user for a yes/no confirmation.
func Confirm(title string) (bool, error) {
	var confirmed bool
	err := runForm(huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Affirmative("Yes").
			Negative("No").
			Value(&confirmed),
	)))
	return confirmed, err
}

func runForm(f *huh.Form) error {
	if err := f.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}
