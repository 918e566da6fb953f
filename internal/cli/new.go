package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/company/scapp/internal/config"
	"github.com/company/scapp/internal/exitcodes"
	"github.com/company/scapp/internal/scaffold"
	"github.com/company/scapp/internal/templates"
	"github.com/company/scapp/internal/ui"
)

func (a *App) runNew(ctx context.Context, args []string) error {
	defaults, err := config.LoadDefaults(a.getConfigPath())
	if err != nil {
		return &ExitError{Code: exitcodes.ConfigError, Message: err.Error(), Err: err}
	}

	src, err := a.loadTemplate(defaults)
	if err != nil {
		return err
	}

	p, err := a.buildProject(defaults, args)
	if err != nil {
		return err
	}
	if err := p.Resolve(a.workDir); err != nil {
		return &ExitError{Code: exitcodes.UsageError, Message: err.Error(), Err: err}
	}
	a.debugf("project path: %s", p.FullPath())

	m := scaffold.New(a.logger,
		scaffold.WithTemplate(src),
		scaffold.WithInitializer(a.newInitializer()),
		scaffold.WithBusy(ui.WithSpinner),
	)
	report, err := m.Run(ctx, p)
	if err != nil {
		return &ExitError{Code: exitcodes.Fatal, Message: err.Error(), Err: err}
	}

	a.printReport(p, report)
	return nil
}

// loadTemplate resolves and checks the template before any question is asked.
func (a *App) loadTemplate(d *config.Defaults) (templates.Source, error) {
	src, err := templates.Resolve(a.getTemplateDir(d))
	if err != nil {
		return templates.Source{}, &ExitError{Code: exitcodes.ConfigError, Message: err.Error(), Err: err}
	}
	if result := src.Verify(); !result.OK {
		return templates.Source{}, &ExitError{
			Code:    exitcodes.ConfigError,
			Message: fmt.Sprintf("template %s is incomplete, missing: %s", src.Name, strings.Join(result.Missing, ", ")),
		}
	}
	a.debugf("template: %s", src.Name)
	return src, nil
}

// buildProject collects the answers from arguments, flags and, unless --yes
// is given, the interactive form.
func (a *App) buildProject(d *config.Defaults, args []string) (*config.Project, error) {
	p := config.NewProjectFromDefaults(d)
	if len(args) > 0 {
		p.AppName = args[0]
	}
	p.FolderName = a.folder
	if a.standard != "" {
		std, err := config.NormalizeStandard(a.standard)
		if err != nil {
			return nil, &ExitError{Code: exitcodes.UsageError, Message: err.Error(), Err: err}
		}
		p.Standard = std
	}

	if !a.yes {
		if !a.interactive() {
			return nil, &ExitError{
				Code:    exitcodes.UsageError,
				Message: "no terminal to prompt on: pass the app name and --yes",
			}
		}
		if err := a.ask(p); err != nil {
			if errors.Is(err, ui.ErrAborted) {
				return nil, &ExitError{Code: exitcodes.Aborted, Message: "aborted", Err: err}
			}
			return nil, err
		}
	} else if p.AppName == "" {
		return nil, &ExitError{Code: exitcodes.UsageError, Message: "--yes requires the app name as argument"}
	}

	if err := p.Validate(); err != nil {
		return nil, &ExitError{Code: exitcodes.UsageError, Message: err.Error(), Err: err}
	}
	return p, nil
}

func (a *App) printReport(p *config.Project, report *scaffold.Report) {
	rows := make([][]string, 0, len(report.Steps))
	for _, s := range report.Steps {
		rows = append(rows, []string{s.Step, s.Status.String(), s.Detail})
	}
	a.output.Table([]string{"STEP", "STATUS", "DETAIL"}, rows)
	a.output.Info("")

	if failed := report.Failed(); len(failed) > 0 {
		a.output.Warning("%s created in %s with %d failed step(s)", p.AppName, report.Path, len(failed))
		for _, s := range failed {
			a.output.Error("%s: %v", s.Step, s.Err)
		}
		return
	}

	a.output.Success("%s created in %s", p.AppName, report.Path)
	if p.CMake {
		a.output.Info("  cd %s && cmake -S . -B build", filepath.Base(report.Path))
	}
}
