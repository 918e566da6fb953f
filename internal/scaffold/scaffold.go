// Package scaffold materializes a C++ project from the template tree
// according to a resolved config.Project.
package scaffold

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/company/scapp/internal/config"
	"github.com/company/scapp/internal/filemanager"
	"github.com/company/scapp/internal/generate"
	"github.com/company/scapp/internal/templates"
	"github.com/company/scapp/internal/vcs"
)

// Step names, in execution order.
const (
	StepDestination  = "destination"
	StepTemplate     = "template"
	StepMainFile     = "main file"
	StepEditorConfig = "editorconfig"
	StepGit          = "git"
	StepCMake        = "cmake"
	StepVcpkg        = "vcpkg"
	StepSourceFolder = "source folder"
)

// Materializer runs the scaffolding pipeline.
type Materializer struct {
	files    *filemanager.Manager
	template templates.Source
	vcs      vcs.Initializer
	log      *log.Logger
	busy     func(title string, fn func() error) error
}

// Option configures a Materializer.
type Option func(*Materializer)

// WithTemplate sets the template tree to copy. Defaults to the embedded one.
func WithTemplate(src templates.Source) Option {
	return func(m *Materializer) {
		m.template = src
	}
}

// WithInitializer sets the repository initializer. Defaults to vcs.Detect.
func WithInitializer(initializer vcs.Initializer) Option {
	return func(m *Materializer) {
		m.vcs = initializer
	}
}

// WithBusy wraps long-running steps, typically with a spinner.
func WithBusy(fn func(title string, fn func() error) error) Option {
	return func(m *Materializer) {
		m.busy = fn
	}
}

// New creates a Materializer logging to logger.
func New(logger *log.Logger, opts ...Option) *Materializer {
	m := &Materializer{
		files:    filemanager.NewManager(logger),
		template: templates.Embedded(),
		log:      logger,
		busy: func(_ string, fn func() error) error {
			return fn()
		},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.vcs == nil {
		m.vcs = vcs.Detect(nil)
	}
	return m
}

// Run creates the project folder described by p. It returns an error only
// when the destination cannot be created or the template cannot be copied;
// every later step is best-effort and its failure is only logged and
// recorded in the report. p is read, never modified.
func (m *Materializer) Run(ctx context.Context, p *config.Project) (*Report, error) {
	dest := p.FullPath()
	if dest == "" {
		return nil, errors.New("project path is not resolved")
	}
	report := &Report{Path: dest}

	state, err := m.files.CreateDirectory(dest)
	if err != nil {
		report.add(StepResult{Step: StepDestination, Status: StepFailed, Err: err})
		return report, err
	}
	report.DirState = state
	report.add(StepResult{Step: StepDestination, Status: StepOK, Detail: state.String()})

	if err := m.files.CopyTree(m.template.FS, m.template.Root, dest); err != nil {
		report.add(StepResult{Step: StepTemplate, Status: StepFailed, Err: err})
		return report, err
	}
	report.add(StepResult{Step: StepTemplate, Status: StepOK, Detail: "copied from " + m.template.Name})

	report.add(m.mainFile(p))
	report.add(m.editorConfig(p))
	report.add(m.git(ctx, p))
	// cmake and vcpkg address files by their template paths, so they run
	// before the source folder is renamed or removed
	report.add(m.cmake(p))
	report.add(m.vcpkg(p))
	report.add(m.sourceFolder(p))

	return report, nil
}

func (m *Materializer) path(p *config.Project, elem ...string) string {
	return filepath.Join(append([]string{p.FullPath()}, elem...)...)
}

func result(step, detail string, err error) StepResult {
	if err != nil {
		return StepResult{Step: step, Status: StepFailed, Detail: detail, Err: err}
	}
	return StepResult{Step: step, Status: StepOK, Detail: detail}
}

func (m *Materializer) mainFile(p *config.Project) StepResult {
	path := m.path(p, config.MainFileName)
	switch {
	case !p.AddMain:
		return result(StepMainFile, "removed", m.files.RemoveFile(path))
	case p.MainRenamed():
		return result(StepMainFile, "renamed to "+p.MainFileName, m.files.RenameEntry(path, p.MainFileName))
	default:
		return StepResult{Step: StepMainFile, Status: StepSkipped, Detail: "kept"}
	}
}

func (m *Materializer) editorConfig(p *config.Project) StepResult {
	if p.EditorConfig {
		return StepResult{Step: StepEditorConfig, Status: StepSkipped, Detail: "kept"}
	}
	return result(StepEditorConfig, "removed", m.files.RemoveFile(m.path(p, config.EditorConfigFile)))
}

func (m *Materializer) git(ctx context.Context, p *config.Project) StepResult {
	ignore := m.path(p, config.GitignoreTemplateFile)
	if !p.Git {
		return result(StepGit, "removed "+config.GitignoreTemplateFile, m.files.RemoveFile(ignore))
	}

	initErr := m.busy("Initializing repository", func() error {
		return m.vcs.Init(ctx, p.FullPath())
	})
	if initErr != nil {
		m.log.Error("could not initialize repository", "path", p.FullPath(), "with", m.vcs.Name(), "err", initErr)
	}
	renameErr := m.files.RenameEntry(ignore, config.GitignoreFile)

	detail := "initialized with " + m.vcs.Name()
	if initErr != nil {
		detail = m.vcs.Name() + " init failed"
	}
	return result(StepGit, detail, errors.Join(initErr, renameErr))
}

func (m *Materializer) cmake(p *config.Project) StepResult {
	if !p.CMake {
		errs := []error{m.files.RemoveFile(m.path(p, config.CMakeListsFile))}
		src := m.path(p, config.SrcFolder, config.CMakeListsFile)
		if p.SrcFolder {
			errs = append(errs, m.files.RemoveFile(src))
		}
		return result(StepCMake, "removed", errors.Join(errs...))
	}

	err := generate.CMake(p)
	if err != nil {
		m.log.Error("could not generate build files", "err", err)
	}
	return result(StepCMake, "generated for "+config.StandardLabel(p.Standard), err)
}

func (m *Materializer) vcpkg(p *config.Project) StepResult {
	if !p.Vcpkg {
		return result(StepVcpkg, "removed", m.files.RemoveFile(m.path(p, config.VcpkgJSONFile)))
	}
	err := generate.Manifest(p)
	if err != nil {
		m.log.Error("could not write manifest", "err", err)
	}
	return result(StepVcpkg, "name "+generate.ManifestName(p.AppName), err)
}

func (m *Materializer) sourceFolder(p *config.Project) StepResult {
	src := m.path(p, config.SrcFolder)
	switch {
	case !p.SrcFolder:
		return result(StepSourceFolder, "removed", m.files.RemoveTree(src))
	case p.SrcRenamed():
		return result(StepSourceFolder, "renamed to "+p.SrcFolderName, m.files.RenameEntry(src, p.SrcFolderName))
	default:
		return StepResult{Step: StepSourceFolder, Status: StepSkipped, Detail: "kept"}
	}
}
