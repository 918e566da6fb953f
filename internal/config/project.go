package config

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Project is the configuration record for one scaffolding run.
// It is populated field by field by the prompt phase, finalized once with
// Resolve, and only read afterwards.
type Project struct {
	AppName     string
	Version     string
	Description string
	FolderName  string

	SrcFolder     bool
	SrcFolderName string

	// Standard is the bare numeral, e.g. "20".
	Standard string

	AddMain      bool
	MainFileName string

	Git          bool
	CMake        bool
	Vcpkg        bool
	EditorConfig bool

	fullPath string
}

// NewProject returns a record carrying the built-in defaults.
func NewProject() *Project {
	return NewProjectFromDefaults(BuiltinDefaults())
}

// NewProjectFromDefaults returns a record whose answers start from d.
func NewProjectFromDefaults(d *Defaults) *Project {
	return &Project{
		Version:       d.Version,
		SrcFolder:     d.SrcFolder,
		SrcFolderName: d.SrcFolderName,
		Standard:      d.Standard,
		AddMain:       d.AddMain,
		MainFileName:  d.MainFileName,
		Git:           d.Git,
		CMake:         d.CMake,
		Vcpkg:         d.Vcpkg,
		EditorConfig:  d.EditorConfig,
	}
}

// Resolve derives the absolute destination path from cwd and FolderName.
// It may only be called once, after every answer is set.
func (p *Project) Resolve(cwd string) error {
	if p.fullPath != "" {
		return errors.New("project path already resolved")
	}
	if p.FolderName == "" {
		p.FolderName = p.AppName
	}
	if p.FolderName == "" {
		return errors.New("folder name is not set")
	}
	abs, err := filepath.Abs(cwd)
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}
	p.fullPath = filepath.Join(abs, p.FolderName)
	return nil
}

// FullPath returns the destination directory. Empty until Resolve succeeds.
func (p *Project) FullPath() string {
	return p.fullPath
}

// MainRenamed reports whether the entry-point file is kept under a non-default name.
func (p *Project) MainRenamed() bool {
	return p.AddMain && p.MainFileName != MainFileName
}

// SrcRenamed reports whether the source folder is kept under a non-default name.
func (p *Project) SrcRenamed() bool {
	return p.SrcFolder && p.SrcFolderName != SrcFolder
}

// Validate checks every answer against its grammar. Names tied to a
// disabled flag are not checked.
func (p *Project) Validate() error {
	if err := ValidateAppName(p.AppName); err != nil {
		return err
	}
	if p.FolderName != "" {
		if err := ValidateFolderName(p.FolderName); err != nil {
			return err
		}
	}
	if err := ValidateStandard(p.Standard); err != nil {
		return err
	}
	if p.SrcFolder {
		if err := ValidateEntryName("source folder name", p.SrcFolderName); err != nil {
			return err
		}
	}
	if p.AddMain {
		if err := ValidateEntryName("main file name", p.MainFileName); err != nil {
			return err
		}
	}
	return nil
}
