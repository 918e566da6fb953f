// Package generate rewrites the build files copied from the template so they
// describe the requested project.
package generate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/company/scapp/internal/config"
	"github.com/company/scapp/internal/textsub"
)

// Template tokens rewritten by CMake.
const (
	addSubdirectory  = "add_subdirectory(" + config.SrcFolder + ")"
	cxxStdFeature    = "cxx_std_" + config.DefaultStandard
	cxxStdVariable   = "CMAKE_CXX_STANDARD " + config.DefaultStandard
	relativeMainFile = "../" + config.MainFileName
)

// CMake rewrites the root descriptor and, when the project keeps a source
// folder, the source folder descriptor. Both are addressed by their template
// paths, so CMake must run before the source folder is renamed or removed.
// A failure on one descriptor does not stop the other; the returned error
// joins both.
func CMake(p *config.Project) error {
	rootPath := filepath.Join(p.FullPath(), config.CMakeListsFile)
	srcPath := filepath.Join(p.FullPath(), config.SrcFolder, config.CMakeListsFile)

	var errs []error
	if err := textsub.EditFile(rootPath, func(text string) (string, error) {
		return rootDescriptor(p, text, srcPath)
	}); err != nil {
		errs = append(errs, fmt.Errorf("root %s: %w", config.CMakeListsFile, err))
	}

	if p.SrcFolder {
		if err := textsub.ApplyFile(srcPath, sourceRules(p)...); err != nil {
			errs = append(errs, fmt.Errorf("source folder %s: %w", config.CMakeListsFile, err))
		}
	}
	return errors.Join(errs...)
}

func rootDescriptor(p *config.Project, text, srcPath string) (string, error) {
	if p.SrcFolder {
		text = textsub.Apply(text, textsub.ReplaceFirst(addSubdirectory, "add_subdirectory("+p.SrcFolderName+")"))
	} else {
		src, err := os.ReadFile(srcPath)
		if err != nil {
			return "", fmt.Errorf("inlining source folder descriptor: %w", err)
		}
		text = textsub.Apply(text, textsub.ReplaceFirst(addSubdirectory, ""))
		text = text + "\n" + string(src)
		text = textsub.Apply(text,
			textsub.ReplaceFirst(cxxStdFeature, "cxx_std_"+p.Standard),
			// inlined next to the entry point, ../main.cpp would point outside the project
			textsub.ReplaceFirst(relativeMainFile, config.MainFileName),
		)
		text = textsub.Apply(text, mainFileRule(p, config.MainFileName))
	}

	return textsub.Apply(text,
		textsub.ReplaceAll(config.AppNamePlaceholder, p.AppName),
		textsub.ReplaceFirst(cxxStdVariable, "CMAKE_CXX_STANDARD "+p.Standard),
	), nil
}

func sourceRules(p *config.Project) []textsub.Rule {
	return []textsub.Rule{
		textsub.ReplaceAll(config.AppNamePlaceholder, p.AppName),
		mainFileRule(p, relativeMainFile),
		textsub.ReplaceFirst(cxxStdFeature, "cxx_std_"+p.Standard),
	}
}

// mainFileRule renames the entry point reference, or comments out ref when
// the project has no entry point. It is a no-op for the default name.
func mainFileRule(p *config.Project, ref string) textsub.Rule {
	if !p.AddMain {
		return textsub.ReplaceFirst(ref, "#"+ref)
	}
	if p.MainRenamed() {
		return textsub.ReplaceFirst(config.MainFileName, p.MainFileName)
	}
	return textsub.Rule{}
}
