// Package templates provides the C++ project template tree, embedded in the
// binary, and on-disk template directories that replace it.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/company/scapp/internal/config"
	"github.com/company/scapp/internal/filemanager"
)

//go:embed all:cpp
var embedded embed.FS

const embeddedRoot = "cpp"

// Source is a template tree ready to be copied.
type Source struct {
	// Name describes where the tree comes from, for display.
	Name string
	FS   fs.FS
	// Root is the slash-separated directory inside FS holding the tree.
	Root string
}

// Embedded returns the template shipped with the binary.
func Embedded() Source {
	return Source{Name: "embedded", FS: embedded, Root: embeddedRoot}
}

// FromDir returns the template stored in dir.
func FromDir(dir string) (Source, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return Source{}, fmt.Errorf("template folder is missing: %w", err)
	}
	if !info.IsDir() {
		return Source{}, fmt.Errorf("template %s is not a directory", dir)
	}
	return Source{Name: dir, FS: os.DirFS(dir), Root: "."}, nil
}

// Resolve returns the on-disk template in dir, or the embedded one when dir is empty.
func Resolve(dir string) (Source, error) {
	if dir == "" {
		return Embedded(), nil
	}
	return FromDir(dir)
}

// RequiredFiles lists the entries every template must provide, relative to its root.
func RequiredFiles() []string {
	return []string{
		config.CMakeListsFile,
		path.Join(config.SrcFolder, config.CMakeListsFile),
		config.MainFileName,
		config.EditorConfigFile,
		config.GitignoreTemplateFile,
		config.VcpkgJSONFile,
	}
}

// Verify checks that s provides every required entry.
func (s Source) Verify() filemanager.VerifyResult {
	return filemanager.VerifyTree(s.FS, s.Root, RequiredFiles())
}

// Fingerprint returns a content hash of the tree.
func (s Source) Fingerprint() (string, error) {
	return filemanager.HashFS(s.FS, s.Root)
}

// Files lists every file of the tree relative to its root.
func (s Source) Files() ([]string, error) {
	var files []string
	err := fs.WalkDir(s.FS, s.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel := p
		if s.Root != "." {
			rel = p[len(path.Clean(s.Root))+1:]
		}
		files = append(files, rel)
		return nil
	})
	return files, err
}
