// Package filemanager holds the filesystem primitives used to materialize a
// project: directory creation, tree copy, removal and rename. Every primitive
// logs its own failure and returns it; callers decide whether it is fatal.
package filemanager

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
)

// Sentinels for the failures that abort a run.
var (
	ErrDestinationNotEmpty = errors.New("destination is not empty")
	ErrDestinationNotDir   = errors.New("destination is not a directory")
	ErrCopyTemplate        = errors.New("template copy failed")
)

// DirState describes how CreateDirectory found the destination.
type DirState int

const (
	DirUnknown DirState = iota
	// DirCreated means the directory did not exist and was created.
	DirCreated
	// DirExistedEmpty means an empty directory was already there.
	DirExistedEmpty
)

func (s DirState) String() string {
	switch s {
	case DirCreated:
		return "created"
	case DirExistedEmpty:
		return "existed-empty"
	default:
		return "unknown"
	}
}

// Manager performs filesystem primitives and reports failures to its logger.
type Manager struct {
	log *log.Logger
}

// NewManager creates a new file manager logging to logger.
func NewManager(logger *log.Logger) *Manager {
	return &Manager{log: logger}
}

// CreateDirectory creates path. An existing empty directory is accepted with
// a warning; an existing non-empty one is refused without touching it.
func (m *Manager) CreateDirectory(path string) (DirState, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		if err := os.Mkdir(path, 0755); err != nil {
			return DirUnknown, errors.Wrapf(err, "creating %s", path)
		}
		m.log.Debug("created destination", "path", path)
		return DirCreated, nil
	}
	if err != nil {
		return DirUnknown, errors.Wrapf(err, "checking %s", path)
	}

	if !info.IsDir() {
		return DirUnknown, errors.WithHint(
			errors.Mark(errors.Newf("%s exists and is not a directory", path), ErrDestinationNotDir),
			"choose another folder name")
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return DirUnknown, errors.Wrapf(err, "reading %s", path)
	}
	if len(entries) > 0 {
		return DirUnknown, errors.WithHint(
			errors.Mark(errors.Newf("folder %s already exists and is not empty", path), ErrDestinationNotEmpty),
			"choose another folder name or remove the existing folder")
	}

	m.log.Warn("destination already exists but is empty, using it", "path", path)
	return DirExistedEmpty, nil
}

// RemoveFile deletes a single file.
func (m *Manager) RemoveFile(path string) error {
	if err := os.Remove(path); err != nil {
		m.log.Error("could not remove file", "path", path, "err", err)
		return fmt.Errorf("removing %s: %w", path, err)
	}
	m.log.Debug("removed file", "path", path)
	return nil
}

// RemoveTree deletes path and everything below it.
func (m *Manager) RemoveTree(path string) error {
	if err := os.RemoveAll(path); err != nil {
		m.log.Error("could not remove folder", "path", path, "err", err)
		return fmt.Errorf("removing %s: %w", path, err)
	}
	m.log.Debug("removed folder", "path", path)
	return nil
}

// RenameEntry renames path to newName within the same parent directory.
// An existing entry with the new name is never overwritten.
func (m *Manager) RenameEntry(path, newName string) error {
	err := m.rename(path, newName)
	if err != nil {
		m.log.Error("could not rename", "path", path, "to", newName, "err", err)
	}
	return err
}

func (m *Manager) rename(path, newName string) error {
	if err := validatePathComponent(newName, "name"); err != nil {
		return err
	}

	dest := filepath.Join(filepath.Dir(path), newName)
	if dest == filepath.Clean(path) {
		return nil
	}
	if _, err := os.Lstat(dest); err == nil {
		return fmt.Errorf("renaming %s: %s already exists", path, dest)
	}
	if err := os.Rename(path, dest); err != nil {
		return fmt.Errorf("renaming %s: %w", path, err)
	}
	m.log.Debug("renamed", "from", path, "to", dest)
	return nil
}

// validatePathComponent rejects names that could escape the parent directory.
func validatePathComponent(name, label string) error {
	if name == "" {
		return fmt.Errorf("empty %s", label)
	}
	cleaned := filepath.Clean(name)
	if cleaned != name || name == "." || name == ".." ||
		filepath.IsAbs(cleaned) || strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') {
		return fmt.Errorf("invalid %s: %q", label, name)
	}
	return nil
}
