// Package vcs initializes a revision-control repository in a project folder.
package vcs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/go-git/go-git/v5"
)

// Initializer creates an empty repository in dir.
type Initializer interface {
	Init(ctx context.Context, dir string) error
	Name() string
}

// Git runs the git executable.
type Git struct {
	// Path overrides the executable looked up on PATH.
	Path string
	// Output receives the command output. Nil discards it.
	Output io.Writer
}

// Init runs `git init` with dir as the working directory.
func (g *Git) Init(ctx context.Context, dir string) error {
	cmd := exec.CommandContext(ctx, g.path(), "init")
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stdout = g.Output
	cmd.Stderr = &stderr
	if g.Output != nil {
		cmd.Stderr = io.MultiWriter(&stderr, g.Output)
	}

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("git init failed with exit code %d: %s",
				exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
		}
		return fmt.Errorf("git init: %w", err)
	}
	return nil
}

func (g *Git) Name() string {
	return "git"
}

func (g *Git) path() string {
	if g.Path != "" {
		return g.Path
	}
	return "git"
}

// GoGit creates the repository in-process, for machines without git installed.
type GoGit struct{}

// Init creates a non-bare repository in dir.
func (GoGit) Init(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := git.PlainInit(dir, false); err != nil {
		return fmt.Errorf("initializing repository in %s: %w", dir, err)
	}
	return nil
}

func (GoGit) Name() string {
	return "go-git"
}

// Detect returns the git executable when it is on PATH and GoGit otherwise.
// Output, when non-nil, receives the executable's output.
func Detect(output io.Writer) Initializer {
	if path, err := exec.LookPath("git"); err == nil {
		return &Git{Path: path, Output: output}
	}
	return GoGit{}
}

// Available reports whether the git executable is on PATH.
func Available() (string, bool) {
	path, err := exec.LookPath("git")
	return path, err == nil
}
