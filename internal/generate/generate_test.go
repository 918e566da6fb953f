package generate

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/company/scapp/internal/config"
	"github.com/company/scapp/internal/filemanager"
	"github.com/company/scapp/internal/templates"
)

// newProject returns a resolved project whose folder holds a fresh copy of
// the embedded template.
func newProject(t *testing.T, edit func(p *config.Project)) *config.Project {
	t.Helper()

	p := config.NewProject()
	p.AppName = "demo"
	p.Standard = "20"
	if edit != nil {
		edit(p)
	}
	require.NoError(t, p.Resolve(t.TempDir()))

	m := filemanager.NewManager(log.New(io.Discard))
	_, err := m.CreateDirectory(p.FullPath())
	require.NoError(t, err)
	src := templates.Embedded()
	require.NoError(t, m.CopyTree(src.FS, src.Root, p.FullPath()))
	return p
}

func readProjectFile(t *testing.T, p *config.Project, elem ...string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(append([]string{p.FullPath()}, elem...)...))
	require.NoError(t, err)
	return string(data)
}
