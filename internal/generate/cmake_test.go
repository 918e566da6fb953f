package generate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/company/scapp/internal/config"
)

func TestCMakeWithSourceFolder(t *testing.T) {
	p := newProject(t, nil)

	require.NoError(t, CMake(p))

	root := readProjectFile(t, p, config.CMakeListsFile)
	assert.Contains(t, root, "project(demo")
	assert.Contains(t, root, "set(CMAKE_CXX_STANDARD 20)")
	assert.Contains(t, root, "add_subdirectory(src)")
	assert.NotContains(t, root, config.AppNamePlaceholder)

	src := readProjectFile(t, p, config.SrcFolder, config.CMakeListsFile)
	assert.Contains(t, src, "add_executable(demo")
	assert.Contains(t, src, "  ../main.cpp\n")
	assert.Contains(t, src, "target_compile_features(demo PRIVATE cxx_std_20)")
	assert.NotContains(t, src, config.AppNamePlaceholder)
}

func TestCMakeRenamedSourceFolder(t *testing.T) {
	p := newProject(t, func(p *config.Project) { p.SrcFolderName = "source" })

	require.NoError(t, CMake(p))

	root := readProjectFile(t, p, config.CMakeListsFile)
	assert.Contains(t, root, "add_subdirectory(source)")
	assert.NotContains(t, root, "add_subdirectory(src)")

	// the source descriptor is still addressed under its template path
	src := readProjectFile(t, p, config.SrcFolder, config.CMakeListsFile)
	assert.Contains(t, src, "add_executable(demo")
}

func TestCMakeMainFile(t *testing.T) {
	tests := []struct {
		name        string
		edit        func(p *config.Project)
		contains    string
		notContains string
	}{
		{
			name:        "renamed",
			edit:        func(p *config.Project) { p.MainFileName = "app.cpp" },
			contains:    "  ../app.cpp\n",
			notContains: "main.cpp",
		},
		{
			name:     "no main",
			edit:     func(p *config.Project) { p.AddMain = false },
			contains: "  #../main.cpp\n",
		},
		{
			name:        "no main ignores name",
			edit:        func(p *config.Project) { p.AddMain = false; p.MainFileName = "app.cpp" },
			contains:    "  #../main.cpp\n",
			notContains: "app.cpp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newProject(t, tt.edit)
			require.NoError(t, CMake(p))

			src := readProjectFile(t, p, config.SrcFolder, config.CMakeListsFile)
			assert.Contains(t, src, tt.contains)
			if tt.notContains != "" {
				assert.NotContains(t, src, tt.notContains)
			}
		})
	}
}

func TestCMakeWithoutSourceFolder(t *testing.T) {
	tests := []struct {
		name        string
		edit        func(p *config.Project)
		contains    string
		notContains string
	}{
		{
			name:        "default main",
			edit:        func(p *config.Project) { p.SrcFolder = false },
			contains:    "  main.cpp\n",
			notContains: "../main.cpp",
		},
		{
			name:        "renamed main",
			edit:        func(p *config.Project) { p.SrcFolder = false; p.MainFileName = "app.cpp" },
			contains:    "  app.cpp\n",
			notContains: "main.cpp",
		},
		{
			name:        "no main",
			edit:        func(p *config.Project) { p.SrcFolder = false; p.AddMain = false },
			contains:    "  #main.cpp\n",
			notContains: "../main.cpp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newProject(t, tt.edit)
			require.NoError(t, CMake(p))

			root := readProjectFile(t, p, config.CMakeListsFile)
			assert.NotContains(t, root, "add_subdirectory")
			assert.Contains(t, root, "project(demo")
			assert.Contains(t, root, "set(CMAKE_CXX_STANDARD 20)")
			assert.Contains(t, root, "add_executable(demo")
			assert.Contains(t, root, "target_compile_features(demo PRIVATE cxx_std_20)")
			assert.NotContains(t, root, config.AppNamePlaceholder)
			assert.Contains(t, root, tt.contains)
			assert.NotContains(t, root, tt.notContains)

			// the source descriptor is read, never rewritten
			src := readProjectFile(t, p, config.SrcFolder, config.CMakeListsFile)
			assert.Contains(t, src, config.AppNamePlaceholder)
		})
	}
}

func TestCMakeIsIdempotent(t *testing.T) {
	p := newProject(t, func(p *config.Project) { p.MainFileName = "app.cpp" })
	require.NoError(t, CMake(p))

	root := readProjectFile(t, p, config.CMakeListsFile)
	src := readProjectFile(t, p, config.SrcFolder, config.CMakeListsFile)

	require.NoError(t, CMake(p))
	assert.Equal(t, root, readProjectFile(t, p, config.CMakeListsFile))
	assert.Equal(t, src, readProjectFile(t, p, config.SrcFolder, config.CMakeListsFile))
}

func TestCMakeDefaultStandardLeavesTextAlone(t *testing.T) {
	p := newProject(t, func(p *config.Project) { p.Standard = config.DefaultStandard })
	require.NoError(t, CMake(p))

	src := readProjectFile(t, p, config.SrcFolder, config.CMakeListsFile)
	assert.Contains(t, src, "cxx_std_17")
	root := readProjectFile(t, p, config.CMakeListsFile)
	assert.Contains(t, root, "set(CMAKE_CXX_STANDARD 17)")
}

func TestCMakeMissingRootStillRewritesSource(t *testing.T) {
	p := newProject(t, nil)
	require.NoError(t, os.Remove(filepath.Join(p.FullPath(), config.CMakeListsFile)))

	err := CMake(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "root CMakeLists.txt")

	src := readProjectFile(t, p, config.SrcFolder, config.CMakeListsFile)
	assert.Contains(t, src, "add_executable(demo")
}

func TestCMakeMissingSourceDescriptorWithoutSourceFolder(t *testing.T) {
	p := newProject(t, func(p *config.Project) { p.SrcFolder = false })
	require.NoError(t, os.RemoveAll(filepath.Join(p.FullPath(), config.SrcFolder)))

	rootBefore := readProjectFile(t, p, config.CMakeListsFile)

	require.Error(t, CMake(p))
	assert.Equal(t, rootBefore, readProjectFile(t, p, config.CMakeListsFile))
}

func TestCMakeDoesNotMutateProject(t *testing.T) {
	p := newProject(t, func(p *config.Project) { p.SrcFolder = false; p.MainFileName = "app.cpp" })
	before := *p

	require.NoError(t, CMake(p))
	assert.Equal(t, before, *p)
}
