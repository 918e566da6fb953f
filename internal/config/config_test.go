package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveAndLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, AppDir, DefaultsFile)

	original := BuiltinDefaults()
	original.Standard = "20"
	original.SrcFolderName = "source"
	original.Vcpkg = false

	if err := SaveDefaults(path, original); err != nil {
		t.Fatalf("SaveDefaults() error: %v", err)
	}

	loaded, err := LoadDefaults(path)
	if err != nil {
		t.Fatalf("LoadDefaults() error: %v", err)
	}

	if loaded.Standard != "20" {
		t.Errorf("Standard = %q, want %q", loaded.Standard, "20")
	}
	if loaded.SrcFolderName != "source" {
		t.Errorf("SrcFolderName = %q, want %q", loaded.SrcFolderName, "source")
	}
	if loaded.Vcpkg {
		t.Error("Vcpkg should be false")
	}
	if !loaded.Git {
		t.Error("Git should keep its saved value true")
	}
}

func TestLoadDefaultsMissingFile(t *testing.T) {
	loaded, err := LoadDefaults(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("LoadDefaults() error: %v", err)
	}

	b := BuiltinDefaults()
	if *loaded != *b {
		t.Errorf("LoadDefaults() = %+v, want built-ins %+v", *loaded, *b)
	}
}

func TestLoadDefaultsEnvOverride(t *testing.T) {
	t.Setenv("SCAPP_STANDARD", "C++23")
	t.Setenv("SCAPP_GIT", "false")
	t.Setenv("SCAPP_MAIN_FILE_NAME", "app.cpp")

	loaded, err := LoadDefaults("")
	if err != nil {
		t.Fatalf("LoadDefaults() error: %v", err)
	}

	if loaded.Standard != "23" {
		t.Errorf("Standard = %q, want %q", loaded.Standard, "23")
	}
	if loaded.Git {
		t.Error("Git should be false from env")
	}
	if loaded.MainFileName != "app.cpp" {
		t.Errorf("MainFileName = %q, want %q", loaded.MainFileName, "app.cpp")
	}
}

func TestLoadDefaultsPartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultsFile)
	os.WriteFile(path, []byte("standard: \"14\"\ncmake: false\n"), 0644)

	loaded, err := LoadDefaults(path)
	if err != nil {
		t.Fatalf("LoadDefaults() error: %v", err)
	}

	if loaded.Standard != "14" {
		t.Errorf("Standard = %q, want %q", loaded.Standard, "14")
	}
	if loaded.CMake {
		t.Error("CMake should be false")
	}
	if loaded.MainFileName != MainFileName {
		t.Errorf("MainFileName = %q, want built-in %q", loaded.MainFileName, MainFileName)
	}
}

func TestLoadDefaultsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad standard", "standard: \"15\"\n"},
		{"nested src folder", "src_folder_name: a/b\n"},
		{"empty main file", "main_file_name: \"\"\n"},
		{"broken yaml", "standard: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), DefaultsFile)
			os.WriteFile(path, []byte(tt.content), 0644)

			if _, err := LoadDefaults(path); err == nil {
				t.Error("LoadDefaults() should return error")
			}
		})
	}
}

func TestSaveDefaultsHasHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultsFile)

	if err := SaveDefaults(path, BuiltinDefaults()); err != nil {
		t.Fatalf("SaveDefaults() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading defaults: %v", err)
	}
	if !strings.HasPrefix(string(data), "# scapp defaults") {
		t.Error("defaults file should start with the header comment")
	}
	if strings.Contains(string(data), "template_dir") {
		t.Error("empty template_dir should be omitted")
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file should not be left behind")
	}
}

func TestSaveDefaultsRejectsInvalid(t *testing.T) {
	d := BuiltinDefaults()
	d.Standard = "2"
	path := filepath.Join(t.TempDir(), DefaultsFile)

	if err := SaveDefaults(path, d); err == nil {
		t.Fatal("SaveDefaults() should reject an invalid standard")
	}
	if DefaultsExist(path) {
		t.Error("nothing should be written for invalid defaults")
	}
}

func TestDefaultsPath(t *testing.T) {
	path := DefaultsPath()
	if filepath.Base(path) != DefaultsFile {
		t.Errorf("DefaultsPath() base = %q, want %q", filepath.Base(path), DefaultsFile)
	}
	if filepath.Base(filepath.Dir(path)) != AppDir {
		t.Errorf("DefaultsPath() dir = %q, want %q", filepath.Dir(path), AppDir)
	}
}
