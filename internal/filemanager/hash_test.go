package filemanager

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

func TestHashDir(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "a.txt"), []byte("aaa"), 0644)
	os.MkdirAll(filepath.Join(dir, "sub"), 0755)
	os.WriteFile(filepath.Join(dir, "sub", "b.txt"), []byte("bbb"), 0644)

	hash1, err := HashDir(dir)
	if err != nil {
		t.Fatalf("HashDir() error: %v", err)
	}
	if !strings.HasPrefix(hash1, "sha256:") {
		t.Errorf("hash should start with sha256: prefix, got %q", hash1)
	}

	hash2, _ := HashDir(dir)
	if hash1 != hash2 {
		t.Error("same directory should produce same hash")
	}

	os.WriteFile(filepath.Join(dir, "a.txt"), []byte("changed"), 0644)
	hash3, _ := HashDir(dir)
	if hash1 == hash3 {
		t.Error("modified directory should produce different hash")
	}
}

func TestHashFSRootIndependent(t *testing.T) {
	nested := fstest.MapFS{
		"tpl/a.txt":     {Data: []byte("aaa")},
		"tpl/sub/b.txt": {Data: []byte("bbb")},
	}
	flat := fstest.MapFS{
		"a.txt":     {Data: []byte("aaa")},
		"sub/b.txt": {Data: []byte("bbb")},
	}

	h1, err := HashFS(nested, "tpl")
	if err != nil {
		t.Fatalf("HashFS() error: %v", err)
	}
	h2, err := HashFS(flat, ".")
	if err != nil {
		t.Fatalf("HashFS() error: %v", err)
	}
	if h1 != h2 {
		t.Errorf("hash should not depend on the root prefix: %s != %s", h1, h2)
	}
}

func TestHashDirMissing(t *testing.T) {
	if _, err := HashDir(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("HashDir() should fail for a missing directory")
	}
}
