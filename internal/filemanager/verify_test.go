package filemanager

import (
	"testing"
	"testing/fstest"
)

func TestVerifyTree(t *testing.T) {
	fsys := fstest.MapFS{
		"tpl/CMakeLists.txt":     {Data: []byte("x")},
		"tpl/src/CMakeLists.txt": {Data: []byte("x")},
	}

	result := VerifyTree(fsys, "tpl", []string{"CMakeLists.txt", "src/CMakeLists.txt"})
	if !result.OK {
		t.Errorf("VerifyTree() should pass, missing: %v", result.Missing)
	}

	result = VerifyTree(fsys, "tpl", []string{"CMakeLists.txt", "main.cpp"})
	if result.OK {
		t.Error("VerifyTree() should fail with a missing file")
	}
	if len(result.Missing) != 1 || result.Missing[0] != "main.cpp" {
		t.Errorf("Missing = %v, want [main.cpp]", result.Missing)
	}
}

func TestVerifyTreeMissingRoot(t *testing.T) {
	result := VerifyTree(fstest.MapFS{}, "tpl", []string{"a"})
	if result.OK {
		t.Error("VerifyTree() should fail when the root is missing")
	}
	if len(result.Missing) != 1 || result.Missing[0] != "tpl" {
		t.Errorf("Missing = %v, want [tpl]", result.Missing)
	}
}
