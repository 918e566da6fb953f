package filemanager

import (
	"io/fs"
	"path"
)

// VerifyResult contains the results of a tree check.
type VerifyResult struct {
	Root    string
	OK      bool
	Missing []string
}

// VerifyTree checks that every required entry (slash-separated, relative to
// root) exists in fsys. A missing root reports itself as missing.
func VerifyTree(fsys fs.FS, root string, required []string) VerifyResult {
	result := VerifyResult{Root: root, OK: true}

	info, err := fs.Stat(fsys, root)
	if err != nil || !info.IsDir() {
		result.OK = false
		result.Missing = append(result.Missing, root)
		return result
	}

	for _, name := range required {
		if _, err := fs.Stat(fsys, path.Join(root, name)); err != nil {
			result.Missing = append(result.Missing, name)
			result.OK = false
		}
	}
	return result
}
