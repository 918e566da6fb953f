package filemanager

import (
	"crypto/sha256"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
)

// HashFS computes a deterministic SHA256 hash of the tree under root in fsys.
// Files are sorted by path and each file's relative path + content is hashed.
func HashFS(fsys fs.FS, root string) (string, error) {
	var files []string
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	sort.Strings(files)

	h := sha256.New()
	for _, f := range files {
		rel := f
		if root != "." {
			rel = f[len(path.Clean(root))+1:]
		}
		fmt.Fprintf(h, "file:%s\n", rel)

		data, err := fs.ReadFile(fsys, f)
		if err != nil {
			return "", err
		}
		h.Write(data)
	}

	return fmt.Sprintf("sha256:%x", h.Sum(nil)), nil
}

// HashDir computes HashFS over a directory on disk.
func HashDir(dir string) (string, error) {
	return HashFS(os.DirFS(dir), ".")
}
