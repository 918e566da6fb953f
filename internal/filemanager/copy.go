package filemanager

import (
	"io/fs"

	"github.com/cockroachdb/errors"
	cp "github.com/otiai10/copy"
)

// CopyTree copies root of fsys, recursively, into dst. Owner write
// permission is added to every copied entry so the copy can be edited
// afterwards even when the source (e.g. an embedded tree) is read-only.
func (m *Manager) CopyTree(fsys fs.FS, root, dst string) error {
	m.log.Debug("copying template", "root", root, "dest", dst)

	opts := cp.Options{
		FS:                fsys,
		PermissionControl: cp.AddPermission(0o200),
		PreserveTimes:     false,
		PreserveOwner:     false,
	}
	if err := cp.Copy(root, dst, opts); err != nil {
		return errors.WithHint(
			errors.Mark(errors.Wrapf(err, "copying template into %s", dst), ErrCopyTemplate),
			"check that the template directory is readable and the destination is writable")
	}
	return nil
}
