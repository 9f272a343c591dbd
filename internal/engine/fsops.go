package engine

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// copyFile copies src to dst, preserving mode and modification time.
// An existing dst is overwritten in place.
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return err
	}

	// dst may have pre-existed with different permissions.
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}
	return os.Chtimes(dst, time.Now(), info.ModTime())
}

// copyTree recursively copies the directory tree at src to dst.
// dst is created fresh; callers remove or move any previous tree first.
func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			info, infoErr := d.Info()
			if infoErr != nil {
				return infoErr
			}
			return os.MkdirAll(target, info.Mode().Perm())
		}
		return copyFile(path, target)
	})
}

// fileBackupPath appends .backup to a file's name, keeping its suffix:
// .zshrc → .zshrc.backup, config.toml → config.toml.backup.
func fileBackupPath(path string) string {
	return path + ".backup"
}

// dirBackupPath replaces a directory's path suffix with .backup:
// nvim → nvim.backup, profile.d → profile.backup.
func dirBackupPath(path string) string {
	ext := filepath.Ext(path)
	if ext == filepath.Base(path) {
		ext = "" // dotfile names like .ssh carry no suffix
	}
	return path[:len(path)-len(ext)] + ".backup"
}
