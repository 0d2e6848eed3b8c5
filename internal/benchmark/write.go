package benchmark

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/txtar"
)

// File permission constants.
const (
	// DirMode is the permission for created directories (rwxr-xr-x).
	DirMode os.FileMode = 0o755
	// FileMode is the permission for written files (rw-r--r--).
	FileMode os.FileMode = 0o644
)

// WriteDir writes every file of the bundle into dir, at most jobs at a time.
// The first failure cancels the remaining writes and is returned.
func WriteDir(ctx context.Context, b *Bundle, dir string, jobs int) error {
	if err := os.MkdirAll(dir, DirMode); err != nil {
		return fmt.Errorf("cannot create directory: %s: %w", dir, err)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(jobs, 1))

	for _, f := range b.Files {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			slog.Debug("Writing file", "dir", dir, "file", f.Name)

			return WriteFile(dir, f.Name, f.Content)
		})
	}

	return eg.Wait()
}

// WriteFile writes a file to dir using atomic rename.
// It writes to a temp file in the same directory, then renames.
// Note: Does not fsync the directory, so durability is not guaranteed on crash.
func WriteFile(dir string, fileName string, content []byte) (retErr error) {
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("cannot create temp file: %w", err)
	}
	tmpName := tmp.Name()
	closed := false

	defer func() {
		if !closed {
			_ = tmp.Close()
		}
		if retErr != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("cannot write file: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("cannot sync file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot close temp file: %w", err)
	}
	closed = true

	if err := os.Chmod(tmpName, FileMode); err != nil {
		return fmt.Errorf("cannot set file permissions: %w", err)
	}

	finalPath := filepath.Join(dir, fileName)
	if err := os.Rename(tmpName, finalPath); err != nil {
		return fmt.Errorf("cannot write file %s: %w", finalPath, err)
	}

	return nil
}

// WriteArchive writes the bundle as a txtar archive.
func WriteArchive(w io.Writer, b *Bundle) error {
	archive := &txtar.Archive{
		Comment: fmt.Appendf(nil, "fruit benchmark, toplevel component %d\n", b.Toplevel),
		Files:   make([]txtar.File, 0, len(b.Files)),
	}
	for _, f := range b.Files {
		archive.Files = append(archive.Files, txtar.File{Name: f.Name, Data: f.Content})
	}

	if _, err := w.Write(txtar.Format(archive)); err != nil {
		return fmt.Errorf("write archive: %w", err)
	}

	return nil
}
