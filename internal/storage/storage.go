package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Tiliavir/workhours/internal/model"
)

// LoadSheet loads the sheet at path. Returns an empty Sheet if not found.
func LoadSheet(path string) (model.Sheet, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return model.Sheet{Rows: []model.Row{}}, nil
	}
	if err != nil {
		return model.Sheet{}, fmt.Errorf("storage error reading %s: %w", path, err)
	}

	var sh model.Sheet
	if err := json.Unmarshal(data, &sh); err != nil {
		// Back up corrupt file and abort.
		backupPath := path + ".corrupt"
		_ = os.Rename(path, backupPath)
		return model.Sheet{}, fmt.Errorf("corrupt JSON in %s (backed up to %s): %w", path, backupPath, err)
	}
	if sh.Rows == nil {
		sh.Rows = []model.Row{}
	}
	return sh, nil
}

// SaveSheet atomically writes sh to path.
func SaveSheet(path string, sh model.Sheet) error {
	data, err := json.MarshalIndent(sh, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}
	return WriteFileAtomic(path, func(w io.Writer) error {
		_, err := w.Write(append(data, '\n'))
		return err
	})
}

// WriteFileAtomic creates path by streaming write into a temp file next to
// it and renaming the temp file over path. On any failure the temp file is
// removed and path is left as it was.
func WriteFileAtomic(path string, write func(w io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("storage error creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := write(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}
