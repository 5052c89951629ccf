package storage_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/Tiliavir/workhours/internal/model"
	"github.com/Tiliavir/workhours/internal/storage"
)

func TestLoadSheetNotExist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "worklog.json")
	sh, err := storage.LoadSheet(path)
	if err != nil {
		t.Fatalf("LoadSheet on missing file: %v", err)
	}
	if sh.Rows == nil || len(sh.Rows) != 0 {
		t.Errorf("LoadSheet rows = %#v, want empty slice", sh.Rows)
	}
}

func TestSaveSheetAndLoadSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "worklog.json")

	sh := model.Sheet{
		Title: "January",
		Rows: []model.Row{
			{ID: "r1", Date: "20240101", CheckIn: "08:00", CheckOut: "17:00"},
			{ID: "r2", Date: "20240102", CheckIn: "22:00", CheckOut: "06:00", NextDay: true},
		},
	}

	if err := storage.SaveSheet(path, sh); err != nil {
		t.Fatalf("SaveSheet: %v", err)
	}

	loaded, err := storage.LoadSheet(path)
	if err != nil {
		t.Fatalf("LoadSheet after save: %v", err)
	}
	if loaded.Title != "January" {
		t.Errorf("LoadSheet title = %q, want %q", loaded.Title, "January")
	}
	if len(loaded.Rows) != 2 {
		t.Fatalf("LoadSheet rows = %d, want 2", len(loaded.Rows))
	}
	if loaded.Rows[1] != sh.Rows[1] {
		t.Errorf("LoadSheet row = %+v, want %+v", loaded.Rows[1], sh.Rows[1])
	}
}

func TestLoadSheetCorrupt(t *testing.T) {
	// Verify that a corrupt JSON file is backed up and returns an error.
	path := filepath.Join(t.TempDir(), "worklog.json")
	if err := os.WriteFile(path, []byte("{bad json"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := storage.LoadSheet(path)
	if err == nil {
		t.Fatal("expected error for corrupt JSON, got nil")
	}

	// Backup file should exist.
	if _, err2 := os.Stat(path + ".corrupt"); os.IsNotExist(err2) {
		t.Error("expected backup file to exist after corrupt JSON")
	}
}

func TestWriteFileAtomicKeepsTargetOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.txt")
	if err := os.WriteFile(path, []byte("previous"), 0o600); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("boom")
	err := storage.WriteFileAtomic(path, func(w io.Writer) error {
		_, _ = w.Write([]byte("partial"))
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WriteFileAtomic error = %v, want wrapped boom", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "previous" {
		t.Errorf("target content = %q, want %q", data, "previous")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d files, want only the target", len(entries))
	}
}

func TestWriteFileAtomicReplacesTarget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	if err := os.WriteFile(path, []byte("old"), 0o600); err != nil {
		t.Fatal(err)
	}

	err := storage.WriteFileAtomic(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "new")
		return err
	})
	if err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new" {
		t.Errorf("target content = %q, want %q", data, "new")
	}
}
