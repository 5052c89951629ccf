// Package report renders a work log as a text table, spreadsheet, PDF
// document, CSV or JSON. Renderers only lay out the projection produced by
// the worklog package; they hold no business rules.
package report

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Tiliavir/workhours/internal/storage"
	"github.com/Tiliavir/workhours/internal/worklog"
)

// Format names an export format.
type Format string

const (
	FormatText  Format = "text"
	FormatExcel Format = "xlsx"
	FormatPDF   Format = "pdf"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatExcel, FormatPDF, FormatCSV, FormatJSON}

// ErrUnknownFormat is returned for format names not in Formats.
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat maps a user-supplied name to a Format. "excel" and "txt" are
// accepted as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt":
		return FormatText, nil
	case "xlsx", "excel":
		return FormatExcel, nil
	case "pdf":
		return FormatPDF, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string {
	if f == FormatText {
		return ".txt"
	}
	return "." + string(f)
}

// WithExt appends the format's extension to path when path has none.
func (f Format) WithExt(path string) string {
	if filepath.Ext(path) != "" {
		return path
	}
	return path + f.Ext()
}

// Options carries document metadata.
type Options struct {
	Title  string
	Author string
}

// ExportError reports a failed export. The target file is never left
// partially written.
type ExportError struct {
	Format Format
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s to %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// Write renders log in format f to w.
func Write(w io.Writer, f Format, log *worklog.WorkLog, opts Options) error {
	switch f {
	case FormatText:
		return WriteText(w, log)
	case FormatExcel:
		return WriteExcel(w, log, opts)
	case FormatPDF:
		return WritePDF(w, BuildDocument(opts.Title, log), opts)
	case FormatCSV:
		return WriteCSV(w, BuildDocument(opts.Title, log))
	case FormatJSON:
		return WriteJSON(w, opts.Title, log)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Export renders log in format f and writes it atomically to path.
func Export(path string, f Format, log *worklog.WorkLog, opts Options) error {
	err := storage.WriteFileAtomic(path, func(w io.Writer) error {
		return Write(w, f, log, opts)
	})
	if err != nil {
		return &ExportError{Format: f, Path: path, Err: err}
	}
	return nil
}
