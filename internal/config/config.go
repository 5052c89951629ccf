package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root configuration for workhours, stored in ~/.workhours/config.json.
// The file supports single-line // comments for documentation purposes.
type Config struct {
	Report ReportConfig `mapstructure:"report"`
	Sheet  SheetConfig  `mapstructure:"sheet"`
	Log    LogConfig    `mapstructure:"log"`
}

// ReportConfig holds settings shared by the export renderers.
type ReportConfig struct {
	// Title is printed at the top of PDF reports and stored in document metadata.
	Title string `mapstructure:"title"`
	// Author is stored in PDF metadata. Empty = omitted.
	Author string `mapstructure:"author"`
}

// SheetConfig controls the sheet document that holds the form rows.
type SheetConfig struct {
	// Path of the sheet document used when --sheet is not given.
	Path string `mapstructure:"path"`
	// AutoCopy makes `add` fill missing fields from the last row.
	AutoCopy bool `mapstructure:"auto_copy"`
}

// LogConfig controls diagnostic output on stderr.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

const (
	// DefaultTitle is the report title used when none is configured.
	DefaultTitle = "Work Hours Report"
	// DefaultSheetPath is relative to the working directory.
	DefaultSheetPath = "worklog.json"
	// DefaultLogLevel keeps debug output off.
	DefaultLogLevel = "info"

	envPrefix = "WORKHOURS"
)

// defaultConfig returns a Config pre-filled with sensible defaults.
func defaultConfig() Config {
	return Config{
		Report: ReportConfig{Title: DefaultTitle},
		Sheet:  SheetConfig{Path: DefaultSheetPath},
		Log:    LogConfig{Level: DefaultLogLevel},
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// workhours configuration – ~/.workhours/config.json
//
// All settings are optional. Every key can also be set through the
// environment, e.g. WORKHOURS_REPORT_TITLE or WORKHOURS_SHEET_PATH.
{
  // ── Reports ──────────────────────────────────────────────────────────────
  "report": {
    // Title printed on PDF reports. Can be overridden with: workhours export --title <t>
    "title": "Work Hours Report",

    // Author stored in the PDF metadata.
    "author": ""
  },

  // ── Sheet ────────────────────────────────────────────────────────────────
  "sheet": {
    // Sheet document holding the rows. Can be overridden with: --sheet <path>
    "path": "worklog.json",

    // When true, "workhours add" copies missing fields from the last row.
    "auto_copy": false
  },

  // ── Logging ──────────────────────────────────────────────────────────────
  "log": {
    // "info" or "debug". Can be overridden with: --debug
    "level": "info"
  }
}
`

// configFilePath returns the path to ~/.workhours/config.json.
func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".workhours", "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.workhours/config.json, creating it with annotated defaults on
// first run.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return defaultConfig(), err
	}
	return LoadFile(path)
}

// LoadFile reads the config at path. A missing file is created from the
// annotated template. Lines starting with // are treated as comments and
// stripped before JSON parsing; WORKHOURS_* environment variables override
// file values.
func LoadFile(path string) (Config, error) {
	v := newViper()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
	case err != nil:
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	default:
		if err := v.ReadConfig(bytes.NewReader(stripLineComments(data))); err != nil {
			return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return defaultConfig(), fmt.Errorf("decoding config file %s: %w", path, err)
	}

	// Fill zero-value fields with built-in defaults so callers always get
	// a usable Config even if the user blanked a value.
	if cfg.Report.Title == "" {
		cfg.Report.Title = DefaultTitle
	}
	if cfg.Sheet.Path == "" {
		cfg.Sheet.Path = DefaultSheetPath
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}

	return cfg, nil
}

// Debug reports whether the configured log level enables debug output.
func (c Config) Debug() bool {
	return strings.EqualFold(c.Log.Level, "debug")
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("json")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := defaultConfig()
	v.SetDefault("report.title", def.Report.Title)
	v.SetDefault("report.author", def.Report.Author)
	v.SetDefault("sheet.path", def.Sheet.Path)
	v.SetDefault("sheet.auto_copy", def.Sheet.AutoCopy)
	v.SetDefault("log.level", def.Log.Level)
	return v
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
