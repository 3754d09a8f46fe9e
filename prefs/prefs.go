// Package prefs persists user preferences: the list of file extensions
// skipped during directory scans and the default literal format.
package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/embedkit/hexlit/encoder"
)

const configFile = "config.yaml"

// Config is the on-disk preferences document.
type Config struct {
	Ignored []string       `yaml:"ignored"`
	Format  encoder.Format `yaml:"format"`
}

// Default returns the configuration used when no file exists yet.
// The ignored list covers text formats that never belong in a literal.
func Default() *Config {
	return &Config{
		Ignored: []string{"pxm", "py", "txt", "text", "html", "md", "markdown"},
		Format:  encoder.Default(),
	}
}

// Dir returns the directory holding the config file, creating it if
// needed. Checks HEXLIT_CONFIG_DIR first, falls back to
// ~/.config/hexlit.
func Dir() (string, error) {
	dir := os.Getenv("HEXLIT_CONFIG_DIR")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		dir = filepath.Join(home, ".config", "hexlit")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	return dir, nil
}

// Load reads the config file. A missing file yields the defaults
// without error; a malformed file is reported.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, configFile)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config file, replacing any previous contents.
func (c *Config) Save() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	path := filepath.Join(dir, configFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// AddIgnored adds extensions to the ignored list and reports how many
// were new. Entries may be comma-separated lists, e.g. "pdf,rtf".
func (c *Config) AddIgnored(exts []string) int {
	added := 0
	for _, ext := range splitExts(exts) {
		if slices.Contains(c.Ignored, ext) {
			continue
		}
		c.Ignored = append(c.Ignored, ext)
		added++
	}
	return added
}

// RemoveIgnored removes extensions from the ignored list and reports
// how many were present.
func (c *Config) RemoveIgnored(exts []string) int {
	removed := 0
	for _, ext := range splitExts(exts) {
		if i := slices.Index(c.Ignored, ext); i >= 0 {
			c.Ignored = slices.Delete(c.Ignored, i, i+1)
			removed++
		}
	}
	return removed
}

// IsIgnored reports whether ext is on the ignored list. A leading dot
// and letter case are insignificant.
func (c *Config) IsIgnored(ext string) bool {
	return slices.Contains(c.Ignored, normalizeExt(ext))
}

// splitExts flattens entries like ["nut", "rtf,pdf"] into a normalized
// list ["nut", "rtf", "pdf"].
func splitExts(exts []string) []string {
	var out []string
	for _, entry := range exts {
		for _, ext := range strings.Split(entry, ",") {
			if ext = normalizeExt(ext); ext != "" {
				out = append(out, ext)
			}
		}
	}
	return out
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}
