// Package scan selects the files in a directory worth encoding.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Candidates returns the regular, non-hidden files in dir whose
// extension is not on the ignored list, sorted by name. Files without
// an extension are skipped. Ignored entries are matched without regard
// to case or a leading dot, so hand-edited config values still apply.
func Candidates(dir string, ignored []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	skip := make(map[string]bool, len(ignored))
	for _, ext := range ignored {
		if ext = normalizeExt(ext); ext != "" {
			skip[ext] = true
		}
	}
	var files []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		ext := normalizeExt(filepath.Ext(name))
		if ext == "" || skip[ext] {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	return files, nil
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}
