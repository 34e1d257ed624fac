package level

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed levels/*.yaml
var builtinFS embed.FS

// LoadFile parses and validates one level file.
func LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("failed to read level %s: %w", path, err)
	}
	return parse(data, path)
}

// LoadDir loads every *.yaml level in a directory, sorted by level ID.
func LoadDir(dir string) ([]Level, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read level dir %s: %w", dir, err)
	}

	var levels []Level
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		lv, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		levels = append(levels, lv)
	}
	sortLevels(levels)
	return levels, nil
}

// Builtin returns the embedded campaign levels, sorted by level ID.
func Builtin() ([]Level, error) {
	entries, err := builtinFS.ReadDir("levels")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded levels: %w", err)
	}

	var levels []Level
	for _, e := range entries {
		data, err := builtinFS.ReadFile("levels/" + e.Name())
		if err != nil {
			return nil, err
		}
		lv, err := parse(data, e.Name())
		if err != nil {
			return nil, err
		}
		levels = append(levels, lv)
	}
	sortLevels(levels)
	return levels, nil
}

// Load resolves the campaign level set.
// Search order: customDir -> ~/.darkmatter/levels -> ./levels -> embedded
func Load(customDir string) ([]Level, error) {
	if customDir != "" {
		return LoadDir(customDir)
	}

	if home, err := os.UserHomeDir(); err == nil {
		userDir := filepath.Join(home, ".darkmatter", "levels")
		if levels, err := LoadDir(userDir); err == nil && len(levels) > 0 {
			return levels, nil
		}
	}

	if levels, err := LoadDir("levels"); err == nil && len(levels) > 0 {
		return levels, nil
	}

	return Builtin()
}

func parse(data []byte, name string) (Level, error) {
	var lv Level
	if err := yaml.Unmarshal(data, &lv); err != nil {
		return Level{}, fmt.Errorf("failed to parse level %s: %w", name, err)
	}
	if err := lv.Validate(); err != nil {
		return Level{}, fmt.Errorf("level %s: %w", name, err)
	}
	return lv, nil
}

func sortLevels(levels []Level) {
	sort.Slice(levels, func(a, b int) bool {
		return levels[a].ID < levels[b].ID
	})
}
