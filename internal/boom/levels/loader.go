package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-boom/internal/boom/core"
)

// Level is one parsed level definition: identity, presentation hints
// and the raw grid text. Build turns it into a playable maze.
type Level struct {
	ID        string  `yaml:"id"`
	Name      string  `yaml:"name"`
	Style     string  `yaml:"style,omitempty"`
	Countdown float64 `yaml:"countdown,omitempty"`
	Grid      string  `yaml:"grid"`

	FilePath string `yaml:"-"`
}

// defaultCountdown applies when a level file omits its own.
const defaultCountdown = 120.0

// Build parses the level grid into a maze and stamps the level
// metadata on it.
func (l *Level) Build(tiles TileSet) (*core.Maze, error) {
	m, err := ParseGrid(l.Grid, tiles)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	countdown := l.Countdown
	if countdown <= 0 {
		countdown = defaultCountdown
	}
	m.SetMeta(core.LevelMeta{ID: l.ID, Style: l.Style, Countdown: countdown})
	return m, nil
}

// ParseYAML parses one level file.
func ParseYAML(data []byte) (Level, error) {
	var l Level
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if l.ID == "" {
		return Level{}, fmt.Errorf("level file missing id")
	}
	if strings.TrimSpace(l.Grid) == "" {
		return Level{}, fmt.Errorf("level %s: missing grid", l.ID)
	}
	return l, nil
}

// Loader loads level files from a directory tree. A loader with an
// empty root serves only the embedded levels.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at dir.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll returns the embedded levels plus every valid .yaml/.yml file
// under the root, sorted by ID. A file level with the same ID as an
// embedded one overrides it.
func (l *Loader) LoadAll() ([]Level, error) {
	byID := make(map[string]Level)
	for _, lvl := range Builtin() {
		byID[lvl.ID] = lvl
	}

	if l.Root != "" {
		err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			ext := strings.ToLower(filepath.Ext(path))
			if ext != ".yaml" && ext != ".yml" {
				return nil
			}
			lvl, err := l.LoadFile(path)
			if err != nil {
				// Skip invalid files
				return nil
			}
			byID[lvl.ID] = lvl
			return nil
		})
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
		}
	}

	levels := make([]Level, 0, len(byID))
	for _, lvl := range byID {
		levels = append(levels, lvl)
	}
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	lvl, err := ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	lvl.FilePath = path
	return lvl, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}
