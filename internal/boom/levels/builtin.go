package levels

import (
	"embed"
	"io/fs"
	"sort"
)

//go:embed data/*.yaml
var builtinFS embed.FS

// Builtin returns the levels bundled with the binary, sorted by ID.
// A malformed embedded file is a programming error and panics.
func Builtin() []Level {
	entries, err := fs.ReadDir(builtinFS, "data")
	if err != nil {
		panic(err)
	}
	var levels []Level
	for _, e := range entries {
		data, err := fs.ReadFile(builtinFS, "data/"+e.Name())
		if err != nil {
			panic(err)
		}
		lvl, err := ParseYAML(data)
		if err != nil {
			panic(err)
		}
		levels = append(levels, lvl)
	}
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels
}
