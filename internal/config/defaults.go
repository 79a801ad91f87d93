package config

import (
	_ "embed"
)

//go:embed defaults/boom.yaml
var defaultYAML []byte

// Default returns the hardcoded fallback configuration, used when even
// the embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Engine: EngineConfig{
			TickRate: 30,
			Players:  1,
		},
		Levels: LevelsConfig{
			Start: "level01",
		},
		Server: ServerConfig{
			Host: "localhost",
			Port: 2323,
		},
	}
}
