// Package config provides YAML-based configuration loading for the
// boom binary: simulation settings, level sources, storage and the
// optional SSH server.
package config

// Config is the full application configuration.
type Config struct {
	Engine  EngineConfig  `yaml:"engine"`
	Levels  LevelsConfig  `yaml:"levels"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
}

// EngineConfig controls the simulation loop.
type EngineConfig struct {
	TickRate int   `yaml:"tick_rate"` // simulation ticks per second
	Players  int   `yaml:"players"`   // 1 or 2
	Seed     int64 `yaml:"seed"`      // 0 means derive from the clock
}

// LevelsConfig controls where level files come from.
type LevelsConfig struct {
	Dir   string `yaml:"dir"`   // extra level directory, may be empty
	Start string `yaml:"start"` // level id to start from
}

// StorageConfig controls run persistence.
type StorageConfig struct {
	Path string `yaml:"path"` // sqlite file, empty means ~/.boom/boom.db
}

// ServerConfig controls the SSH server.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}
