package experiments

import (
	"errors"
	"fmt"
	"os"

	"tictactoe/meta"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid experiment config")

const (
	BoardsRandom = "random"
	BoardsFull   = "full"

	BackendDense = "dense"
	BackendMap   = "map"
)

type Config struct {
	Boards    string   `yaml:"boards"`   // "random" or "full"
	Count     int      `yaml:"count"`    // random boards per run
	Repeats   int      `yaml:"repeats"`  // timed runs per phase
	Seed      uint64   `yaml:"seed"`     // seed for boards and agents
	Backends  []string `yaml:"backends"` // memo backends to time
	Games     int      `yaml:"games"`    // games per match up
	OutputDir string   `yaml:"output_dir"`
}

func DefaultConfig() Config {
	return Config{
		Boards:    meta.BOARDS,
		Count:     meta.BOARD_COUNT,
		Repeats:   meta.REPEATS,
		Seed:      meta.SEED,
		Backends:  []string{BackendDense, BackendMap},
		Games:     meta.GAMES,
		OutputDir: meta.OUTPUT_DIR,
	}
}

// LoadConfig reads a YAML file; keys it leaves out keep their default values
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Boards != BoardsRandom && c.Boards != BoardsFull {
		return fmt.Errorf("%w: unknown board set %q", ErrInvalidConfig, c.Boards)
	}
	if c.Boards == BoardsRandom && c.Count <= 0 {
		return fmt.Errorf("%w: count must be positive", ErrInvalidConfig)
	}
	if c.Repeats <= 0 {
		return fmt.Errorf("%w: repeats must be positive", ErrInvalidConfig)
	}
	if c.Games < 0 {
		return fmt.Errorf("%w: games cannot be negative", ErrInvalidConfig)
	}
	if len(c.Backends) == 0 {
		return fmt.Errorf("%w: no memo backends", ErrInvalidConfig)
	}
	for _, backend := range c.Backends {
		if backend != BackendDense && backend != BackendMap {
			return fmt.Errorf("%w: unknown memo backend %q", ErrInvalidConfig, backend)
		}
	}
	return nil
}
