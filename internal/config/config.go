package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mitchelldurbincs/RookBishopSimulator/internal/game/core"
	"github.com/mitchelldurbincs/RookBishopSimulator/internal/report"
)

// Config holds all configuration for the application
type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Output     OutputConfig     `mapstructure:"output"`
}

// SimulationConfig holds the starting positions and run limits
type SimulationConfig struct {
	RookStart   PositionConfig `mapstructure:"rook_start"`
	BishopStart PositionConfig `mapstructure:"bishop_start"`
	MaxTurns    int            `mapstructure:"max_turns"`
	Seed        int64          `mapstructure:"seed"` // 0 seeds from the clock
	Runs        int            `mapstructure:"runs"`
}

// PositionConfig is a board cell, row 0 at the top
type PositionConfig struct {
	Row int `mapstructure:"row"`
	Col int `mapstructure:"col"`
}

// Position converts to a board position
func (p PositionConfig) Position() core.Position {
	return core.NewPosition(p.Row, p.Col)
}

// LoggingConfig holds log settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputConfig controls how results are written
type OutputConfig struct {
	Format   string `mapstructure:"format"`
	BoardLog bool   `mapstructure:"board_log"`
}

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid configuration")

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
	mu  sync.RWMutex

	// baseFile is the file Init read; overlays are merged over it in order
	baseFile string
	overlays []string

	// serialises file reads and merges on the shared viper instance
	reloadMu sync.Mutex
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Simulation defaults
	v.SetDefault("simulation.rook_start.row", 7)
	v.SetDefault("simulation.rook_start.col", 7)
	v.SetDefault("simulation.bishop_start.row", 5)
	v.SetDefault("simulation.bishop_start.col", 2)
	v.SetDefault("simulation.max_turns", 15)
	v.SetDefault("simulation.seed", 0)
	v.SetDefault("simulation.runs", 1)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	// Output defaults
	v.SetDefault("output.format", report.FormatText)
	v.SetDefault("output.board_log", true)
}

// Init initializes the configuration. An explicit configPath that does not
// exist falls back to defaults.
func Init(configPath string) error {
	nv := viper.New()

	// Set defaults before loading any config
	setViperDefaults(nv)

	if configPath != "" {
		nv.SetConfigFile(configPath)
	} else {
		nv.SetConfigName("config")
		nv.SetConfigType("yaml")
		nv.AddConfigPath(".")
		nv.AddConfigPath("./config")
		nv.AddConfigPath("/etc/rook-bishop")
	}

	// RBS_SIMULATION_MAX_TURNS overrides simulation.max_turns
	nv.SetEnvPrefix("RBS")
	nv.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	nv.AutomaticEnv()

	if err := nv.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath == "" && !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
		if configPath != "" && !isMissingFile(err) {
			return fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
	}

	next, err := decode(nv)
	if err != nil {
		return err
	}

	mu.Lock()
	v, cfg = nv, next
	baseFile, overlays = nv.ConfigFileUsed(), nil
	mu.Unlock()
	return nil
}

func decode(from *viper.Viper) (*Config, error) {
	c := &Config{}
	if err := from.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := Validate(c); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return c, nil
}

// Validate checks ranges and enumerations
func Validate(c *Config) error {
	sim := c.Simulation
	if !sim.RookStart.Position().IsValid(core.BoardRanks, core.BoardFiles) {
		return fmt.Errorf("%w: simulation.rook_start %s is off the board", ErrInvalid, sim.RookStart.Position())
	}
	if !sim.BishopStart.Position().IsValid(core.BoardRanks, core.BoardFiles) {
		return fmt.Errorf("%w: simulation.bishop_start %s is off the board", ErrInvalid, sim.BishopStart.Position())
	}
	if sim.RookStart == sim.BishopStart {
		return fmt.Errorf("%w: rook and bishop cannot start on the same cell", ErrInvalid)
	}
	if sim.MaxTurns < 0 {
		return fmt.Errorf("%w: simulation.max_turns must be non-negative", ErrInvalid)
	}
	if sim.Runs <= 0 {
		return fmt.Errorf("%w: simulation.runs must be positive", ErrInvalid)
	}

	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %w", ErrInvalid, err)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging.format must be console or json, got %q", ErrInvalid, c.Logging.Format)
	}

	switch c.Output.Format {
	case report.FormatText, report.FormatJSON, report.FormatYAML:
	default:
		return fmt.Errorf("%w: output.format must be text, json or yaml, got %q", ErrInvalid, c.Output.Format)
	}
	return nil
}

// Get returns the global config instance
func Get() *Config {
	mu.RLock()
	c := cfg
	mu.RUnlock()
	if c == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
		mu.RLock()
		c = cfg
		mu.RUnlock()
	}
	return c
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	mu.RLock()
	defer mu.RUnlock()
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// LoadEnvironmentConfig merges config.<env>.yaml from the working directory
// over the loaded config. A missing overlay is ignored. The overlay is
// re-applied whenever WatchConfig reloads the base file.
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	envFile := fmt.Sprintf("config.%s.yaml", env)
	current := GetViper()

	reloadMu.Lock()
	err := mergeOverlay(current, envFile)
	reloadMu.Unlock()
	if err != nil {
		return err
	}

	mu.Lock()
	overlays = append(overlays, envFile)
	mu.Unlock()
	return refresh(current)
}

// mergeOverlay merges file into current and points the instance back at the
// base file, so ReadInConfig and WatchConfig keep using the base.
func mergeOverlay(current *viper.Viper, file string) error {
	mu.RLock()
	base := baseFile
	mu.RUnlock()

	current.SetConfigFile(file)
	err := current.MergeInConfig()
	current.SetConfigFile(base)

	if err != nil && !isMissingFile(err) {
		return fmt.Errorf("error merging environment config %s: %w", file, err)
	}
	return nil
}

// reload re-reads the base file and re-applies every overlay
func reload(current *viper.Viper) error {
	reloadMu.Lock()
	defer reloadMu.Unlock()

	if err := current.ReadInConfig(); err != nil && !isMissingFile(err) {
		return fmt.Errorf("error reading config file: %w", err)
	}

	mu.RLock()
	files := append([]string(nil), overlays...)
	mu.RUnlock()
	for _, f := range files {
		if err := mergeOverlay(current, f); err != nil {
			return err
		}
	}
	return refresh(current)
}

// Set allows runtime config updates. Get keeps returning the previous
// config if the updated values fail validation.
func Set(key string, value interface{}) error {
	current := GetViper()
	current.Set(key, value)
	return refresh(current)
}

func refresh(from *viper.Viper) error {
	next, err := decode(from)
	if err != nil {
		return err
	}
	mu.Lock()
	cfg = next
	mu.Unlock()
	return nil
}

// GetString gets a string value from config
func GetString(key string) string {
	return GetViper().GetString(key)
}

// GetInt gets an int value from config
func GetInt(key string) int {
	return GetViper().GetInt(key)
}

// GetBool gets a bool value from config
func GetBool(key string) bool {
	return GetViper().GetBool(key)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return GetViper().ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the base config file. Environment
// overlays are merged again after each reload. onChange receives the
// reloaded config, or the error that kept the previous one in place.
func WatchConfig(onChange func(*Config, error)) {
	current := GetViper()
	current.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		err := reload(current)
		if onChange != nil {
			onChange(Get(), err)
		}
	})
	current.WatchConfig()
}

func isMissingFile(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return true
	}
	return errors.Is(err, fs.ErrNotExist)
}
