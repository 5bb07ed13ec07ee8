package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	appName       = "memoleak"
	memoDirName   = "saved_files"
	dbFileName    = "memoleak.db"
	logFileName   = "memoleak.log"
	configFile    = "config.toml"
	localConfig   = "memoleak.toml"
	defaultLevel  = "info"
	configDirPerm = 0o755
)

// ErrNoDataDir is returned when no application data directory can be found.
var ErrNoDataDir = errors.New("no data directory available")

type Config struct {
	Editor  string `koanf:"editor"`   // editor program, falls back to $EDITOR then vim
	DataDir string `koanf:"data_dir"` // root for memos and state, defaults to $XDG_DATA_HOME/memoleak
	Icons   string `koanf:"icons"`    // "nerd", "unicode" or "none" (default: "none")

	Log LogConfig `koanf:"log"`

	// Order name -> keymaps, replacing the default keymaps of that order,
	// e.g. exit = ["ZZ", "<c-c>"].
	Bindings map[string][]string `koanf:"bindings"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `koanf:"level"` // "debug", "info", "warn" or "error" (default: "info")
	File  string `koanf:"file"`  // defaults to $XDG_STATE_HOME/memoleak/memoleak.log
}

// Load reads the config files found in the standard locations.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths())
}

// LoadFrom reads the given config files in order, later files overriding
// earlier ones. Missing files are skipped.
func LoadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		Log: LogConfig{Level: defaultLevel},
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.DataDir = expandPath(cfg.DataDir)
	cfg.Log.File = expandPath(cfg.Log.File)
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLevel
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/memoleak/config.toml
		filepath.Join(xdg.ConfigHome, appName, configFile),
		// 2. ./memoleak.toml (pwd, highest priority)
		localConfig,
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
