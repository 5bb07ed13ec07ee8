package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Paths holds every location the application reads or writes. It is built
// once at startup and handed to whatever needs it.
type Paths struct {
	AppData string // application data root
	Memos   string // one <name>.md file per memo
	StateDB string
	LogFile string
}

// ResolvePaths derives the application paths from cfg and the XDG base
// directories.
func ResolvePaths(cfg *Config) (Paths, error) {
	root := cfg.DataDir
	if root == "" {
		if xdg.DataHome == "" {
			return Paths{}, ErrNoDataDir
		}
		root = filepath.Join(xdg.DataHome, appName)
	}

	logFile := cfg.Log.File
	if logFile == "" {
		if xdg.StateHome == "" {
			return Paths{}, ErrNoDataDir
		}
		logFile = filepath.Join(xdg.StateHome, appName, logFileName)
	}

	return Paths{
		AppData: root,
		Memos:   filepath.Join(root, memoDirName),
		StateDB: filepath.Join(root, dbFileName),
		LogFile: logFile,
	}, nil
}

// Ensure creates the data and memo directories if they are missing.
func (p Paths) Ensure() error {
	for _, dir := range []string{p.AppData, p.Memos} {
		if err := os.MkdirAll(dir, configDirPerm); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
