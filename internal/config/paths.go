package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
	"github.com/duke-git/lancet/v2/slice"
)

const (
	// appDirName is the current application identity under the user config root.
	appDirName = "sidecoach"

	// configFileName is the configuration file name at every candidate location.
	configFileName = "config.json"
)

// legacyIdentities are application identities earlier releases stored their
// configuration under: the pre-rename product name and the default identity
// used by the Electron-era builds. Files there are only ever read or deleted,
// never written.
var legacyIdentities = []string{"SideCoach", "Electron"}

// Resolver enumerates the on-disk locations where a configuration file may
// exist for this application.
type Resolver struct {
	log *slog.Logger
}

// NewResolver creates a path resolver. A nil logger discards output.
func NewResolver(logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Resolver{log: logger}
}

// CanonicalPath returns the single path the store reads and writes. It never
// fails: if the user config directory is unavailable (headless or stripped
// environments) it degrades to the working directory and logs a warning.
func (r *Resolver) CanonicalPath() string {
	path, err := xdg.ConfigFile(filepath.Join(appDirName, configFileName))
	if err != nil {
		r.log.Warn("user config directory unavailable, falling back to working directory",
			"error", err)
		return filepath.Join(workingDir(), configFileName)
	}
	return path
}

// CandidatePaths returns every location a configuration file could plausibly
// exist at, in a fixed order: the canonical path first, then legacy
// application identities for the current OS family, then the working
// directory as final fallback. Unavailable locations are omitted, never
// reported as errors, so reconciliation and manual clears visit a consistent
// sequence.
func (r *Resolver) CandidatePaths() []string {
	var paths []string

	if path, err := xdg.ConfigFile(filepath.Join(appDirName, configFileName)); err != nil {
		r.log.Warn("skipping user config directory", "error", err)
	} else {
		paths = append(paths, path)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	for _, identity := range legacyIdentities {
		dir := legacyConfigDir(runtime.GOOS, home, os.Getenv("APPDATA"), xdg.ConfigHome, identity)
		if dir == "" {
			continue
		}
		paths = append(paths, filepath.Join(dir, configFileName))
	}

	paths = append(paths, filepath.Join(workingDir(), configFileName))

	return slice.Unique(paths)
}

// legacyConfigDir maps an application identity to its app-data directory for
// the given OS family. Kept pure over its inputs so all families are
// testable on a single host. Returns "" when the family's root is unknown.
func legacyConfigDir(goos, home, appData, configHome, identity string) string {
	switch goos {
	case "windows":
		if appData == "" {
			return ""
		}
		return filepath.Join(appData, identity)
	case "darwin":
		if home == "" {
			return ""
		}
		return filepath.Join(home, "Library", "Application Support", identity)
	default:
		if configHome != "" {
			return filepath.Join(configHome, identity)
		}
		if home == "" {
			return ""
		}
		return filepath.Join(home, ".config", identity)
	}
}

func workingDir() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}
