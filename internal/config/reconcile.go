package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
)

// Reconcile walks every candidate configuration path once, deleting files
// that are unreadable, unparseable, or invalid against the current schema.
// Valid files are left untouched, so multiple valid legacy copies may
// survive; only the canonical path is read by the store afterwards.
//
// Deletion is best-effort: a failed delete is logged and the pass continues.
// The operation is idempotent. Returns the paths that were removed.
func Reconcile(paths []string, logger *slog.Logger) (removed []string) {
	logger = orDiscard(logger)

	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			logger.Warn("removing unreadable config file", "path", path, "error", err)
			if removeConfigFile(path, logger) {
				removed = append(removed, path)
			}
			continue
		}
		if !ValidBytes(raw) {
			logger.Info("removing stale or corrupt config file", "path", path)
			if removeConfigFile(path, logger) {
				removed = append(removed, path)
			}
		}
	}

	return removed
}

// ForceClear unconditionally deletes the file at every candidate path,
// valid or not. Intended for operator-triggered resets, not normal startup.
// Returns the paths that were removed.
func ForceClear(paths []string, logger *slog.Logger) (removed []string) {
	logger = orDiscard(logger)

	for _, path := range paths {
		err := os.Remove(path)
		switch {
		case err == nil:
			logger.Info("removed config file", "path", path)
			removed = append(removed, path)
		case errors.Is(err, fs.ErrNotExist):
			// nothing to clear
		default:
			logger.Warn("failed to remove config file", "path", path, "error", err)
		}
	}

	return removed
}

func removeConfigFile(path string, logger *slog.Logger) bool {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("failed to remove config file", "path", path, "error", err)
		return false
	}
	return true
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
