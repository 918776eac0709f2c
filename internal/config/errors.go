package config

import (
	"errors"
	"fmt"
)

// Error kinds reported by Store operations. Operations never fail outright:
// they return a usable configuration together with one of these kinds so
// callers can decide whether degraded behavior matters to them.
var (
	// ErrPathUnavailable indicates a config location could not be read for
	// reasons other than the file being absent.
	ErrPathUnavailable = errors.New("config path unavailable")

	// ErrCorruptConfig indicates the canonical file exists but could not be
	// parsed.
	ErrCorruptConfig = errors.New("corrupt config file")

	// ErrPersistFailed indicates the canonical file could not be written.
	ErrPersistFailed = errors.New("failed to persist config")
)

var (
	errReadConfig = func(filename string, err error) error {
		return fmt.Errorf("%w: reading %s: %v", ErrPathUnavailable, filename, err)
	}

	errParseConfig = func(filename string, err error) error {
		return fmt.Errorf("%w: parsing %s: %v", ErrCorruptConfig, filename, err)
	}

	errSaveConfig = func(filename string, err error) error {
		return fmt.Errorf("%w: writing %s: %v", ErrPersistFailed, filename, err)
	}

	errCreateDirectory = func(dir string, err error) error {
		return fmt.Errorf("%w: creating directory %s: %v", ErrPersistFailed, dir, err)
	}
)
