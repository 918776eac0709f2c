package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Observer receives the full new configuration after an update.
type Observer func(Config)

// Store is the single in-process source of truth for the persisted
// configuration. It owns the canonical file path and is the only mutation
// surface: construct one at process start and pass it by reference.
//
// Operations never fail outright. They always return a usable configuration;
// a non-nil error only carries the degradation kind (see errors.go) for
// callers that care. Concurrent Update calls are serialized by an internal
// mutex since the operation is read-modify-write over a shared file.
type Store struct {
	path string
	log  *slog.Logger

	mu        sync.Mutex
	observers []Observer
}

// NewStore creates a store bound to the canonical config file path.
// A nil logger discards output.
func NewStore(path string, logger *slog.Logger) *Store {
	return &Store{
		path: path,
		log:  orDiscard(logger),
	}
}

// Path returns the canonical config file path.
func (s *Store) Path() string {
	return s.path
}

// Subscribe registers an observer for configuration changes. Observers run
// synchronously after a successful update, except for opacity-only updates
// which must not trigger dependent reinitialization downstream.
func (s *Store) Subscribe(fn Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// Load reads the canonical file and returns a configuration that is always
// usable: a missing file is replaced by persisted defaults, unknown
// providers are coerced to gemini, and model fields are sanitized
// field-by-field against the provider whitelist with defaults filling any
// still-missing field.
func (s *Store) Load() (*Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *Store) loadLocked() (*Config, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := NewDefault()
		if saveErr := s.saveLocked(cfg); saveErr != nil {
			return cfg, saveErr
		}
		return cfg, nil
	}
	if err != nil {
		s.log.Warn("config file unreadable, using defaults", "path", s.path, "error", err)
		return NewDefault(), errReadConfig(s.path, err)
	}

	// unmarshaling over the defaults lets them fill any missing field
	cfg := NewDefault()
	if err := json.Unmarshal(raw, cfg); err != nil {
		s.log.Warn("config file unparseable, using defaults", "path", s.path, "error", err)
		return NewDefault(), errParseConfig(s.path, err)
	}

	if !KnownProvider(cfg.APIProvider) {
		cfg.APIProvider = ProviderGemini
	}
	cfg.ExtractionModel = SanitizeModel(cfg.APIProvider, cfg.ExtractionModel)
	cfg.SolutionModel = SanitizeModel(cfg.APIProvider, cfg.SolutionModel)
	cfg.DebuggingModel = SanitizeModel(cfg.APIProvider, cfg.DebuggingModel)

	return cfg, nil
}

// Save overwrites the canonical file with the full serialized configuration,
// creating the directory first if needed. A failed write is logged and
// reported as an ErrPersistFailed kind; callers must not assume persistence
// succeeded.
func (s *Store) Save(cfg *Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(cfg)
}

func (s *Store) saveLocked(cfg *Config) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.log.Warn("failed to create config directory", "dir", dir, "error", err)
		return errCreateDirectory(dir, err)
	}

	raw, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return errSaveConfig(s.path, err)
	}
	raw = append(raw, '\n')

	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		s.log.Warn("failed to write config file", "path", s.path, "error", err)
		return errSaveConfig(s.path, err)
	}

	return nil
}

// Update describes a partial configuration change. Nil fields keep their
// current value.
type Update struct {
	APIKey          *string
	APIProvider     *Provider
	ExtractionModel *string
	SolutionModel   *string
	DebuggingModel  *string
	Language        *string
	Opacity         *float64
}

func (u Update) touchesOnlyOpacity() bool {
	return u.Opacity != nil &&
		u.APIKey == nil &&
		u.APIProvider == nil &&
		u.ExtractionModel == nil &&
		u.SolutionModel == nil &&
		u.DebuggingModel == nil &&
		u.Language == nil
}

// Update merges a partial change onto the freshly loaded configuration and
// persists the result. Policy, in order:
//
//  1. a supplied API key without an explicit provider infers the provider
//     from the key prefix;
//  2. switching providers resets all three model fields to the new
//     provider's default, overriding caller-supplied values;
//  3. remaining model fields are sanitized against the effective provider's
//     whitelist;
//  4. the merged configuration is saved;
//  5. observers are notified with the full new configuration, unless the
//     update touched only opacity.
//
// Returns the new configuration; the error only reports a degradation kind.
func (s *Store) Update(u Update) (*Config, error) {
	s.mu.Lock()

	cur, _ := s.loadLocked() // degraded load still yields a usable config

	eff := u
	if eff.APIKey != nil && eff.APIProvider == nil {
		p := InferProvider(*eff.APIKey)
		eff.APIProvider = &p
	}
	if eff.APIProvider != nil && !KnownProvider(*eff.APIProvider) {
		p := ProviderGemini
		eff.APIProvider = &p
	}

	provider := cur.APIProvider
	if eff.APIProvider != nil {
		provider = *eff.APIProvider
	}

	next := *cur
	next.APIProvider = provider
	if eff.APIKey != nil {
		next.APIKey = *eff.APIKey
	}
	if eff.Language != nil {
		next.Language = *eff.Language
	}
	if eff.Opacity != nil {
		next.Opacity = *eff.Opacity
	}

	if provider != cur.APIProvider {
		def := DefaultModel(provider)
		next.ExtractionModel = def
		next.SolutionModel = def
		next.DebuggingModel = def
	} else {
		if eff.ExtractionModel != nil {
			next.ExtractionModel = SanitizeModel(provider, *eff.ExtractionModel)
		}
		if eff.SolutionModel != nil {
			next.SolutionModel = SanitizeModel(provider, *eff.SolutionModel)
		}
		if eff.DebuggingModel != nil {
			next.DebuggingModel = SanitizeModel(provider, *eff.DebuggingModel)
		}
	}

	saveErr := s.saveLocked(&next)

	observers := append([]Observer(nil), s.observers...)
	s.mu.Unlock()

	if !eff.touchesOnlyOpacity() {
		for _, fn := range observers {
			fn(next)
		}
	}

	return &next, saveErr
}

// HasAPIKey reports whether a non-empty API key is stored.
func (s *Store) HasAPIKey() bool {
	cfg, _ := s.Load()
	return strings.TrimSpace(cfg.APIKey) != ""
}

// Opacity returns the stored overlay opacity.
func (s *Store) Opacity() float64 {
	cfg, _ := s.Load()
	return cfg.Opacity
}

// SetOpacity clamps v to [MinOpacity, MaxOpacity] and stores it.
func (s *Store) SetOpacity(v float64) (*Config, error) {
	v = ClampOpacity(v)
	return s.Update(Update{Opacity: &v})
}

// Language returns the stored preferred programming language.
func (s *Store) Language() string {
	cfg, _ := s.Load()
	return cfg.Language
}

// SetLanguage stores the preferred programming language.
func (s *Store) SetLanguage(lang string) (*Config, error) {
	return s.Update(Update{Language: &lang})
}
