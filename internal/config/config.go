package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// SampleConfig returns the documented example configuration shipped with
// the binary, used by `vibemanga config init`.
func SampleConfig() string {
	return sampleConfig
}

// Paths contains directory configuration.
type Paths struct {
	LibraryRoot string `toml:"library_root"`
	CacheDir    string `toml:"cache_dir"`
}

// Workers contains worker-pool sizing for the scanner and deduper.
type Workers struct {
	ScanPoolSize   int `toml:"scan_pool_size"`
	DedupePoolSize int `toml:"dedupe_pool_size"`
}

// Cache contains configuration for the on-disk library cache.
type Cache struct {
	MaxAgeSeconds int `toml:"max_age_seconds"`
}

// Matching contains thresholds for the matcher's fuzzy cascade step.
type Matching struct {
	FuzzyAcceptThreshold float64 `toml:"fuzzy_accept_threshold"`
	FuzzyRefineThreshold float64 `toml:"fuzzy_refine_threshold"`
	DedupeFuzzyThreshold float64 `toml:"dedupe_fuzzy_threshold"`
}

// Parsing contains the filename parser's tunable constants: Undersized
// thresholds, range-validity bounds, and the data-driven noise/protected
// vocabularies referenced by spec section 4.2.
type Parsing struct {
	UndersizedVolumeBytes  int64    `toml:"undersized_volume_bytes"`
	UndersizedChapterBytes int64    `toml:"undersized_chapter_bytes"`
	MaxRangeSize           int      `toml:"max_range_size"`
	YearMin                int      `toml:"year_min"`
	YearMax                int      `toml:"year_max"`
	NoisePhrases           []string `toml:"noise_phrases"`
	ProtectedTokens        []string `toml:"protected_tokens"`
}

// Renamer contains the file/folder renaming policy.
type Renamer struct {
	PreferredTitle         string `toml:"preferred_title"`
	AllowSuffixOnCollision bool   `toml:"allow_suffix_on_collision"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for VibeManga.
//
// Configuration sections by subsystem:
//   - Paths: library root and cache directory
//   - Workers: scan/dedupe worker-pool sizes
//   - Cache: fast-snapshot TTL
//   - Matching: matcher and deduper fuzzy thresholds
//   - Parsing: parser constants, Undersized thresholds, noise/protected data
//   - Renamer: preferred title policy and collision handling
//   - Logging: log format and level
type Config struct {
	Paths    Paths    `toml:"paths"`
	Workers  Workers  `toml:"workers"`
	Cache    Cache    `toml:"cache"`
	Matching Matching `toml:"matching"`
	Parsing  Parsing  `toml:"parsing"`
	Renamer  Renamer  `toml:"renamer"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/vibemanga/config.toml")
}

// Load locates, parses, normalizes, and validates a configuration file. The
// returned config has all path fields expanded. Pass an empty path to fall
// back to the default search locations.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath("~/.config/vibemanga/config.toml")
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("vibemanga.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
