package config

import (
	"fmt"
	"os"

	"github.com/ImTheFrack/VibeManga/internal/fileutil"
)

// ExpandPath resolves ~ and relative segments to an absolute path, for CLI
// flags that accept a user-supplied path outside the config file itself.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

// EnsureDirectories creates the cache directory a Config points at, if it
// does not already exist.
func (c *Config) EnsureDirectories() error {
	if c.Paths.CacheDir == "" {
		return nil
	}
	if err := os.MkdirAll(c.Paths.CacheDir, 0o755); err != nil {
		return fmt.Errorf("create cache directory %q: %w", c.Paths.CacheDir, err)
	}
	return nil
}

// CreateSample writes the embedded sample configuration to target.
func CreateSample(target string) error {
	return fileutil.AtomicWriteFile(target, []byte(SampleConfig()), 0o644)
}
