package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeWorkers()
	c.normalizeCache()
	c.normalizeMatching()
	c.normalizeParsing()
	c.normalizeRenamer()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LibraryRoot) == "" {
		c.Paths.LibraryRoot = defaultLibraryRoot
	}
	if c.Paths.LibraryRoot, err = expandPath(c.Paths.LibraryRoot); err != nil {
		return fmt.Errorf("paths.library_root: %w", err)
	}
	if strings.TrimSpace(c.Paths.CacheDir) == "" {
		c.Paths.CacheDir = defaultCacheDir
	}
	if c.Paths.CacheDir, err = expandPath(c.Paths.CacheDir); err != nil {
		return fmt.Errorf("paths.cache_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeWorkers() {
	if c.Workers.ScanPoolSize <= 0 {
		c.Workers.ScanPoolSize = defaultScanPoolSize
	}
	if c.Workers.DedupePoolSize <= 0 {
		c.Workers.DedupePoolSize = defaultDedupePoolSize
	}
}

func (c *Config) normalizeCache() {
	if c.Cache.MaxAgeSeconds <= 0 {
		c.Cache.MaxAgeSeconds = defaultCacheMaxAgeSeconds
	}
}

func (c *Config) normalizeMatching() {
	if c.Matching.FuzzyAcceptThreshold <= 0 {
		c.Matching.FuzzyAcceptThreshold = defaultFuzzyAcceptThreshold
	}
	if c.Matching.FuzzyRefineThreshold <= 0 {
		c.Matching.FuzzyRefineThreshold = defaultFuzzyRefineThreshold
	}
	if c.Matching.DedupeFuzzyThreshold <= 0 {
		c.Matching.DedupeFuzzyThreshold = defaultDedupeFuzzyThreshold
	}
}

func (c *Config) normalizeParsing() {
	if c.Parsing.UndersizedVolumeBytes <= 0 {
		c.Parsing.UndersizedVolumeBytes = defaultUndersizedVolumeBytes
	}
	if c.Parsing.UndersizedChapterBytes <= 0 {
		c.Parsing.UndersizedChapterBytes = defaultUndersizedChapterBytes
	}
	if c.Parsing.MaxRangeSize <= 0 {
		c.Parsing.MaxRangeSize = defaultMaxRangeSize
	}
	if c.Parsing.YearMin <= 0 {
		c.Parsing.YearMin = defaultYearMin
	}
	if c.Parsing.YearMax <= 0 {
		c.Parsing.YearMax = defaultYearMax
	}
	if len(c.Parsing.NoisePhrases) == 0 {
		c.Parsing.NoisePhrases = defaultNoisePhrases()
	}
	if len(c.Parsing.ProtectedTokens) == 0 {
		c.Parsing.ProtectedTokens = defaultProtectedTokens()
	}
}

func (c *Config) normalizeRenamer() {
	c.Renamer.PreferredTitle = strings.ToLower(strings.TrimSpace(c.Renamer.PreferredTitle))
	if c.Renamer.PreferredTitle == "" {
		c.Renamer.PreferredTitle = defaultPreferredTitle
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
