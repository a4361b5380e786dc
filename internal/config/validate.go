package config

import (
	"errors"
	"fmt"
)

var validPreferredTitles = map[string]bool{
	"english":   true,
	"romanized": true,
	"native":    true,
	"folder":    true,
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateWorkers(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	if err := c.validateParsing(); err != nil {
		return err
	}
	if err := c.validateRenamer(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.LibraryRoot == "" {
		return errors.New("paths.library_root must be set")
	}
	return nil
}

func (c *Config) validateWorkers() error {
	if c.Workers.ScanPoolSize < 1 {
		return errors.New("workers.scan_pool_size must be at least 1")
	}
	if c.Workers.DedupePoolSize < 1 {
		return errors.New("workers.dedupe_pool_size must be at least 1")
	}
	return nil
}

func (c *Config) validateMatching() error {
	if err := fraction("matching.fuzzy_accept_threshold", c.Matching.FuzzyAcceptThreshold); err != nil {
		return err
	}
	if err := fraction("matching.fuzzy_refine_threshold", c.Matching.FuzzyRefineThreshold); err != nil {
		return err
	}
	if err := fraction("matching.dedupe_fuzzy_threshold", c.Matching.DedupeFuzzyThreshold); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateParsing() error {
	if c.Parsing.UndersizedVolumeBytes < 0 {
		return errors.New("parsing.undersized_volume_bytes must not be negative")
	}
	if c.Parsing.UndersizedChapterBytes < 0 {
		return errors.New("parsing.undersized_chapter_bytes must not be negative")
	}
	if c.Parsing.MaxRangeSize < 1 {
		return errors.New("parsing.max_range_size must be at least 1")
	}
	if c.Parsing.YearMin >= c.Parsing.YearMax {
		return errors.New("parsing.year_min must be less than parsing.year_max")
	}
	return nil
}

func (c *Config) validateRenamer() error {
	if !validPreferredTitles[c.Renamer.PreferredTitle] {
		return fmt.Errorf("renamer.preferred_title must be one of english, romanized, native, folder; got %q", c.Renamer.PreferredTitle)
	}
	return nil
}

func fraction(field string, value float64) error {
	if value < 0 || value > 1 {
		return fmt.Errorf("%s must be between 0 and 1, got %v", field, value)
	}
	return nil
}
