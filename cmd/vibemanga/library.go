package main

import (
	"context"
	"fmt"
	"time"

	"github.com/ImTheFrack/VibeManga/internal/cache"
	"github.com/ImTheFrack/VibeManga/internal/config"
	"github.com/ImTheFrack/VibeManga/internal/corefail"
	"github.com/ImTheFrack/VibeManga/internal/models"
	"github.com/ImTheFrack/VibeManga/internal/progress"
	"github.com/ImTheFrack/VibeManga/internal/scanner"
)

// resolveRoot returns the effective library root: the positional CLI
// argument if present, otherwise the configured default.
func resolveRoot(cfg *config.Config, args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		root, err := config.ExpandPath(args[0])
		if err != nil {
			return "", fmt.Errorf("resolve library root: %w", err)
		}
		return root, nil
	}
	if cfg.Paths.LibraryRoot == "" {
		return "", fmt.Errorf("%w: no library root configured or given", corefail.ErrPrecondition)
	}
	return cfg.Paths.LibraryRoot, nil
}

// loadLibrary returns a current Library for root: a fresh cache hit when
// one exists, otherwise a rescan seeded with whatever cache entry is on
// disk (fresh or stale) so unchanged Volumes are reused by object identity.
// A successful rescan is persisted back to the cache; cache.Save serializes
// concurrent writers against the same root with its own advisory lock, per
// spec section 5.
func loadLibrary(ctx context.Context, cfg *config.Config, sc *scanner.Scanner, root string, forceRescan bool, sink progress.Sink, diag *corefail.Diagnostics) (models.Library, error) {
	store := cacheStore(cfg)

	result, hit := store.Load(root, diag)
	if hit && !forceRescan && result.Fresh(store.MaxAge) {
		return result.Library, nil
	}

	var prior *models.Library
	if hit {
		prior = &result.Library
	}

	lib, err := sc.Scan(ctx, root, prior, scanner.Options{PoolSize: cfg.Workers.ScanPoolSize}, sink, diag)
	if err != nil {
		return models.Library{}, err
	}

	if saveErr := store.Save(lib, diag); saveErr != nil {
		diag.Record(saveErr)
	}
	return lib, nil
}

func cacheStore(cfg *config.Config) *cache.Store {
	return cache.New(cfg.Paths.CacheDir, time.Duration(cfg.Cache.MaxAgeSeconds)*time.Second)
}
