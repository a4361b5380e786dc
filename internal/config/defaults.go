package config

const (
	defaultLibraryRoot = "~/manga"
	defaultCacheDir     = "."

	defaultScanPoolSize   = 8
	defaultDedupePoolSize = 8

	defaultCacheMaxAgeSeconds = 3000

	defaultFuzzyAcceptThreshold = 0.90
	defaultFuzzyRefineThreshold = 0.80
	defaultDedupeFuzzyThreshold = 0.95

	defaultUndersizedVolumeBytes  = 35 * 1024 * 1024
	defaultUndersizedChapterBytes = 4 * 1024 * 1024
	defaultMaxRangeSize           = 200
	defaultYearMin                = 1900
	defaultYearMax                = 2150

	defaultPreferredTitle = "english"

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// defaultNoisePhrases lists release-noise substrings stripped from a
// filename stem before numbers are extracted. New phrases belong here,
// added by data rather than by code, per spec section 9's open question.
func defaultNoisePhrases() []string {
	return []string{
		"complete edition",
		"special issue",
		"official",
		"digital",
		"colored",
		"remastered",
		"new edition",
	}
}

// defaultProtectedTokens lists regular expressions describing numerals
// that must survive number extraction unmangled: "Part N" markers and
// "No. N" title shibboleths such as "Kaiju No. 8".
func defaultProtectedTokens() []string {
	return []string{
		`(?i)\bpart\s+\d+\b`,
		`(?i)\bno\.?\s*\d+\b`,
	}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LibraryRoot: defaultLibraryRoot,
			CacheDir:    defaultCacheDir,
		},
		Workers: Workers{
			ScanPoolSize:   defaultScanPoolSize,
			DedupePoolSize: defaultDedupePoolSize,
		},
		Cache: Cache{
			MaxAgeSeconds: defaultCacheMaxAgeSeconds,
		},
		Matching: Matching{
			FuzzyAcceptThreshold: defaultFuzzyAcceptThreshold,
			FuzzyRefineThreshold: defaultFuzzyRefineThreshold,
			DedupeFuzzyThreshold: defaultDedupeFuzzyThreshold,
		},
		Parsing: Parsing{
			UndersizedVolumeBytes:  defaultUndersizedVolumeBytes,
			UndersizedChapterBytes: defaultUndersizedChapterBytes,
			MaxRangeSize:           defaultMaxRangeSize,
			YearMin:                defaultYearMin,
			YearMax:                defaultYearMax,
			NoisePhrases:           defaultNoisePhrases(),
			ProtectedTokens:        defaultProtectedTokens(),
		},
		Renamer: Renamer{
			PreferredTitle:         defaultPreferredTitle,
			AllowSuffixOnCollision: false,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
