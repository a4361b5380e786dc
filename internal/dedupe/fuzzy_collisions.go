package dedupe

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/ImTheFrack/VibeManga/internal/matcher"
	"github.com/ImTheFrack/VibeManga/internal/models"
	"github.com/ImTheFrack/VibeManga/internal/normalize"
	"github.com/ImTheFrack/VibeManga/internal/progress"
)

const (
	minTokenLengthRatio    = 0.5
	maxTokenLengthRatio    = 2.0
	fuzzyRefineThresholdMM = 0.80
)

type fuzzyEntity struct {
	series     models.Series
	normalized string
	tokenCount int
}

// detectFuzzyCollisions runs an all-pairs comparison across every Series'
// representative identity, filtering pairs whose token-length ratio falls
// outside [0.5, 2.0] before computing the refined score, and shares the
// O(n^2) workload across a fixed-size worker pool per spec section 4.9.
func detectFuzzyCollisions(ctx context.Context, lib models.Library, opts Options) []FuzzyCollision {
	entities := collectFuzzyEntities(lib)
	pairs := candidatePairs(entities)

	poolSize := opts.PoolSize
	if poolSize < 1 {
		poolSize = 1
	}

	results := make([]*FuzzyCollision, len(pairs))
	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < poolSize; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if progress.Cancelled(ctx) {
					continue
				}
				p := pairs[i]
				score := matcher.RefinedSimilarity(entities[p.a].normalized, entities[p.b].normalized, fuzzyRefineThresholdMM)
				if score >= opts.FuzzyThreshold {
					results[i] = &FuzzyCollision{A: entities[p.a].series, B: entities[p.b].series, Score: score}
				}
			}
		}()
	}

	for i := range pairs {
		if progress.Cancelled(ctx) {
			break
		}
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var out []FuzzyCollision
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].A.FolderName < out[j].A.FolderName
	})
	return out
}

func collectFuzzyEntities(lib models.Library) []fuzzyEntity {
	var out []fuzzyEntity
	for _, mainCat := range lib.Categories {
		for _, subCat := range mainCat.Categories {
			for _, series := range subCat.Series {
				normalized := normalize.Title(series.FolderName)
				if normalized == "" {
					continue
				}
				out = append(out, fuzzyEntity{series: series, normalized: normalized, tokenCount: len(strings.Fields(normalized))})
			}
		}
	}
	return out
}

type fuzzyPair struct{ a, b int }

func candidatePairs(entities []fuzzyEntity) []fuzzyPair {
	var pairs []fuzzyPair
	for i := 0; i < len(entities); i++ {
		for j := i + 1; j < len(entities); j++ {
			if !withinTokenLengthRatio(entities[i].tokenCount, entities[j].tokenCount) {
				continue
			}
			pairs = append(pairs, fuzzyPair{a: i, b: j})
		}
	}
	return pairs
}

func withinTokenLengthRatio(a, b int) bool {
	if a == 0 || b == 0 {
		return false
	}
	ratio := float64(a) / float64(b)
	return ratio >= minTokenLengthRatio && ratio <= maxTokenLengthRatio
}
