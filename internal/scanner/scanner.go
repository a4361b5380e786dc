package scanner

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ImTheFrack/VibeManga/internal/corefail"
	"github.com/ImTheFrack/VibeManga/internal/logging"
	"github.com/ImTheFrack/VibeManga/internal/models"
	"github.com/ImTheFrack/VibeManga/internal/progress"
)

// Scanner walks a library root into a models.Library, reusing Volumes from
// a prior scan when their (size, mtime) are unchanged.
type Scanner struct {
	logger *slog.Logger
}

// New returns a Scanner. If logger is nil, a no-op logger is used.
func New(logger *slog.Logger) *Scanner {
	return &Scanner{logger: logging.NewComponentLogger(logger, "scanner")}
}

// seriesJob locates a single series directory inside the Category tree
// being assembled, so the parallel read phase can write its result back
// without touching shared state from more than one goroutine at a time.
type seriesJob struct {
	mainIdx, subIdx, seriesIdx int
	name                       string
	path                       string
}

// Scan walks root into a fresh Library. prior, if non-nil, supplies Volume
// objects eligible for reuse. sink receives progress events (use
// progress.NopSink{} to discard); diag (which may be nil) accumulates
// per-series failures. Scan returns a partial, Incomplete Library if ctx is
// cancelled before every series has been read; it never returns an error
// unless root itself is unreadable.
func (s *Scanner) Scan(ctx context.Context, root string, prior *models.Library, opts Options, sink progress.Sink, diag *corefail.Diagnostics) (models.Library, error) {
	sink = progress.Or(sink)
	poolSize := opts.PoolSize
	if poolSize < 1 {
		poolSize = 1
	}

	mainNames, err := listDirs(root)
	if err != nil {
		return models.Library{}, corefail.Wrap(corefail.ErrPrecondition, "scanner", "enumerate_root", root, err)
	}

	categories := make([]models.Category, len(mainNames))
	var jobs []seriesJob

	sink.Emit(progress.Event{Phase: progress.PhaseScanCategories, Done: 0, HasTotal: true, Total: uint64(len(mainNames))})

	for mi, mainName := range mainNames {
		mainPath := filepath.Join(root, mainName)
		subNames, err := listDirs(mainPath)
		if err != nil {
			diag.Record(corefail.Wrap(corefail.ErrPerItem, "scanner", "enumerate_subcategories", mainPath, err))
			categories[mi] = models.Category{Name: mainName, Path: mainPath}
			continue
		}

		subCategories := make([]models.Category, len(subNames))
		for si, subName := range subNames {
			subPath := filepath.Join(mainPath, subName)
			seriesNames, err := listDirs(subPath)
			if err != nil {
				diag.Record(corefail.Wrap(corefail.ErrPerItem, "scanner", "enumerate_series", subPath, err))
				subCategories[si] = models.Category{Name: subName, Path: subPath}
				continue
			}

			series := make([]models.Series, len(seriesNames))
			for sei, seriesName := range seriesNames {
				seriesPath := filepath.Join(subPath, seriesName)
				series[sei] = models.Series{Path: seriesPath, FolderName: seriesName}
				jobs = append(jobs, seriesJob{mainIdx: mi, subIdx: si, seriesIdx: sei, name: seriesName, path: seriesPath})
			}
			subCategories[si] = models.Category{Name: subName, Path: subPath, Series: series}
		}
		categories[mi] = models.Category{Name: mainName, Path: mainPath, Categories: subCategories}
		sink.Emit(progress.Event{Phase: progress.PhaseScanCategories, Done: uint64(mi + 1), HasTotal: true, Total: uint64(len(mainNames))})
	}

	priorSeries := indexPriorSeries(prior)
	incomplete := s.readSeriesPool(ctx, jobs, poolSize, priorSeries, sink, diag, categories)

	lib := models.Library{RootPath: filepath.Clean(root), Categories: categories, Incomplete: incomplete}
	return lib, nil
}

func listDirs(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func indexPriorSeries(prior *models.Library) map[string]models.Series {
	out := make(map[string]models.Series)
	if prior == nil {
		return out
	}
	for _, mc := range prior.Categories {
		for _, sc := range mc.Categories {
			for _, sr := range sc.Series {
				out[filepath.Clean(sr.Path)] = sr
			}
		}
	}
	return out
}

func volumeStems(volumes []models.Volume) map[string]models.Volume {
	out := make(map[string]models.Volume, len(volumes))
	for _, v := range volumes {
		out[v.Stem] = v
	}
	return out
}

func subGroupStems(subGroups []models.SubGroup) map[string]models.SubGroup {
	out := make(map[string]models.SubGroup, len(subGroups))
	for _, sg := range subGroups {
		out[sg.Name] = sg
	}
	return out
}

func stemFromName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func sortVolumes(volumes []models.Volume) {
	sort.Slice(volumes, func(i, j int) bool { return volumes[i].Stem < volumes[j].Stem })
}
