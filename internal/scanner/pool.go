package scanner

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/ImTheFrack/VibeManga/internal/corefail"
	"github.com/ImTheFrack/VibeManga/internal/metadata"
	"github.com/ImTheFrack/VibeManga/internal/models"
	"github.com/ImTheFrack/VibeManga/internal/progress"
)

// readSeriesPool distributes jobs to a fixed-size worker pool, each worker
// reading one series directory and writing its result directly into
// categories (each job owns a disjoint slot, so no lock is needed around
// the write). It returns true if ctx was cancelled before every job ran.
func (s *Scanner) readSeriesPool(ctx context.Context, jobs []seriesJob, poolSize int, priorSeries map[string]models.Series, sink progress.Sink, diag *corefail.Diagnostics, categories []models.Category) bool {
	total := uint64(len(jobs))
	var done atomic.Uint64
	var cancelled atomic.Bool

	queue := make(chan seriesJob)
	var wg sync.WaitGroup

	for w := 0; w < poolSize; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range queue {
				if progress.Cancelled(ctx) {
					cancelled.Store(true)
					continue
				}
				result := s.readSeries(job, priorSeries[filepath.Clean(job.path)], diag)
				categories[job.mainIdx].Categories[job.subIdx].Series[job.seriesIdx] = result
				n := done.Add(1)
				sink.Emit(progress.Event{Phase: progress.PhaseScanSeries, Done: n, HasTotal: true, Total: total, Label: job.name})
			}
		}()
	}

	for _, job := range jobs {
		if progress.Cancelled(ctx) {
			cancelled.Store(true)
			break
		}
		queue <- job
	}
	close(queue)
	wg.Wait()

	return cancelled.Load() && done.Load() < total
}

// readSeries reads a single series directory: classifies entries into
// volumes, subgroup directories, and series.json; reuses prior Volumes
// whose (size, mtime) are unchanged; and loads Metadata.
func (s *Scanner) readSeries(job seriesJob, prior models.Series, diag *corefail.Diagnostics) models.Series {
	entries, err := os.ReadDir(job.path)
	if err != nil {
		diag.Record(corefail.Wrap(corefail.ErrPerItem, "scanner", "read_series", job.path, err))
		return models.Series{Path: job.path, FolderName: job.name}
	}

	priorVolumes := volumeStems(prior.Volumes)

	var volumes []models.Volume
	var subGroupNames []string
	hasMetadataFile := false

	for _, e := range entries {
		name := e.Name()
		if name == metadata.FileName {
			hasMetadataFile = true
			continue
		}
		if e.IsDir() {
			subGroupNames = append(subGroupNames, name)
			continue
		}
		if !VolumeExtensions[strings.ToLower(filepath.Ext(name))] {
			continue
		}
		info, err := e.Info()
		if err != nil {
			diag.Record(corefail.Wrap(corefail.ErrPerItem, "scanner", "stat_volume", filepath.Join(job.path, name), err))
			continue
		}
		volumes = append(volumes, s.buildVolume(job.path, name, info, priorVolumes))
	}
	sortVolumes(volumes)

	sort.Strings(subGroupNames)
	subGroups := make([]models.SubGroup, 0, len(subGroupNames))
	priorSubGroups := subGroupStems(prior.SubGroups)
	for _, name := range subGroupNames {
		sgPath := filepath.Join(job.path, name)
		sgVolumes, err := s.readSubGroup(sgPath, priorSubGroups[name], diag)
		if err != nil {
			diag.Record(corefail.Wrap(corefail.ErrPerItem, "scanner", "read_subgroup", sgPath, err))
			continue
		}
		subGroups = append(subGroups, models.SubGroup{Name: name, Path: sgPath, Volumes: sgVolumes})
	}

	meta := models.NewEmptyMetadata()
	if hasMetadataFile {
		loaded, err := metadata.Load(job.path)
		if err != nil {
			diag.Record(corefail.Wrap(corefail.ErrPerItem, "scanner", "load_metadata", job.path, err))
		} else {
			meta = loaded
		}
	}

	return models.Series{
		Path:       job.path,
		FolderName: job.name,
		Volumes:    volumes,
		SubGroups:  subGroups,
		Metadata:   meta,
	}
}

func (s *Scanner) readSubGroup(path string, prior models.SubGroup, diag *corefail.Diagnostics) ([]models.Volume, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	priorVolumes := volumeStems(prior.Volumes)

	var volumes []models.Volume
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !VolumeExtensions[strings.ToLower(filepath.Ext(name))] {
			continue
		}
		info, err := e.Info()
		if err != nil {
			diag.Record(corefail.Wrap(corefail.ErrPerItem, "scanner", "stat_volume", filepath.Join(path, name), err))
			continue
		}
		volumes = append(volumes, s.buildVolume(path, name, info, priorVolumes))
	}
	sortVolumes(volumes)
	return volumes, nil
}

func (s *Scanner) buildVolume(dir, name string, info os.FileInfo, prior map[string]models.Volume) models.Volume {
	stem := stemFromName(name)
	fresh := models.Volume{
		Path:       filepath.Join(dir, name),
		Stem:       stem,
		SizeBytes:  info.Size(),
		ModifiedAt: info.ModTime(),
	}
	if old, ok := prior[stem]; ok && old.SizeBytes == fresh.SizeBytes && old.ModifiedAt.Equal(fresh.ModifiedAt) {
		reused := old
		reused.Path = fresh.Path
		return reused
	}
	return fresh
}
