package renamer

import (
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/ImTheFrack/VibeManga/internal/analysis"
	"github.com/ImTheFrack/VibeManga/internal/models"
	"github.com/ImTheFrack/VibeManga/internal/parser"
)

var legacyExtensionTargets = map[string]string{
	".zip": ".cbz",
	".rar": ".cbr",
}

// BuildPlan produces a rename Plan for series, per spec section 4.8. parserOpts
// is used to re-derive each Volume's parsed title/range segments so the
// file-name step can tell whether a Volume's leading segment already
// matches the target series name.
func BuildPlan(series models.Series, opts Options, parserOpts parser.Options) Plan {
	if opts.Whitelist[series.FolderName] {
		return nil
	}

	target := targetSeriesName(series, opts.PreferredTitle)
	var plan Plan

	if entry, ok := folderEntry(series, target); ok {
		plan = append(plan, entry)
	}

	for _, v := range series.AllVolumes() {
		if entry, ok := extensionEntry(v); ok {
			plan = append(plan, entry)
		}
		if entry, ok := fileNameEntry(v, target, parserOpts); ok {
			plan = append(plan, entry)
		}
	}

	markCollisions(plan)
	if opts.AllowSuffixOnCollision {
		suffixCollisions(plan)
	}
	sortPlan(plan)
	return plan
}

func folderEntry(series models.Series, target string) (Entry, bool) {
	if target == series.FolderName {
		return Entry{}, false
	}
	safety := SafetyStandard
	if strings.EqualFold(target, series.FolderName) {
		safety = SafetyCosmetic
	}
	newPath := filepath.Join(filepath.Dir(series.Path), target)
	return Entry{Kind: KindFolder, OldPath: series.Path, NewPath: newPath, Safety: safety, SeriesPath: series.Path}, true
}

func extensionEntry(v models.Volume) (Entry, bool) {
	ext := strings.ToLower(filepath.Ext(v.Path))
	newExt, ok := legacyExtensionTargets[ext]
	if !ok {
		return Entry{}, false
	}
	newPath := strings.TrimSuffix(v.Path, filepath.Ext(v.Path)) + newExt
	return Entry{Kind: KindFileExtension, OldPath: v.Path, NewPath: newPath, Safety: SafetyCosmetic}, true
}

func fileNameEntry(v models.Volume, target string, parserOpts parser.Options) (Entry, bool) {
	record := parser.Parse(v.Stem, v.SizeBytes, parserOpts)
	if record.CleanedTitle == target {
		return Entry{}, false
	}

	segment := rangeSegment(record)
	newStem := target
	if segment != "" {
		newStem = target + " " + segment
	}
	ext := filepath.Ext(v.Path)
	if newExt, ok := legacyExtensionTargets[strings.ToLower(ext)]; ok {
		ext = newExt
	}
	newPath := filepath.Join(filepath.Dir(v.Path), newStem+ext)

	uncertain := len(record.VolumeRanges) == 0 && len(record.ChapterRanges) == 0
	safety := SafetyStandard
	if uncertain {
		safety = SafetyUncertain
	}
	return Entry{Kind: KindFileName, OldPath: v.Path, NewPath: newPath, Safety: safety, Uncertain: uncertain}, true
}

func rangeSegment(record parser.Record) string {
	var parts []string
	if len(record.VolumeRanges) > 0 {
		parts = append(parts, analysis.FormatRanges(record.VolumeRanges, "v", 2))
	}
	if len(record.ChapterRanges) > 0 {
		parts = append(parts, analysis.FormatRanges(record.ChapterRanges, "c", 3))
	}
	return strings.Join(parts, " ")
}

func markCollisions(plan Plan) {
	byNewPath := make(map[string][]int)
	for i, e := range plan {
		byNewPath[e.NewPath] = append(byNewPath[e.NewPath], i)
	}
	for _, indices := range byNewPath {
		if len(indices) < 2 {
			continue
		}
		for _, i := range indices {
			plan[i].Collision = true
		}
	}
}

func suffixCollisions(plan Plan) {
	byNewPath := make(map[string][]int)
	for i, e := range plan {
		if e.Collision {
			byNewPath[e.NewPath] = append(byNewPath[e.NewPath], i)
		}
	}
	for _, indices := range byNewPath {
		sort.Ints(indices)
		for n, i := range indices {
			if n == 0 {
				continue
			}
			plan[i].NewPath = suffixedPath(plan[i].NewPath, n+1)
			plan[i].Collision = false
		}
		if len(indices) > 0 {
			plan[indices[0]].Collision = false
		}
	}
}

func suffixedPath(path string, n int) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	return base + " (" + strconv.Itoa(n) + ")" + ext
}

func sortPlan(plan Plan) {
	sort.SliceStable(plan, func(i, j int) bool {
		di, dj := plan[i].depth(), plan[j].depth()
		if di != dj {
			return di > dj
		}
		return plan[i].NewPath < plan[j].NewPath
	})
}
