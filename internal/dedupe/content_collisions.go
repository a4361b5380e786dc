package dedupe

import (
	"sort"
	"strconv"

	"github.com/ImTheFrack/VibeManga/internal/models"
)

const (
	contentCollisionWithPageCount    = 0.95
	contentCollisionWithoutPageCount = 0.75
)

// detectContentCollisions groups Volumes by (size, page_count) when the
// page count is known, else by size alone, per spec section 4.9's second
// detector.
func detectContentCollisions(lib models.Library) []ContentCollisionGroup {
	grouped := make(map[string][]models.Volume)
	withPageCount := make(map[string]bool)

	for _, v := range allVolumes(lib) {
		key, hasPageCount := contentKey(v)
		grouped[key] = append(grouped[key], v)
		if hasPageCount {
			withPageCount[key] = true
		}
	}

	var groups []ContentCollisionGroup
	for key, volumes := range grouped {
		if len(volumes) < 2 {
			continue
		}
		confidence := contentCollisionWithoutPageCount
		if withPageCount[key] {
			confidence = contentCollisionWithPageCount
		}
		groups = append(groups, ContentCollisionGroup{
			SizeBytes:  volumes[0].SizeBytes,
			PageCount:  volumes[0].PageCount,
			Volumes:    volumes,
			Confidence: confidence,
		})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].SizeBytes != groups[j].SizeBytes {
			return groups[i].SizeBytes < groups[j].SizeBytes
		}
		return groups[i].Volumes[0].Path < groups[j].Volumes[0].Path
	})
	return groups
}

func contentKey(v models.Volume) (string, bool) {
	if v.PageCount != nil {
		return strconv.FormatInt(v.SizeBytes, 10) + "|" + strconv.Itoa(*v.PageCount), true
	}
	return strconv.FormatInt(v.SizeBytes, 10), false
}

func allVolumes(lib models.Library) []models.Volume {
	var out []models.Volume
	for _, mainCat := range lib.Categories {
		for _, subCat := range mainCat.Categories {
			for _, series := range subCat.Series {
				out = append(out, series.AllVolumes()...)
			}
		}
	}
	return out
}
