package dedupe

import (
	"sort"

	"github.com/ImTheFrack/VibeManga/internal/models"
)

const idCollisionConfidence = 1.0

// detectIDCollisions groups Series by external ID, per spec section 4.9's
// first detector, and reports the original's scan counters alongside the
// groups.
func detectIDCollisions(lib models.Library) IDCollisionReport {
	byID := make(map[int64][]models.Series)
	report := IDCollisionReport{}

	for _, mainCat := range lib.Categories {
		for _, subCat := range mainCat.Categories {
			for _, series := range subCat.Series {
				report.SeriesScanned++
				if series.Metadata.ID == nil {
					continue
				}
				report.SeriesWithID++
				id := *series.Metadata.ID
				byID[id] = append(byID[id], series)
			}
		}
	}
	report.DistinctIDSeen = len(byID)

	for id, group := range byID {
		if len(group) < 2 {
			continue
		}
		report.Groups = append(report.Groups, IDCollisionGroup{ID: id, Series: group, Confidence: idCollisionConfidence})
	}
	sort.Slice(report.Groups, func(i, j int) bool { return report.Groups[i].ID < report.Groups[j].ID })
	return report
}
