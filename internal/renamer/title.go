package renamer

import "github.com/ImTheFrack/VibeManga/internal/models"

// fallbackOrder is the fixed order remaining titles are tried in once the
// preferred one is exhausted, per spec section 4.8 step 1.
var fallbackOrder = []string{"english", "romanized", "native"}

// targetSeriesName picks the preferred title, falling back through the
// remaining title fields and finally the folder name, then sanitizes the
// result.
func targetSeriesName(series models.Series, preferredTitle string) string {
	if preferredTitle == "folder" {
		return Sanitize(series.FolderName)
	}

	tried := map[string]bool{}
	order := append([]string{preferredTitle}, fallbackOrder...)

	for _, field := range order {
		if tried[field] {
			continue
		}
		tried[field] = true
		if title := titleField(series.Metadata, field); title != "" {
			return Sanitize(title)
		}
	}
	return Sanitize(series.FolderName)
}

func titleField(m models.Metadata, field string) string {
	switch field {
	case "english":
		return m.EnglishTitle
	case "romanized":
		return m.RomanizedTitle
	case "native":
		return m.NativeTitle
	default:
		return ""
	}
}
