package metadata

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ImTheFrack/VibeManga/internal/corefail"
	"github.com/ImTheFrack/VibeManga/internal/fileutil"
	"github.com/ImTheFrack/VibeManga/internal/models"
)

// FileName is the sidecar file VibeManga reads and writes inside each
// Series folder.
const FileName = "series.json"

// Load reads series.json from seriesPath. A missing file returns empty
// metadata and no error, matching spec section 7's PerItem recovery: the
// series is still emitted, just with empty metadata. A malformed file
// returns empty metadata plus a wrapped ErrPerItem so the caller can record
// it as a diagnostic.
func Load(seriesPath string) (models.Metadata, error) {
	path := filepath.Join(seriesPath, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.NewEmptyMetadata(), nil
		}
		return models.NewEmptyMetadata(), corefail.Wrap(corefail.ErrPerItem, "metadata", "load", path, err)
	}

	var record jsonRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return models.NewEmptyMetadata(), corefail.Wrap(corefail.ErrPerItem, "metadata", "parse", path, err)
	}

	return record.toMetadata(), nil
}

// Save atomically writes m to series.json inside seriesPath.
func Save(seriesPath string, m models.Metadata) error {
	record := fromMetadata(m)
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}
	path := filepath.Join(seriesPath, FileName)
	if err := fileutil.AtomicWriteFile(path, data, 0o644); err != nil {
		return corefail.Wrap(corefail.ErrCacheWrite, "metadata", "save", path, err)
	}
	return nil
}

// jsonRecord mirrors models.Metadata's on-disk shape using spec section 6's
// exact key names. Unknown fields found in an existing file are silently
// ignored by json.Unmarshal, satisfying the round-trip contract. Field
// order matches the keys' alphabetical order, since encoding/json emits
// struct fields in declaration order and section 6 requires the file be
// written with sorted keys.
type jsonRecord struct {
	Authors        []string `json:"authors"`
	Demographic    string   `json:"demographic"`
	Genres         []string `json:"genres"`
	ID             *int64   `json:"mal_id"`
	Status         string   `json:"status"`
	Synonyms       []string `json:"synonyms"`
	Synopsis       string   `json:"synopsis"`
	Tags           []string `json:"tags"`
	RomanizedTitle string   `json:"title"`
	EnglishTitle   string   `json:"title_english"`
	NativeTitle    string   `json:"title_japanese"`
	TotalChapters  *int     `json:"total_chapters"`
	TotalVolumes   *int     `json:"total_volumes"`
	ReleaseYear    *int     `json:"year"`
}

func (r jsonRecord) toMetadata() models.Metadata {
	status := models.PublicationStatus(r.Status)
	switch status {
	case models.StatusOngoing, models.StatusCompleted, models.StatusHiatus, models.StatusCancelled:
	default:
		status = models.StatusUnknown
	}
	return models.Metadata{
		ID:             r.ID,
		RomanizedTitle: r.RomanizedTitle,
		EnglishTitle:   r.EnglishTitle,
		NativeTitle:    r.NativeTitle,
		Synonyms:       orEmpty(r.Synonyms),
		Authors:        orEmpty(r.Authors),
		Synopsis:       r.Synopsis,
		Genres:         orEmpty(r.Genres),
		Tags:           orEmpty(r.Tags),
		Demographic:    r.Demographic,
		Status:         status,
		TotalVolumes:   r.TotalVolumes,
		TotalChapters:  r.TotalChapters,
		ReleaseYear:    r.ReleaseYear,
	}
}

func fromMetadata(m models.Metadata) jsonRecord {
	return jsonRecord{
		ID:             m.ID,
		RomanizedTitle: m.RomanizedTitle,
		EnglishTitle:   m.EnglishTitle,
		NativeTitle:    m.NativeTitle,
		Synonyms:       orEmpty(m.Synonyms),
		Authors:        orEmpty(m.Authors),
		Synopsis:       m.Synopsis,
		Genres:         orEmpty(m.Genres),
		Tags:           orEmpty(m.Tags),
		Demographic:    m.Demographic,
		Status:         string(m.Status),
		TotalVolumes:   m.TotalVolumes,
		TotalChapters:  m.TotalChapters,
		ReleaseYear:    m.ReleaseYear,
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
