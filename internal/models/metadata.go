package models

// PublicationStatus enumerates the lifecycle state of a series, per its
// metadata record.
type PublicationStatus string

const (
	StatusOngoing   PublicationStatus = "ongoing"
	StatusCompleted PublicationStatus = "completed"
	StatusHiatus    PublicationStatus = "hiatus"
	StatusCancelled PublicationStatus = "cancelled"
	StatusUnknown   PublicationStatus = "unknown"
)

// Metadata is the source of truth for a Series' identity and bibliographic
// data. It round-trips through series.json; unknown fields in an on-disk
// record are ignored on load, and every field below is the complete set
// serialized.
type Metadata struct {
	ID             *int64            `json:"id,omitempty"`
	RomanizedTitle string            `json:"romanized_title"`
	EnglishTitle   string            `json:"english_title"`
	NativeTitle    string            `json:"native_title"`
	Synonyms       []string          `json:"synonyms"`
	Authors        []string          `json:"authors"`
	Synopsis       string            `json:"synopsis"`
	Genres         []string          `json:"genres"`
	Tags           []string          `json:"tags"`
	Demographic    string            `json:"demographic"`
	Status         PublicationStatus `json:"status"`
	TotalVolumes   *int              `json:"total_volumes,omitempty"`
	TotalChapters  *int              `json:"total_chapters,omitempty"`
	ReleaseYear    *int              `json:"release_year,omitempty"`
}

// Empty reports whether m carries no identifying information, matching the
// spec's definition of empty metadata: {ID=None, titles=[], ...}.
func (m Metadata) Empty() bool {
	return m.ID == nil &&
		m.RomanizedTitle == "" &&
		m.EnglishTitle == "" &&
		m.NativeTitle == "" &&
		len(m.Synonyms) == 0
}

// NewEmptyMetadata returns the canonical empty metadata value, used when a
// Series is discovered without a readable series.json.
func NewEmptyMetadata() Metadata {
	return Metadata{
		Synonyms: []string{},
		Authors:  []string{},
		Genres:   []string{},
		Tags:     []string{},
		Status:   StatusUnknown,
	}
}
