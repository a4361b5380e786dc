package index

import (
	"log/slog"
	"strconv"

	"github.com/ImTheFrack/VibeManga/internal/corefail"
	"github.com/ImTheFrack/VibeManga/internal/logging"
	"github.com/ImTheFrack/VibeManga/internal/models"
	"github.com/ImTheFrack/VibeManga/internal/normalize"
)

// Index is the pair of maps the matcher and deduper query a Library
// through. Build is pure and cheap enough to redo whenever the Library
// changes; it is never mutated in place.
type Index struct {
	byID       map[int64]models.Series
	byTitle    map[string][]models.Series
	identities []IdentityEntry
}

// IdentityEntry pairs a Series with one of its normalized identities, for
// callers (the matcher's fuzzy step, the deduper's fuzzy detector) that
// need to scan every identity in the Library rather than look one up.
type IdentityEntry struct {
	NormalizedTitle string
	Series          models.Series
}

// Build traverses lib in stable category-then-series order and populates
// byID and byTitle. A later Series with an ID already bound logs a warning
// and keeps the first binding (spec section 4.6); diag, which may be nil,
// records that collision as a corefail.ErrIndexCollision diagnostic too.
func Build(lib models.Library, logger *slog.Logger, diag *corefail.Diagnostics) *Index {
	logger = logging.NewComponentLogger(logger, "index")
	idx := &Index{
		byID:    make(map[int64]models.Series),
		byTitle: make(map[string][]models.Series),
	}

	for _, mainCat := range lib.Categories {
		for _, subCat := range mainCat.Categories {
			for _, series := range subCat.Series {
				idx.bindID(series, logger, diag)
				idx.bindTitles(series)
			}
		}
	}
	return idx
}

func (idx *Index) bindID(series models.Series, logger *slog.Logger, diag *corefail.Diagnostics) {
	if series.Metadata.ID == nil {
		return
	}
	id := *series.Metadata.ID
	if existing, ok := idx.byID[id]; ok {
		logger.Warn("duplicate series ID, keeping first binding",
			logging.Int64("id", id),
			logging.String("kept", existing.FolderName),
			logging.String("discarded", series.FolderName))
		diag.RecordKind(corefail.ErrIndexCollision, "duplicate ID "+strconv.FormatInt(id, 10)+": kept "+existing.FolderName+", discarded "+series.FolderName)
		return
	}
	idx.byID[id] = series
}

func (idx *Index) bindTitles(series models.Series) {
	for _, identity := range series.Identities() {
		key := normalize.Title(identity)
		if key == "" {
			continue
		}
		idx.byTitle[key] = append(idx.byTitle[key], series)
		idx.identities = append(idx.identities, IdentityEntry{NormalizedTitle: key, Series: series})
	}
}

// Identities returns every (normalized identity, Series) pair in the
// Library, in stable build order.
func (idx *Index) Identities() []IdentityEntry {
	return idx.identities
}

// Search normalizes query and returns every Series bound to that
// normalized title, in insertion order. The result may be empty.
func (idx *Index) Search(query string) []models.Series {
	return idx.byTitle[normalize.Title(query)]
}

// GetByID returns the Series bound to id, if any.
func (idx *Index) GetByID(id int64) (models.Series, bool) {
	series, ok := idx.byID[id]
	return series, ok
}
