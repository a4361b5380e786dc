package cache

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/ImTheFrack/VibeManga/internal/corefail"
	"github.com/ImTheFrack/VibeManga/internal/fileutil"
	"github.com/ImTheFrack/VibeManga/internal/models"
)

const (
	currentVersion uint16 = 1
	defaultMaxAge         = 3000 * time.Second
)

var magicBytes = [4]byte{'V', 'M', 'C', 'B'}

// fastHeaderSize is the length in bytes of the big-endian framed header
// spec section 6 fixes for the fast binary snapshot: magic(4) +
// version(u16) + root-path-hash(u64) + written-at-epoch-ms(u64) +
// payload-length(u64).
const fastHeaderSize = 4 + 2 + 8 + 8 + 8

// Envelope wraps a Library snapshot with the metadata needed to validate
// and age it: the root path it was scanned from and the time it was
// created.
type Envelope struct {
	RootPath  string         `json:"root_path"`
	CreatedAt time.Time      `json:"created_at"`
	Library   models.Library `json:"library"`
}

// Store is a content-addressed two-file cache for a single library root,
// rooted at Dir (the process working directory by default).
type Store struct {
	Dir    string
	MaxAge time.Duration
}

// New returns a Store rooted at dir. maxAge of zero uses the spec default
// of 3000 seconds.
func New(dir string, maxAge time.Duration) *Store {
	if maxAge <= 0 {
		maxAge = defaultMaxAge
	}
	return &Store{Dir: dir, MaxAge: maxAge}
}

// Key returns the 64-bit hash of the normalized absolute root path used to
// derive both cache filenames.
func Key(rootPath string) uint64 {
	normalized := filepath.Clean(rootPath)
	h := fnv.New64a()
	_, _ = h.Write([]byte(normalized))
	return h.Sum64()
}

func (s *Store) fastPath(key uint64) string {
	return filepath.Join(s.Dir, fmt.Sprintf("fast_%x.bin", key))
}

func (s *Store) durablePath(key uint64) string {
	return filepath.Join(s.Dir, fmt.Sprintf("durable_%x.json", key))
}

func (s *Store) lockPath(key uint64) string {
	return filepath.Join(s.Dir, fmt.Sprintf(".cache_%x.lock", key))
}

// LoadResult carries a cache hit along with whether it came from the fast
// binary snapshot and how old that snapshot is, so callers can decide
// whether to trust it without re-validating file (size, mtime).
type LoadResult struct {
	Library   models.Library
	FromFast  bool
	CreatedAt time.Time
}

// Fresh reports whether the snapshot a Load returned is young enough to be
// reused without per-Volume (size, mtime) revalidation.
func (r LoadResult) Fresh(maxAge time.Duration) bool {
	if !r.FromFast || r.CreatedAt.IsZero() {
		return false
	}
	return time.Since(r.CreatedAt) <= maxAge
}

// Load reads the cache for rootPath, preferring the fast binary snapshot
// and falling back to the durable JSON file on version mismatch,
// corruption, or absence. A snapshot is only returned if its recorded root
// path equals the normalized rootPath. Recoverable read failures are
// recorded on diag (which may be nil) rather than returned as an error.
func (s *Store) Load(rootPath string, diag *corefail.Diagnostics) (LoadResult, bool) {
	key := Key(rootPath)
	normalizedRoot := filepath.Clean(rootPath)

	if lib, createdAt, err := s.readFast(key); err != nil {
		diag.Record(corefail.Wrap(corefail.ErrCacheRead, "cache", "read_fast", s.fastPath(key), err))
	} else {
		return LoadResult{Library: lib, FromFast: true, CreatedAt: createdAt}, true
	}

	env, err := s.readDurable(key)
	if err != nil {
		diag.Record(corefail.Wrap(corefail.ErrCacheRead, "cache", "read_durable", s.durablePath(key), err))
		return LoadResult{}, false
	}
	if env.RootPath != normalizedRoot {
		return LoadResult{}, false
	}
	return LoadResult{Library: env.Library, FromFast: false, CreatedAt: env.CreatedAt}, true
}

// Save atomically rewrites both cache files for lib's root path. The
// binary write failing does not prevent the JSON write: per spec section
// 4.4, readers must tolerate an absent binary snapshot.
func (s *Store) Save(lib models.Library, diag *corefail.Diagnostics) error {
	if lib.Incomplete {
		return nil
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return corefail.Wrap(corefail.ErrCacheWrite, "cache", "save", s.Dir, err)
	}

	key := Key(lib.RootPath)
	fl := flock.New(s.lockPath(key))
	if err := fl.Lock(); err != nil {
		return corefail.Wrap(corefail.ErrCacheWrite, "cache", "save", "acquire lock", err)
	}
	defer fl.Unlock()

	createdAt := time.Now()
	env := Envelope{RootPath: filepath.Clean(lib.RootPath), CreatedAt: createdAt, Library: lib}

	if data, err := encodeBinary(key, createdAt, lib); err != nil {
		diag.Record(corefail.Wrap(corefail.ErrCacheWrite, "cache", "encode_fast", s.fastPath(key), err))
	} else if err := fileutil.AtomicWriteFile(s.fastPath(key), data, 0o644); err != nil {
		diag.Record(corefail.Wrap(corefail.ErrCacheWrite, "cache", "write_fast", s.fastPath(key), err))
	}

	jsonData, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return corefail.Wrap(corefail.ErrCacheWrite, "cache", "encode_durable", s.durablePath(key), err)
	}
	if err := fileutil.AtomicWriteFile(s.durablePath(key), jsonData, 0o644); err != nil {
		return corefail.Wrap(corefail.ErrCacheWrite, "cache", "write_durable", s.durablePath(key), err)
	}
	return nil
}

func (s *Store) readFast(key uint64) (models.Library, time.Time, error) {
	data, err := os.ReadFile(s.fastPath(key))
	if err != nil {
		return models.Library{}, time.Time{}, err
	}
	return decodeBinary(data, key)
}

func (s *Store) readDurable(key uint64) (Envelope, error) {
	data, err := os.ReadFile(s.durablePath(key))
	if err != nil {
		return Envelope{}, err
	}
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, err
	}
	return env, nil
}

// encodeBinary frames lib behind spec section 6's fast-snapshot header:
// magic "VMCB", version, the root path's hash, the write time as epoch
// milliseconds, and the payload length, followed by the gob-encoded
// Library itself (the "versioned structural format" the header's version
// field governs).
func encodeBinary(rootHash uint64, createdAt time.Time, lib models.Library) ([]byte, error) {
	var payload bytes.Buffer
	if err := gob.NewEncoder(&payload).Encode(lib); err != nil {
		return nil, fmt.Errorf("gob encode: %w", err)
	}

	header := make([]byte, fastHeaderSize)
	copy(header[0:4], magicBytes[:])
	binary.BigEndian.PutUint16(header[4:6], currentVersion)
	binary.BigEndian.PutUint64(header[6:14], rootHash)
	binary.BigEndian.PutUint64(header[14:22], uint64(createdAt.UnixMilli()))
	binary.BigEndian.PutUint64(header[22:30], uint64(payload.Len()))

	return append(header, payload.Bytes()...), nil
}

func decodeBinary(data []byte, wantRootHash uint64) (models.Library, time.Time, error) {
	if len(data) < fastHeaderSize || !bytes.Equal(data[:4], magicBytes[:]) {
		return models.Library{}, time.Time{}, fmt.Errorf("bad magic bytes")
	}
	if version := binary.BigEndian.Uint16(data[4:6]); version != currentVersion {
		return models.Library{}, time.Time{}, fmt.Errorf("version mismatch: got %d, want %d", version, currentVersion)
	}
	if rootHash := binary.BigEndian.Uint64(data[6:14]); rootHash != wantRootHash {
		return models.Library{}, time.Time{}, fmt.Errorf("root path hash mismatch")
	}
	writtenAtMs := binary.BigEndian.Uint64(data[14:22])
	payloadLen := binary.BigEndian.Uint64(data[22:30])

	payload := data[fastHeaderSize:]
	if uint64(len(payload)) != payloadLen {
		return models.Library{}, time.Time{}, fmt.Errorf("payload length mismatch: got %d, want %d", len(payload), payloadLen)
	}

	var lib models.Library
	if err := gob.NewDecoder(bytes.NewReader(payload)).Decode(&lib); err != nil {
		return models.Library{}, time.Time{}, fmt.Errorf("gob decode: %w", err)
	}
	return lib, time.UnixMilli(int64(writtenAtMs)), nil
}
