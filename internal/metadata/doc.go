// Package metadata reads and writes the series.json sidecar file a
// Series folder may carry, round-tripping internal/models.Metadata exactly
// as spec section 3 defines it: unknown fields on disk are ignored, an
// absent file yields empty metadata and no error, and a malformed file
// yields empty metadata together with a per-item error the caller can
// record as a diagnostic.
package metadata
