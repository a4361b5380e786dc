package scanner

// VolumeExtensions lists the file extensions (lowercase, with leading dot)
// the scanner treats as volume-like, per spec section 4.5 step 5a.
var VolumeExtensions = map[string]bool{
	".cbz":  true,
	".cbr":  true,
	".zip":  true,
	".rar":  true,
	".pdf":  true,
	".epub": true,
}

// Options configures a single Scan call.
type Options struct {
	// PoolSize is the number of series read concurrently. Values below 1
	// are treated as 1.
	PoolSize int
}
