// Package compress provides the pluggable byte compressors used by brcache.
package compress

// Compressor deflates/inflates raw payload bytes. Implementations must be
// safe for concurrent use and stateless with respect to payloads: any
// configuration (quality, limits) is fixed at construction.
type Compressor interface {
	Deflate([]byte) ([]byte, error)
	Inflate([]byte) ([]byte, error)
	// Name identifies the algorithm ("brotli", "zstd", ...) for logs,
	// hooks and config resolution. It is not stored with payloads.
	Name() string
}

// None is an identity Compressor. Deflate returns its input unchanged, so
// the compressed form is never smaller and entries are stored raw.
type None struct{}

var _ Compressor = None{}

func (None) Deflate(b []byte) ([]byte, error) { return b, nil }
func (None) Inflate(b []byte) ([]byte, error) { return b, nil }
func (None) Name() string                     { return "none" }
