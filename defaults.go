package brcache

const (
	// DefaultPrefix namespaces storage keys. Prefixed and unprefixed
	// stores can share a backend without reading each other's entries.
	DefaultPrefix = "br-"

	// DefaultCompressThreshold is the minimum encoded size, in bytes,
	// eligible for compression. Deflating tiny payloads costs CPU and
	// routinely grows them past the original.
	DefaultCompressThreshold = 1024
)

// coalesce returns def when v is T's zero value.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
