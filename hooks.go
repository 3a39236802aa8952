package brcache

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking.
// The store calls them on hot paths.
type Hooks interface {
	// An entry was stored compressed. storedLen counts the marker byte.
	Compressed(storageKey string, rawLen, storedLen int)

	// Compression ran but did not shrink the payload; the raw encoding
	// was stored instead.
	CompressionRejected(storageKey string, rawLen, deflatedLen int)

	// A stored payload failed to decode on read.
	// reason is one of "inflate", "decode", "counter".
	CorruptPayload(storageKey, reason string)

	// Provider returned ok=false on a write (backpressure/eviction).
	WriteRejected(storageKey string, isMulti bool)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) Compressed(string, int, int)          {}
func (NopHooks) CompressionRejected(string, int, int) {}
func (NopHooks) CorruptPayload(string, string)        {}
func (NopHooks) WriteRejected(string, bool)           {}
