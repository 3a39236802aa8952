package brcache

import "errors"

var (
	// ErrNoProducer is returned by Fetch/FetchMulti when a value must be
	// produced (forced refresh, or a multi fetch) but no producer was given.
	ErrNoProducer = errors.New("brcache: producer is required")

	// ErrCorruptPayload marks stored bytes the codec (or the counter
	// parser) could not decode. The entry is left in place; callers decide
	// whether to delete or overwrite.
	ErrCorruptPayload = errors.New("brcache: corrupt payload")

	// ErrDecompression marks a payload whose compression frame was present
	// but whose body could not be inflated.
	ErrDecompression = errors.New("brcache: decompression failed")

	// ErrMarkerConflict is returned by writes whose uncompressed encoding
	// begins with the compression marker byte. Storing it would make the
	// entry unreadable, so the write is refused instead.
	ErrMarkerConflict = errors.New("brcache: encoded payload collides with compression marker")
)
