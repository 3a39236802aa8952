package brcache

import (
	"strconv"
	"strings"
)

// Key is anything that canonicalizes to a cache key string. Domain types
// implement it directly; StringKey, IntKey and MultiKey cover the common
// shapes. Canonical forms are what multi-key results are keyed by; the
// store prepends its prefix only at the storage boundary.
type Key interface {
	CacheKey() string
}

// StringKey uses the string itself as the canonical form.
type StringKey string

func (k StringKey) CacheKey() string { return string(k) }

// IntKey canonicalizes to the decimal form of the integer.
type IntKey int64

func (k IntKey) CacheKey() string { return strconv.FormatInt(int64(k), 10) }

// MultiKey canonicalizes by joining its children's canonical forms with
// "/". Children may themselves be MultiKeys; nesting flattens naturally:
//
//	MultiKey{StringKey("views"), StringKey("users/1"), MultiKey{a, b}}
//	-> "views/users/1/<a>/<b>"
type MultiKey []Key

func (k MultiKey) CacheKey() string {
	parts := make([]string, len(k))
	for i, child := range k {
		parts[i] = child.CacheKey()
	}
	return strings.Join(parts, "/")
}
