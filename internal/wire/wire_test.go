package wire

import (
	"bytes"
	"math"
	"testing"
)

func mustOpen(t *testing.T, b []byte) ([]byte, bool) {
	t.Helper()
	body, compressed, err := Open(b)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	return body, compressed
}

func TestSealOpenRoundTrip(t *testing.T) {
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	enc := Seal(payload)

	if enc[0] != Marker {
		t.Fatalf("sealed payload must start with marker, got 0x%02x", enc[0])
	}
	body, compressed := mustOpen(t, enc)
	if !compressed {
		t.Fatalf("expected compressed=true for sealed payload")
	}
	if !bytes.Equal(body, payload) {
		t.Fatalf("body mismatch: got %x want %x", body, payload)
	}
}

func TestOpenPassthroughWithoutMarker(t *testing.T) {
	raw := []byte("plain serialized bytes")
	body, compressed := mustOpen(t, raw)
	if compressed {
		t.Fatalf("expected compressed=false without marker")
	}
	if !bytes.Equal(body, raw) {
		t.Fatalf("body mismatch: got %q want %q", body, raw)
	}
}

func TestOpenEmptyAndBareMarker(t *testing.T) {
	body, compressed := mustOpen(t, nil)
	if compressed || len(body) != 0 {
		t.Fatalf("empty payload must open as empty raw body")
	}
	if _, _, err := Open([]byte{Marker}); err == nil {
		t.Fatalf("expected error on marker with no body")
	}
}

func TestSealedBodyStartingWithMarker(t *testing.T) {
	// compressed bytes may legitimately begin with 0x02; only the first
	// byte of the stored payload is the frame
	payload := []byte{Marker, Marker, 0x01}
	body, compressed := mustOpen(t, Seal(payload))
	if !compressed || !bytes.Equal(body, payload) {
		t.Fatalf("inner marker bytes must survive: got %x", body)
	}
}

func TestCounterRoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 42, -9000, math.MaxInt64, math.MinInt64}
	for _, n := range cases {
		enc := EncodeCounter(n)
		if enc[0] == Marker {
			t.Fatalf("counter encoding must never carry the marker: %x", enc)
		}
		got, err := DecodeCounter(enc)
		if err != nil {
			t.Fatalf("DecodeCounter(%d): %v", n, err)
		}
		if got != n {
			t.Fatalf("counter mismatch: got %d want %d", got, n)
		}
	}
}

func TestCounterRejectsMalformed(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte(""),
		[]byte("12a"),
		[]byte("1 "),
		[]byte(" 1"),
		[]byte("1.5"),
		[]byte("0x10"),
		[]byte("99999999999999999999"), // overflows int64
	}
	for _, b := range cases {
		if _, err := DecodeCounter(b); err == nil {
			t.Fatalf("expected error for %q", b)
		}
	}
}
