package compress

import (
	"bytes"
	"strings"
	"testing"
)

func testCompressors(t *testing.T) []Compressor {
	t.Helper()
	zc, err := NewZstd(3)
	if err != nil {
		t.Fatalf("NewZstd: %v", err)
	}
	gz, err := NewGzip(6)
	if err != nil {
		t.Fatalf("NewGzip: %v", err)
	}
	return []Compressor{Default(), zc, S2{}, Snappy{}, gz}
}

func TestRoundTrip(t *testing.T) {
	payloads := [][]byte{
		[]byte("x"),
		[]byte(strings.Repeat("cacheable content ", 200)),
		bytes.Repeat([]byte{0x00, 0x02, 0xFF}, 1000),
	}
	for _, c := range testCompressors(t) {
		t.Run(c.Name(), func(t *testing.T) {
			for _, p := range payloads {
				enc, err := c.Deflate(p)
				if err != nil {
					t.Fatalf("Deflate: %v", err)
				}
				dec, err := c.Inflate(enc)
				if err != nil {
					t.Fatalf("Inflate: %v", err)
				}
				if !bytes.Equal(dec, p) {
					t.Fatalf("round trip mismatch: got %d bytes want %d", len(dec), len(p))
				}
			}
		})
	}
}

func TestDeflateShrinksRepetitiveInput(t *testing.T) {
	p := []byte(strings.Repeat("a", 2048))
	for _, c := range testCompressors(t) {
		enc, err := c.Deflate(p)
		if err != nil {
			t.Fatalf("%s Deflate: %v", c.Name(), err)
		}
		if len(enc) >= len(p) {
			t.Fatalf("%s did not shrink repetitive input: %d >= %d", c.Name(), len(enc), len(p))
		}
	}
}

func TestNoneIsIdentity(t *testing.T) {
	p := []byte("already small")
	enc, _ := None{}.Deflate(p)
	if &enc[0] != &p[0] {
		t.Fatalf("None.Deflate must return its input")
	}
	dec, _ := None{}.Inflate(enc)
	if !bytes.Equal(dec, p) {
		t.Fatalf("None.Inflate mismatch")
	}
}

func TestInflateRejectsCorruptInput(t *testing.T) {
	garbage := []byte("definitely not a compressed stream")

	zc, err := NewZstd(1)
	if err != nil {
		t.Fatalf("NewZstd: %v", err)
	}
	gz, err := NewGzip(1)
	if err != nil {
		t.Fatalf("NewGzip: %v", err)
	}
	// formats with magic or framed lengths must reject outright
	for _, c := range []Compressor{zc, gz, Snappy{}} {
		if _, err := c.Inflate(garbage); err == nil {
			t.Fatalf("%s accepted garbage", c.Name())
		}
	}

	// brotli has no magic; a stream cut mid-block must still fail
	br := Default()
	enc, err := br.Deflate([]byte(strings.Repeat("payload ", 600)))
	if err != nil {
		t.Fatalf("Deflate: %v", err)
	}
	if _, err := br.Inflate(enc[:len(enc)/2]); err == nil {
		t.Fatalf("brotli accepted truncated stream")
	}
}

func TestSnappyInflateCap(t *testing.T) {
	enc, err := Snappy{}.Deflate([]byte(strings.Repeat("b", 4096)))
	if err != nil {
		t.Fatalf("Deflate: %v", err)
	}
	if _, err := (Snappy{MaxInflate: 128}).Inflate(enc); err == nil {
		t.Fatalf("expected cap violation")
	}
	out, err := (Snappy{MaxInflate: 1 << 20}).Inflate(enc)
	if err != nil {
		t.Fatalf("Inflate under cap: %v", err)
	}
	if len(out) != 4096 {
		t.Fatalf("unexpected decoded length %d", len(out))
	}
}

func TestConstructorValidation(t *testing.T) {
	if _, err := NewBrotli(-1); err == nil {
		t.Fatalf("expected error for quality -1")
	}
	if _, err := NewBrotli(12); err == nil {
		t.Fatalf("expected error for quality 12")
	}
	if _, err := NewBrotli(DefaultQuality); err != nil {
		t.Fatalf("default quality rejected: %v", err)
	}
	if _, err := NewGzip(-3); err == nil {
		t.Fatalf("expected error for gzip level -3")
	}
	if _, err := NewGzip(10); err == nil {
		t.Fatalf("expected error for gzip level 10")
	}
}
