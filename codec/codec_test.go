package codec

import (
	"bytes"
	"strings"
	"testing"
)

type payload struct {
	ID    string         `msgpack:"id" json:"id"`
	Likes map[string]int `msgpack:"likes" json:"likes"`
}

func TestLimitCodecGuardsDecodeSize(t *testing.T) {
	lc := LimitCodec[payload]{Inner: Msgpack[payload]{}, MaxDecode: 16}

	big, err := Msgpack[payload]{}.Encode(payload{ID: "comfortably past sixteen bytes"})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, err := lc.Decode(big); err == nil || !strings.Contains(err.Error(), "payload too large") {
		t.Fatalf("Decode err = %v, want size error", err)
	}

	// encode side is never limited
	if _, err := lc.Encode(payload{ID: "comfortably past sixteen bytes"}); err != nil {
		t.Fatalf("Encode through limit: %v", err)
	}

	small, _ := Msgpack[payload]{}.Encode(payload{ID: "x"})
	if _, err := lc.Decode(small); err != nil {
		t.Fatalf("Decode under limit: %v", err)
	}

	// MaxDecode <= 0 disables the guard
	open := LimitCodec[payload]{Inner: Msgpack[payload]{}}
	if _, err := open.Decode(big); err != nil {
		t.Fatalf("Decode with disabled limit: %v", err)
	}
}

func TestGobRoundTrip(t *testing.T) {
	c := Gob[payload]{}
	in := payload{ID: "u1", Likes: map[string]int{"go": 3, "gob": 1}}

	b, err := c.Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out, err := c.Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if out.ID != in.ID || len(out.Likes) != 2 || out.Likes["go"] != 3 {
		t.Fatalf("round trip got %+v", out)
	}

	if _, err := c.Decode([]byte("not a gob stream")); err == nil {
		t.Fatalf("expected error for invalid gob bytes")
	}
}

func TestCBORDeterministicEncoding(t *testing.T) {
	c, err := NewCBOR[map[string]int](true)
	if err != nil {
		t.Fatalf("NewCBOR: %v", err)
	}

	in := map[string]int{"b": 2, "a": 1, "c": 3}
	first, err := c.Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := c.Encode(map[string]int{"c": 3, "a": 1, "b": 2})
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("deterministic mode produced differing bytes:\n%x\n%x", first, again)
		}
	}

	out, err := c.Decode(first)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(out) != 3 || out["b"] != 2 {
		t.Fatalf("round trip got %v", out)
	}
}

func TestRawCodecsAreIdentity(t *testing.T) {
	in := []byte{0x00, 0x02, 0xff}
	b, _ := Bytes{}.Encode(in)
	if !bytes.Equal(b, in) {
		t.Fatalf("Bytes.Encode changed the payload")
	}
	out, _ := Bytes{}.Decode(b)
	if !bytes.Equal(out, in) {
		t.Fatalf("Bytes.Decode changed the payload")
	}

	sb, _ := String{}.Encode("héllo")
	s, _ := String{}.Decode(sb)
	if s != "héllo" {
		t.Fatalf("String round trip got %q", s)
	}
}
