package wide

import (
	"errors"
	"testing"
)

func TestEncodeRoundTrip(t *testing.T) {
	for _, s := range []string{"", "Software", `Software\ExampleApp`, "abcd_äöüß", "キー"} {
		u, err := Encode(s)
		if err != nil {
			t.Fatalf("Encode(%q): %v", s, err)
		}
		if len(u) == 0 || u[len(u)-1] != 0 {
			t.Fatalf("Encode(%q): missing NUL terminator", s)
		}
		if got := Decode(u); got != s {
			t.Fatalf("round trip mismatch: got %q want %q", got, s)
		}
	}
}

func TestEncodeInteriorNUL(t *testing.T) {
	if _, err := Encode("Soft\x00ware"); !errors.Is(err, ErrInteriorNUL) {
		t.Fatalf("expected ErrInteriorNUL, got %v", err)
	}
	if _, err := EncodeBytes("Soft\x00ware"); !errors.Is(err, ErrInteriorNUL) {
		t.Fatalf("expected ErrInteriorNUL from EncodeBytes, got %v", err)
	}
}

func TestDecodeStopsAtNUL(t *testing.T) {
	u := []uint16{'a', 'b', 0, 'c'}
	if got := Decode(u); got != "ab" {
		t.Fatalf("Decode: got %q want %q", got, "ab")
	}
}

func TestBytesRoundTrip(t *testing.T) {
	b, err := EncodeBytes("abcd_äöüß")
	if err != nil {
		t.Fatalf("EncodeBytes: %v", err)
	}
	if len(b) < 2 || b[len(b)-1] != 0 || b[len(b)-2] != 0 {
		t.Fatalf("missing UTF-16 NUL terminator: % x", b)
	}
	s, err := DecodeBytes(b)
	if err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}
	if s != "abcd_äöüß" {
		t.Fatalf("round trip mismatch: got %q", s)
	}
}

func TestDecodeBytesOddLength(t *testing.T) {
	// 'a' 0x00 plus a dangling byte; the dangling byte is ignored.
	s, err := DecodeBytes([]byte{0x61, 0x00, 0x7f})
	if err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}
	if s != "a" {
		t.Fatalf("got %q want %q", s, "a")
	}
}

func TestMultiRoundTrip(t *testing.T) {
	in := []string{"alpha", "beta", "gamma"}
	b, err := EncodeMulti(in)
	if err != nil {
		t.Fatalf("EncodeMulti: %v", err)
	}
	out, err := DecodeMulti(b)
	if err != nil {
		t.Fatalf("DecodeMulti: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("element count: got %d want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("element %d: got %q want %q", i, out[i], in[i])
		}
	}
}

func TestMultiRejectsEmptyElement(t *testing.T) {
	if _, err := EncodeMulti([]string{"a", "", "b"}); err == nil {
		t.Fatalf("expected error for empty element")
	}
}

func TestDecodeMultiEmpty(t *testing.T) {
	out, err := DecodeMulti([]byte{0, 0})
	if err != nil {
		t.Fatalf("DecodeMulti: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected no elements, got %v", out)
	}
}
