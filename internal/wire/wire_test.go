package wire

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func mustDecode(t *testing.T, b []byte) (uint32, []byte) {
	t.Helper()
	n, p, err := DecodeFrame(b)
	if err != nil {
		t.Fatalf("DecodeFrame error: %v", err)
	}
	return n, p
}

func TestFrameRoundTrip(t *testing.T) {
	cases := []struct {
		points  uint32
		payload []byte
	}{
		{0, nil},
		{2, []byte("u{~vFvyys@fS]")},
		{math.MaxUint32, []byte{0, 1, 2, 3, 4}},
	}
	for _, tc := range cases {
		enc := EncodeFrame(tc.points, tc.payload)
		n, p := mustDecode(t, enc)
		if n != tc.points {
			t.Fatalf("points mismatch: got %d want %d", n, tc.points)
		}
		if !bytes.Equal(p, tc.payload) {
			t.Fatalf("payload mismatch: got %x want %x", p, tc.payload)
		}
	}
}

func TestFrameCorruptHeader(t *testing.T) {
	enc := EncodeFrame(1, []byte("abc"))

	bad := append([]byte(nil), enc...)
	bad[0] = 'X' // wrong magic
	if _, _, err := DecodeFrame(bad); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("wrong magic: err=%v want ErrCorrupt", err)
	}

	bad = append([]byte(nil), enc...)
	bad[4] = version + 1 // unknown version
	if _, _, err := DecodeFrame(bad); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("bad version: err=%v want ErrCorrupt", err)
	}

	if _, _, err := DecodeFrame(enc[:8]); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("short entry: err=%v want ErrCorrupt", err)
	}
	if _, _, err := DecodeFrame(nil); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("nil entry: err=%v want ErrCorrupt", err)
	}
}

func TestFrameForeignBytes(t *testing.T) {
	for _, b := range [][]byte{
		[]byte("{\"foreign\":true}"),
		[]byte("_p~iF~ps|U"), // a bare polyline written without framing
	} {
		if _, _, err := DecodeFrame(b); !errors.Is(err, ErrCorrupt) {
			t.Fatalf("DecodeFrame(%q): err=%v want ErrCorrupt", b, err)
		}
	}
}
