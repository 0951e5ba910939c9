package groestl

import "testing"

func TestSum256Length(t *testing.T) {
	for _, in := range [][]byte{{}, []byte("This is a test"), make([]byte, 200)} {
		got := Sum256(in)
		if len(got) != hashBytes {
			t.Errorf("Sum256(%q) returned %d bytes, want %d", in, len(got), hashBytes)
		}
	}
}

func TestSum256Deterministic(t *testing.T) {
	in := []byte("determinism check")
	a := Sum256(in)
	b := Sum256(in)
	if string(a) != string(b) {
		t.Errorf("Sum256 is not deterministic")
	}
}

func TestSum256DiffersOnInputChange(t *testing.T) {
	a := Sum256([]byte("a"))
	b := Sum256([]byte("b"))
	if string(a) == string(b) {
		t.Errorf("Sum256 collided on distinct single-byte inputs")
	}
}
