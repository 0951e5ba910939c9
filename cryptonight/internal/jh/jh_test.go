package jh

import "testing"

func TestSum256Length(t *testing.T) {
	for _, in := range [][]byte{{}, []byte("This is a test"), make([]byte, 200)} {
		got := Sum256(in)
		if len(got) != 32 {
			t.Errorf("Sum256(%q) returned %d bytes, want 32", in, len(got))
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

// TestRoundConstantsAreNotDegenerate checks e8BitsliceRoundconstant for
// zero words, words that repeat anywhere in the table, and rows identical to
// the row before them. It does not detect other filler patterns and does not
// check the table against real JH-256 output.
func TestRoundConstantsAreNotDegenerate(t *testing.T) {
	seen := make(map[uint64]bool, 42*4)
	for r, row := range e8BitsliceRoundconstant {
		for i, word := range row {
			if word == 0 {
				t.Errorf("row %d word %d is zero", r, i)
			}
			if seen[word] {
				t.Errorf("row %d word %d (%#x) repeats an earlier word", r, i, word)
			}
			seen[word] = true
		}
		if r > 0 && row == e8BitsliceRoundconstant[r-1] {
			t.Errorf("row %d duplicates row %d", r, r-1)
		}
	}
}
