package cryptonight

import (
	"hash"
	"unsafe"

	_ "golang.org/x/crypto/sha3" //nolint:depguard
)

// keccakF1600 reaches into golang.org/x/crypto/sha3's private permutation so
// the finalizer (C7) can apply it to the 200-byte state directly, without
// going through another absorb/squeeze cycle.
//
//go:noescape
//go:linkname keccakF1600 golang.org/x/crypto/sha3.keccakF1600
func keccakF1600(a *[25]uint64)

type genericInterface struct {
	_type uintptr
	data  unsafe.Pointer
}

// keccakState mirrors the private struct layout of sha3's state so its
// 200-byte sponge array can be read out directly after absorbing the input.
type keccakState struct {
	a         [1600 / 8]byte
	n, rate   int
	dsbyte    byte
	outputLen int
	state     int
}

func keccakStatePtr(h hash.Hash) *[1600 / 8]byte {
	// extremely unsafe: read the eface/iface data pointer to get at the
	// underlying sponge state field.
	// #nosec G103 -- specifically checked structure
	state := (*keccakState)((*genericInterface)(unsafe.Pointer(&h)).data)
	return &state.a
}
