package cryptonight

import (
	"golang.org/x/sys/cpu"

	"github.com/xcn-project/cryonote/types"
	"github.com/xcn-project/cryonote/utils"
)

// State holds the working memory for one hash computation, sized for the
// largest (full) mode and reused across calls. Not thread-safe: a single
// State must not be shared between concurrently running goroutines. Callers
// that want concurrency should keep one State per worker.
type State struct {
	scratchpad  [ScratchpadSize / 8]uint64
	keccakState [25]uint64
	_           [8]byte // padded to keep 16-byte align

	blocks    [16]uint64            // temporary chunk of the rolling fill/absorb state
	roundKeys [aesRounds * 4]uint32 // 10 rounds, not 14 as in standard AES-256
	_         [8]byte               // padded to keep 16-byte align

	_ cpu.CacheLinePad // prevents false sharing with neighboring States in a pool
}

// Sum computes the CryptoNight hash of data under the given mode and
// variant. prehashed allows the caller to supply an already-computed
// 200-byte Keccak state (as produced by an earlier call's absorption step)
// instead of raw input bytes, skipping the absorption step. Under V1 the
// tweak is read from bytes 35..42 of data, so with prehashed set those bytes
// come from the supplied state rather than from the original input, and the
// digest differs from hashing that input directly.
//
// The hash operates by first using Keccak-1600, the sponge used in SHA-3,
// to fill a 200-byte state by absorbing the input. It then uses the first
// part of that state to fill a large scratchpad with pseudorandom data by
// iteratively encrypting it with 10 rounds of AES per entry. It then mixes
// through the scratchpad, each outer iteration reading two blocks,
// transforming one with an AES round (AES-NI is used in hardware when
// available) and combining the other with a 64-bit multiply, and writing
// both back. Finally it re-mixes the scratchpad into the 200-byte state and
// runs one of four pseudorandomly selected hash functions (BLAKE, Groestl,
// JH, or Skein; always BLAKE in light mode) over it to produce the output.
func (cn *State) Sum(data []byte, mode Mode, variant Variant, prehashed bool) types.Hash {
	return cn.sum(data, mode, variant, prehashed)
}

// Sum is a convenience one-shot entry point (C8) that allocates a fresh
// State per call. Prefer reusing a State directly in a hot loop.
func Sum(data []byte, mode Mode, variant Variant) types.Hash {
	utils.Debugf("cryptonight", "allocating one-shot State for %d byte input, mode=%s", len(data), mode)
	cn := new(State)
	return cn.Sum(data, mode, variant, false)
}
