package cryptonight

import (
	"github.com/aead/skein"
	"github.com/dchest/blake256"

	"github.com/xcn-project/cryonote/cryptonight/internal/groestl"
	"github.com/xcn-project/cryonote/cryptonight/internal/jh"
)

// finalHash dispatches the finalizer (C7 step 6) on the low two bits of i,
// which the caller has already forced to 0 (BLAKE) in light mode.
func finalHash(i uint8, data []byte, out []byte) {
	switch i & 0x03 {
	case 0:
		h := blake256.New()
		_, _ = h.Write(data)
		h.Sum(out[:0])
		return
	case 1:
		var digest groestl.Digest
		digest.Reset()
		_, _ = digest.Write(data)
		digest.Sum(out[:0])
		return
	case 2:
		var state jh.State
		state.Reset()
		_, _ = state.Write(data)
		state.Sum(out[:0])
		return
	case 3:
		skein.Sum256((*[32]byte)(out), data, nil)
		return
	}
	panic("unreachable")
}
