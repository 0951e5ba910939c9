//go:build !amd64

package cryptonight

// aes_rounds and aes_single_round always use the portable software
// implementation on architectures without a hand-written AES-NI stub.
// hasAESNI is not consulted here; it can still be true on 386, where
// x/sys/cpu also reads CPUID.

func aes_rounds(state []uint64, roundKeys *[aesRounds * 4]uint32) {
	aesRoundsSoft(state, roundKeys)
}

func aes_single_round(dst, src []uint64, roundKey *[2]uint64) {
	aesSingleRoundSoft(dst, src, roundKey)
}
