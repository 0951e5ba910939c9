//go:build amd64

package cryptonight

import "testing"

func TestAESHardwareSoftwareAgree(t *testing.T) {
	if !hasAESNI {
		t.Skip("host CPU has no AES-NI")
	}

	var roundKeys [aesRounds * 4]uint32
	aesExpandKey([]uint64{0x1, 0x2, 0x3, 0x4}, &roundKeys)

	hw := []uint64{0x1122334455667788, 0x99aabbccddeeff00}
	sw := []uint64{0x1122334455667788, 0x99aabbccddeeff00}

	aesRoundsHW(hw, &roundKeys)
	aesRoundsSoft(sw, &roundKeys)

	if hw[0] != sw[0] || hw[1] != sw[1] {
		t.Fatalf("hardware pseudo-round = %#x, software = %#x", hw, sw)
	}

	var roundKey [2]uint64 = [2]uint64{0xdeadbeefdeadbeef, 0xcafef00dcafef00d}
	hwDst := make([]uint64, 2)
	swDst := make([]uint64, 2)
	src := []uint64{0x0102030405060708, 0x090a0b0c0d0e0f10}

	aesSingleRoundHW(hwDst, src, &roundKey)
	aesSingleRoundSoft(swDst, src, &roundKey)

	if hwDst[0] != swDst[0] || hwDst[1] != swDst[1] {
		t.Fatalf("hardware single round = %#x, software = %#x", hwDst, swDst)
	}
}
