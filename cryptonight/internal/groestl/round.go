package groestl

import (
	"encoding/binary"
)

// transform runs the compression function over whole blocks of data.
func (d *Digest) transform(data []byte) {
	if len(data)%blockSize != 0 {
		panic("groestl: data length is not a multiple of the block size")
	}

	cols := 0
	eb := d.blocks + uint64(len(data)/blockSize)

	var m, hxm [columns]uint64
	for d.blocks < eb {
		for i := range columns {
			m[i] = binary.BigEndian.Uint64(data[cols*8 : (cols+1)*8])
			cols++
			hxm[i] = d.chaining[i] ^ m[i]
		}

		round(&hxm, 'p')
		round(&m, 'q')

		for i := range columns {
			d.chaining[i] ^= hxm[i] ^ m[i]
		}

		d.blocks++
	}
}

// finalTransform applies the final P permutation ahead of truncation.
func (d *Digest) finalTransform() {
	var h [columns]uint64
	copy(h[:], d.chaining[:])

	round(&h, 'p')

	for i := range columns {
		d.chaining[i] ^= h[i]
	}

	d.blocks++
}

// round runs the full set of permutation rounds over x. variant 'p' or 'q'
// selects which of Grøstl's two permutations is applied.
func round(x *[columns]uint64, variant rune) {
	for i := range rounds {
		addRoundConstant(x, i, variant)
		subBytes(x)
		shiftBytes(x, variant)
		mixBytes(x)
	}
}

func addRoundConstant(x *[columns]uint64, r int, variant rune) {
	switch variant {
	case 'p':
		for i := range x {
			// byte from row 0: shift by 8*7 bits to land in the top byte
			x[i] ^= uint64((i<<4)^r) << (8 * 7)
		}
	case 'q':
		for i := range x {
			x[i] ^= ^uint64(0) ^ uint64((i<<4)^r)
		}
	default:
		panic("groestl: invalid variant")
	}
}

func subBytes(x *[columns]uint64) {
	var newCol [8]byte
	for i := range x {
		for j := range 8 {
			newCol[j] = sbox[pickRow(x[i], j)]
		}
		x[i] = binary.BigEndian.Uint64(newCol[:])
	}
}

var shiftVectorP = [8]int{0, 1, 2, 3, 4, 5, 6, 7}
var shiftVectorQ = [8]int{1, 3, 5, 7, 0, 2, 4, 6}

func shiftBytes(x *[columns]uint64, variant rune) {
	var shiftVector *[8]int
	switch variant {
	case 'p':
		shiftVector = &shiftVectorP
	case 'q':
		shiftVector = &shiftVectorQ
	default:
		panic("groestl: invalid variant")
	}
	old := *x
	for i := range columns {
		x[i] = uint64(pickRow(old[(i+shiftVector[0])%columns], 0))
		for j := 1; j < 8; j++ {
			x[i] <<= 8
			x[i] ^= uint64(pickRow(old[(i+shiftVector[j])%columns], j))
		}
	}
}

func mixBytes(x *[columns]uint64) {
	// Straight translation of the reference implementation's GF(2^8) mix.
	mul2 := func(b uint8) uint8 { return (b << 1) ^ (0x1B * ((b >> 7) & 1)) }
	mul3 := func(b uint8) uint8 { return mul2(b) ^ b }
	mul4 := func(b uint8) uint8 { return mul2(mul2(b)) }
	mul5 := func(b uint8) uint8 { return mul4(b) ^ b }
	mul7 := func(b uint8) uint8 { return mul4(b) ^ mul2(b) ^ b }

	var temp [8]uint8
	for i := range x {
		for j := range 8 {
			temp[j] =
				mul2(pickRow(x[i], (j+0)%8)) ^
					mul2(pickRow(x[i], (j+1)%8)) ^
					mul3(pickRow(x[i], (j+2)%8)) ^
					mul4(pickRow(x[i], (j+3)%8)) ^
					mul5(pickRow(x[i], (j+4)%8)) ^
					mul3(pickRow(x[i], (j+5)%8)) ^
					mul5(pickRow(x[i], (j+6)%8)) ^
					mul7(pickRow(x[i], (j+7)%8))
		}
		x[i] = binary.BigEndian.Uint64(temp[:])
	}
}

func pickRow(col uint64, i int) byte {
	return byte((col >> (8 * (7 - i))) & 0xFF)
}
