// Package jh implements JH-256.
package jh

import (
	"encoding/binary"
	"unsafe"
)

var zeroBuf64Byte [64]byte

// State is a JH-256 hasher.
type State struct {
	databitlen       uint64
	datasizeInBuffer uint64
	X                [8][2]uint64 // the 1024-bit state; (X[i][0], X[i][1]) is row i
	buffer           [64]byte
}

func Sum256(b []byte) []byte {
	var s State
	s.Reset()
	_, _ = s.Write(b)
	return s.Sum(nil)
}

func (s *State) Reset() {
	s.databitlen = 0
	s.datasizeInBuffer = 0
	s.X = jh256H0
	s.buffer = zeroBuf64Byte
}

func (s *State) Size() int      { return 32 }
func (s *State) BlockSize() int { return 64 }

// Write hashes each 512-bit message block, except a final partial block.
func (s *State) Write(data []byte) (n int, err error) {
	index := uint64(0)
	databitlen := uint64(len(data)) * 8
	s.databitlen += databitlen

	if s.datasizeInBuffer > 0 && s.datasizeInBuffer+databitlen < 512 {
		if databitlen&7 == 0 {
			copy(s.buffer[s.datasizeInBuffer>>3:], data[:64-(s.datasizeInBuffer>>3)])
		} else {
			copy(s.buffer[s.datasizeInBuffer>>3:], data[:64-(s.datasizeInBuffer>>3)+1])
		}
		s.datasizeInBuffer += databitlen
		databitlen = 0
	}

	if s.datasizeInBuffer > 0 && s.datasizeInBuffer+databitlen >= 512 {
		copy(s.buffer[s.datasizeInBuffer>>3:], data[:64-(s.datasizeInBuffer>>3)])
		index = 64 - (s.datasizeInBuffer >> 3)
		databitlen -= 512 - s.datasizeInBuffer
		s.f8()
		s.datasizeInBuffer = 0
	}

	for databitlen >= 512 {
		copy(s.buffer[:], data[index:index+64])
		s.f8()
		index += 64
		databitlen -= 512
	}

	if databitlen > 0 {
		if databitlen&7 == 0 {
			copy(s.buffer[:(databitlen&0x1ff)>>3], data[index:])
		} else {
			copy(s.buffer[:((databitlen&0x1ff)>>3)+1], data[index:])
		}
		s.datasizeInBuffer = databitlen
	}

	return len(data), nil
}

// Sum pads the message, processes the padded block(s), and truncates the
// 1024-bit state to the 256-bit digest.
func (s *State) Sum(b []byte) []byte {
	var i uint64

	if s.databitlen&0x1ff == 0 {
		s.buffer = zeroBuf64Byte
		s.buffer[0] = 0x80
		putTailLength(&s.buffer, s.databitlen)
		s.f8()
	} else {
		if s.datasizeInBuffer&7 == 0 {
			for i = (s.databitlen & 0x1ff) >> 3; i < 64; i++ {
				s.buffer[i] = 0
			}
		} else {
			for i = ((s.databitlen & 0x1ff) >> 3) + 1; i < 64; i++ {
				s.buffer[i] = 0
			}
		}

		s.buffer[(s.databitlen&0x1ff)>>3] |= 1 << (7 - (s.databitlen & 7))

		s.f8()
		s.buffer = zeroBuf64Byte
		putTailLength(&s.buffer, s.databitlen)
		s.f8()
	}

	// #nosec G103 -- fixed 32-byte read out of rows 6 and 7 (X[6], X[7])
	return append(b, (*[32]byte)(unsafe.Pointer(&s.X[6][0]))[:]...)
}

func putTailLength(buf *[64]byte, databitlen uint64) {
	buf[63] = uint8(databitlen)
	buf[62] = uint8(databitlen >> 8)
	buf[61] = uint8(databitlen >> 16)
	buf[60] = uint8(databitlen >> 24)
	buf[59] = uint8(databitlen >> 32)
	buf[58] = uint8(databitlen >> 40)
	buf[57] = uint8(databitlen >> 48)
	buf[56] = uint8(databitlen >> 56)
}

// f8 is the compression function: xor in the message, apply E8, xor in the
// message again.
func (s *State) f8() {
	for i := range 8 {
		s.X[i>>1][i&1] ^= binary.LittleEndian.Uint64(s.buffer[8*i:])
	}

	s.e8()

	for i := range 8 {
		s.X[(8+i)>>1][(8+i)&1] ^= binary.LittleEndian.Uint64(s.buffer[8*i:])
	}
}

func (s *State) round(roundNumber, offset, i int) {
	SS(&s.X[0][i], &s.X[2][i], &s.X[4][i], &s.X[6][i], &s.X[1][i], &s.X[3][i], &s.X[5][i], &s.X[7][i],
		e8BitsliceRoundconstant[roundNumber+offset][i], e8BitsliceRoundconstant[roundNumber+offset][i+2])
	L(&s.X[0][i], &s.X[2][i], &s.X[4][i], &s.X[6][i], &s.X[1][i], &s.X[3][i], &s.X[5][i], &s.X[7][i])
}

// e8 is the bijective permutation at JH's core, in bitslice form.
func (s *State) e8() {
	var temp0 uint64

	for round := 0; round < 42; round += 7 {
		for i := range 2 {
			s.round(round, 0, i)
			for j := range 4 {
				SWAP1(&s.X[j*2+1][i])
			}
		}
		for i := range 2 {
			s.round(round, 1, i)
			for j := range 4 {
				SWAP2(&s.X[j*2+1][i])
			}
		}
		for i := range 2 {
			s.round(round, 2, i)
			for j := range 4 {
				SWAP4(&s.X[j*2+1][i])
			}
		}
		for i := range 2 {
			s.round(round, 3, i)
			for j := range 4 {
				SWAP8(&s.X[j*2+1][i])
			}
		}
		for i := range 2 {
			s.round(round, 4, i)
			for j := range 4 {
				SWAP16(&s.X[j*2+1][i])
			}
		}
		for i := range 2 {
			s.round(round, 5, i)
			for j := range 4 {
				SWAP32(&s.X[j*2+1][i])
			}
		}
		for i := range 2 {
			s.round(round, 6, i)
		}

		for i := 1; i < 8; i += 2 {
			temp0 = s.X[i][0]
			s.X[i][0] = s.X[i][1]
			s.X[i][1] = temp0
		}
	}
}
