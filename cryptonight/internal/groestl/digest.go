package groestl

import (
	"encoding/binary"
)

// Digest is the running state of a Grøstl-256 computation.
type Digest struct {
	chaining [columns]uint64
	blocks   uint64
	buf      [blockSize]byte
	nbuf     int
}

// Reset restores Digest to its initial state, ready to hash a new message.
func (d *Digest) Reset() {
	for i := range d.chaining {
		d.chaining[i] = 0
	}
	d.blocks = 0
	d.nbuf = 0
	d.chaining[columns-1] = hashBytes * 8
}

func (d *Digest) Size() int      { return hashBytes }
func (d *Digest) BlockSize() int { return blockSize }

func (d *Digest) Write(p []byte) (n int, err error) {
	n = len(p)
	if d.nbuf > 0 {
		nn := copy(d.buf[d.nbuf:], p)
		d.nbuf += nn
		if d.nbuf == blockSize {
			d.transform(d.buf[:blockSize])
			d.nbuf = 0
		}
		p = p[nn:]
	}
	if len(p) >= blockSize {
		nn := len(p) &^ (blockSize - 1)
		d.transform(p[:nn])
		p = p[nn:]
	}
	if len(p) > 0 {
		d.nbuf = copy(d.buf[:], p)
	}
	return
}

func (d *Digest) Sum(in []byte) []byte {
	d0 := *d
	return append(in, d0.checkSum()...)
}

func (d *Digest) checkSum() []byte {
	var tmp [blockSize]byte
	tmp[0] = 0x80

	if d.nbuf > blockSize-8 {
		_, _ = d.Write(tmp[:blockSize-d.nbuf])
		_, _ = d.Write(tmp[8:blockSize])
	} else {
		_, _ = d.Write(tmp[:blockSize-d.nbuf-8])
	}

	binary.BigEndian.PutUint64(tmp[:], d.blocks+1)
	_, _ = d.Write(tmp[:8])

	if d.nbuf != 0 {
		panic("groestl: padding failed")
	}

	d.finalTransform()

	hash := make([]byte, columns*4)
	for i := range columns / 2 {
		binary.BigEndian.PutUint64(hash[i*8:(i+1)*8], d.chaining[i+columns/2])
	}
	return hash[len(hash)-hashBytes:]
}

// Sum256 returns the Grøstl-256 digest of data.
func Sum256(data []byte) []byte {
	var d Digest
	d.Reset()
	_, _ = d.Write(data)
	return d.checkSum()
}
