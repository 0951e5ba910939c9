package types

import (
	"database/sql/driver"
	"errors"
	"runtime"
	"unsafe"

	fasthex "github.com/tmthrgd/go-hex"
)

const HashSize = 32

//nolint:recvcheck
type Hash [HashSize]byte

var ZeroHash Hash

func (h Hash) MarshalJSON() ([]byte, error) {
	var buf [HashSize*2 + 2]byte
	buf[0] = '"'
	buf[HashSize*2+1] = '"'
	fasthex.Encode(buf[1:], h[:])
	return buf[:], nil
}

func MustHashFromString(s string) Hash {
	h, err := HashFromString(s)
	if err != nil {
		panic(err)
	}
	return h
}

func HashFromString(s string) (h Hash, err error) {
	buf, err := fasthex.DecodeString(s)
	if err != nil {
		return h, err
	}
	if len(buf) != HashSize {
		return h, errors.New("wrong size")
	}
	copy(h[:], buf)
	return h, nil
}

func HashFromBytes(buf []byte) (h Hash) {
	if len(buf) != HashSize {
		return
	}
	copy(h[:], buf)
	return
}

// Compare orders two hashes as unsigned 256-bit big-endian-by-limb integers.
func (h Hash) Compare(other Hash) int {
	defer runtime.KeepAlive(other)
	defer runtime.KeepAlive(h)

	// #nosec G103 -- 32 bytes -> 4 uint64
	a := unsafe.Slice((*uint64)(unsafe.Pointer(&h)), len(h)/int(unsafe.Sizeof(uint64(0))))
	// #nosec G103 -- 32 bytes -> 4 uint64
	b := unsafe.Slice((*uint64)(unsafe.Pointer(&other)), len(other)/int(unsafe.Sizeof(uint64(0))))

	for i := 3; i >= 0; i-- {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

func (h Hash) Slice() []byte {
	return h[:]
}

func (h Hash) String() string {
	return fasthex.EncodeToString(h[:])
}

func (h *Hash) Scan(src any) error {
	if src == nil {
		return nil
	} else if buf, ok := src.([]byte); ok {
		if len(buf) == 0 {
			return nil
		}
		if len(buf) != HashSize {
			return errors.New("invalid hash size")
		}
		copy((*h)[:], buf)
		return nil
	}
	return errors.New("invalid type")
}

func (h *Hash) Value() (driver.Value, error) {
	if *h == ZeroHash {
		return nil, nil //nolint:nilnil
	}
	return (*h)[:], nil
}

func (h *Hash) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || len(b) == 2 {
		return nil
	}

	if len(b) != HashSize*2+2 {
		return errors.New("wrong hash size")
	}

	if _, err := fasthex.Decode(h[:], b[1:len(b)-1]); err != nil {
		return err
	}

	return nil
}
