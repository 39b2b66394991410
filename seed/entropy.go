package seed

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
)

// Entropy reads operating system entropy (crypto/rand) in batches to reduce the
// number of calls to the underlying reader. It is meant for drawing seeds, not
// as a generator in its own right.
// An Entropy is not safe for concurrent use; FromSystemEntropy wraps a shared
// instance in a mutex.
// The memory footprint can be adjusted by changing the capBytes parameter in NewEntropy.
type Entropy struct {
	bufPos uint32
	buf    []byte
}

// NewEntropy creates an Entropy with a buffer capacity of capBytes.
// The buffer is filled upon creation and refilled as needed. A larger buffer
// reduces the number of operating system calls, a smaller one reduces memory usage.
func NewEntropy(capBytes uint32) *Entropy {
	if capBytes < 8 {
		capBytes = 8 // minimum buffer size to hold at least one uint64
	}
	e := &Entropy{buf: make([]byte, capBytes)}
	if _, err := rand.Read(e.buf); err != nil {
		panic(err)
	}
	return e
}

// ensure that n bytes are available, otherwise refill the buffer
func (e *Entropy) ensure(n int) {
	if e.bufPos+uint32(n) > uint32(len(e.buf)) {
		if _, err := rand.Read(e.buf); err != nil {
			panic(err)
		}
		e.bufPos = 0
	}
}

// Uint64 returns 64 bits of entropy.
func (e *Entropy) Uint64() uint64 {
	e.ensure(8)
	v := binary.LittleEndian.Uint64(e.buf[e.bufPos : e.bufPos+8])
	e.bufPos += 8
	return v
}

// Uint32 returns 32 bits of entropy.
func (e *Entropy) Uint32() uint32 {
	e.ensure(4)
	v := binary.LittleEndian.Uint32(e.buf[e.bufPos : e.bufPos+4])
	e.bufPos += 4
	return v
}

var shared struct {
	sync.Mutex
	e *Entropy
}

// FromSystemEntropy returns a seed drawn from operating system entropy.
// It is safe for concurrent use.
func FromSystemEntropy() uint64 {
	shared.Lock()
	defer shared.Unlock()
	if shared.e == nil {
		shared.e = NewEntropy(512)
	}
	return Xnasam(shared.e.Uint64(), DefaultDomain)
}
