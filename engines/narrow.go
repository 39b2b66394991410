package engines

// Narrow16 adapts PCG32 to 16-bit output words by keeping the high half of
// every draw. It exists so that code generic over the word width can be run
// and tested against a 16-bit engine.
type Narrow16 struct {
	p PCG32
}

// NewNarrow16 returns a Narrow16 seeded with seed[0], or in its default state.
func NewNarrow16(seed ...uint16) Narrow16 {
	var n Narrow16
	if len(seed) == 0 {
		n.Reset()
	} else {
		n.Seed(seed[0])
	}
	return n
}

func (n *Narrow16) Next() uint16 {
	return uint16(n.p.Next() >> 16)
}

func (n *Narrow16) Seed(seed uint16) {
	n.p.Seed(uint32(seed))
}

// Seed64 hands the full seed to the underlying PCG32.
func (n *Narrow16) Seed64(seed uint64) {
	n.p.Seed64(seed)
}

func (n *Narrow16) Reset() {
	n.p.Reset()
}

func (n *Narrow16) Discard(steps uint64) {
	n.p.Discard(steps)
}

// Narrow8 adapts PCG32 to 8-bit output words by keeping the top byte of every
// draw.
type Narrow8 struct {
	p PCG32
}

// NewNarrow8 returns a Narrow8 seeded with seed[0], or in its default state.
func NewNarrow8(seed ...uint8) Narrow8 {
	var n Narrow8
	if len(seed) == 0 {
		n.Reset()
	} else {
		n.Seed(seed[0])
	}
	return n
}

func (n *Narrow8) Next() uint8 {
	return uint8(n.p.Next() >> 24)
}

func (n *Narrow8) Seed(seed uint8) {
	n.p.Seed(uint32(seed))
}

func (n *Narrow8) Seed64(seed uint64) {
	n.p.Seed64(seed)
}

func (n *Narrow8) Reset() {
	n.p.Reset()
}

func (n *Narrow8) Discard(steps uint64) {
	n.p.Discard(steps)
}
