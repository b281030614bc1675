package lowmc

// Bitstream is a self-shrinking generator built on an 80-bit Grain-family
// LFSR. It is the sole source of randomness the constant generator uses:
// two Bitstreams constructed with NewBitstream always produce identical
// output, bit for bit, which is what lets a generation run be reproduced
// exactly from nothing but this package's source.
//
// Bitstream is implemented as a streaming iterator rather than a
// buffered precomputation: NextBit advances the register exactly as far
// as it needs to for one more output bit, so an arbitrarily long
// sequence can be consumed without bounding it up front.
type Bitstream struct {
	state  [80]bool
	cursor int
}

// NewBitstream creates a Bitstream in its initial state (all-ones
// register, cursor at 0) and discards the first 160 steps as warm-up.
func NewBitstream() *Bitstream {
	b := &Bitstream{}
	for i := range b.state {
		b.state[i] = true
	}
	for i := 0; i < 160; i++ {
		b.step()
	}
	return b
}

// step applies the feedback function to the bit at the current cursor,
// writes it back in place, advances the cursor by one (mod 80), and
// returns the just-written bit.
func (b *Bitstream) step() bool {
	i := b.cursor
	v := b.state[i]
	v = v != b.state[(i+13)%80]
	v = v != b.state[(i+23)%80]
	v = v != b.state[(i+38)%80]
	v = v != b.state[(i+51)%80]
	v = v != b.state[(i+62)%80]
	b.state[i] = v
	b.cursor = (i + 1) % 80
	return v
}

// NextBit returns the next bit of the self-shrinking output sequence.
// It steps the register in pairs: the first step's output is the
// "choice" bit, the second's is the "value" bit. The value bit is
// returned only when choice is 1; otherwise both are discarded and the
// next pair is tried. This makes NextBit's cost variable (expected four
// register steps per output bit) but its output deterministic.
func (b *Bitstream) NextBit() bool {
	for {
		choice := b.step()
		value := b.step()
		if choice {
			return value
		}
	}
}
