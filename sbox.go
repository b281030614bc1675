package lowmc

import "github.com/bits-and-blooms/bitset"

// sbox and sboxInv are LowMC's single 3-bit-to-3-bit substitution and its
// inverse, indexed by the bit-reversed 3-bit chunk (see applySBoxLayer).
// Values taken verbatim from the Picnic/LowMC reference implementation.
var sbox = [8]uint8{0, 1, 3, 6, 7, 4, 5, 2}
var sboxInv = [8]uint8{0, 1, 7, 2, 5, 6, 3, 4}

// reverse3 reverses the bit order of a 3-bit value (bit 2 swaps with bit
// 0, bit 1 is fixed). Both the S-box input and its output go through this
// step: the Picnic reference implementation reverses each 3-bit chunk
// before the table lookup and reverses the result again before writing it
// back, a quirk that must be reproduced exactly for compatibility.
func reverse3(v uint8) uint8 {
	return ((v & 1) << 2) | (v & 2) | ((v >> 2) & 1)
}

// applySBoxLayer substitutes the low 3*numSBoxes bits of state in place,
// three bits at a time, using table (sbox for encryption, sboxInv for
// decryption). Bits at index 3*numSBoxes and beyond are left untouched;
// they form the identity part of the layer.
func applySBoxLayer(state *bitset.BitSet, numSBoxes int, inverse bool) {
	table := &sbox
	if inverse {
		table = &sboxInv
	}
	for i := 0; i < numSBoxes; i++ {
		base := uint(3 * i)
		var chunk uint8
		if state.Test(base) {
			chunk |= 4
		}
		if state.Test(base + 1) {
			chunk |= 2
		}
		if state.Test(base + 2) {
			chunk |= 1
		}

		idx := reverse3(chunk)
		out := reverse3(table[idx])

		state.SetTo(base, out&4 != 0)
		state.SetTo(base+1, out&2 != 0)
		state.SetTo(base+2, out&1 != 0)
	}
}
