package lowmc

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/bits-and-blooms/bitset"
)

// Cipher is a single LowMC instance: an immutable parameter set and
// constants bundle, plus a settable private key. Encrypt and Decrypt build
// their working state on the stack of each call, so a Cipher with its key
// already set may be shared across goroutines operating on disjoint
// blocks.
type Cipher struct {
	params    ParamSet
	constants *Constants
	key       *bitset.BitSet
	keySet    bool
}

// New loads a Cipher for the given security-level tag from a constants
// file read from r (see ReadConstants). The private key is not set; call
// SetPrivateKey or GeneratePrivateKey before Encrypt/Decrypt.
func New(tag string, r io.Reader) (*Cipher, error) {
	params, err := Lookup(tag)
	if err != nil {
		return nil, err
	}
	constants, err := ReadConstants(r, params)
	if err != nil {
		return nil, err
	}
	return NewFromConstants(constants), nil
}

// NewFromConstants builds a Cipher directly from an in-memory Constants
// bundle, e.g. one just produced by Generate without a round trip through
// the text codec.
func NewFromConstants(constants *Constants) *Cipher {
	return &Cipher{params: constants.Params, constants: constants}
}

// BlockSize returns the block size in bytes.
func (c *Cipher) BlockSize() int {
	return c.params.BlockBytes()
}

// KeySize returns the private key size in bytes.
func (c *Cipher) KeySize() int {
	return c.params.KeyBytes()
}

// SetPrivateKey sets the private key from raw big-endian bytes. key must
// be exactly KeySize() bytes long.
func (c *Cipher) SetPrivateKey(key []byte) error {
	if err := validateBlockLength(key, c.params.KeyBytes(), "key"); err != nil {
		return err
	}
	c.key = bitsFromBytes(key)
	c.keySet = true
	return nil
}

// GeneratePrivateKey draws a fresh private key from the OS cryptographic
// random source, sets it as the active key, and returns the raw bytes.
func (c *Cipher) GeneratePrivateKey() ([]byte, error) {
	key := make([]byte, c.params.KeyBytes())
	if _, err := rand.Read(key); err != nil {
		return nil, NewConfigurationErrorWrap("key", err, "failed to read OS random source")
	}
	if err := c.SetPrivateKey(key); err != nil {
		return nil, err
	}
	return key, nil
}

// Encrypt encrypts a single blocksize-bit plaintext block: load the
// block into state, add round-key 0, then for each round apply
// the partial S-box layer, multiply by that round's linear layer, XOR in
// the round constant, and add the next round key.
func (c *Cipher) Encrypt(plaintext []byte) ([]byte, error) {
	if err := validateBlockLength(plaintext, c.params.BlockBytes(), "plaintext"); err != nil {
		return nil, err
	}
	if !c.keySet {
		return nil, NewStateError("encrypt", ErrPrivateKeyNotSet)
	}

	state := bitsFromBytes(plaintext)
	c.addRoundKey(state, 0)

	for i := 0; i < c.params.Rounds; i++ {
		applySBoxLayer(state, c.params.NumSBoxes, false)
		state = c.constants.LinearLayers[i].MultiplyVector(state)
		state.InPlaceSymmetricDifference(c.constants.RoundConstants[i])
		c.addRoundKey(state, i+1)
	}

	return bitsToBytes(state, c.params.BlockBytes()), nil
}

// Decrypt decrypts a single blocksize-bit ciphertext block, exactly
// undoing Encrypt's round structure in reverse.
func (c *Cipher) Decrypt(ciphertext []byte) ([]byte, error) {
	if err := validateBlockLength(ciphertext, c.params.BlockBytes(), "ciphertext"); err != nil {
		return nil, err
	}
	if !c.keySet {
		return nil, NewStateError("decrypt", ErrPrivateKeyNotSet)
	}

	state := bitsFromBytes(ciphertext)

	for i := c.params.Rounds; i >= 1; i-- {
		c.addRoundKey(state, i)
		state.InPlaceSymmetricDifference(c.constants.RoundConstants[i-1])
		state = c.constants.LinearLayerInverses[i-1].MultiplyVector(state)
		applySBoxLayer(state, c.params.NumSBoxes, true)
	}

	c.addRoundKey(state, 0)

	return bitsToBytes(state, c.params.BlockBytes()), nil
}

// addRoundKey XORs the round key derived from round-key matrix r and the
// private key into state in place: round key bit i is the parity of row
// i of the matrix ANDed with the key.
func (c *Cipher) addRoundKey(state *bitset.BitSet, r int) {
	roundKey := c.constants.RoundKeyMatrices[r].MultiplyVector(c.key)
	state.InPlaceSymmetricDifference(roundKey)
}

// bitsFromBytes loads a big-endian byte slice into a bitset under this
// package's bit-index convention, which is Picnic's: bit 0 is the most
// significant bit of byte 0.
func bitsFromBytes(data []byte) *bitset.BitSet {
	bits := bitset.New(uint(len(data)) * 8)
	for i, b := range data {
		for j := 0; j < 8; j++ {
			if b&(0x80>>uint(j)) != 0 {
				bits.Set(uint(i*8 + j))
			}
		}
	}
	return bits
}

// bitsToBytes is the inverse of bitsFromBytes, writing n bytes.
func bitsToBytes(bits *bitset.BitSet, n int) []byte {
	out := make([]byte, n)
	for i := 0; i < n*8; i++ {
		if bits.Test(uint(i)) {
			out[i/8] |= 0x80 >> uint(i%8)
		}
	}
	return out
}

// String implements fmt.Stringer for debugging and logging.
func (c *Cipher) String() string {
	return fmt.Sprintf("lowmc.Cipher{%s, keySet=%v}", c.params.Tag, c.keySet)
}
