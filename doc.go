// Package lowmc implements the LowMC block cipher as parameterised for the
// Picnic post-quantum signature scheme, along with the constant generator
// that produces its per-instance round matrices and constants.
//
// # Overview
//
// LowMC minimises the multiplicative complexity of its non-linear layer
// (a partial 3-bit S-box over only the low bits of the state) and pushes
// diffusion into dense, randomly generated binary linear layers instead.
// Three parameter sets are defined, matching Picnic security levels L1, L3
// and L5:
//
//	picnic-L1: 128-bit block, 128-bit key, 20 rounds
//	picnic-L3: 192-bit block, 192-bit key, 30 rounds
//	picnic-L5: 256-bit block, 256-bit key, 38 rounds
//
// Every parameter set uses exactly 10 S-boxes, applied to the low 30 bits
// of the state; the remaining bits pass through each round's S-box layer
// unchanged.
//
// # Generating constants
//
// The round matrices, round constants and round-key matrices for a
// parameter set are not fixed; they are produced deterministically by a
// self-shrinking generator built on an 80-bit Grain-family LFSR (see
// [Generate]). Two independent generators seeded identically always
// produce identical output, so a generation run only needs to happen once
// per parameter set and the result persisted:
//
//	constants, err := lowmc.Generate(params)
//	...
//	f, err := os.Create("picnic-L1.dat")
//	...
//	err = lowmc.WriteConstants(f, constants)
//
// # Basic usage
//
//	params, err := lowmc.Lookup("picnic-L1")
//	...
//	f, err := os.Open("picnic-L1.dat")
//	...
//	cipher, err := lowmc.New("picnic-L1", f)
//	...
//	key, err := cipher.GeneratePrivateKey()
//	...
//	ciphertext, err := cipher.Encrypt(plaintext)
//	...
//	plaintext2, err := cipher.Decrypt(ciphertext)
//
// # Security considerations
//
// Protected against:
//   - Structural misuse: wrong-length blocks/keys, operating before a
//     private key is set, and constants-file/parameter mismatches are all
//     rejected with a distinguishable error (see [ConfigurationError],
//     [InputSizeError] and [StateError]).
//
// Not protected against:
//   - Timing or other side-channel leakage. The reference design makes no
//     constant-time claim and this implementation does not add one.
//   - Anything above the single-block primitive: there are no cipher
//     modes, no authentication, and no key-management story beyond
//     accepting or generating a raw private key.
//
// # Constants file format
//
// A constants file is ASCII text, LF-terminated lines. The first three
// lines are the block size, key size and round count in decimal; these
// are followed by the round linear-layer matrices, the round constants,
// and the round-key matrices, each row/constant written as exactly
// block-size `0`/`1` characters, most-significant bit first. Linear-layer
// inverses are never written to disk; they are cheap to recompute from
// the forward matrices on every load, which keeps the file smaller and
// guarantees the inverse always matches whatever forward matrix the file
// actually contains. See [WriteConstants] and [ReadConstants].
package lowmc
