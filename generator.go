package lowmc

import "github.com/bits-and-blooms/bitset"

// Constants bundles everything a Cipher needs beyond the private key: the
// per-round linear layers and their inverses, the per-round constants,
// and the round-key derivation matrices. It is produced either by Generate
// or by ReadConstants, and is otherwise immutable for the lifetime of a
// Cipher instance.
type Constants struct {
	Params ParamSet

	LinearLayers        []*Matrix        // Params.Rounds matrices, BlockSize x BlockSize
	LinearLayerInverses []*Matrix        // Params.Rounds matrices, derived, never read from the bitstream
	RoundConstants      []*bitset.BitSet // Params.Rounds vectors, BlockSize bits each
	RoundKeyMatrices    []*Matrix        // Params.Rounds+1 matrices, BlockSize x KeySize
}

// Generate builds a full Constants set for params from a fresh Bitstream.
// The bitstream is not restartable, so the consumption order is fixed:
// linear layers first, then round constants, then round-key matrices,
// matching the LowMC generate_matrices script exactly. Inverses of the
// linear layers are derived afterward via Matrix.Invert and never consume
// bitstream output.
func Generate(params ParamSet) (*Constants, error) {
	gen := NewBitstream()

	linearLayers := make([]*Matrix, params.Rounds)
	for r := range linearLayers {
		linearLayers[r] = instantiateMatrix(params.BlockSize, params.BlockSize, gen)
	}

	roundConstants := make([]*bitset.BitSet, params.Rounds)
	for r := range roundConstants {
		rc := bitset.New(uint(params.BlockSize))
		for j := 0; j < params.BlockSize; j++ {
			rc.SetTo(uint(j), gen.NextBit())
		}
		roundConstants[r] = rc
	}

	roundKeyMatrices := make([]*Matrix, params.Rounds+1)
	for r := range roundKeyMatrices {
		roundKeyMatrices[r] = instantiateMatrix(params.BlockSize, params.KeySize, gen)
	}

	inverses := make([]*Matrix, params.Rounds)
	for r, layer := range linearLayers {
		inverses[r] = layer.Invert()
	}

	return &Constants{
		Params:              params,
		LinearLayers:        linearLayers,
		LinearLayerInverses: inverses,
		RoundConstants:      roundConstants,
		RoundKeyMatrices:    roundKeyMatrices,
	}, nil
}

// instantiateMatrix draws an n*m matrix from gen by rejection sampling:
// read n*m fresh bits, and if the result isn't full rank, discard it and
// try again. A random GF(2) matrix is full rank with probability > 0.288,
// so rejection is rare and the loop needs no iteration cap; a
// non-full-rank draw simply consumes more of the bitstream before the
// next attempt.
func instantiateMatrix(n, m int, gen *Bitstream) *Matrix {
	for {
		mat := NewMatrix(n, m)
		for i := 0; i < n; i++ {
			for j := 0; j < m; j++ {
				if gen.NextBit() {
					mat.Set(i, j, true)
				}
			}
		}
		if mat.Rank() >= min(n, m) {
			return mat
		}
	}
}
