package lowmc

import "testing"

// smallParams keeps the generator tests fast: a real parameter set would
// require rejection-sampling full-rank 128..256-bit matrices, which is
// cheap individually but adds up across dozens of rounds in a test run.
var smallParams = ParamSet{Tag: "test-small", BlockSize: 16, KeySize: 16, Rounds: 3, NumSBoxes: 5}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(smallParams)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate(smallParams)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for r := range a.LinearLayers {
		for i := 0; i < smallParams.BlockSize; i++ {
			if !a.LinearLayers[r].rows[i].Equal(b.LinearLayers[r].rows[i]) {
				t.Fatalf("round %d linear layer row %d differs between two Generate runs", r, i)
			}
		}
	}
}

func TestGenerateLinearLayersFullRank(t *testing.T) {
	c, err := Generate(smallParams)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for r, mat := range c.LinearLayers {
		if got := mat.Rank(); got != smallParams.BlockSize {
			t.Errorf("round %d linear layer rank = %d, want %d (full rank)", r, got, smallParams.BlockSize)
		}
	}
}

func TestGenerateRoundKeyMatricesFullRank(t *testing.T) {
	c, err := Generate(smallParams)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for r, mat := range c.RoundKeyMatrices {
		want := min(smallParams.BlockSize, smallParams.KeySize)
		if got := mat.Rank(); got != want {
			t.Errorf("round-key matrix %d rank = %d, want %d (full rank)", r, got, want)
		}
	}
}

func TestGenerateInversesAreInverses(t *testing.T) {
	c, err := Generate(smallParams)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	n := smallParams.BlockSize
	for r := range c.LinearLayers {
		product := multiplyMatrices(c.LinearLayers[r], c.LinearLayerInverses[r])
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				want := i == j
				if product.rows[i].Test(uint(j)) != want {
					t.Fatalf("round %d: L * L^-1 != I at (%d,%d)", r, i, j)
				}
			}
		}
	}
}

func TestGenerateCounts(t *testing.T) {
	c, err := Generate(smallParams)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got := len(c.LinearLayers); got != smallParams.Rounds {
		t.Errorf("len(LinearLayers) = %d, want %d", got, smallParams.Rounds)
	}
	if got := len(c.LinearLayerInverses); got != smallParams.Rounds {
		t.Errorf("len(LinearLayerInverses) = %d, want %d", got, smallParams.Rounds)
	}
	if got := len(c.RoundConstants); got != smallParams.Rounds {
		t.Errorf("len(RoundConstants) = %d, want %d", got, smallParams.Rounds)
	}
	if got := len(c.RoundKeyMatrices); got != smallParams.Rounds+1 {
		t.Errorf("len(RoundKeyMatrices) = %d, want %d", got, smallParams.Rounds+1)
	}
}
