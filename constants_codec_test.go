package lowmc

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// writeSmallConstants generates a constants set for smallParams and
// serialises it, returning both for reuse across codec tests.
func writeSmallConstants(t *testing.T) (*Constants, []byte) {
	t.Helper()
	c, err := Generate(smallParams)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteConstants(&buf, c); err != nil {
		t.Fatalf("WriteConstants: %v", err)
	}
	return c, buf.Bytes()
}

func TestWriteConstantsLineCount(t *testing.T) {
	_, data := writeSmallConstants(t)

	if !bytes.HasSuffix(data, []byte("\n")) {
		t.Fatalf("constants file does not end with a newline")
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	want := 3 + ((smallParams.Rounds*2)+1)*smallParams.BlockSize + smallParams.Rounds
	if len(lines) != want {
		t.Errorf("constants file has %d lines, want %d", len(lines), want)
	}

	if lines[0] != "16" || lines[1] != "16" || lines[2] != "3" {
		t.Errorf("header lines = %q, want [16 16 3]", lines[:3])
	}
	for i, line := range lines[3:] {
		if len(line) != smallParams.BlockSize {
			t.Fatalf("line %d has length %d, want %d", i+3, len(line), smallParams.BlockSize)
		}
	}
}

func TestConstantsRoundTrip(t *testing.T) {
	orig, data := writeSmallConstants(t)

	loaded, err := ReadConstants(bytes.NewReader(data), smallParams)
	if err != nil {
		t.Fatalf("ReadConstants: %v", err)
	}

	for r := range orig.LinearLayers {
		for i := 0; i < smallParams.BlockSize; i++ {
			if !orig.LinearLayers[r].rows[i].Equal(loaded.LinearLayers[r].rows[i]) {
				t.Fatalf("round %d linear layer row %d did not survive the codec round trip", r, i)
			}
			if !orig.LinearLayerInverses[r].rows[i].Equal(loaded.LinearLayerInverses[r].rows[i]) {
				t.Fatalf("round %d recomputed inverse row %d differs from the original", r, i)
			}
		}
		if !orig.RoundConstants[r].Equal(loaded.RoundConstants[r]) {
			t.Fatalf("round constant %d did not survive the codec round trip", r)
		}
	}
	for r := range orig.RoundKeyMatrices {
		for i := 0; i < smallParams.BlockSize; i++ {
			if !orig.RoundKeyMatrices[r].rows[i].Equal(loaded.RoundKeyMatrices[r].rows[i]) {
				t.Fatalf("round-key matrix %d row %d did not survive the codec round trip", r, i)
			}
		}
	}
}

func TestReadConstantsLineCountMismatch(t *testing.T) {
	_, data := writeSmallConstants(t)

	// Drop the last line.
	truncated := data[:bytes.LastIndexByte(data[:len(data)-1], '\n')+1]
	_, err := ReadConstants(bytes.NewReader(truncated), smallParams)
	if !IsConfigurationError(err) {
		t.Fatalf("ReadConstants(truncated) = %v, want a ConfigurationError", err)
	}
	if !errors.Is(err, ErrConstantsLineCountMismatch) {
		t.Errorf("ReadConstants(truncated) = %v, want errors.Is(err, ErrConstantsLineCountMismatch)", err)
	}
}

func TestReadConstantsHeaderMismatch(t *testing.T) {
	_, data := writeSmallConstants(t)

	// Same line count, wrong blocksize header.
	corrupted := bytes.Replace(data, []byte("16\n"), []byte("32\n"), 1)
	_, err := ReadConstants(bytes.NewReader(corrupted), smallParams)
	if !IsConfigurationError(err) {
		t.Fatalf("ReadConstants(bad header) = %v, want a ConfigurationError", err)
	}
	if !errors.Is(err, ErrConstantsHeaderMismatch) {
		t.Errorf("ReadConstants(bad header) = %v, want errors.Is(err, ErrConstantsHeaderMismatch)", err)
	}
}

func TestReadConstantsMalformedBitLine(t *testing.T) {
	_, data := writeSmallConstants(t)

	// Corrupt one character of the first matrix row. The row is the
	// fourth line; header lines are "16\n16\n3\n" (8 bytes).
	corrupted := append([]byte(nil), data...)
	corrupted[8] = 'x'
	_, err := ReadConstants(bytes.NewReader(corrupted), smallParams)
	if !IsConfigurationError(err) {
		t.Fatalf("ReadConstants(malformed line) = %v, want a ConfigurationError", err)
	}
	if !errors.Is(err, ErrMalformedBitLine) {
		t.Errorf("ReadConstants(malformed line) = %v, want errors.Is(err, ErrMalformedBitLine)", err)
	}
}

func TestReadConstantsWrongParams(t *testing.T) {
	// A file written for one parameter set must not load as another.
	_, data := writeSmallConstants(t)

	other := smallParams
	other.Rounds = 4
	_, err := ReadConstants(bytes.NewReader(data), other)
	if !IsConfigurationError(err) {
		t.Fatalf("ReadConstants(wrong params) = %v, want a ConfigurationError", err)
	}
}

func TestCipherFromCodecRoundTrip(t *testing.T) {
	// End to end: generate, serialise, load through New's path, encrypt
	// and decrypt. Uses the real picnic-L1 parameters so the loaded
	// cipher exercises full-width matrices.
	params, err := Lookup("picnic-L1")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	constants, err := Generate(params)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteConstants(&buf, constants); err != nil {
		t.Fatalf("WriteConstants: %v", err)
	}

	cipher, err := New("picnic-L1", &buf)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := cipher.GeneratePrivateKey(); err != nil {
		t.Fatalf("GeneratePrivateKey: %v", err)
	}

	plaintext := make([]byte, cipher.BlockSize())
	plaintext[0] = 0xAB
	plaintext[1] = 0xFF
	ciphertext, err := cipher.Encrypt(plaintext)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	recovered, err := cipher.Decrypt(ciphertext)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(plaintext, recovered) {
		t.Errorf("round trip through codec mismatch: got %X, want %X", recovered, plaintext)
	}
}
