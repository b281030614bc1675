package lowmc

import (
	"bufio"
	"fmt"
	"io"

	"github.com/bits-and-blooms/bitset"
)

// WriteConstants serialises c as a text constants file: three decimal
// header lines (block size, key size, rounds), followed by the
// linear-layer matrices, the round constants, and the round-key matrices,
// each row/constant written MSB-first as exactly BlockSize '0'/'1'
// characters. Linear-layer inverses are never written; ReadConstants
// recomputes them from the linear layers it reads back. The format is the
// one produced by the LowMC generate_matrices script and consumed by the
// Picnic reference tooling.
func WriteConstants(w io.Writer, c *Constants) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%d\n%d\n%d\n", c.Params.BlockSize, c.Params.KeySize, c.Params.Rounds); err != nil {
		return NewConfigurationErrorWrap("header", err, "failed to write constants header")
	}

	for _, mat := range c.LinearLayers {
		if err := writeMatrixRows(bw, mat); err != nil {
			return err
		}
	}
	for _, rc := range c.RoundConstants {
		if err := writeBitLine(bw, rc, c.Params.BlockSize); err != nil {
			return err
		}
	}
	for _, mat := range c.RoundKeyMatrices {
		if err := writeMatrixRows(bw, mat); err != nil {
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		return NewConfigurationErrorWrap("write", err, "failed to flush constants file")
	}
	return nil
}

func writeMatrixRows(w *bufio.Writer, mat *Matrix) error {
	for i := 0; i < mat.Rows(); i++ {
		if err := writeBitLine(w, mat.rows[i], mat.Cols()); err != nil {
			return err
		}
	}
	return nil
}

func writeBitLine(w *bufio.Writer, bits *bitset.BitSet, n int) error {
	line := make([]byte, n+1)
	for j := 0; j < n; j++ {
		if bits.Test(uint(j)) {
			line[j] = '1'
		} else {
			line[j] = '0'
		}
	}
	line[n] = '\n'
	if _, err := w.Write(line); err != nil {
		return NewConfigurationErrorWrap("write", err, "failed to write bit line")
	}
	return nil
}

// ReadConstants parses a constants file written by WriteConstants and
// validates it against params: the header values must match exactly, and
// the total line count must equal
//
//	3 + ((rounds*2)+1)*blocksize + rounds
//
// Linear-layer inverses are derived from the linear layers after
// parsing, via Matrix.Invert.
func ReadConstants(r io.Reader, params ParamSet) (*Constants, error) {
	lines, err := scanLines(r)
	if err != nil {
		return nil, err
	}

	expectedLines := 3 + ((params.Rounds*2)+1)*params.BlockSize + params.Rounds
	if len(lines) != expectedLines {
		return nil, &ConfigurationError{
			Field:   "line_count",
			Value:   len(lines),
			Message: fmt.Sprintf("constants file has %d lines, expected %d for %s", len(lines), expectedLines, params.Tag),
			Err:     ErrConstantsLineCountMismatch,
		}
	}

	var blockSize, keySize, rounds int
	if _, err := fmt.Sscanf(lines[0], "%d", &blockSize); err != nil || blockSize != params.BlockSize {
		return nil, headerMismatch("blocksize", lines[0])
	}
	if _, err := fmt.Sscanf(lines[1], "%d", &keySize); err != nil || keySize != params.KeySize {
		return nil, headerMismatch("keysize", lines[1])
	}
	if _, err := fmt.Sscanf(lines[2], "%d", &rounds); err != nil || rounds != params.Rounds {
		return nil, headerMismatch("rounds", lines[2])
	}

	offset := 3

	linearLayers := make([]*Matrix, params.Rounds)
	for r := 0; r < params.Rounds; r++ {
		mat, err := parseMatrix(lines[offset:offset+params.BlockSize], params.BlockSize)
		if err != nil {
			return nil, err
		}
		linearLayers[r] = mat
		offset += params.BlockSize
	}

	roundConstants := make([]*bitset.BitSet, params.Rounds)
	for r := 0; r < params.Rounds; r++ {
		bits, err := parseBitLine(lines[offset], params.BlockSize)
		if err != nil {
			return nil, err
		}
		roundConstants[r] = bits
		offset++
	}

	roundKeyMatrices := make([]*Matrix, params.Rounds+1)
	for r := 0; r < params.Rounds+1; r++ {
		mat, err := parseMatrix(lines[offset:offset+params.BlockSize], params.KeySize)
		if err != nil {
			return nil, err
		}
		roundKeyMatrices[r] = mat
		offset += params.BlockSize
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

func headerMismatch(field, line string) error {
	return &ConfigurationError{
		Field:   field,
		Value:   line,
		Message: fmt.Sprintf("constants file %s does not match parameter set", field),
		Err:     ErrConstantsHeaderMismatch,
	}
}

func parseMatrix(rowLines []string, cols int) (*Matrix, error) {
	rows := make([]*bitset.BitSet, len(rowLines))
	for i, line := range rowLines {
		bits, err := parseBitLine(line, cols)
		if err != nil {
			return nil, err
		}
		rows[i] = bits
	}
	return &Matrix{rows: rows, cols: cols}, nil
}

func parseBitLine(line string, n int) (*bitset.BitSet, error) {
	if err := validateBitLine(line, n); err != nil {
		return nil, err
	}
	bits := bitset.New(uint(n))
	for j := 0; j < n; j++ {
		if line[j] == '1' {
			bits.Set(uint(j))
		}
	}
	return bits, nil
}

func scanLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, NewConfigurationErrorWrap("read", err, "failed to read constants file")
	}
	return lines, nil
}
