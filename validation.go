package lowmc

// Input validation helpers, called before any cipher or codec operation
// touches its arguments.

// validateBlockLength checks that data is exactly expectedBytes long,
// returning an *InputSizeError named field otherwise.
func validateBlockLength(data []byte, expectedBytes int, field string) error {
	if len(data) != expectedBytes {
		return NewInputSizeError(field, expectedBytes, len(data))
	}
	return nil
}

// validateBitLine checks that a parsed constants-file line has exactly n
// characters, each '0' or '1'.
func validateBitLine(line string, n int) error {
	if len(line) != n {
		return &ConfigurationError{Field: "line", Value: len(line), Message: "bit line has the wrong length", Err: ErrMalformedBitLine}
	}
	for _, r := range line {
		if r != '0' && r != '1' {
			return &ConfigurationError{Field: "line", Value: line, Message: "bit line contains a character other than '0'/'1'", Err: ErrMalformedBitLine}
		}
	}
	return nil
}
