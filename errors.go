package lowmc

import (
	"errors"
	"fmt"
)

// Error types represent the three categories of failure this package can
// report. None is transient or retryable; each is a distinct, fatal
// signal surfaced to the caller.

// ConfigurationError represents a bad parameter tag, a missing or
// malformed constants file, or a constants file that does not match the
// parameter set it is being loaded for.
type ConfigurationError struct {
	Field   string // the field or parameter that failed, e.g. "tag", "header"
	Value   any    // the offending value, if any
	Message string // human-readable detail
	Err     error  // underlying error, if any
}

func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// InputSizeError represents a plaintext, ciphertext or private key whose
// length does not match the cipher instance's block size or key size.
type InputSizeError struct {
	Field    string // "plaintext", "ciphertext" or "key"
	Expected int    // expected length in bytes
	Got      int    // actual length in bytes
	Err      error  // underlying sentinel (ErrWrongBlockLength or ErrWrongKeyLength)
}

func (e *InputSizeError) Error() string {
	return fmt.Sprintf("input size error: %s has length %d bytes, expected %d bytes", e.Field, e.Got, e.Expected)
}

func (e *InputSizeError) Unwrap() error {
	return e.Err
}

// StateError represents an operation attempted before the cipher instance
// is ready to perform it, e.g. encrypting before a private key is set.
type StateError struct {
	Operation string
	Message   string
	Err       error // underlying sentinel, if any
}

func (e *StateError) Error() string {
	return fmt.Sprintf("state error: %s: %s", e.Operation, e.Message)
}

func (e *StateError) Unwrap() error {
	return e.Err
}

// Sentinel errors, wrapped by the structured errors above so callers can
// also match with errors.Is against a stable value instead of
// type-switching.
var (
	ErrUnknownParameterTag        = errors.New("unrecognised LowMC parameter tag")
	ErrConstantsHeaderMismatch    = errors.New("constants file header does not match parameter set")
	ErrConstantsLineCountMismatch = errors.New("constants file has the wrong number of lines")
	ErrMalformedBitLine           = errors.New("constants file contains a malformed bit line")
	ErrPrivateKeyNotSet           = errors.New("private key not set")
	ErrWrongBlockLength           = errors.New("block has the wrong length for this parameter set")
	ErrWrongKeyLength             = errors.New("key has the wrong length for this parameter set")
)

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(field string, value any, message string) error {
	return &ConfigurationError{Field: field, Value: value, Message: message}
}

// NewConfigurationErrorWrap creates a new configuration error wrapping an
// underlying cause, for errors surfaced from I/O or parsing.
func NewConfigurationErrorWrap(field string, err error, message string) error {
	return &ConfigurationError{Field: field, Message: message, Err: err}
}

// NewInputSizeError creates a new input size error wrapping the length
// sentinel appropriate for field.
func NewInputSizeError(field string, expected, got int) error {
	sentinel := ErrWrongBlockLength
	if field == "key" {
		sentinel = ErrWrongKeyLength
	}
	return &InputSizeError{Field: field, Expected: expected, Got: got, Err: sentinel}
}

// NewStateError creates a new state error wrapping err.
func NewStateError(operation string, err error) error {
	return &StateError{Operation: operation, Message: err.Error(), Err: err}
}

// IsConfigurationError reports whether err is (or wraps) a ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// IsInputSizeError reports whether err is (or wraps) an InputSizeError.
func IsInputSizeError(err error) bool {
	var ie *InputSizeError
	return errors.As(err, &ie)
}

// IsStateError reports whether err is (or wraps) a StateError.
func IsStateError(err error) bool {
	var se *StateError
	return errors.As(err, &se)
}
