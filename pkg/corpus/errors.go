package corpus

import "errors"

var (
	// ErrMissingField indicates a required column is absent from the input.
	ErrMissingField = errors.New("missing field")

	// ErrIndexMisalignment indicates two series were combined or compared
	// with indices that do not line up. Callers must not realign silently.
	ErrIndexMisalignment = errors.New("index misalignment")

	// ErrEmptyInput indicates no input sources were given.
	ErrEmptyInput = errors.New("empty input")
)
