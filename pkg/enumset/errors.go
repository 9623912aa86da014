package enumset

import "errors"

var (
	// Set construction
	ErrEmptySet       = errors.New("set must contain at least one value")
	ErrDuplicateValue = errors.New("set values must be distinct")
	ErrNotMember      = errors.New("value is not in the set")

	// YAML loading
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
)
