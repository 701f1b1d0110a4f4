package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptyPrefixList is returned when a rule is built without any prefix.
	ErrEmptyPrefixList = zerr.New("non-opt prefix list is empty")

	// ErrMalformedPrefix is returned when a prefix is not a well-formed relative path fragment.
	ErrMalformedPrefix = zerr.New("malformed non-opt prefix")

	// ErrEmptyFlagKey is returned when a rule is configured to clear an empty flag key.
	ErrEmptyFlagKey = zerr.New("compile flag key is empty")

	// ErrMalformedFlag is returned when a KEY=VALUE compile flag assignment cannot be parsed.
	ErrMalformedFlag = zerr.New("malformed compile flag assignment")
)
