package parser

import "errors"

var (
	// ErrParse is returned when a body matches none of the known shapes.
	ErrParse = errors.New("unparseable server response")
	// ErrFieldType is returned when a known field carries a value of the
	// wrong JSON type.
	ErrFieldType = errors.New("unexpected field type")
)
