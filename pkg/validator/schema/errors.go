package schema

import "errors"

var (
	ErrInvalidSchema     = errors.New("schema: invalid document")
	ErrUnsupportedFormat = errors.New("schema: unsupported format")
	ErrReadFile          = errors.New("schema: failed to read file")
	ErrUnknownTarget     = errors.New("schema: unknown target")
)
