package messages

import "errors"

var (
	ErrNilSource         = errors.New("messages: source is nil")
	ErrEmptyLanguage     = errors.New("messages: empty language code")
	ErrUnsupportedFormat = errors.New("messages: unsupported catalog format")
	ErrFailedToParseJSON = errors.New("messages: failed to parse JSON catalog")
	ErrFailedToParseYAML = errors.New("messages: failed to parse YAML catalog")
	ErrFailedToReadFile  = errors.New("messages: failed to read catalog file")
	ErrFailedToReadDir   = errors.New("messages: failed to read catalog directory")
	ErrNoCatalogFiles    = errors.New("messages: no catalog files found")
	ErrLoadingCancelled  = errors.New("messages: loading catalogs cancelled")
)
