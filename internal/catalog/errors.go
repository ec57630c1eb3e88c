package catalog

import "errors"

var (
	ErrValidation         = errors.New("catalog: invalid input")
	ErrNotFound           = errors.New("catalog: media not found")
	ErrStorageUnavailable = errors.New("catalog: storage unavailable")
	ErrStorageCorrupt     = errors.New("catalog: storage corrupt")
)
