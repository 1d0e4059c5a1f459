package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid campaign input")
	ErrReachExceeded     = errors.New("total channel reach exceeds 100%")
	ErrUnsupportedExport = errors.New("unsupported export kind")
)
