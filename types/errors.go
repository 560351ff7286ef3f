package types

import "errors"

var (
	ErrNotFound  = errors.New("srv: not found")
	ErrForbidden = errors.New("srv: forbidden: path escapes served root")
	ErrIsDir     = errors.New("srv: is a directory")
	ErrNotDir    = errors.New("srv: not a directory")
	ErrIrregular = errors.New("srv: not a regular file")
)
