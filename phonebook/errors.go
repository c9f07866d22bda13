package phonebook

import "errors"

var (
	ErrOutOfRange       = errors.New("out of range")
	ErrInvalidCharacter = errors.New("invalid character")
	ErrFull             = errors.New("database is full")
	ErrNotFound         = errors.New("not found")
	ErrEmptyStore       = errors.New("database is empty")
	ErrParse            = errors.New("parse error")
	ErrIO               = errors.New("io error")

	ErrBadDirection = errors.New("bad direction")
)
