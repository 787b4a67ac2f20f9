package store

import "errors"

// Sentinel errors for record store operations.
// Use errors.Is() to check for these errors in calling code.
var (
	// ErrRecordExists indicates the target record file is already present.
	// Numbering is recomputed from disk on every write, so this only happens
	// when another writer created the same file between scan and write.
	ErrRecordExists = errors.New("record already exists")

	// ErrNotRecordName indicates a file name that does not follow the
	// <subject>_<number>_<operator>.json pattern.
	ErrNotRecordName = errors.New("not a record file name")

	// ErrInvalidKey indicates a sequence key or number that cannot form a
	// record file name.
	ErrInvalidKey = errors.New("invalid sequence key")
)
