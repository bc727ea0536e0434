package io

import "errors"

var (
	// ErrSourceInvalid is an error that occurs when the source of a copy does
	// not exist or is not a directory.
	ErrSourceInvalid = errors.New("source is not an existing directory")

	// ErrTargetCreate is an error that occurs when the target directory of a
	// copy could not be created.
	ErrTargetCreate = errors.New("target directory could not be created")

	// ErrAlreadyExists is an error that occurs when a destination file exists
	// and overwriting was not requested.
	ErrAlreadyExists = errors.New("already exists")

	// ErrHashMismatch is an error that occurs when there is a source/destination hash
	// mismatch, this usually means that there are underlying transfer/hardware issues.
	ErrHashMismatch = errors.New("hash mismatch")

	// ErrRenameExists is an error that occurs when the intermediate file is to be renamed
	// to its final filename, but that final filename has appeared in the meantime.
	ErrRenameExists = errors.New("rename destination already exists")
)
