package batch

import "fmt"

// MissingColumnError reports that the batch input lacks a required column.
// It aborts processing for the whole file.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("input file must have a column named %q", e.Column)
}

// UnreadableFileError reports that the batch input could not be decoded or
// parsed. It aborts processing for the whole file.
type UnreadableFileError struct {
	Path string
	Err  error
}

func (e *UnreadableFileError) Error() string {
	return fmt.Sprintf("could not read %s: %v", e.Path, e.Err)
}

func (e *UnreadableFileError) Unwrap() error { return e.Err }
