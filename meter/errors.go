package meter

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when an operation gets an invalid argument, such as an empty meter name
var ErrInvalidArgument = errors.New("invalid argument")

func invalidArgf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// ParseError is returned when the stored snapshot can't be decoded
type ParseError struct {
	Path   string
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s snapshot %s fail,err:%v", e.Format, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IO operations of IOError
const (
	OpExists = "exists"
	OpRead   = "read"
	OpWrite  = "write"
)

// IOError is returned when the FileSystem fails
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s fail,err:%v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func ioError(op, path string, err error) error {
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return err
	}
	return &IOError{Op: op, Path: path, Err: err}
}
