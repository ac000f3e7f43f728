package errs

import (
	"errors"
	"fmt"
)

// ErrParse is matched by every ParseError through errors.Is.
var ErrParse = errors.New("parse error")

// Kinds of input a ParseError can refer to.
const (
	KIND_VERSION  = "version"
	KIND_JDBC_URL = "jdbc url"
)

// ParseError reports an input that could not be parsed. It is never retried.
type ParseError struct {
	Kind  string
	Input string
	Err   error
}

func NewParseError(kind string, input string, err error) *ParseError {
	return &ParseError{
		Kind:  kind,
		Input: input,
		Err:   err,
	}
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot parse %s from '%s': %v", e.Kind, e.Input, e.Err)
	}
	return fmt.Sprintf("cannot parse %s from '%s'", e.Kind, e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
