package sigfetch

import (
	"fmt"
)

// IoError reports a resource that could not be read.
type IoError struct {
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("sigfetch: reading %s: %v", e.Path, e.Err)
}

func (e *IoError) Unwrap() error { return e.Err }

// ParseError reports a malformed line or field. Line is the offending
// input, Err the underlying conversion error if there was one.
type ParseError struct {
	Source string
	Line   string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sigfetch: parsing %s: %q: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("sigfetch: parsing %s: malformed line %q", e.Source, e.Line)
}

func (e *ParseError) Unwrap() error { return e.Err }

type NotFoundError struct {
	Source string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("sigfetch: no %s found in %s", e.Key, e.Source)
}

type EnvVarError struct {
	Name string
}

func (e *EnvVarError) Error() string {
	return fmt.Sprintf("sigfetch: environment variable %s is not set", e.Name)
}
