package linegrep

import (
	"fmt"

	"github.com/pkg/errors"
)

func (k Kind) String() string {
	switch k {
	case MissingArgument:
		return "not enough command line parameters"
	case InvalidOption:
		return "invalid command line options"
	case InvalidPattern:
		return "invalid pattern"
	case ConfigError:
		return "failed to read config"
	case OpenFile:
		return "failed to open file"
	case ReadError:
		return "failed to read input"
	case WriteError:
		return "failed to write output"
	default:
		return fmt.Sprintf("unknown error kind %d", int(k))
	}
}

// Wrap converts any error into an *Error of the given kind. It returns
// nil if err is nil. Errors that are already an *Error are returned as is.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return &Error{
		kind:  kind,
		msg:   kind.String() + ": " + err.Error(),
		cause: err,
	}
}

func (e *Error) Error() string {
	return e.msg
}

// Kind returns the kind of failure
func (e *Error) Kind() Kind {
	return e.kind
}

// Cause returns the underlying error. Satisfies pkg/errors' causer
func (e *Error) Cause() error {
	return e.cause
}

func (e *Error) Unwrap() error {
	return e.cause
}

// ExitStatus is the status the process exits with because of this error
func (e *Error) ExitStatus() int {
	return 1
}

// IsKind returns true if err is an *Error of the given kind
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.kind == kind
	}
	return false
}

// expectArg pops the next positional argument, or fails with a
// MissingArgument error naming it.
func expectArg(args *[]string, name string) (string, error) {
	if len(*args) == 0 {
		return "", Wrap(MissingArgument, errors.Errorf("missing %s", name))
	}
	v := (*args)[0]
	*args = (*args)[1:]
	return v, nil
}
