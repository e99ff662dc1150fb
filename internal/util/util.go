package util

import (
	"unicode"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

type fder interface {
	Fd() uintptr
}

// IsTty checks if the given value is a file attached to a terminal
func IsTty(arg any) bool {
	fdsrc, ok := arg.(fder)
	if !ok {
		return false
	}
	return term.IsTerminal(int(fdsrc.Fd()))
}

// ContainsUpper returns true if s has at least one upper case rune
func ContainsUpper(s string) bool {
	for _, c := range s {
		if unicode.IsUpper(c) {
			return true
		}
	}
	return false
}

type exitStatuser interface {
	ExitStatus() int
}

// GetExitStatus looks for an error in the chain of err that knows which
// exit status the process should use. If none is found, 1 is returned
// along with false.
func GetExitStatus(err error) (int, bool) {
	var ese exitStatuser
	if errors.As(err, &ese) {
		return ese.ExitStatus(), true
	}
	return 1, false
}
