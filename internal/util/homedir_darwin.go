package util

import (
	"errors"
	"os"
)

// Homedir returns the home directory of the current user, taken from $HOME
func Homedir() (string, error) {
	home := os.Getenv("HOME")
	if home == "" {
		return "", errors.New("cannot locate home directory: $HOME is not set")
	}

	return home, nil
}
