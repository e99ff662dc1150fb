package util

import (
	"fmt"
	"os/user"
)

// Homedir returns the profile directory of the current user
func Homedir() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("cannot locate home directory: %w", err)
	}
	return u.HomeDir, nil
}
