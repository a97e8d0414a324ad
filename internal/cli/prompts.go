package cli

import (
	"fmt"
	"os"
	"syscall"

	"golang.org/x/term"

	"github.com/arlovane/mersig/internal/secure"
	ssserr "github.com/arlovane/mersig/pkg/errors"
)

// promptPassword prompts for a password with hidden input.
// The caller is responsible for zeroing the returned bytes after use.
func promptPassword(prompt string) ([]byte, error) {
	out(os.Stderr, "%s", prompt)

	password, err := term.ReadPassword(syscall.Stdin)
	outln(os.Stderr) // Add newline after hidden input

	if err != nil {
		return nil, fmt.Errorf("reading password: %w", err)
	}

	return password, nil
}

// promptNewPassword prompts for a new bundle-encryption password with confirmation.
// The caller is responsible for zeroing the returned bytes after use.
func promptNewPassword() ([]byte, error) {
	password, err := promptPassword("Enter encryption password: ")
	if err != nil {
		return nil, err
	}

	if len(password) < 8 {
		secure.ZeroBytes(password)
		return nil, ssserr.WithSuggestion(
			ssserr.ErrInvalidInput,
			"password must be at least 8 characters",
		)
	}

	confirm, err := promptPassword("Confirm password: ")
	if err != nil {
		secure.ZeroBytes(password)
		return nil, err
	}
	defer secure.ZeroBytes(confirm)

	if string(password) != string(confirm) {
		secure.ZeroBytes(password)
		return nil, ssserr.WithSuggestion(
			ssserr.ErrInvalidInput,
			"passwords do not match",
		)
	}

	return password, nil
}
