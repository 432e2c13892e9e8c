package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"

	"golang.org/x/term"
)

// readTerminalSecret prints prompt to stderr and reads one line from the
// terminal with echo disabled. Errors never include the typed text.
// If ctx is done first the terminal state is restored so an interrupted
// prompt does not leave echo off.
func readTerminalSecret(ctx context.Context, prompt string) (string, error) {
	fd := int(syscall.Stdin)
	if !term.IsTerminal(fd) {
		return "", errors.New("--prompt requires an interactive terminal")
	}

	state, err := term.GetState(fd)
	if err != nil {
		return "", errors.New("terminal not ready")
	}
	stop := context.AfterFunc(ctx, func() { _ = term.Restore(fd, state) })
	defer stop()

	fmt.Fprint(os.Stderr, "\r"+prompt)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", errors.New("failed to read keyword")
	}
	return string(b), nil
}
