package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// getSecret reads a line from the terminal without echoing it
func getSecret(prompt string) (string, error) {
	stdin := int(syscall.Stdin)
	if !term.IsTerminal(stdin) {
		return "", errors.Errorf("cannot prompt for %q: stdin is not a terminal", strings.TrimSpace(prompt))
	}

	// Get the initial state of the terminal.
	initialTermState, err := term.GetState(stdin)
	if err != nil {
		return "", err
	}

	// Restore it in the event of an interrupt.
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		if _, ok := <-c; ok {
			_ = term.Restore(stdin, initialTermState)
			os.Exit(1)
		}
	}()
	defer func() {
		signal.Stop(c)
		close(c)
	}()

	fmt.Fprint(os.Stderr, prompt)
	secret, err := term.ReadPassword(stdin)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(secret)), nil
}
