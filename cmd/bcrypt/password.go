package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

var errNoPassword = errors.New("no password given: pass it as an argument, use --stdin, or run on a terminal")

// readLines returns every line of r with line endings stripped. Empty lines
// are kept; callers decide what they mean.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, string(bytes.TrimSuffix(sc.Bytes(), []byte("\r"))))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return lines, nil
}

// readFirstLine returns the first line of r. Empty input is an empty
// password.
func readFirstLine(r io.Reader) (string, error) {
	lines, err := readLines(r)
	if err != nil || len(lines) == 0 {
		return "", err
	}
	return lines[0], nil
}

// promptPassword asks for a password on the terminal, twice when confirm
// is set.
func (a *app) promptPassword(confirm bool) (string, error) {
	if a.readSecret == nil {
		return "", errNoPassword
	}
	first, err := a.readSecret("Password: ")
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	defer clear(first)
	if confirm {
		second, err := a.readSecret("Confirm password: ")
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		defer clear(second)
		if !bytes.Equal(first, second) {
			return "", errors.New("passwords do not match")
		}
	}
	return string(first), nil
}
