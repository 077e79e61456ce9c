package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/howeyc/gopass"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/app"
)

// passwordReader reads one masked line from the terminal. It is a
// package-level variable so tests can feed passwords without a TTY.
var passwordReader = func() ([]byte, error) {
	return gopass.GetPasswdMasked()
}

// readPassword prints prompt to stderr and reads a masked password.
func readPassword(cmd *cobra.Command, prompt string) ([]byte, error) {
	_, _ = fmt.Fprint(cmd.ErrOrStderr(), prompt)
	password, err := passwordReader()
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	return password, nil
}

// readNewPassword asks for a password twice.
func readNewPassword(cmd *cobra.Command, prompt string) ([]byte, error) {
	password, err := readPassword(cmd, prompt)
	if err != nil {
		return nil, err
	}

	repeat, err := readPassword(cmd, "Repeat password: ")
	if err != nil {
		clear(password)
		return nil, err
	}
	defer clear(repeat)

	if string(password) != string(repeat) {
		clear(password)
		return nil, app.ErrPasswordsDoNotMatch
	}
	return password, nil
}

// lineReader reads answers from a command's input. It keeps its buffer
// between questions so piped answers are not lost.
type lineReader struct {
	in  *bufio.Reader
	out io.Writer
}

func newLineReader(cmd *cobra.Command) *lineReader {
	return &lineReader{in: bufio.NewReader(cmd.InOrStdin()), out: cmd.ErrOrStderr()}
}

// ask prints prompt and returns the trimmed answer. EOF is an empty answer.
func (r *lineReader) ask(prompt string) (string, error) {
	_, _ = fmt.Fprint(r.out, prompt)
	line, err := r.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// confirm asks a yes/no question; anything but y or yes is no.
func (r *lineReader) confirm(prompt string) (bool, error) {
	answer, err := r.ask(prompt + " [y/N]: ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
