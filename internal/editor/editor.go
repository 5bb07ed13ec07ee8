// Package editor launches the external text editor on a memo file.
package editor

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Default is used when neither the config nor $EDITOR names an editor.
const Default = "vim"

// Resolve picks the editor program: the configured one, then $EDITOR, then
// Default.
func Resolve(configured string) string {
	if configured != "" {
		return configured
	}
	if env := os.Getenv("EDITOR"); env != "" {
		return env
	}
	return Default
}

// Command builds the editor invocation for path. program may carry its own
// flags, as in EDITOR="code -w"; the path is appended as the last argument
// and stderr is discarded. Stdin and stdout are left unset so the TUI can
// hand over its terminal.
func Command(program, path string) *exec.Cmd {
	args := strings.Fields(program)
	if len(args) == 0 {
		args = []string{Default}
	}
	cmd := exec.Command(args[0], append(args[1:], path)...)
	cmd.Stderr = io.Discard
	return cmd
}

// Wrap tags an editor error with the program that failed.
func Wrap(program string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("run editor %q: %w", program, err)
}
