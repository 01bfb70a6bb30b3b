package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/julien-sobczak/the-moodwriter/internal/core"
)

// ReadText returns the text passed as arguments, or reads it from the input when
// no argument (or a single "-") is given.
func ReadText(args []string, in io.Reader) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("unable to read input: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// IsInteractive returns if the standard input is a terminal.
func IsInteractive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// OpenInEditor opens a journal file using $EDITOR, or VS Code by default.
func OpenInEditor(entryPath string) error {
	workspacePath := core.CurrentConfig().RootDirectory

	// Check env variable $EDITOR
	editor, ok := os.LookupEnv("EDITOR")
	var cmd *exec.Cmd
	if ok && editor != "" && editor != "code" {
		cmd = exec.Command(editor, entryPath)
	} else {
		// Default to opening the workspace with VS Code
		cmd = exec.Command("code", workspacePath, "-g", entryPath)
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
