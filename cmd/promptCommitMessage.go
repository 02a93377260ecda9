package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// promptCommitMessage asks the operator for a commit message on stdin.
// Callers substitute the configured default when the answer is empty.
func promptCommitMessage() (string, error) {
	_, _ = fmt.Fprint(os.Stderr, "Commit message: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
