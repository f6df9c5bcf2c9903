package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// readInput joins args with spaces, or reads stdin in full when no args
// were given.
func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	return string(data), nil
}
