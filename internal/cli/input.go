package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// readInput loads the full input blob and a display name for it. A file
// argument wins; "-" or no argument reads standard input, which must be
// redirected: an interactive terminal with nothing piped in is an error.
func readInput(cmd *cobra.Command, args []string) (raw, source string, err error) {
	if len(args) == 1 && strings.TrimSpace(args[0]) != "" && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("read %s: %w", args[0], err)
		}
		return string(data), filepath.Base(args[0]), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil {
			return "", "", fmt.Errorf("stat stdin: %w", err)
		}
		if stat.Mode()&os.ModeCharDevice != 0 {
			return "", "", errors.New("no input: pass a file argument or pipe data on stdin")
		}
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), "stdin", nil
}
