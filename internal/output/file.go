package output

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNotTextFile is returned for output files without a .txt extension.
var ErrNotTextFile = errors.New("file must be a text file. ex: output.txt")

// AppendToFile appends content to name, creating it with owner-only
// permissions if needed. Records hold private keys.
func AppendToFile(name, content string) error {
	if !strings.HasSuffix(name, ".txt") {
		return fmt.Errorf("%w: %s", ErrNotTextFile, name)
	}

	f, err := os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return fmt.Errorf("write output file: %w", err)
	}
	return f.Close()
}
