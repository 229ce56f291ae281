// Package textio reads and writes whole text files for the cipher commands.
package textio

import (
	"fmt"
	"os"
)

// ReadText returns the full contents of path.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read text %s: %w", path, err)
	}
	return string(data), nil
}

// WriteText creates or truncates path and writes content to it.
func WriteText(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write text %s: %w", path, err)
	}
	return nil
}
