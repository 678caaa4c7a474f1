package renderer

import (
	"fmt"
	"os"
)

// writeFile writes data to a file, truncating any existing content
func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
