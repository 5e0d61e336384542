// Package source loads a program's source text from disk, surfacing an I/O
// failure as its own diagnostic distinct from lexical, parse, or runtime
// diagnostics.
package source

import (
	"fmt"
	"os"
)

// Load reads path and returns its contents as a string. A read failure
// (missing file, permission, directory) is wrapped with the path for a
// clearer startup diagnostic than the bare os error.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read file '%s': %w", path, err)
	}
	return string(data), nil
}
