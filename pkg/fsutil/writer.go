package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirPermUserGroupRX = 0o750
	filePermUserRW     = 0o600
)

// TryWriteFile writes content to a file path, handling force/overwrite
// logic. When the file already exists and force is false, nothing is
// written and the content is returned unchanged.
//
// Returns the content that was written (for chaining) or
// ErrEmptyOutputPath when output is empty.
func TryWriteFile(content string, output string, force bool) (string, error) {
	if output == "" {
		return "", ErrEmptyOutputPath
	}

	output = filepath.Clean(output)

	if !force {
		_, err := os.Stat(output)
		if err == nil {
			return content, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("failed to check file %s: %w", output, err)
		}
	}

	dir := filepath.Dir(output)

	err := os.MkdirAll(dir, dirPermUserGroupRX)
	if err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	err = os.WriteFile(output, []byte(content), filePermUserRW)
	if err != nil {
		return "", fmt.Errorf("failed to write file %s: %w", output, err)
	}

	return content, nil
}
