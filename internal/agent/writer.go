package agent

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/planwright/internal/logger"
)

// ErrFileExists indicates a destination path is occupied and overwrite was
// not requested.
var ErrFileExists = errors.New("file already exists")

// WriteFiles writes the file specs to disk in order. Parent directories are
// created as needed. When overwrite is false, an occupied path aborts the
// sequence immediately; files written earlier in the same call stay on disk.
// Writes are whole-content replacements with no temp-file discipline.
func (a *Agent) WriteFiles(files []FileSpec, overwrite bool) error {
	for _, file := range files {
		if dir := filepath.Dir(file.Path); dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dir, err)
			}
		}

		if !overwrite {
			if _, err := os.Stat(file.Path); err == nil {
				return fmt.Errorf("%w: %s", ErrFileExists, file.Path)
			}
		}

		logger.Debug("writing %s (%d bytes)", file.Path, len(file.Content))
		if err := os.WriteFile(file.Path, []byte(file.Content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", file.Path, err)
		}
	}
	return nil
}
