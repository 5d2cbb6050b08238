// Package fileio is the single place snxml touches the disk. Commands hand
// it paths and get content or coded errors back; nothing else reads or
// writes files directly.
package fileio

import (
	"os"
	"path/filepath"

	"github.com/snxml/snxml/pkg/errors"
	"github.com/snxml/snxml/pkg/formatter"
	"github.com/snxml/snxml/pkg/logging"
)

// Read returns the contents of path.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrapf(err, errors.ErrFileNotFound, "file not found: %s", path)
		}
		return "", errors.Wrapf(err, errors.ErrFileRead, "reading %s", path)
	}
	logger := logging.GetLogger("fileio")
	logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("read file")
	return string(data), nil
}

// Write stores data at path, creating parent directories as needed.
func Write(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "creating directory for %s", path)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "writing %s", path)
	}
	logger := logging.GetLogger("fileio")
	logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("wrote file")
	return nil
}

// WriteFormatted formats the document text before writing it, so files
// saved by snxml always carry canonical indentation.
func WriteFormatted(path, content string, opts formatter.Options) error {
	return Write(path, []byte(formatter.Format(content, opts)+"\n"))
}
