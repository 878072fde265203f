package rom

import (
	"bytes"
	"errors"
	"fmt"
	"os"
)

// DefaultPath is the image converted when no path is given.
const DefaultPath = "startup.nes"

var ErrIsDir = errors.New("is a directory")

// FileAccessError reports a rom image that could not be opened or read.
type FileAccessError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("rom %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// Load reads the whole rom image at path. The file handle is released
// before returning, on success or failure.
func Load(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Op: "open", Path: path, Err: unwrapPathError(err)}
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, &FileAccessError{Op: "stat", Path: path, Err: unwrapPathError(err)}
	}
	if fi.IsDir() {
		return nil, &FileAccessError{Op: "stat", Path: path, Err: ErrIsDir}
	}

	var buf bytes.Buffer
	buf.Grow(int(fi.Size()))
	if _, err := buf.ReadFrom(f); err != nil {
		return nil, &FileAccessError{Op: "read", Path: path, Err: unwrapPathError(err)}
	}
	return buf.Bytes(), nil
}

// os errors already carry the op and path
func unwrapPathError(err error) error {
	var pe *os.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
