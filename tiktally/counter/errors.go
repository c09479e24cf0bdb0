package counter

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnexpectedInput signals a caller contract violation: an input that is
// neither a file, a directory, nor a list. It is not an expected runtime
// condition.
var ErrUnexpectedInput = errors.New("input is neither a file, a directory, nor a list")

// NotADirectoryError reports a directory operation on a path that is not a
// directory.
type NotADirectoryError struct {
	Path string
}

func (e *NotADirectoryError) Error() string {
	return fmt.Sprintf("given directory path %q is not a directory", e.Path)
}

// NotAFileError reports every non-file entry of an explicit path list at once.
type NotAFileError struct {
	Paths []string
}

func (e *NotAFileError) Error() string {
	return fmt.Sprintf("given list contains non-file entries: %s", strings.Join(e.Paths, ", "))
}
