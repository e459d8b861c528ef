package bookindex

import "fmt"

// FileAccessError is returned when the input can't be read or the output
// can't be written.
type FileAccessError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// MissingDependencyError is returned when a capability needed for the
// conversion, such as an output format writer or an input decoder, is
// not available.
type MissingDependencyError struct {
	Capability string // "writer" or "encoding"
	Name       string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("no %s available for %q", e.Capability, e.Name)
}
