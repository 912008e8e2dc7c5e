package install

import "fmt"

// ExtractionError reports a corrupt or unreadable archive.
type ExtractionError struct {
	Archive string
	Err     error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.Archive, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// MissingBinaryError reports that the archive has no executable top-level
// entry with the configured binary name.
type MissingBinaryError struct {
	Name string
}

func (e *MissingBinaryError) Error() string {
	return fmt.Sprintf("archive has no executable %q at its top level", e.Name)
}

// PermissionError reports an install directory that cannot be created or
// written.
type PermissionError struct {
	Dir string
	Err error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("install directory %s is not writable: %v", e.Dir, e.Err)
}

func (e *PermissionError) Unwrap() error { return e.Err }
