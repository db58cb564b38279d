package skills

import "fmt"

// DictionaryError represents a failure reading or parsing a skill dictionary source
type DictionaryError struct {
	Path  string
	Cause error
}

func (e *DictionaryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to read skill dictionary %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("failed to read skill dictionary %s", e.Path)
}

func (e *DictionaryError) Unwrap() error {
	return e.Cause
}
