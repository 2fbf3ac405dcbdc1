package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrGamesDirUnreadable = errors.New("games directory unreadable")
	ErrLookupMissing      = errors.New("lookup file missing")
	ErrLookupMalformed    = errors.New("lookup file malformed")
)

// LookupLoadError is returned by Build when the lookup file cannot be used.
// The catalog returned alongside it is always empty.
type LookupLoadError struct {
	Path string
	Err  error
}

func (e *LookupLoadError) Error() string {
	return fmt.Sprintf("loading lookup %s: %v", e.Path, e.Err)
}

func (e *LookupLoadError) Unwrap() error {
	return e.Err
}
