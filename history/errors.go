package history

import (
	"errors"
	"fmt"
)

var (
	ErrNotInitialized = errors.New("history not initialized")
	ErrNoSession      = errors.New("no such session")
)

type Error struct {
	Op    string // "open", "start", "end", "query", "setting"
	Table string
	Err   error
}

func (e *Error) Error() string {
	if e.Table != "" {
		return fmt.Sprintf("history %s [%s]: %v", e.Op, e.Table, e.Err)
	}
	return fmt.Sprintf("history %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newHistoryError(op, table string, err error) *Error {
	return &Error{Op: op, Table: table, Err: err}
}
