package control

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation error")
	ErrAlreadyVoted    = errors.New("already voted")
	ErrUnauthenticated = errors.New("login required")
)

// ValidationError 说明具体违反了哪条约束，状态不会被修改
type ValidationError struct {
	Field  string
	Reason string
	Err    error // 可选的底层原因，例如 ErrNotFound
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Is 让 errors.Is(err, ErrValidation) 对所有 ValidationError 成立
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
