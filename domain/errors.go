package domain

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindStore ErrorKind = iota
	KindNotFound
	KindConflict
	KindValidation
	KindUnprocessable
)

// AppError is the error every use case returns to the delivery layer.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func NotFound(entity string) *AppError {
	return &AppError{Kind: KindNotFound, Message: entity + " not found"}
}

func Conflict(msg string) *AppError {
	return &AppError{Kind: KindConflict, Message: msg}
}

func Invalid(msg string) *AppError {
	return &AppError{Kind: KindValidation, Message: msg}
}

func StoreError(msg string, err error) *AppError {
	return &AppError{Kind: KindStore, Message: msg, Err: err}
}

var ErrNoEligibleTeacher = &AppError{Kind: KindUnprocessable, Message: "no eligible teacher"}

// KindOf reports the kind of err, KindStore for anything that is not an AppError.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStore
}
