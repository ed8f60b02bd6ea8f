package errors

import "errors"

var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrBadRequest   = errors.New("bad request")
	ErrDuplicate    = errors.New("resource already exists")
	ErrValidation   = errors.New("validation failed")
	ErrUpstream     = errors.New("upstream service error")
	ErrInternal     = errors.New("internal server error")
)
