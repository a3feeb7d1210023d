package client

import "errors"

var (
	ErrUnavailable      = errors.New("server unavailable")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrNotFound         = errors.New("not found")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrUploadIncomplete = errors.New("upload incomplete")
	ErrStreamEnded      = errors.New("subscription ended by server")
)
