package domain

import "errors"

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrDocumentNotFound = errors.New("invoice document not found")
)
