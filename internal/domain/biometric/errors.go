package biometric

import "errors"

var (
	ErrMalformedCSV = errors.New("malformed CSV input")
	ErrEmptyUpload  = errors.New("uploaded file is empty")
)
