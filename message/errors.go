package message

import "errors"

var (
	ErrEmptyBody       = errors.New("empty body")
	ErrInvalidUTF8     = errors.New("body is not valid UTF-8")
	ErrInvalidJSON     = errors.New("body is not valid JSON")
	ErrUnencodableJSON = errors.New("value cannot be encoded as JSON")
	ErrNumberPrecision = errors.New("number cannot be held exactly as float64")
)
