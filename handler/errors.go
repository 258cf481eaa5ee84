package handler

import (
	"errors"
	"net/http"
)

// ErrNilResponse indicates a handler returned nil instead of a Response.
var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError is an error with a status code and a catalog key whose
// "title" and "message" children describe it to the visitor.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

var (
	ErrNotFound = HTTPError{Code: http.StatusNotFound, Key: "errors.not_found"}
	ErrInternal = HTTPError{Code: http.StatusInternalServerError, Key: "errors.internal"}
)

func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

// Classify returns the HTTPError carried by err, or ErrInternal.
func Classify(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return ErrInternal
}
