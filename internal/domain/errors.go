package domain

import "errors"

var (
	// ErrDataSourceUnavailable is returned when the product store cannot be
	// reached or errors during a catalog scan
	ErrDataSourceUnavailable = errors.New("product data source unavailable")

	// ErrIndexUnavailable is returned when the semantic index could not be
	// loaded or built, or is queried before initialization
	ErrIndexUnavailable = errors.New("semantic index unavailable")

	// ErrMalformedRequest is returned when a query payload is missing or is
	// not a list of strings
	ErrMalformedRequest = errors.New("malformed query request")
)
