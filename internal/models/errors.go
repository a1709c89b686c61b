package models

import (
	"errors"
)

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidRequest = errors.New("invalid request")

	ErrProvider          = errors.New("completion provider error")
	ErrMalformedResponse = errors.New("malformed provider response")
	ErrSchemaViolation   = errors.New("response schema violation")
	ErrTaxonomyViolation = errors.New("taxonomy violation")

	ErrStore = errors.New("profile store error")
)
