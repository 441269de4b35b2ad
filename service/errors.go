package service

import "errors"

var (
	// ErrProductNotFound is returned when a request references an unknown product
	ErrProductNotFound = errors.New("product not found")
	// ErrQuoteNotFound is returned when a quote id does not exist
	ErrQuoteNotFound = errors.New("quote not found")
	// ErrInvalidQuantity is returned when a quote is requested for fewer than one unit
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrExportDisabled is returned when Drive export has not been configured
	ErrExportDisabled = errors.New("quote export is not configured")
)
