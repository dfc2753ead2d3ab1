package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrCatalogUnavailable indicates the remote catalog could not be fetched or parsed
	ErrCatalogUnavailable = errors.New("font catalog unavailable")

	// ErrInvalidSelector indicates a target selector string failed to compile
	ErrInvalidSelector = errors.New("invalid selector")

	// ErrFontLoadFailed indicates a font stylesheet request failed
	ErrFontLoadFailed = errors.New("font stylesheet request failed")

	// ErrNoFontSelected indicates an operation needed a current font but none is applied
	ErrNoFontSelected = errors.New("no font selected")
)
