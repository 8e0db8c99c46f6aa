package domain

import "errors"

// Sentinel errors of the intake core.
var (
	ErrNotFound        = errors.New("not found")
	ErrMissingSite     = errors.New("local site identifier is not configured")
	ErrCatalogUnloaded = errors.New("code-system catalog not loaded")
)
