package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	// Job store sentinels. ErrJobNotFound is reported uniformly whether the
	// job expired past its retention window or never existed.
	ErrJobNotFound = errors.New("job not found")

	// Document store sentinels.
	ErrDocumentNotFound = errors.New("document not found")
)
