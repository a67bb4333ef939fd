package manifest

import "errors"

var (
	// ErrManifestUnreadable is returned when the manifest file cannot be opened.
	ErrManifestUnreadable = errors.New("manifest unreadable")

	// ErrMalformedManifest is returned when the manifest document cannot be parsed.
	ErrMalformedManifest = errors.New("malformed manifest")

	// ErrMissingVersion is returned when the manifest has no version string.
	ErrMissingVersion = errors.New("manifest missing version")

	// ErrNoItems is returned when the manifest contains no item definitions.
	ErrNoItems = errors.New("manifest contains no items")
)
