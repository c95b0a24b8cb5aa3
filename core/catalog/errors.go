package catalog

import "errors"

var (
	// ErrMetadataNotFound is returned when the metadata file does not exist.
	ErrMetadataNotFound = errors.New("metadata file not found")
	// ErrNoAudiobooks is returned when the library contains no usable audiobook.
	ErrNoAudiobooks = errors.New("no audiobooks found in library")
)

// StructureError reports a metadata document whose shape cannot be walked.
type StructureError struct {
	Reason string
}

func (e *StructureError) Error() string {
	return "invalid metadata structure: " + e.Reason
}
