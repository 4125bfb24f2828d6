package store

// Persistence is a keyed blob store holding the serialized collection
type Persistence interface {
	// Load returns the stored payload, or nil with no error when nothing was saved yet
	Load() ([]byte, error)

	// Save replaces the stored payload
	Save(data []byte) error
}
