package storage

import "io"

// StorageService is where event images live. Keys are the sanitized
// filenames referenced by Event.ImageFile.
type StorageService interface {
	Upload(key string, reader io.Reader) error
	Delete(key string) error
}
