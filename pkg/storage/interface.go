// Package storage defines the persistence interfaces of the prediction
// history. Backends such as PostgreSQL provide concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

// AllStorage groups the domain-specific storage capabilities.
type AllStorage interface {
	PredictionStorage
}

// Storage is a storage handle with lifecycle management.
type Storage interface {
	AllStorage

	// Close releases the resources held by the implementation. The instance
	// must not be used afterwards.
	Close() error
}
