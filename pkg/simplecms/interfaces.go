package simplecms

import "context"

// Repository defines the interface for holding versioned content records.
// Implementations are external collaborators; the in-memory implementation
// under repo/memory is suitable for tests and single-process hosts.
type Repository[T Content[T]] interface {
	// Save stores or replaces the record for the managed content's ID.
	Save(ctx context.Context, content *VersionedContent[T]) error

	// Get returns the record for id, or ErrContentNotFound.
	Get(ctx context.Context, id string) (*VersionedContent[T], error)

	// Delete removes the record for id, or returns ErrContentNotFound.
	Delete(ctx context.Context, id string) error

	// List returns all live records.
	List(ctx context.Context) ([]*VersionedContent[T], error)
}

// EventSink defines the interface for audit event handling
type EventSink[T Content[T]] interface {
	// ContentCreated is fired when content is created
	ContentCreated(ctx context.Context, content T) error

	// ContentUpdated is fired when content is updated, with the new version
	ContentUpdated(ctx context.Context, content T, version int) error

	// ContentDeleted is fired when content is deleted
	ContentDeleted(ctx context.Context, contentID string) error

	// StatusChanged is fired when content status changes
	StatusChanged(ctx context.Context, contentID string, oldStatus, newStatus ContentStatus) error
}
