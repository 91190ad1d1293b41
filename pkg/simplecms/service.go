package simplecms

import "context"

// Service orchestrates the full lifecycle for one content kind: every call
// resolves the caller's permission against the kind's access matrix, runs the
// configured validator before any write, and routes accepted mutations through
// the versioned content manager so history is never lost.
//
// Roles come from an external session layer; the service makes authorization
// decisions only, never identity ones.
type Service[T Content[T]] interface {
	// CreateContent validates initial and stores it at version 1.
	CreateContent(ctx context.Context, role Role, initial T) (T, error)

	// GetContent returns the current value for id.
	GetContent(ctx context.Context, role Role, id string) (T, error)

	// GetVersion returns the current version number for id.
	GetVersion(ctx context.Context, role Role, id string) (int, error)

	// GetVersionHistory returns all prior snapshots for id, oldest first.
	GetVersionHistory(ctx context.Context, role Role, id string) ([]T, error)

	// UpdateContent validates the patched value and applies the patch as one
	// versioned mutation.
	UpdateContent(ctx context.Context, role Role, id string, patch Patch[T]) (T, error)

	// DeleteContent removes the record. Published content requires force.
	DeleteContent(ctx context.Context, role Role, id string, force bool) error

	// PublishContent transitions a draft to published, stamping PublishedAt
	// on the first transition.
	PublishContent(ctx context.Context, role Role, id string) (T, error)

	// ArchiveContent transitions a draft or published content to archived.
	ArchiveContent(ctx context.Context, role Role, id string) (T, error)

	// ListContent returns the current value of every live record.
	ListContent(ctx context.Context, role Role) ([]T, error)
}
