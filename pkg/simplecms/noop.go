package simplecms

import "context"

// NoopEventSink is a no-operation implementation of EventSink.
// Useful when you don't need audit events or for testing.
type NoopEventSink[T Content[T]] struct{}

// NewNoopEventSink creates a new no-operation event sink
func NewNoopEventSink[T Content[T]]() EventSink[T] {
	return &NoopEventSink[T]{}
}

// ContentCreated does nothing and returns nil
func (n *NoopEventSink[T]) ContentCreated(ctx context.Context, content T) error {
	return nil
}

// ContentUpdated does nothing and returns nil
func (n *NoopEventSink[T]) ContentUpdated(ctx context.Context, content T, version int) error {
	return nil
}

// ContentDeleted does nothing and returns nil
func (n *NoopEventSink[T]) ContentDeleted(ctx context.Context, contentID string) error {
	return nil
}

// StatusChanged does nothing and returns nil
func (n *NoopEventSink[T]) StatusChanged(ctx context.Context, contentID string, oldStatus, newStatus ContentStatus) error {
	return nil
}
