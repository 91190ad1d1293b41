package simplecms

import (
	"context"

	"github.com/rs/zerolog"
)

// LogEventSink is an EventSink that writes one structured log line per
// lifecycle event. It is the simplest useful audit consumer; hosts with a real
// audit pipeline implement EventSink themselves.
type LogEventSink[T Content[T]] struct {
	logger zerolog.Logger
}

// NewLogEventSink creates an event sink logging through the given logger.
func NewLogEventSink[T Content[T]](logger zerolog.Logger) EventSink[T] {
	return &LogEventSink[T]{logger: logger}
}

// ContentCreated logs the new content's ID and status.
func (s *LogEventSink[T]) ContentCreated(ctx context.Context, content T) error {
	meta := content.Meta()
	s.logger.Info().
		Str("content_id", meta.ID).
		Str("status", string(meta.Status)).
		Msg("content created")
	return nil
}

// ContentUpdated logs the content's ID and new version.
func (s *LogEventSink[T]) ContentUpdated(ctx context.Context, content T, version int) error {
	s.logger.Info().
		Str("content_id", content.Meta().ID).
		Int("version", version).
		Msg("content updated")
	return nil
}

// ContentDeleted logs the deleted content's ID.
func (s *LogEventSink[T]) ContentDeleted(ctx context.Context, contentID string) error {
	s.logger.Info().
		Str("content_id", contentID).
		Msg("content deleted")
	return nil
}

// StatusChanged logs the transition.
func (s *LogEventSink[T]) StatusChanged(ctx context.Context, contentID string, oldStatus, newStatus ContentStatus) error {
	s.logger.Info().
		Str("content_id", contentID).
		Str("old_status", string(oldStatus)).
		Str("new_status", string(newStatus)).
		Msg("content status changed")
	return nil
}
