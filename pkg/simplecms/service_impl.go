package simplecms

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// service implements the Service interface
type service[T Content[T]] struct {
	repository Repository[T]
	validator  Validator[T]
	matrix     *AccessMatrix
	eventSink  EventSink[T]
	hooks      *Hooks[T]
	clock      func() time.Time
}

// Option represents a functional option for configuring the service
type Option[T Content[T]] func(*service[T])

// WithRepository sets the repository for the service
func WithRepository[T Content[T]](repo Repository[T]) Option[T] {
	return func(s *service[T]) {
		s.repository = repo
	}
}

// WithValidator sets the validator run before every write. Compose several
// with NewCompositeValidator.
func WithValidator[T Content[T]](validator Validator[T]) Option[T] {
	return func(s *service[T]) {
		s.validator = validator
	}
}

// WithAccessMatrix sets the permission table for this content kind
func WithAccessMatrix[T Content[T]](matrix *AccessMatrix) Option[T] {
	return func(s *service[T]) {
		s.matrix = matrix
	}
}

// WithEventSink sets the audit event sink for the service
func WithEventSink[T Content[T]](sink EventSink[T]) Option[T] {
	return func(s *service[T]) {
		s.eventSink = sink
	}
}

// WithHooks sets the lifecycle hooks for the service
func WithHooks[T Content[T]](hooks *Hooks[T]) Option[T] {
	return func(s *service[T]) {
		s.hooks = hooks
	}
}

// WithClock overrides the clock used for timestamps. Intended for tests.
func WithClock[T Content[T]](clock func() time.Time) Option[T] {
	return func(s *service[T]) {
		s.clock = clock
	}
}

// New creates a new service instance with the given options
func New[T Content[T]](options ...Option[T]) (Service[T], error) {
	s := &service[T]{
		clock: func() time.Time { return time.Now().UTC() },
	}

	for _, option := range options {
		option(s)
	}

	if s.repository == nil {
		return nil, fmt.Errorf("repository is required")
	}
	if s.validator == nil {
		return nil, fmt.Errorf("validator is required")
	}
	if s.matrix == nil {
		return nil, fmt.Errorf("access matrix is required")
	}
	if s.eventSink == nil {
		s.eventSink = NewNoopEventSink[T]()
	}
	if s.hooks == nil {
		s.hooks = &Hooks[T]{}
	}

	return s, nil
}

func (s *service[T]) CreateContent(ctx context.Context, role Role, initial T) (T, error) {
	var zero T

	work := initial.Clone()
	meta := work.Meta()
	if meta.ID == "" {
		meta.ID = uuid.New().String()
	}
	if err := s.authorize(role, OperationCreate, meta.ID); err != nil {
		return zero, err
	}
	now := s.clock()
	if meta.CreatedAt.IsZero() {
		meta.CreatedAt = now
		meta.UpdatedAt = now
	}
	if meta.Status == "" {
		meta.Status = ContentStatusDraft
	}

	if err := s.hooks.executeBeforeCreate(ctx, work); err != nil {
		return zero, &ContentError{ContentID: meta.ID, Op: "create", Err: err}
	}

	if result := s.validator.Validate(work); !result.IsValid() {
		err := &ContentError{ContentID: meta.ID, Op: "create", Err: &ValidationError{Result: result}}
		s.hooks.executeOnError(ctx, "create", err)
		return zero, err
	}

	versioned := NewVersionedContent(work, WithVersionClock[T](s.clock))
	if err := s.repository.Save(ctx, versioned); err != nil {
		s.hooks.executeOnError(ctx, "create", err)
		return zero, &ContentError{ContentID: meta.ID, Op: "create", Err: err}
	}

	created := versioned.Content()
	if err := s.eventSink.ContentCreated(ctx, created); err != nil {
		s.hooks.executeOnError(ctx, "create", err)
	}
	if err := s.hooks.executeAfterCreate(ctx, created); err != nil {
		s.hooks.executeOnError(ctx, "create", err)
	}
	return created, nil
}

func (s *service[T]) GetContent(ctx context.Context, role Role, id string) (T, error) {
	var zero T
	if err := s.authorize(role, OperationRead, id); err != nil {
		return zero, err
	}
	versioned, err := s.repository.Get(ctx, id)
	if err != nil {
		return zero, &ContentError{ContentID: id, Op: "get", Err: err}
	}
	return versioned.Content(), nil
}

func (s *service[T]) GetVersion(ctx context.Context, role Role, id string) (int, error) {
	if err := s.authorize(role, OperationRead, id); err != nil {
		return 0, err
	}
	versioned, err := s.repository.Get(ctx, id)
	if err != nil {
		return 0, &ContentError{ContentID: id, Op: "get_version", Err: err}
	}
	return versioned.Version(), nil
}

func (s *service[T]) GetVersionHistory(ctx context.Context, role Role, id string) ([]T, error) {
	if err := s.authorize(role, OperationRead, id); err != nil {
		return nil, err
	}
	versioned, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, &ContentError{ContentID: id, Op: "get_history", Err: err}
	}
	return versioned.History(), nil
}

func (s *service[T]) UpdateContent(ctx context.Context, role Role, id string, patch Patch[T]) (T, error) {
	var zero T
	if err := s.authorize(role, OperationUpdate, id); err != nil {
		return zero, err
	}
	versioned, err := s.repository.Get(ctx, id)
	if err != nil {
		return zero, &ContentError{ContentID: id, Op: "update", Err: err}
	}

	if _, err := canUpdateContent(versioned.Content().Meta().Status); err != nil {
		return zero, &ContentError{ContentID: id, Op: "update", Err: err}
	}

	if err := s.hooks.executeBeforeUpdate(ctx, id, patch); err != nil {
		return zero, &ContentError{ContentID: id, Op: "update", Err: err}
	}

	// Validate the post-patch value before committing anything.
	candidate := versioned.Content()
	patch.Apply(candidate)
	if result := s.validator.Validate(candidate); !result.IsValid() {
		err := &ContentError{ContentID: id, Op: "update", Err: &ValidationError{Result: result}}
		s.hooks.executeOnError(ctx, "update", err)
		return zero, err
	}

	updated := versioned.Update(patch)
	if err := s.repository.Save(ctx, versioned); err != nil {
		s.hooks.executeOnError(ctx, "update", err)
		return zero, &ContentError{ContentID: id, Op: "update", Err: err}
	}

	if err := s.eventSink.ContentUpdated(ctx, updated, versioned.Version()); err != nil {
		s.hooks.executeOnError(ctx, "update", err)
	}
	if err := s.hooks.executeAfterUpdate(ctx, updated, versioned.Version()); err != nil {
		s.hooks.executeOnError(ctx, "update", err)
	}
	return updated, nil
}

func (s *service[T]) DeleteContent(ctx context.Context, role Role, id string, force bool) error {
	if err := s.authorize(role, OperationDelete, id); err != nil {
		return err
	}
	versioned, err := s.repository.Get(ctx, id)
	if err != nil {
		return &ContentError{ContentID: id, Op: "delete", Err: err}
	}
	if _, err := canDeleteContent(versioned.Content().Meta().Status, force); err != nil {
		return &ContentError{ContentID: id, Op: "delete", Err: err}
	}

	if err := s.hooks.executeBeforeDelete(ctx, id); err != nil {
		return &ContentError{ContentID: id, Op: "delete", Err: err}
	}
	if err := s.repository.Delete(ctx, id); err != nil {
		s.hooks.executeOnError(ctx, "delete", err)
		return &ContentError{ContentID: id, Op: "delete", Err: err}
	}

	if err := s.eventSink.ContentDeleted(ctx, id); err != nil {
		s.hooks.executeOnError(ctx, "delete", err)
	}
	if err := s.hooks.executeAfterDelete(ctx, id); err != nil {
		s.hooks.executeOnError(ctx, "delete", err)
	}
	return nil
}

func (s *service[T]) PublishContent(ctx context.Context, role Role, id string) (T, error) {
	return s.transition(ctx, role, id, "publish", ContentStatusPublished, canPublishContent)
}

func (s *service[T]) ArchiveContent(ctx context.Context, role Role, id string) (T, error) {
	return s.transition(ctx, role, id, "archive", ContentStatusArchived, canArchiveContent)
}

func (s *service[T]) ListContent(ctx context.Context, role Role) ([]T, error) {
	if err := s.authorize(role, OperationRead, ""); err != nil {
		return nil, err
	}
	records, err := s.repository.List(ctx)
	if err != nil {
		return nil, &ContentError{Op: "list", Err: err}
	}
	out := make([]T, 0, len(records))
	for _, record := range records {
		out = append(out, record.Content())
	}
	return out, nil
}

// transition runs a gated status change as a versioned mutation.
func (s *service[T]) transition(ctx context.Context, role Role, id, op string, target ContentStatus, gate func(ContentStatus) (bool, error)) (T, error) {
	var zero T
	if err := s.authorize(role, OperationUpdate, id); err != nil {
		return zero, err
	}
	versioned, err := s.repository.Get(ctx, id)
	if err != nil {
		return zero, &ContentError{ContentID: id, Op: op, Err: err}
	}

	oldStatus := versioned.Content().Meta().Status
	if _, err := gate(oldStatus); err != nil {
		s.hooks.executeOnError(ctx, op, err)
		return zero, &ContentError{ContentID: id, Op: op, Err: err}
	}

	updated := versioned.UpdateStatus(target)
	if err := s.repository.Save(ctx, versioned); err != nil {
		s.hooks.executeOnError(ctx, op, err)
		return zero, &ContentError{ContentID: id, Op: op, Err: err}
	}

	if err := s.eventSink.ContentUpdated(ctx, updated, versioned.Version()); err != nil {
		s.hooks.executeOnError(ctx, op, err)
	}
	s.notifyStatusChange(ctx, id, oldStatus, target)
	return updated, nil
}

func (s *service[T]) authorize(role Role, op Operation, id string) error {
	if !s.matrix.Allows(role, op) {
		return &ContentError{
			ContentID: id,
			Op:        string(op),
			Err:       fmt.Errorf("%w: role %q may not %s", ErrPermissionDenied, role, op),
		}
	}
	return nil
}

func (s *service[T]) notifyStatusChange(ctx context.Context, id string, oldStatus, newStatus ContentStatus) {
	if err := s.eventSink.StatusChanged(ctx, id, oldStatus, newStatus); err != nil {
		s.hooks.executeOnError(ctx, "status_change", err)
	}
	if err := s.hooks.executeOnStatusChange(ctx, id, oldStatus, newStatus); err != nil {
		s.hooks.executeOnError(ctx, "status_change", err)
	}
}
