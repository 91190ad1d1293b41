package simplecms

import "time"

// Patch is a partial update for a content value of kind T. Apply overwrites
// exactly the fields the patch carries; everything else is left untouched.
// Immutable fields (id, createdAt) are not representable in the concrete patch
// types, so they cannot be overwritten at all.
type Patch[T any] interface {
	Apply(value T)
}

// VersionedContent owns one content instance's mutation history: the current
// value, a monotonic version counter starting at 1, and an append-only,
// oldest-first list of full snapshots of every prior state.
//
// The manager is a single-writer resource: a concurrent host must serialize
// Update calls on the same instance. Reads return independent clones, so a
// caller can never reach into the live value or the history through a returned
// reference.
type VersionedContent[T Content[T]] struct {
	current T
	version int
	history []T
	clock   func() time.Time
}

// VersionOption configures a VersionedContent at construction.
type VersionOption[T Content[T]] func(*VersionedContent[T])

// WithVersionClock overrides the clock used to stamp UpdatedAt. Intended for
// tests.
func WithVersionClock[T Content[T]](clock func() time.Time) VersionOption[T] {
	return func(v *VersionedContent[T]) {
		v.clock = clock
	}
}

// NewVersionedContent creates a manager for initial at version 1 with empty
// history. No validation happens here; callers validate before construction
// if they want to.
func NewVersionedContent[T Content[T]](initial T, options ...VersionOption[T]) *VersionedContent[T] {
	v := &VersionedContent[T]{
		current: initial.Clone(),
		version: 1,
		history: make([]T, 0),
		clock:   func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(v)
	}
	return v
}

// ID returns the managed content's identifier.
func (v *VersionedContent[T]) ID() string {
	return v.current.Meta().ID
}

// Version returns the current version number. It starts at 1 and increases by
// exactly 1 on each update.
func (v *VersionedContent[T]) Version() int {
	return v.version
}

// Content returns a clone of the current value.
func (v *VersionedContent[T]) Content() T {
	return v.current.Clone()
}

// History returns clones of all prior snapshots, oldest first. It is empty for
// a freshly constructed manager. len(History()) always equals Version()-1.
func (v *VersionedContent[T]) History() []T {
	out := make([]T, len(v.history))
	for i, snapshot := range v.history {
		out[i] = snapshot.Clone()
	}
	return out
}

// Update applies patch as one versioned mutation: the pre-call value is
// snapshotted onto the history, the patch's fields overwrite the current
// value, UpdatedAt is stamped unconditionally, and the version is incremented
// by 1. Returns a clone of the new current value.
func (v *VersionedContent[T]) Update(patch Patch[T]) T {
	return v.apply(patch.Apply)
}

// UpdateStatus changes the content's status as one versioned mutation, so the
// audit trail records status changes exactly like field changes. On the first
// transition into ContentStatusPublished the PublishedAt timestamp is set;
// it is never overwritten afterwards.
func (v *VersionedContent[T]) UpdateStatus(status ContentStatus) T {
	return v.apply(func(next T) {
		meta := next.Meta()
		if status == ContentStatusPublished && meta.PublishedAt == nil {
			publishedAt := v.clock()
			meta.PublishedAt = &publishedAt
		}
		meta.Status = status
	})
}

func (v *VersionedContent[T]) apply(mutate func(T)) T {
	v.history = append(v.history, v.current.Clone())
	next := v.current.Clone()
	mutate(next)
	next.Meta().UpdatedAt = v.clock()
	v.current = next
	v.version++
	return v.current.Clone()
}
