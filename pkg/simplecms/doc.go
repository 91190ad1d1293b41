// Package simplecms provides a reusable core for content-management backends:
// typed content entities, composable validation, role-based access control,
// and append-only version history over mutations.
//
// It exposes a single Service interface per content kind that orchestrates
// the triad on every call: the caller's role is resolved against the kind's
// AccessMatrix, the value is run through the configured Validator (compose
// several with NewCompositeValidator), and accepted mutations go through a
// VersionedContent manager that snapshots the prior state and increments a
// monotonic version counter. A memory-backed Repository implementation is
// provided under repo/memory.
//
// The core is synchronous and does no I/O. Validators and access matrices are
// immutable and safe for unrestricted concurrent use; a VersionedContent
// instance is a single-writer resource whose updates the owner must
// serialize.
//
// Content Contract
//
// Every entity embeds ContentMeta and satisfies the Content interface. ID and
// CreatedAt are immutable after creation, UpdatedAt is stamped on every
// mutation, and PublishedAt is set once on the first transition into the
// published status. Partial updates go through per-kind patch types whose
// field sets exclude the immutable fields, so a patch cannot corrupt them.
package simplecms
