package simplecms

import "fmt"

// canPublishContent checks if content can be published based on its status.
// Returns true if publishing is allowed, false with an error otherwise.
func canPublishContent(status ContentStatus) (bool, error) {
	switch status {
	case ContentStatusDraft:
		return true, nil
	case ContentStatusPublished:
		return false, fmt.Errorf("%w: content is already published (status: %s)", ErrInvalidTransition, status)
	case ContentStatusArchived:
		return false, fmt.Errorf("%w: archived content cannot be published (status: %s)", ErrInvalidTransition, status)
	default:
		return false, fmt.Errorf("%w: unknown status %s", ErrInvalidContentStatus, status)
	}
}

// canArchiveContent checks if content can be archived based on its status.
// Both drafts and published content may be archived.
func canArchiveContent(status ContentStatus) (bool, error) {
	switch status {
	case ContentStatusDraft, ContentStatusPublished:
		return true, nil
	case ContentStatusArchived:
		return false, fmt.Errorf("%w: content is already archived (status: %s)", ErrInvalidTransition, status)
	default:
		return false, fmt.Errorf("%w: unknown status %s", ErrInvalidContentStatus, status)
	}
}

// canUpdateContent checks if content can be updated based on its status.
// Archived content is read-only until deleted.
func canUpdateContent(status ContentStatus) (bool, error) {
	switch status {
	case ContentStatusDraft, ContentStatusPublished:
		return true, nil
	case ContentStatusArchived:
		return false, fmt.Errorf("%w: archived content cannot be updated (status: %s)", ErrContentArchived, status)
	default:
		return false, fmt.Errorf("%w: unknown status %s", ErrInvalidContentStatus, status)
	}
}

// canDeleteContent checks if content can be deleted based on its status.
// The force parameter allows deleting published content; callers should
// archive first in the normal flow.
func canDeleteContent(status ContentStatus, force bool) (bool, error) {
	switch status {
	case ContentStatusPublished:
		if !force {
			return false, fmt.Errorf("%w: use force=true to delete published content (status: %s)", ErrInvalidTransition, status)
		}
		return true, nil
	case ContentStatusDraft, ContentStatusArchived:
		return true, nil
	default:
		return false, fmt.Errorf("%w: unknown status %s", ErrInvalidContentStatus, status)
	}
}
