package simplecms

import "context"

// Hook system allows extending the content lifecycle without modifying core
// code. Hooks are called at specific points around service operations.

// Hooks defines all available lifecycle hooks for content of kind T
type Hooks[T Content[T]] struct {
	// Content lifecycle hooks
	BeforeCreate []BeforeCreateHook[T]
	AfterCreate  []AfterCreateHook[T]
	BeforeUpdate []BeforeUpdateHook[T]
	AfterUpdate  []AfterUpdateHook[T]
	BeforeDelete []BeforeDeleteHook[T]
	AfterDelete  []AfterDeleteHook[T]

	// Status change hooks
	OnStatusChange []StatusChangeHook

	// Error hooks
	OnError []ErrorHook
}

// HookContext carries information through the hook chain
type HookContext struct {
	Context   context.Context
	Metadata  map[string]interface{} // Custom metadata passed between hooks
	StopChain bool                   // Set to true to stop processing remaining hooks
}

// NewHookContext creates a new hook context
func NewHookContext(ctx context.Context) *HookContext {
	return &HookContext{
		Context:  ctx,
		Metadata: make(map[string]interface{}),
	}
}

// BeforeCreateHook is called before content is created
type BeforeCreateHook[T Content[T]] func(hctx *HookContext, content T) error

// AfterCreateHook is called after content is created
type AfterCreateHook[T Content[T]] func(hctx *HookContext, content T) error

// BeforeUpdateHook is called before a patch is applied
type BeforeUpdateHook[T Content[T]] func(hctx *HookContext, contentID string, patch Patch[T]) error

// AfterUpdateHook is called after a patch is applied, with the new value and
// its new version number
type AfterUpdateHook[T Content[T]] func(hctx *HookContext, content T, version int) error

// BeforeDeleteHook is called before content is deleted
type BeforeDeleteHook[T Content[T]] func(hctx *HookContext, contentID string) error

// AfterDeleteHook is called after content is deleted
type AfterDeleteHook[T Content[T]] func(hctx *HookContext, contentID string) error

// StatusChangeHook is called when content status changes
type StatusChangeHook func(hctx *HookContext, contentID string, oldStatus, newStatus ContentStatus) error

// ErrorHook is called when an operation fails
type ErrorHook func(hctx *HookContext, operation string, err error)

// Hook execution helpers

func (h *Hooks[T]) executeBeforeCreate(ctx context.Context, content T) error {
	if len(h.BeforeCreate) == 0 {
		return nil
	}

	hctx := NewHookContext(ctx)
	for _, hook := range h.BeforeCreate {
		if err := hook(hctx, content); err != nil {
			return err
		}
		if hctx.StopChain {
			break
		}
	}
	return nil
}

func (h *Hooks[T]) executeAfterCreate(ctx context.Context, content T) error {
	if len(h.AfterCreate) == 0 {
		return nil
	}

	hctx := NewHookContext(ctx)
	for _, hook := range h.AfterCreate {
		if err := hook(hctx, content); err != nil {
			return err
		}
		if hctx.StopChain {
			break
		}
	}
	return nil
}

func (h *Hooks[T]) executeBeforeUpdate(ctx context.Context, contentID string, patch Patch[T]) error {
	if len(h.BeforeUpdate) == 0 {
		return nil
	}

	hctx := NewHookContext(ctx)
	for _, hook := range h.BeforeUpdate {
		if err := hook(hctx, contentID, patch); err != nil {
			return err
		}
		if hctx.StopChain {
			break
		}
	}
	return nil
}

func (h *Hooks[T]) executeAfterUpdate(ctx context.Context, content T, version int) error {
	if len(h.AfterUpdate) == 0 {
		return nil
	}

	hctx := NewHookContext(ctx)
	for _, hook := range h.AfterUpdate {
		if err := hook(hctx, content, version); err != nil {
			return err
		}
		if hctx.StopChain {
			break
		}
	}
	return nil
}

func (h *Hooks[T]) executeBeforeDelete(ctx context.Context, contentID string) error {
	if len(h.BeforeDelete) == 0 {
		return nil
	}

	hctx := NewHookContext(ctx)
	for _, hook := range h.BeforeDelete {
		if err := hook(hctx, contentID); err != nil {
			return err
		}
		if hctx.StopChain {
			break
		}
	}
	return nil
}

func (h *Hooks[T]) executeAfterDelete(ctx context.Context, contentID string) error {
	if len(h.AfterDelete) == 0 {
		return nil
	}

	hctx := NewHookContext(ctx)
	for _, hook := range h.AfterDelete {
		if err := hook(hctx, contentID); err != nil {
			return err
		}
		if hctx.StopChain {
			break
		}
	}
	return nil
}

func (h *Hooks[T]) executeOnStatusChange(ctx context.Context, contentID string, oldStatus, newStatus ContentStatus) error {
	if len(h.OnStatusChange) == 0 {
		return nil
	}

	hctx := NewHookContext(ctx)
	for _, hook := range h.OnStatusChange {
		if err := hook(hctx, contentID, oldStatus, newStatus); err != nil {
			return err
		}
		if hctx.StopChain {
			break
		}
	}
	return nil
}

func (h *Hooks[T]) executeOnError(ctx context.Context, operation string, err error) {
	if len(h.OnError) == 0 {
		return
	}

	hctx := NewHookContext(ctx)
	for _, hook := range h.OnError {
		hook(hctx, operation, err)
		if hctx.StopChain {
			break
		}
	}
}

// ValidationHook adds custom validation ahead of the configured validator.
func ValidationHook[T Content[T]](validator func(T) error) BeforeCreateHook[T] {
	return func(hctx *HookContext, content T) error {
		return validator(content)
	}
}
