package simplecms

import "slices"

// CompositeValidator aggregates validators for one content kind into a single
// Validator. Every constituent always runs, even after an earlier one fails,
// so one call surfaces the complete set of problems.
type CompositeValidator[T any] struct {
	validators []Validator[T]
}

// NewCompositeValidator builds a composite from the given validators in order.
// Zero validators is a configuration error (ErrNoValidators), detected here
// rather than silently treating everything as valid.
func NewCompositeValidator[T any](validators ...Validator[T]) (*CompositeValidator[T], error) {
	if len(validators) == 0 {
		return nil, ErrNoValidators
	}
	return &CompositeValidator[T]{validators: slices.Clone(validators)}, nil
}

// Validate runs every constituent against the same value, in the order
// supplied at construction, and concatenates their error messages. The result
// is valid iff every constituent reported valid.
func (c *CompositeValidator[T]) Validate(value T) ValidationResult {
	var errs []string
	for _, v := range c.validators {
		errs = append(errs, v.Validate(value).Errors...)
	}
	return ValidationResult{Errors: errs}
}

// Validators returns the constituent list, in evaluation order.
func (c *CompositeValidator[T]) Validators() []Validator[T] {
	return slices.Clone(c.validators)
}
