package simplecms

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// ValidationResult is the outcome of validating one content value. An invalid
// value is a normal, fully-described result, never an error return.
type ValidationResult struct {
	Errors []string `json:"errors"`
}

// IsValid reports whether the value passed every rule. Deriving it from the
// error list keeps it impossible for the two to disagree.
func (r ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// Validator validates one content value of kind T. Validate must be pure: no
// side effects, no mutation of the value, and it must report every violated
// rule rather than stopping at the first.
type Validator[T any] interface {
	Validate(value T) ValidationResult
}

// ValidatorFunc adapts a plain function to the Validator interface.
type ValidatorFunc[T any] func(value T) ValidationResult

// Validate calls f(value).
func (f ValidatorFunc[T]) Validate(value T) ValidationResult {
	return f(value)
}

// NewArticleValidator returns the built-in validator for articles: title,
// body, and author are required.
func NewArticleValidator() Validator[*Article] {
	return articleValidator{}
}

type articleValidator struct{}

func (articleValidator) Validate(a *Article) ValidationResult {
	var errs []string
	// Rules run field by field, in declared order, so every violation is
	// collected and message order is stable.
	if err := validation.Validate(a.Title, validation.Required.Error("Title is required.")); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validation.Validate(a.Body, validation.Required.Error("Content is required.")); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validation.Validate(a.AuthorID, validation.Required.Error("Author is required.")); err != nil {
		errs = append(errs, err.Error())
	}
	return ValidationResult{Errors: errs}
}

// NewProductValidator returns the built-in validator for products: name is
// required, price must be present and non-negative, stock must be present and
// non-negative.
func NewProductValidator() Validator[*Product] {
	return productValidator{}
}

type productValidator struct{}

func (productValidator) Validate(p *Product) ValidationResult {
	var errs []string
	if err := validation.Validate(p.Name, validation.Required.Error("Name is required.")); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validation.Validate(p.Price, validation.By(positivePrice)); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validation.Validate(p.Stock, validation.By(nonNegativeStock)); err != nil {
		errs = append(errs, err.Error())
	}
	return ValidationResult{Errors: errs}
}

// positivePrice flags an absent price and a negative price as the same single
// violation.
func positivePrice(value interface{}) error {
	price, _ := value.(*decimal.Decimal)
	if price == nil || price.Sign() < 0 {
		return errors.New("Price must be a positive number.")
	}
	return nil
}

// nonNegativeStock flags an absent stock level and a negative one as the same
// single violation.
func nonNegativeStock(value interface{}) error {
	stock, _ := value.(*int)
	if stock == nil || *stock < 0 {
		return errors.New("Stock cannot be negative.")
	}
	return nil
}
