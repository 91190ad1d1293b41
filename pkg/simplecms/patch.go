package simplecms

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Patch types use pointer fields: a nil field is "leave unchanged", a non-nil
// field overwrites. ID, CreatedAt, Status, and PublishedAt do not appear here
// on purpose: the first two are immutable, and status only changes through
// VersionedContent.UpdateStatus so transitions stay gated and PublishedAt is
// stamped exactly once.

// ArticlePatch is a partial update for an Article.
type ArticlePatch struct {
	Title    *string
	Body     *string
	AuthorID *string
	Tags     *[]string
}

// Apply overwrites the article's fields with the patch's non-nil fields.
func (p ArticlePatch) Apply(a *Article) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Body != nil {
		a.Body = *p.Body
	}
	if p.AuthorID != nil {
		a.AuthorID = *p.AuthorID
	}
	if p.Tags != nil {
		a.Tags = slices.Clone(*p.Tags)
	}
}

// ProductPatch is a partial update for a Product.
type ProductPatch struct {
	Name        *string
	Description *string
	SKU         *string
	Price       *decimal.Decimal
	Stock       *int
}

// Apply overwrites the product's fields with the patch's non-nil fields.
func (p ProductPatch) Apply(prod *Product) {
	if p.Name != nil {
		prod.Name = *p.Name
	}
	if p.Description != nil {
		prod.Description = *p.Description
	}
	if p.SKU != nil {
		prod.SKU = *p.SKU
	}
	if p.Price != nil {
		price := *p.Price
		prod.Price = &price
	}
	if p.Stock != nil {
		stock := *p.Stock
		prod.Stock = &stock
	}
}
