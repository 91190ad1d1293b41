package simplecms

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ContentStatus is the domain type for content lifecycle states.
type ContentStatus string

// Content status constants (typed).
const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusPublished ContentStatus = "published"
	ContentStatusArchived  ContentStatus = "archived"
)

// Content kind constants. Used to key per-kind access matrices in a PolicySet.
const (
	KindArticle = "article"
	KindProduct = "product"
)

// Content is the minimal contract every manageable entity satisfies. The core
// never inspects domain fields directly; validators do that. The type parameter
// ties Clone to the concrete kind so snapshots keep their full field set.
type Content[T any] interface {
	// Meta returns the shared content fields. The returned pointer addresses
	// the receiver's own fields, not a copy.
	Meta() *ContentMeta

	// Clone returns an independent deep copy. Slices and pointer fields must
	// be duplicated so a snapshot is immune to later mutation of the source.
	Clone() T
}

// ContentMeta holds the fields common to all content kinds. Concrete kinds
// embed it.
//
// ID and CreatedAt are immutable after creation. UpdatedAt is refreshed on
// every mutation by the versioned content manager. PublishedAt is set exactly
// once, on the first transition into ContentStatusPublished.
type ContentMeta struct {
	ID          string         `json:"id"`
	Status      ContentStatus  `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	PublishedAt *time.Time     `json:"published_at,omitempty"`
}

// Article is a written content entity.
type Article struct {
	ContentMeta
	Title    string   `json:"title"`
	Body     string   `json:"body,omitempty"`
	AuthorID string   `json:"author_id"`
	Tags     []string `json:"tags,omitempty"`
}

// NewArticle creates a draft article with a fresh ID and UTC timestamps.
func NewArticle(title, body, authorID string) *Article {
	now := time.Now().UTC()
	return &Article{
		ContentMeta: ContentMeta{
			ID:        uuid.New().String(),
			Status:    ContentStatusDraft,
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:    title,
		Body:     body,
		AuthorID: authorID,
	}
}

// Meta returns the article's shared content fields.
func (a *Article) Meta() *ContentMeta { return &a.ContentMeta }

// Clone returns an independent deep copy of the article.
func (a *Article) Clone() *Article {
	c := *a
	c.Tags = slices.Clone(a.Tags)
	if a.PublishedAt != nil {
		t := *a.PublishedAt
		c.PublishedAt = &t
	}
	return &c
}

// Product is a sellable content entity.
//
// Price and Stock are pointers so that "not set" is distinguishable from zero;
// the built-in product validator treats an absent price the same as a negative
// one.
type Product struct {
	ContentMeta
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	SKU         string           `json:"sku,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Stock       *int             `json:"stock,omitempty"`
}

// NewProduct creates a draft product with a fresh ID and UTC timestamps.
func NewProduct(name string, price decimal.Decimal, stock int) *Product {
	now := time.Now().UTC()
	return &Product{
		ContentMeta: ContentMeta{
			ID:        uuid.New().String(),
			Status:    ContentStatusDraft,
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:  name,
		Price: &price,
		Stock: &stock,
	}
}

// Meta returns the product's shared content fields.
func (p *Product) Meta() *ContentMeta { return &p.ContentMeta }

// Clone returns an independent deep copy of the product.
func (p *Product) Clone() *Product {
	c := *p
	if p.Price != nil {
		price := *p.Price
		c.Price = &price
	}
	if p.Stock != nil {
		stock := *p.Stock
		c.Stock = &stock
	}
	if p.PublishedAt != nil {
		t := *p.PublishedAt
		c.PublishedAt = &t
	}
	return &c
}
