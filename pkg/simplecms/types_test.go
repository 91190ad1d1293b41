package simplecms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-cms/pkg/simplecms"
)

func TestNewArticleDefaults(t *testing.T) {
	article := simplecms.NewArticle("T", "C", "u1")

	assert.NotEmpty(t, article.ID)
	assert.Equal(t, simplecms.ContentStatusDraft, article.Status)
	assert.False(t, article.CreatedAt.IsZero())
	assert.Equal(t, article.CreatedAt, article.UpdatedAt)
	assert.Nil(t, article.PublishedAt)

	other := simplecms.NewArticle("T", "C", "u1")
	assert.NotEqual(t, article.ID, other.ID)
}

func TestArticleClone(t *testing.T) {
	article := simplecms.NewArticle("T", "C", "u1")
	article.Tags = []string{"news", "go"}

	clone := article.Clone()
	require.Equal(t, article, clone)

	clone.Title = "changed"
	clone.Tags[0] = "changed"
	assert.Equal(t, "T", article.Title)
	assert.Equal(t, "news", article.Tags[0])
}

func TestNewProductDefaults(t *testing.T) {
	product := simplecms.NewProduct("Widget", decimalFromString(t, "19.99"), 10)

	assert.NotEmpty(t, product.ID)
	assert.Equal(t, simplecms.ContentStatusDraft, product.Status)
	require.NotNil(t, product.Price)
	assert.True(t, product.Price.Equal(decimalFromString(t, "19.99")))
	require.NotNil(t, product.Stock)
	assert.Equal(t, 10, *product.Stock)
}

func TestProductClone(t *testing.T) {
	product := simplecms.NewProduct("Widget", decimalFromString(t, "19.99"), 10)

	clone := product.Clone()
	require.Equal(t, product, clone)
	assert.NotSame(t, product.Price, clone.Price)
	assert.NotSame(t, product.Stock, clone.Stock)

	*clone.Stock = 99
	assert.Equal(t, 10, *product.Stock)
}
