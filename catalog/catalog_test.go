package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earnhalal/Lasercurrencystore/models"
)

func TestProductByID(t *testing.T) {
	p, ok := ProductByID(1)
	require.True(t, ok)
	assert.Equal(t, 350.0, p.Price)
	assert.True(t, p.Available())

	_, ok = ProductByID(999)
	assert.False(t, ok)
}

func TestUnavailableEntriesAreMarked(t *testing.T) {
	stockEnd, ok := ProductByID(6)
	require.True(t, ok)
	assert.Equal(t, models.ProductStockEnd, stockEnd.Status)
	assert.False(t, stockEnd.Available())

	comingSoon, ok := ProductByID(7)
	require.True(t, ok)
	assert.Equal(t, models.ProductComingSoon, comingSoon.Status)
	assert.False(t, comingSoon.Available())
}

func TestProductsReturnsCopy(t *testing.T) {
	list := Products()
	require.NotEmpty(t, list)
	list[0].Price = -1

	again := Products()
	assert.Equal(t, 350.0, again[0].Price)
}

func TestReviewsFor(t *testing.T) {
	reviews := ReviewsFor(1)
	assert.Len(t, reviews, 2)
	assert.Empty(t, ReviewsFor(99))
}
