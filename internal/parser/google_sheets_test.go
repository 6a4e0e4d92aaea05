package parser

import (
	"testing"

	"github.com/DarshanRT1/Hotel-Booking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRows(t *testing.T) {
	rows := [][]interface{}{
		{"name", "description", "price", "category", "image_url"},
		{"Samosa", "Crispy pastry", "1.50", "Appetizer", "https://img/samosa.jpg"},
		{},
		{"", "", ""},
		{" Kulfi ", "Ice cream", 2.75, "Dessert"},
		{"Mystery", "No price", "n/a", "Special"},
		{"", "orphan description", "3.00", "Dessert"},
	}

	items, skipped := ParseRows(rows)

	require.Len(t, items, 2)
	assert.Equal(t, 2, skipped)

	assert.Equal(t, "Samosa", items[0].Name)
	assert.Equal(t, 1.5, items[0].Price)
	assert.Equal(t, domain.CategoryAppetizer, items[0].Category)
	assert.Equal(t, "https://img/samosa.jpg", items[0].ImageURL)

	assert.Equal(t, "Kulfi", items[1].Name)
	assert.Equal(t, 2.75, items[1].Price)
	assert.Equal(t, domain.CategoryDessert, items[1].Category)
	assert.Empty(t, items[1].ImageURL)
}

func TestParseRowsHeaderOnly(t *testing.T) {
	items, skipped := ParseRows([][]interface{}{{"name", "description", "price"}})
	assert.Empty(t, items)
	assert.Zero(t, skipped)
}
