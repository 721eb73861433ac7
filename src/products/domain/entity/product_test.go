package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct_CreatesActiveProduct(t *testing.T) {
	product, err := NewProduct("Teclado", "Teclado mecánico", "Periféricos", decimal.NewFromFloat(89.90), "")
	require.NoError(t, err)

	assert.Equal(t, "Teclado", product.Name)
	assert.True(t, product.IsActive)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", product.ID.String())
}

func TestNewProduct_RequiresName(t *testing.T) {
	_, err := NewProduct("", "desc", "cat", decimal.NewFromInt(10), "")
	assert.ErrorIs(t, err, ErrProductNameRequired)
}

func TestNewProduct_RequiresPositivePrice(t *testing.T) {
	_, err := NewProduct("Teclado", "", "", decimal.Zero, "")
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = NewProduct("Teclado", "", "", decimal.NewFromInt(-1), "")
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestProduct_UpdateRevalidates(t *testing.T) {
	product, err := NewProduct("Teclado", "", "Periféricos", decimal.NewFromInt(50), "")
	require.NoError(t, err)

	err = product.Update("Teclado Pro", "nueva descripción", "Periféricos", decimal.NewFromInt(120), "http://img")
	require.NoError(t, err)
	assert.Equal(t, "Teclado Pro", product.Name)
	assert.True(t, product.Price.Equal(decimal.NewFromInt(120)))
	assert.NotNil(t, product.UpdatedAt)

	err = product.Update("", "", "", decimal.NewFromInt(10), "")
	assert.ErrorIs(t, err, ErrProductNameRequired)
	assert.Equal(t, "Teclado Pro", product.Name, "un update inválido no debe modificar el producto")
}

func TestProduct_ActivateDeactivate(t *testing.T) {
	product, err := NewProduct("Teclado", "", "", decimal.NewFromInt(50), "")
	require.NoError(t, err)

	product.Deactivate()
	assert.False(t, product.IsActive)

	product.Activate()
	assert.True(t, product.IsActive)
}
