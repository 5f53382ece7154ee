package entity_test

import (
	"testing"

	"product-catalog-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotalValue(t *testing.T) {
	assert.Equal(t, 10.0, entity.ComputeTotalValue(2.5, 4))
	assert.Equal(t, 0.0, entity.ComputeTotalValue(10, 0))
	assert.Equal(t, 0.0, entity.ComputeTotalValue(0, 5))
}

func TestProductPatch_TouchesValue(t *testing.T) {
	name := "Desk Lamp"
	price := 10.0
	quantity := 3

	assert.False(t, (&entity.ProductPatch{}).TouchesValue())
	assert.False(t, (&entity.ProductPatch{ProductName: &name}).TouchesValue())
	assert.True(t, (&entity.ProductPatch{Price: &price}).TouchesValue())
	assert.True(t, (&entity.ProductPatch{Quantity: &quantity}).TouchesValue())
	assert.True(t, (&entity.ProductPatch{Price: &price, Quantity: &quantity}).TouchesValue())
}
