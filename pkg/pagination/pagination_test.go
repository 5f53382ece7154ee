package pagination_test

import (
	"testing"

	"product-catalog-api/pkg/pagination"

	"github.com/stretchr/testify/assert"
)

func TestNew_MiddlePage(t *testing.T) {
	meta := pagination.New(2, 5, 12)

	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, int64(12), meta.TotalCount)
	assert.Equal(t, 5, meta.Limit)
	assert.True(t, meta.HasNextPage)
	assert.True(t, meta.HasPrevPage)
	assert.Equal(t, int64(5), meta.Skip())
}

func TestNew_FirstPage(t *testing.T) {
	meta := pagination.New(1, 10, 25)

	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNextPage)
	assert.False(t, meta.HasPrevPage)
	assert.Equal(t, int64(0), meta.Skip())
}

func TestNew_LastPage(t *testing.T) {
	meta := pagination.New(3, 10, 25)

	assert.False(t, meta.HasNextPage)
	assert.True(t, meta.HasPrevPage)
	assert.Equal(t, int64(20), meta.Skip())
}

func TestNew_ExactMultiple(t *testing.T) {
	meta := pagination.New(2, 10, 20)

	assert.Equal(t, 2, meta.TotalPages)
	assert.False(t, meta.HasNextPage)
}

func TestNew_EmptyResultSet(t *testing.T) {
	meta := pagination.New(1, 10, 0)

	assert.Equal(t, 1, meta.CurrentPage)
	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNextPage)
	assert.False(t, meta.HasPrevPage)
}

func TestNew_PageBeyondEnd(t *testing.T) {
	meta := pagination.New(5, 10, 12)

	assert.Equal(t, 5, meta.CurrentPage)
	assert.Equal(t, 2, meta.TotalPages)
	assert.False(t, meta.HasNextPage)
	assert.True(t, meta.HasPrevPage)
}
