package dto_test

import (
	"net/url"
	"testing"

	"product-catalog-api/internal/delivery/dto"
	"product-catalog-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProductListQuery_Defaults(t *testing.T) {
	filter, violations := dto.ParseProductListQuery(url.Values{})

	require.Empty(t, violations)
	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 10, filter.Limit)
	assert.Equal(t, entity.SortByCreatedAt, filter.SortBy)
	assert.Equal(t, entity.SortDesc, filter.SortOrder)
	assert.Empty(t, filter.Search)
	assert.Nil(t, filter.InStock)
	assert.Nil(t, filter.MinPrice)
	assert.Nil(t, filter.MaxPrice)
}

func TestParseProductListQuery_AllParameters(t *testing.T) {
	values := url.Values{
		"page":      {"3"},
		"limit":     {"25"},
		"search":    {"  laptop  "},
		"category":  {"Electronics"},
		"inStock":   {"true"},
		"minPrice":  {"10.5"},
		"maxPrice":  {"200"},
		"sortBy":    {"price"},
		"sortOrder": {"asc"},
		"createdBy": {"507f1f77bcf86cd799439011"},
	}

	filter, violations := dto.ParseProductListQuery(values)

	require.Empty(t, violations)
	assert.Equal(t, 3, filter.Page)
	assert.Equal(t, 25, filter.Limit)
	assert.Equal(t, "laptop", filter.Search)
	assert.Equal(t, "Electronics", filter.Category)
	require.NotNil(t, filter.InStock)
	assert.True(t, *filter.InStock)
	require.NotNil(t, filter.MinPrice)
	assert.Equal(t, 10.5, *filter.MinPrice)
	require.NotNil(t, filter.MaxPrice)
	assert.Equal(t, float64(200), *filter.MaxPrice)
	assert.Equal(t, "price", filter.SortBy)
	assert.Equal(t, entity.SortAsc, filter.SortOrder)
	assert.Equal(t, "507f1f77bcf86cd799439011", filter.CreatedBy)
}

func TestParseProductListQuery_InvalidPage(t *testing.T) {
	for _, raw := range []string{"0", "-1", "abc", "1.5"} {
		_, violations := dto.ParseProductListQuery(url.Values{"page": {raw}})
		assert.Contains(t, violations, "page must be a positive integer", "page=%s", raw)
	}
}

func TestParseProductListQuery_InvalidLimit(t *testing.T) {
	for _, raw := range []string{"0", "101", "xyz"} {
		_, violations := dto.ParseProductListQuery(url.Values{"limit": {raw}})
		assert.Contains(t, violations, "limit must be a positive integer between 1 and 100", "limit=%s", raw)
	}
}

func TestParseProductListQuery_InvalidInStock(t *testing.T) {
	_, violations := dto.ParseProductListQuery(url.Values{"inStock": {"yes"}})

	assert.Contains(t, violations, `inStock must be "true" or "false"`)
}

func TestParseProductListQuery_PriceRangeInverted(t *testing.T) {
	values := url.Values{
		"minPrice": {"100"},
		"maxPrice": {"50"},
	}

	_, violations := dto.ParseProductListQuery(values)

	assert.Contains(t, violations, "minPrice cannot be greater than maxPrice")
}

func TestParseProductListQuery_NegativePrice(t *testing.T) {
	_, violations := dto.ParseProductListQuery(url.Values{"minPrice": {"-5"}})
	assert.Contains(t, violations, "minPrice must be a non-negative number")

	_, violations = dto.ParseProductListQuery(url.Values{"maxPrice": {"-1"}})
	assert.Contains(t, violations, "maxPrice must be a non-negative number")
}

func TestParseProductListQuery_InvalidSort(t *testing.T) {
	_, violations := dto.ParseProductListQuery(url.Values{"sortBy": {"color"}})
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "sortBy must be one of:")

	_, violations = dto.ParseProductListQuery(url.Values{"sortOrder": {"up"}})
	assert.Contains(t, violations, `sortOrder must be "asc" or "desc"`)
}

func TestParseProductListQuery_InvalidCreatedBy(t *testing.T) {
	_, violations := dto.ParseProductListQuery(url.Values{"createdBy": {"not-an-object-id"}})

	assert.Contains(t, violations, "createdBy must be a valid ObjectId")
}

func TestParseProductListQuery_CollectsAllViolations(t *testing.T) {
	values := url.Values{
		"page":    {"zero"},
		"limit":   {"9999"},
		"inStock": {"maybe"},
	}

	filter, violations := dto.ParseProductListQuery(values)

	assert.Nil(t, filter)
	assert.Len(t, violations, 3)
}
