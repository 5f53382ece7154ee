package dto

import (
	"net/url"
	"strconv"
	"strings"

	"product-catalog-api/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ParseProductListQuery validates and normalizes the listing query string.
// It never fails fast: every violation is collected so the client sees all of
// them in one round trip. On success the returned filter carries defaults for
// every absent parameter.
func ParseProductListQuery(values url.Values) (*entity.ProductFilter, []string) {
	var violations []string

	filter := &entity.ProductFilter{
		Page:      DefaultPage,
		Limit:     DefaultLimit,
		SortBy:    entity.SortByCreatedAt,
		SortOrder: entity.SortDesc,
	}

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			violations = append(violations, "page must be a positive integer")
		} else {
			filter.Page = page
		}
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > MaxLimit {
			violations = append(violations, "limit must be a positive integer between 1 and 100")
		} else {
			filter.Limit = limit
		}
	}

	// Empty search/category after trimming means "no constraint".
	filter.Search = strings.TrimSpace(values.Get("search"))
	filter.Category = strings.TrimSpace(values.Get("category"))

	if raw := values.Get("inStock"); raw != "" {
		switch strings.ToLower(raw) {
		case "true":
			inStock := true
			filter.InStock = &inStock
		case "false":
			inStock := false
			filter.InStock = &inStock
		default:
			violations = append(violations, `inStock must be "true" or "false"`)
		}
	}

	if raw := values.Get("minPrice"); raw != "" {
		minPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil || minPrice < 0 {
			violations = append(violations, "minPrice must be a non-negative number")
		} else {
			filter.MinPrice = &minPrice
		}
	}

	if raw := values.Get("maxPrice"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil || maxPrice < 0 {
			violations = append(violations, "maxPrice must be a non-negative number")
		} else {
			filter.MaxPrice = &maxPrice
		}
	}

	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		violations = append(violations, "minPrice cannot be greater than maxPrice")
	}

	if raw := values.Get("sortBy"); raw != "" {
		if contains(entity.SortFields, raw) {
			filter.SortBy = raw
		} else {
			violations = append(violations, "sortBy must be one of: "+strings.Join(entity.SortFields, ", "))
		}
	}

	if raw := values.Get("sortOrder"); raw != "" {
		order := strings.ToLower(raw)
		if order == entity.SortAsc || order == entity.SortDesc {
			filter.SortOrder = order
		} else {
			violations = append(violations, `sortOrder must be "asc" or "desc"`)
		}
	}

	if raw := strings.TrimSpace(values.Get("createdBy")); raw != "" {
		if _, err := primitive.ObjectIDFromHex(raw); err != nil {
			violations = append(violations, "createdBy must be a valid ObjectId")
		} else {
			filter.CreatedBy = raw
		}
	}

	if len(violations) > 0 {
		return nil, violations
	}

	return filter, nil
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
