package repository

import (
	"regexp"

	"product-catalog-api/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// buildProductFilter translates validated listing parameters into a bson
// predicate. Absent parameters contribute nothing, so an unfiltered listing
// produces an empty document and matches every product.
func buildProductFilter(f *entity.ProductFilter) bson.M {
	filter := bson.M{}

	if f.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"productName": re},
			bson.M{"description": re},
		}
	}

	if f.Category != "" {
		filter["category"] = f.Category
	}

	if f.InStock != nil {
		filter["inStock"] = *f.InStock
	}

	if f.CreatedBy != "" {
		// Already validated as 24-hex by the query parser.
		if ownerID, err := primitive.ObjectIDFromHex(f.CreatedBy); err == nil {
			filter["createdBy"] = ownerID
		}
	}

	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		filter["price"] = price
	}

	return filter
}

// buildProductSort returns the sort document for the listing. The _id
// tie-break keeps pagination deterministic when sort keys collide.
func buildProductSort(f *entity.ProductFilter) bson.D {
	sortBy := f.SortBy
	if sortBy == "" {
		sortBy = entity.SortByCreatedAt
	}

	direction := -1
	if f.SortOrder == entity.SortAsc {
		direction = 1
	}

	return bson.D{
		{Key: sortBy, Value: direction},
		{Key: "_id", Value: direction},
	}
}
