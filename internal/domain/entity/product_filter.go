package entity

// Sort fields accepted by the product listing.
const (
	SortByCreatedAt   = "createdAt"
	SortByUpdatedAt   = "updatedAt"
	SortByProductName = "productName"
	SortByPrice       = "price"
	SortByCategory    = "category"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

var SortFields = []string{SortByCreatedAt, SortByUpdatedAt, SortByProductName, SortByPrice, SortByCategory}

// ProductFilter holds the validated, normalized parameters of a product
// listing request. Zero/nil fields mean "no constraint".
type ProductFilter struct {
	Search    string
	Category  string
	InStock   *bool
	CreatedBy string
	MinPrice  *float64
	MaxPrice  *float64

	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}
