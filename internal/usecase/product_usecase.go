package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"time"

	"product-catalog-api/internal/converter"
	"product-catalog-api/internal/delivery/dto"
	"product-catalog-api/internal/domain/entity"
	"product-catalog-api/internal/domain/repository"
	"product-catalog-api/internal/infrastructure/ai"
	"product-catalog-api/internal/service"
	"product-catalog-api/pkg/pagination"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrProductNameTaken = errors.New("product with this name already exists")
	// ErrNotOwnerOrMissing deliberately merges "not yours" and "does not
	// exist" so a caller cannot probe for other users' products.
	ErrNotOwnerOrMissing     = errors.New("not authorized or product not found")
	ErrGenerationFailed      = errors.New("no product generated from upstream")
	ErrGenerationInvalidJSON = errors.New("generated content is not valid JSON")
)

type ProductUsecase interface {
	Create(ctx context.Context, req *dto.CreateProductRequest, ownerID primitive.ObjectID) (*dto.ProductResponse, error)
	List(ctx context.Context, filter *entity.ProductFilter) (*dto.ProductListResponse, error)
	Get(ctx context.Context, id primitive.ObjectID) (*dto.ProductResponse, error)
	Update(ctx context.Context, id primitive.ObjectID, req *dto.UpdateProductRequest, ownerID primitive.ObjectID) (*dto.ProductResponse, error)
	UpdateStock(ctx context.Context, id primitive.ObjectID, quantity int, ownerID primitive.ObjectID) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id, ownerID primitive.ObjectID) (*dto.ProductResponse, error)
	Generate(ctx context.Context, ownerID primitive.ObjectID) (*dto.GeneratedProduct, error)
}

type productUsecase struct {
	log         *logrus.Logger
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	generator   ai.TextGenerator
	audit       service.AuditService
}

func NewProductUsecase(
	log *logrus.Logger,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	generator ai.TextGenerator,
	audit service.AuditService,
) ProductUsecase {
	return &productUsecase{
		log:         log,
		productRepo: productRepo,
		userRepo:    userRepo,
		generator:   generator,
		audit:       audit,
	}
}

func (u *productUsecase) Create(ctx context.Context, req *dto.CreateProductRequest, ownerID primitive.ObjectID) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(req.ProductName)

	// Advisory duplicate pre-check; the unique index is the hard guarantee.
	existing, err := u.productRepo.FindByName(ctx, name)
	if err != nil {
		u.log.Warnf("Failed to check product name: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrProductNameTaken
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	product := &entity.Product{
		ProductName: name,
		Category:    req.Category,
		Price:       *req.Price,
		Quantity:    *req.Quantity,
		TotalValue:  entity.ComputeTotalValue(*req.Price, *req.Quantity),
		InStock:     inStock,
		Description: strings.TrimSpace(req.Description),
		CreatedBy:   ownerID,
	}

	if err := u.productRepo.Insert(ctx, product); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrProductNameTaken
		}
		u.log.Warnf("Failed to insert product: %+v", err)
		return nil, err
	}

	u.audit.LogCreate(ctx, &ownerID, entity.AuditActionProductCreate, "product", product.ID.Hex(), product)

	return converter.ProductToResponse(product, u.resolveOwner(ctx, ownerID)), nil
}

func (u *productUsecase) List(ctx context.Context, filter *entity.ProductFilter) (*dto.ProductListResponse, error) {
	totalCount, err := u.productRepo.Count(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to count products: %+v", err)
		return nil, err
	}

	meta := pagination.New(filter.Page, filter.Limit, totalCount)

	products, err := u.productRepo.FindPage(ctx, filter, meta.Skip(), int64(filter.Limit))
	if err != nil {
		u.log.Warnf("Failed to fetch products: %+v", err)
		return nil, err
	}

	owners, err := u.userRepo.FindByIDs(ctx, ownerIDs(products))
	if err != nil {
		u.log.Warnf("Failed to resolve product owners: %+v", err)
		owners = nil
	}

	return &dto.ProductListResponse{
		Products:   converter.ProductsToResponses(products, owners),
		Pagination: meta,
	}, nil
}

func (u *productUsecase) Get(ctx context.Context, id primitive.ObjectID) (*dto.ProductResponse, error) {
	product, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find product: %+v", err)
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	return converter.ProductToResponse(product, u.resolveOwner(ctx, product.CreatedBy)), nil
}

func (u *productUsecase) Update(ctx context.Context, id primitive.ObjectID, req *dto.UpdateProductRequest, ownerID primitive.ObjectID) (*dto.ProductResponse, error) {
	patch := req.Patch()
	if patch.ProductName != nil {
		name := strings.TrimSpace(*patch.ProductName)
		patch.ProductName = &name
	}
	if patch.Description != nil {
		description := strings.TrimSpace(*patch.Description)
		patch.Description = &description
	}

	product, err := u.productRepo.UpdateOwned(ctx, id, ownerID, patch)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrProductNameTaken
		}
		u.log.Warnf("Failed to update product: %+v", err)
		return nil, err
	}
	if product == nil {
		return nil, ErrNotOwnerOrMissing
	}

	u.audit.LogUpdate(ctx, &ownerID, entity.AuditActionProductUpdate, "product", id.Hex(), nil, product)

	return converter.ProductToResponse(product, u.resolveOwner(ctx, ownerID)), nil
}

// UpdateStock sets the quantity and derives inStock from it; totalValue is
// recomputed like any other quantity change.
func (u *productUsecase) UpdateStock(ctx context.Context, id primitive.ObjectID, quantity int, ownerID primitive.ObjectID) (*dto.ProductResponse, error) {
	inStock := quantity > 0
	patch := &entity.ProductPatch{
		Quantity: &quantity,
		InStock:  &inStock,
	}

	product, err := u.productRepo.UpdateOwned(ctx, id, ownerID, patch)
	if err != nil {
		u.log.Warnf("Failed to update product stock: %+v", err)
		return nil, err
	}
	if product == nil {
		return nil, ErrNotOwnerOrMissing
	}

	u.audit.LogUpdate(ctx, &ownerID, entity.AuditActionProductStock, "product", id.Hex(), nil, product)

	return converter.ProductToResponse(product, u.resolveOwner(ctx, ownerID)), nil
}

func (u *productUsecase) Delete(ctx context.Context, id, ownerID primitive.ObjectID) (*dto.ProductResponse, error) {
	product, err := u.productRepo.DeleteOwned(ctx, id, ownerID)
	if err != nil {
		u.log.Warnf("Failed to delete product: %+v", err)
		return nil, err
	}
	if product == nil {
		return nil, ErrNotOwnerOrMissing
	}

	u.audit.LogDelete(ctx, &ownerID, entity.AuditActionProductDelete, "product", id.Hex(), product)

	return converter.ProductToResponse(product, u.resolveOwner(ctx, ownerID)), nil
}

const generatePromptTemplate = `
Generate a unique and realistic product as a JSON object **only** with these fields.
Make it creative and different from typical products.

Category focus: %s
Random seed: %d
Timestamp: %d

Create a product that is unique and creative. Avoid generic names like "Wireless Headphones", "Smart Watch", etc.

{
  "productName": "string (make this unique and creative)",
  "category": "Electronics|Clothing|Food",
  "inStock": true|false,
  "price": number (between 10 and 500),
  "quantity": number (between 1 and 100),
  "description": "string (detailed and unique description)"
}

Do not include any extra text, explanation, or comments. Output must be valid JSON.
Make the product name completely unique and creative.
`

func (u *productUsecase) Generate(ctx context.Context, ownerID primitive.ObjectID) (*dto.GeneratedProduct, error) {
	category := entity.Categories[rand.IntN(len(entity.Categories))]
	prompt := fmt.Sprintf(generatePromptTemplate, category, rand.IntN(10000), time.Now().UnixMilli())

	text, err := u.generator.Generate(ctx, prompt)
	if err != nil {
		u.log.Warnf("Text generation failed: %+v", err)
		return nil, ErrGenerationFailed
	}

	var generated dto.GeneratedProduct
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &generated); err != nil {
		u.log.Warnf("Generated content is not valid JSON: %+v", err)
		return nil, ErrGenerationInvalidJSON
	}

	u.audit.LogCreate(ctx, &ownerID, entity.AuditActionProductGenerate, "product", "", generated)

	return &generated, nil
}

var codeFenceRe = regexp.MustCompile("```(?:json)?")

// stripCodeFences removes markdown fencing the model sometimes wraps its
// JSON output in. Best-effort cleanup, not a parser.
func stripCodeFences(s string) string {
	return strings.TrimSpace(codeFenceRe.ReplaceAllString(s, ""))
}

func (u *productUsecase) resolveOwner(ctx context.Context, id primitive.ObjectID) *entity.User {
	owner, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to resolve product owner: %+v", err)
		return nil
	}
	return owner
}

func ownerIDs(products []entity.Product) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{}, len(products))
	ids := make([]primitive.ObjectID, 0, len(products))
	for _, product := range products {
		if _, ok := seen[product.CreatedBy]; ok {
			continue
		}
		seen[product.CreatedBy] = struct{}{}
		ids = append(ids, product.CreatedBy)
	}
	return ids
}
