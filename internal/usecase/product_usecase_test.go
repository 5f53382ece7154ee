package usecase_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"product-catalog-api/internal/delivery/dto"
	"product-catalog-api/internal/domain/entity"
	"product-catalog-api/internal/usecase"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MockProductRepository is a mock implementation of repository.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Insert(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindPage(ctx context.Context, filter *entity.ProductFilter, skip, limit int64) ([]entity.Product, error) {
	args := m.Called(ctx, filter, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Product), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context, filter *entity.ProductFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) FindByName(ctx context.Context, name string) (*entity.Product, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateOwned(ctx context.Context, id, ownerID primitive.ObjectID, patch *entity.ProductPatch) (*entity.Product, error) {
	args := m.Called(ctx, id, ownerID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) DeleteOwned(ctx context.Context, id, ownerID primitive.ObjectID) (*entity.Product, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Insert(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]entity.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[primitive.ObjectID]entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// stubAudit counts audit writes without touching storage.
type stubAudit struct {
	creates, updates, deletes int
}

func (s *stubAudit) LogCreate(ctx context.Context, userID *primitive.ObjectID, action, entityName, entityID string, newValue any) {
	s.creates++
}

func (s *stubAudit) LogUpdate(ctx context.Context, userID *primitive.ObjectID, action, entityName, entityID string, oldValue, newValue any) {
	s.updates++
}

func (s *stubAudit) LogDelete(ctx context.Context, userID *primitive.ObjectID, action, entityName, entityID string, oldValue any) {
	s.deletes++
}

// fakeGenerator returns a canned completion.
type fakeGenerator struct {
	text string
	err  error
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return f.text, f.err
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func duplicateKeyError() error {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "duplicate key error"}},
	}
}

func newProductUsecase(productRepo *MockProductRepository, userRepo *MockUserRepository, gen *fakeGenerator, audit *stubAudit) usecase.ProductUsecase {
	return usecase.NewProductUsecase(testLogger(), productRepo, userRepo, gen, audit)
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }

func TestProductUsecase_Create(t *testing.T) {
	productRepo := new(MockProductRepository)
	userRepo := new(MockUserRepository)
	audit := &stubAudit{}
	uc := newProductUsecase(productRepo, userRepo, &fakeGenerator{}, audit)

	ownerID := primitive.NewObjectID()
	owner := &entity.User{ID: ownerID, Username: "alice", Email: "alice@example.com"}

	req := &dto.CreateProductRequest{
		ProductName: "  Mechanical Keyboard  ",
		Category:    entity.CategoryElectronics,
		Price:       floatPtr(79.99),
		Quantity:    intPtr(4),
	}

	productRepo.On("FindByName", mock.Anything, "Mechanical Keyboard").Return(nil, nil).Once()
	productRepo.On("Insert", mock.Anything, mock.MatchedBy(func(p *entity.Product) bool {
		return p.ProductName == "Mechanical Keyboard" &&
			p.TotalValue == 319.96 &&
			p.InStock &&
			p.CreatedBy == ownerID
	})).Return(nil).Once()
	userRepo.On("FindByID", mock.Anything, ownerID).Return(owner, nil).Once()

	result, err := uc.Create(context.Background(), req, ownerID)

	require.NoError(t, err)
	assert.Equal(t, "Mechanical Keyboard", result.ProductName)
	assert.Equal(t, 319.96, result.TotalValue)
	assert.True(t, result.InStock)
	require.NotNil(t, result.CreatedBy)
	assert.Equal(t, "alice", result.CreatedBy.Username)
	assert.Equal(t, 1, audit.creates)
	productRepo.AssertExpectations(t)
}

func TestProductUsecase_Create_NameTaken(t *testing.T) {
	productRepo := new(MockProductRepository)
	userRepo := new(MockUserRepository)
	uc := newProductUsecase(productRepo, userRepo, &fakeGenerator{}, &stubAudit{})

	existing := &entity.Product{ID: primitive.NewObjectID(), ProductName: "Gaming Mouse"}

	// The pre-check is case-insensitive, so "gaming mouse" collides too.
	productRepo.On("FindByName", mock.Anything, "gaming mouse").Return(existing, nil).Once()

	req := &dto.CreateProductRequest{
		ProductName: "gaming mouse",
		Category:    entity.CategoryElectronics,
		Price:       floatPtr(25),
		Quantity:    intPtr(1),
	}

	result, err := uc.Create(context.Background(), req, primitive.NewObjectID())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, usecase.ErrProductNameTaken)
	productRepo.AssertExpectations(t)
}

func TestProductUsecase_Create_DuplicateKeyOnInsert(t *testing.T) {
	productRepo := new(MockProductRepository)
	userRepo := new(MockUserRepository)
	uc := newProductUsecase(productRepo, userRepo, &fakeGenerator{}, &stubAudit{})

	productRepo.On("FindByName", mock.Anything, "Desk Lamp").Return(nil, nil).Once()
	productRepo.On("Insert", mock.Anything, mock.Anything).Return(duplicateKeyError()).Once()

	req := &dto.CreateProductRequest{
		ProductName: "Desk Lamp",
		Category:    entity.CategoryElectronics,
		Price:       floatPtr(15),
		Quantity:    intPtr(2),
	}

	_, err := uc.Create(context.Background(), req, primitive.NewObjectID())

	assert.ErrorIs(t, err, usecase.ErrProductNameTaken)
}

func TestProductUsecase_List(t *testing.T) {
	productRepo := new(MockProductRepository)
	userRepo := new(MockUserRepository)
	uc := newProductUsecase(productRepo, userRepo, &fakeGenerator{}, &stubAudit{})

	ownerID := primitive.NewObjectID()
	filter := &entity.ProductFilter{Page: 2, Limit: 5, SortBy: entity.SortByCreatedAt, SortOrder: entity.SortDesc}

	products := []entity.Product{
		{ID: primitive.NewObjectID(), ProductName: "A", CreatedBy: ownerID},
		{ID: primitive.NewObjectID(), ProductName: "B", CreatedBy: ownerID},
	}
	owners := map[primitive.ObjectID]entity.User{
		ownerID: {ID: ownerID, Username: "bob", Email: "bob@example.com"},
	}

	productRepo.On("Count", mock.Anything, filter).Return(int64(12), nil).Once()
	productRepo.On("FindPage", mock.Anything, filter, int64(5), int64(5)).Return(products, nil).Once()
	userRepo.On("FindByIDs", mock.Anything, []primitive.ObjectID{ownerID}).Return(owners, nil).Once()

	result, err := uc.List(context.Background(), filter)

	require.NoError(t, err)
	assert.Len(t, result.Products, 2)
	assert.Equal(t, 2, result.Pagination.CurrentPage)
	assert.Equal(t, 3, result.Pagination.TotalPages)
	assert.Equal(t, int64(12), result.Pagination.TotalCount)
	assert.True(t, result.Pagination.HasNextPage)
	assert.True(t, result.Pagination.HasPrevPage)
	require.NotNil(t, result.Products[0].CreatedBy)
	assert.Equal(t, "bob", result.Products[0].CreatedBy.Username)
	productRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestProductUsecase_Get_NotFound(t *testing.T) {
	productRepo := new(MockProductRepository)
	userRepo := new(MockUserRepository)
	uc := newProductUsecase(productRepo, userRepo, &fakeGenerator{}, &stubAudit{})

	id := primitive.NewObjectID()
	productRepo.On("FindByID", mock.Anything, id).Return(nil, nil).Once()

	result, err := uc.Get(context.Background(), id)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, usecase.ErrProductNotFound)
}

func TestProductUsecase_Update(t *testing.T) {
	productRepo := new(MockProductRepository)
	userRepo := new(MockUserRepository)
	audit := &stubAudit{}
	uc := newProductUsecase(productRepo, userRepo, &fakeGenerator{}, audit)

	id := primitive.NewObjectID()
	ownerID := primitive.NewObjectID()
	owner := &entity.User{ID: ownerID, Username: "carol"}

	updated := &entity.Product{
		ID:          id,
		ProductName: "Standing Desk",
		Price:       300,
		Quantity:    2,
		TotalValue:  600,
		CreatedBy:   ownerID,
	}

	productRepo.On("UpdateOwned", mock.Anything, id, ownerID, mock.MatchedBy(func(p *entity.ProductPatch) bool {
		return p.ProductName != nil && *p.ProductName == "Standing Desk" && p.Price != nil && *p.Price == 300
	})).Return(updated, nil).Once()
	userRepo.On("FindByID", mock.Anything, ownerID).Return(owner, nil).Once()

	req := &dto.UpdateProductRequest{
		ProductName: strPtr("  Standing Desk  "),
		Price:       floatPtr(300),
	}

	result, err := uc.Update(context.Background(), id, req, ownerID)

	require.NoError(t, err)
	assert.Equal(t, float64(600), result.TotalValue)
	assert.Equal(t, 1, audit.updates)
	productRepo.AssertExpectations(t)
}

func TestProductUsecase_Update_NotOwnerOrMissing(t *testing.T) {
	productRepo := new(MockProductRepository)
	userRepo := new(MockUserRepository)
	uc := newProductUsecase(productRepo, userRepo, &fakeGenerator{}, &stubAudit{})

	id := primitive.NewObjectID()
	ownerID := primitive.NewObjectID()

	// Someone else's product and a nonexistent product are indistinguishable.
	productRepo.On("UpdateOwned", mock.Anything, id, ownerID, mock.Anything).Return(nil, nil).Once()

	result, err := uc.Update(context.Background(), id, &dto.UpdateProductRequest{Price: floatPtr(10)}, ownerID)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, usecase.ErrNotOwnerOrMissing)
}

func TestProductUsecase_UpdateStock(t *testing.T) {
	productRepo := new(MockProductRepository)
	userRepo := new(MockUserRepository)
	uc := newProductUsecase(productRepo, userRepo, &fakeGenerator{}, &stubAudit{})

	id := primitive.NewObjectID()
	ownerID := primitive.NewObjectID()
	owner := &entity.User{ID: ownerID}

	updated := &entity.Product{ID: id, Quantity: 0, InStock: false, CreatedBy: ownerID}

	// Zero quantity drives inStock to false.
	productRepo.On("UpdateOwned", mock.Anything, id, ownerID, mock.MatchedBy(func(p *entity.ProductPatch) bool {
		return p.Quantity != nil && *p.Quantity == 0 && p.InStock != nil && !*p.InStock
	})).Return(updated, nil).Once()
	userRepo.On("FindByID", mock.Anything, ownerID).Return(owner, nil).Once()

	result, err := uc.UpdateStock(context.Background(), id, 0, ownerID)

	require.NoError(t, err)
	assert.False(t, result.InStock)
	productRepo.AssertExpectations(t)
}

func TestProductUsecase_Delete(t *testing.T) {
	productRepo := new(MockProductRepository)
	userRepo := new(MockUserRepository)
	audit := &stubAudit{}
	uc := newProductUsecase(productRepo, userRepo, &fakeGenerator{}, audit)

	id := primitive.NewObjectID()
	ownerID := primitive.NewObjectID()
	owner := &entity.User{ID: ownerID}
	deleted := &entity.Product{ID: id, ProductName: "Old Chair", CreatedBy: ownerID}

	productRepo.On("DeleteOwned", mock.Anything, id, ownerID).Return(deleted, nil).Once()
	userRepo.On("FindByID", mock.Anything, ownerID).Return(owner, nil).Once()

	result, err := uc.Delete(context.Background(), id, ownerID)

	require.NoError(t, err)
	assert.Equal(t, "Old Chair", result.ProductName)
	assert.Equal(t, 1, audit.deletes)
}

func TestProductUsecase_Delete_NotOwnerOrMissing(t *testing.T) {
	productRepo := new(MockProductRepository)
	userRepo := new(MockUserRepository)
	uc := newProductUsecase(productRepo, userRepo, &fakeGenerator{}, &stubAudit{})

	id := primitive.NewObjectID()
	ownerID := primitive.NewObjectID()

	productRepo.On("DeleteOwned", mock.Anything, id, ownerID).Return(nil, nil).Once()

	result, err := uc.Delete(context.Background(), id, ownerID)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, usecase.ErrNotOwnerOrMissing)
}

func TestProductUsecase_Generate(t *testing.T) {
	gen := &fakeGenerator{
		text: "```json\n" + `{
  "productName": "Aurora Borealis Night Lamp",
  "category": "Electronics",
  "inStock": true,
  "price": 49.99,
  "quantity": 12,
  "description": "A lamp that projects northern lights onto the ceiling."
}` + "\n```",
	}

	uc := newProductUsecase(new(MockProductRepository), new(MockUserRepository), gen, &stubAudit{})

	result, err := uc.Generate(context.Background(), primitive.NewObjectID())

	require.NoError(t, err)
	assert.Equal(t, "Aurora Borealis Night Lamp", result.ProductName)
	assert.Equal(t, entity.CategoryElectronics, result.Category)
	assert.Equal(t, 49.99, result.Price)
	assert.Equal(t, 12, result.Quantity)
}

func TestProductUsecase_Generate_UpstreamFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("rate limited")}
	uc := newProductUsecase(new(MockProductRepository), new(MockUserRepository), gen, &stubAudit{})

	result, err := uc.Generate(context.Background(), primitive.NewObjectID())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, usecase.ErrGenerationFailed)
}

func TestProductUsecase_Generate_InvalidJSON(t *testing.T) {
	gen := &fakeGenerator{text: "Sure! Here is a product you might like."}
	uc := newProductUsecase(new(MockProductRepository), new(MockUserRepository), gen, &stubAudit{})

	result, err := uc.Generate(context.Background(), primitive.NewObjectID())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, usecase.ErrGenerationInvalidJSON)
}
