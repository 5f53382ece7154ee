package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"product-catalog-api/internal/domain/entity"
	domainRepo "product-catalog-api/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type productRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) domainRepo.ProductRepository {
	return &productRepository{
		collection: db.Collection(entity.Product{}.CollectionName()),
	}
}

func (r *productRepository) Insert(ctx context.Context, product *entity.Product) error {
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		return err
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		product.ID = id
	}
	return nil
}

func (r *productRepository) FindPage(ctx context.Context, filter *entity.ProductFilter, skip, limit int64) ([]entity.Product, error) {
	opts := options.Find().
		SetSort(buildProductSort(filter)).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, buildProductFilter(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []entity.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) Count(ctx context.Context, filter *entity.ProductFilter) (int64, error) {
	return r.collection.CountDocuments(ctx, buildProductFilter(filter))
}

func (r *productRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Product, error) {
	var product entity.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindByName(ctx context.Context, name string) (*entity.Product, error) {
	re := primitive.Regex{Pattern: "^" + regexp.QuoteMeta(name) + "$", Options: "i"}

	var product entity.Product
	err := r.collection.FindOne(ctx, bson.M{"productName": re}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) UpdateOwned(ctx context.Context, id, ownerID primitive.ObjectID, patch *entity.ProductPatch) (*entity.Product, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.ProductName != nil {
		set["productName"] = *patch.ProductName
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Quantity != nil {
		set["quantity"] = *patch.Quantity
	}
	if patch.InStock != nil {
		set["inStock"] = *patch.InStock
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}

	// Pipeline update: the second stage sees the patched price/quantity, so
	// totalValue is recomputed in the same atomic operation as the ownership
	// check. Patches that leave price and quantity alone skip the recompute.
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$set", Value: set}},
	}
	if patch.TouchesValue() {
		pipeline = append(pipeline, bson.D{{Key: "$set", Value: bson.M{
			"totalValue": bson.M{"$multiply": bson.A{"$price", "$quantity"}},
		}}})
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var product entity.Product
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id, "createdBy": ownerID}, pipeline, opts).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) DeleteOwned(ctx context.Context, id, ownerID primitive.ObjectID) (*entity.Product, error) {
	var product entity.Product
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id, "createdBy": ownerID}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}
