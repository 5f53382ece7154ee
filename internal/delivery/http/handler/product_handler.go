package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"product-catalog-api/internal/delivery/dto"
	"product-catalog-api/internal/delivery/http/middleware"
	"product-catalog-api/internal/usecase"
	"product-catalog-api/pkg/response"
	"product-catalog-api/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductHandler struct {
	log            *logrus.Logger
	validator      *validator.CustomValidator
	productUsecase usecase.ProductUsecase
}

func NewProductHandler(
	log *logrus.Logger,
	validator *validator.CustomValidator,
	productUsecase usecase.ProductUsecase,
) *ProductHandler {
	return &ProductHandler{
		log:            log,
		validator:      validator,
		productUsecase: productUsecase,
	}
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	req.Normalize()
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, "Validation failed", h.validator.Messages(err))
		return
	}

	product, err := h.productUsecase.Create(r.Context(), &req, userID)
	if err != nil {
		if errors.Is(err, usecase.ErrProductNameTaken) {
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		response.InternalServerError(w, "Failed to create product")
		return
	}

	response.Success(w, http.StatusCreated, "Product created successfully", product)
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, violations := dto.ParseProductListQuery(r.URL.Query())
	if len(violations) > 0 {
		response.ValidationError(w, strings.Join(violations, ", "), violations)
		return
	}

	result, err := h.productUsecase.List(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to fetch products")
		return
	}

	response.Success(w, http.StatusOK, "Products retrieved successfully", result)
}

func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	product, err := h.productUsecase.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrProductNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalServerError(w, "Failed to fetch product")
		return
	}

	response.Success(w, http.StatusOK, "Product retrieved successfully", product)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	id, ok := productID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	req.Normalize()
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, "Validation failed", h.validator.Messages(err))
		return
	}

	product, err := h.productUsecase.Update(r.Context(), id, &req, userID)
	if err != nil {
		h.writeMutationError(w, err, "Failed to update product")
		return
	}

	response.Success(w, http.StatusOK, "Product updated successfully", product)
}

func (h *ProductHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	id, ok := productID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, "Validation failed", h.validator.Messages(err))
		return
	}

	product, err := h.productUsecase.UpdateStock(r.Context(), id, *req.Quantity, userID)
	if err != nil {
		h.writeMutationError(w, err, "Failed to update product stock")
		return
	}

	response.Success(w, http.StatusOK, "Product stock updated successfully", product)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	id, ok := productID(w, r)
	if !ok {
		return
	}

	product, err := h.productUsecase.Delete(r.Context(), id, userID)
	if err != nil {
		h.writeMutationError(w, err, "Failed to delete product")
		return
	}

	response.Success(w, http.StatusOK, "Product deleted successfully", product)
}

func (h *ProductHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	generated, err := h.productUsecase.Generate(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrGenerationFailed), errors.Is(err, usecase.ErrGenerationInvalidJSON):
			response.BadGateway(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to generate product")
		}
		return
	}

	response.Success(w, http.StatusOK, "Product generated successfully", generated)
}

func (h *ProductHandler) writeMutationError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrProductNameTaken):
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, usecase.ErrNotOwnerOrMissing):
		response.Forbidden(w, err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}

// productID parses the path id, writing a 400 on malformed input.
func productID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID format", nil)
		return primitive.NilObjectID, false
	}
	return id, true
}
