package converter

import (
	"product-catalog-api/internal/delivery/dto"
	"product-catalog-api/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:        user.ID.Hex(),
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// UserToOwnerResponse reduces a user to the display-safe subset embedded in
// product payloads.
func UserToOwnerResponse(user *entity.User) *dto.OwnerResponse {
	if user == nil {
		return nil
	}

	return &dto.OwnerResponse{
		ID:       user.ID.Hex(),
		Username: user.Username,
		Email:    user.Email,
	}
}
