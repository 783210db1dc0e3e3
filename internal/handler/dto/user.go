// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"time"

	"github.com/userd/userd/internal/model"
)

// UserFields is the caller-settable field set, shared structurally by the
// request and response shapes.
type UserFields struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,min=1,max=100"`
}

// UserRequest represents the request body for creating or updating a user.
type UserRequest struct {
	UserFields
}

// ToUser converts the request into a User model ready for insertion.
// ID and CreatedAt are left for the store to assign.
func (r *UserRequest) ToUser() *model.User {
	return &model.User{
		Name:  r.Name,
		Email: r.Email,
	}
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID int64 `json:"id"`
	UserFields
	CreatedAt time.Time `json:"created_at"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ToUserResponse converts a User model to UserResponse DTO.
func ToUserResponse(user *model.User) *UserResponse {
	return &UserResponse{
		ID: user.ID,
		UserFields: UserFields{
			Name:  user.Name,
			Email: user.Email,
		},
		CreatedAt: user.CreatedAt,
	}
}

// ToUserListResponse converts a slice of User models to response DTOs.
// Always returns a non-nil slice so an empty list encodes as [].
func ToUserListResponse(users []model.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *ToUserResponse(&users[i])
	}
	return responses
}
