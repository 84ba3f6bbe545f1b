package dto

import "github.com/martijn/userhub/internal/core/domain"

// CreateUserRequest represents the user creation request. Presence of the
// required fields is validated in the service layer so that a missing field
// surfaces as a domain validation error rather than a binding error.
type CreateUserRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Phone    *string `json:"phone"`
}

// UpdateUserRequest represents a partial user update. Absent fields keep
// their stored value; an empty password keeps the stored digest.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Phone    *string `json:"phone"`
}

// UserResponse is the public representation of a user. The password digest
// is never part of it.
type UserResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone"`
}

// DeleteUserResponse confirms a deletion
type DeleteUserResponse struct {
	Message string `json:"message"`
}

// NewUserResponse projects a user onto its public representation. Both the
// API handlers and the web templates render users through this projection.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
	}
}
