package dto

import "github.com/jsamuelsen/feedback-analyzer/internal/domain"

// SignupRequest registers a user account.
type SignupRequest struct {
	Name     string `json:"name"     validate:"required,notempty,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest signs a user in.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AdminLoginRequest signs the administrator in.
type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is a registered account without its credential.
type UserResponse struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// FromUser converts an account.
func FromUser(u domain.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

// LoginResponse acknowledges a login.
type LoginResponse struct {
	Message string `json:"message"`
	Name    string `json:"name,omitempty"`
}

// CheckUserResponse reports whether the caller holds a user session.
type CheckUserResponse struct {
	User bool   `json:"user"`
	Name string `json:"name,omitempty"`
}

// CheckAdminResponse reports whether the caller holds an admin session.
type CheckAdminResponse struct {
	Admin bool `json:"admin"`
}
