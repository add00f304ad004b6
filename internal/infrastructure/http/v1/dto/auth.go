package dto

import (
	"taller/internal/domain/auth"
)

// RegisterRequest for user registration.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"nombre,omitempty"`
	LastName  string `json:"apellido,omitempty"`
}

// ToAuthRequest converts to domain request.
func (r *RegisterRequest) ToAuthRequest() auth.RegisterRequest {
	return auth.RegisterRequest{
		Email:     r.Email,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

// LoginRequest for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ToCredentials converts to domain credentials.
func (r *LoginRequest) ToCredentials() auth.Credentials {
	return auth.Credentials{
		Email:    r.Email,
		Password: r.Password,
	}
}

// RefreshTokenRequest for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AssignRoleRequest for assigning a role to a user.
type AssignRoleRequest struct {
	UserID   string `json:"id_usuario" binding:"required,uuid"`
	RoleCode string `json:"rol" binding:"required"`
}

// CreateRoleRequest for creating a role.
type CreateRoleRequest struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"nombre" binding:"required"`
	Description string `json:"descripcion,omitempty"`
}

// LoginResponse includes tokens and user info.
type LoginResponse struct {
	Tokens *auth.TokenPair `json:"tokens"`
	User   *auth.User      `json:"usuario"`
}
