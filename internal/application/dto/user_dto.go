package dto

import "time"

// RegisterRequest cuerpo de POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest cuerpo de POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse representación HTTP de un User (sin hash de contraseña).
type UserResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email,omitempty"`
	Role        string    `json:"role"`
	IsSuperuser bool      `json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`
}

// LoginResponse token + usuario. Register devuelve lo mismo: el sistema
// deja la sesión iniciada inmediatamente después del alta.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
