package dto

// LoginRequest represents login credentials for either console
type LoginRequest struct {
	Role     string `json:"role" binding:"required,oneof=admin student"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents student self-registration data
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents session token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn"`
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token   TokenResponse    `json:"token"`
	Role    string           `json:"role"`
	Student *StudentResponse `json:"student,omitempty"`
}
