package dto

import "time"

// CreateUserRequest body para POST /api/users.
type CreateUserRequest struct {
	Name        string    `json:"name"`
	CPF         string    `json:"cpf"`
	Birthday    time.Time `json:"birthday"`
	CEP         string    `json:"cep"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email"`
	Password    string    `json:"password"`
	Role        string    `json:"role,omitempty"` // padrão: user
}

// UpdateUserRequest body para PUT /api/users/:id.
type UpdateUserRequest struct {
	Name        *string `json:"name,omitempty"`
	CEP         *string `json:"cep,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Email       *string `json:"email,omitempty"`
}

// UserResponse representação de User nas respostas (nunca expõe o hash da senha).
type UserResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CPF         string    `json:"cpf"`
	Birthday    time.Time `json:"birthday"`
	CEP         string    `json:"cep"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token + usuário autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
