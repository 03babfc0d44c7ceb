package dto

import "time"

// CreateSupplierRequest body para POST /api/suppliers.
type CreateSupplierRequest struct {
	CNPJ       string `json:"cnpj"`
	SocialName string `json:"social_name"`
	CEP        string `json:"cep"`
	CategoryID string `json:"category_id"`
}

// UpdateSupplierRequest body para PUT /api/suppliers/:id.
type UpdateSupplierRequest struct {
	SocialName *string `json:"social_name,omitempty"`
	CEP        *string `json:"cep,omitempty"`
	CategoryID *string `json:"category_id,omitempty"`
}

// SupplierResponse representação de Supplier nas respostas.
type SupplierResponse struct {
	ID         string    `json:"id"`
	CNPJ       string    `json:"cnpj"`
	SocialName string    `json:"social_name"`
	CEP        string    `json:"cep"`
	CategoryID string    `json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
