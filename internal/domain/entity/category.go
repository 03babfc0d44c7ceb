package entity

import "time"

// Category é dado de referência; produtos e fornecedores apontam para ela.
type Category struct {
	ID        string
	Name      string // mínimo 3 caracteres
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate verifica os invariantes da categoria.
func (c *Category) Validate() error {
	if len(c.Name) < 3 {
		return fieldError("name", "deve ter pelo menos 3 caracteres")
	}
	return nil
}
