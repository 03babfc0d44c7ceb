package entity

import "time"

// Supplier representa um fornecedor (pessoa jurídica).
type Supplier struct {
	ID         string
	CNPJ       string // único, padrão XX.XXX.XXX/XXXX-XX
	SocialName string // razão social, mínimo 2 caracteres
	CEP        string // padrão xxxxx-xxx
	CategoryID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate verifica os invariantes do fornecedor.
func (s *Supplier) Validate() error {
	if err := ValidateCNPJ(s.CNPJ); err != nil {
		return err
	}
	if len(s.SocialName) < 2 {
		return fieldError("social_name", "deve ter pelo menos 2 caracteres")
	}
	if err := ValidateCEP(s.CEP); err != nil {
		return err
	}
	if s.CategoryID == "" {
		return fieldError("category_id", "é obrigatório")
	}
	return nil
}
