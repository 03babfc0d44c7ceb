package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa um usuário do sistema.
type User struct {
	ID           string
	Name         string // mínimo 3 caracteres
	CPF          string // único, padrão xxx.xxx.xxx-xx
	Birthday     time.Time
	CEP          string
	PhoneNumber  string
	Email        string // único
	PasswordHash string // bcrypt, nunca plano no domínio após persistir
	Role         string // admin | user
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate verifica os invariantes do usuário (sem a senha, validada no caso de uso).
func (u *User) Validate() error {
	if len(u.Name) < 3 {
		return fieldError("name", "deve ter pelo menos 3 caracteres")
	}
	if err := ValidateCPF(u.CPF); err != nil {
		return err
	}
	if u.Birthday.IsZero() {
		return fieldError("birthday", "é obrigatório")
	}
	if err := ValidateCEP(u.CEP); err != nil {
		return err
	}
	if err := ValidatePhoneNumber(u.PhoneNumber); err != nil {
		return err
	}
	if err := ValidateEmail(u.Email); err != nil {
		return err
	}
	if u.Role != RoleAdmin && u.Role != RoleUser {
		return fieldError("role", "deve ser admin ou user")
	}
	return nil
}
