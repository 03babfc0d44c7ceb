package entity

import (
	"fmt"
	"regexp"

	"github.com/estoque-pro/estoque-api/internal/domain"
)

// Padrões de documentos e contatos brasileiros.
var (
	cnpjPattern  = regexp.MustCompile(`^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$`)
	cpfPattern   = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
	cepPattern   = regexp.MustCompile(`^\d{5}-\d{3}$`)
	phonePattern = regexp.MustCompile(`^\+?\d{0,2} \(\d{2}\) \d{4,5}-\d{4}$`)
	emailPattern = regexp.MustCompile(`^.+@.+\..+$`)
)

// fieldError embrulha ErrInvalidInput com o campo e o motivo, para que o
// chamador possa testar errors.Is(err, domain.ErrInvalidInput).
func fieldError(field, reason string) error {
	return fmt.Errorf("%w: %s %s", domain.ErrInvalidInput, field, reason)
}

// ValidateCNPJ verifica o padrão XX.XXX.XXX/XXXX-XX.
func ValidateCNPJ(cnpj string) error {
	if !cnpjPattern.MatchString(cnpj) {
		return fieldError("cnpj", "deve seguir o padrão XX.XXX.XXX/XXXX-XX")
	}
	return nil
}

// ValidateCPF verifica o padrão xxx.xxx.xxx-xx.
func ValidateCPF(cpf string) error {
	if !cpfPattern.MatchString(cpf) {
		return fieldError("cpf", "deve seguir o padrão xxx.xxx.xxx-xx")
	}
	return nil
}

// ValidateCEP verifica o padrão xxxxx-xxx.
func ValidateCEP(cep string) error {
	if !cepPattern.MatchString(cep) {
		return fieldError("cep", "deve seguir o padrão xxxxx-xxx")
	}
	return nil
}

// ValidatePhoneNumber verifica o padrão +DD (DD) DDDDD-DDDD.
func ValidatePhoneNumber(phone string) error {
	if !phonePattern.MatchString(phone) {
		return fieldError("phone_number", "está em formato inválido")
	}
	return nil
}

// ValidateEmail faz uma verificação sintática mínima do email.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return fieldError("email", "deve ser válido")
	}
	return nil
}
