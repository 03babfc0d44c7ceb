package repository

import (
	"time"

	"github.com/estoque-pro/estoque-api/internal/domain/entity"
)

// ProductRepository define o porto de persistência para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// Update grava os campos cadastrais (nome, referências, preço, validade).
	// Nunca escreve quantity: o saldo só muda por IncrementQuantity ou
	// SetQuantity, para que uma edição cadastral não apague um incremento
	// concorrente de completude.
	Update(product *entity.Product) error
	// IncrementQuantity soma delta ao saldo do produto com UPDATE atômico
	// (quantity = quantity + delta), evitando lost updates entre completudes
	// concorrentes. Devolve ErrNotFound se o produto não existir.
	IncrementQuantity(productID string, delta int) error
	// SetQuantity atribui o saldo com UPDATE atômico (quantity = $2), usado
	// apenas quando a edição traz quantity explicitamente. Devolve ErrNotFound
	// se o produto não existir.
	SetQuantity(productID string, quantity int) error
	List(limit, offset int) ([]*entity.Product, error)
	// ListLowStock devolve produtos com quantity abaixo do limiar.
	ListLowStock(threshold int) ([]*entity.Product, error)
	// ListExpiringBefore devolve produtos com validade anterior à data dada.
	ListExpiringBefore(t time.Time) ([]*entity.Product, error)
	Delete(id string) error
}
