package repository

import "github.com/estoque-pro/estoque-api/internal/domain/entity"

// CategoryRepository define o porto de persistência para Category.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(category *entity.Category) error
	List(limit, offset int) ([]*entity.Category, error)
	Delete(id string) error
}
