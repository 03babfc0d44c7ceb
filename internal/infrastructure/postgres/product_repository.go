package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/estoque-pro/estoque-api/internal/domain"
	"github.com/estoque-pro/estoque-api/internal/domain/entity"
	"github.com/estoque-pro/estoque-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementação do porto ProductRepository sobre PostgreSQL
// (usável com pool ou tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository constrói o adaptador de persistência para produtos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste um produto novo.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, supplier_id, category_id, price, quantity, purchase_date, expiration_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.SupplierID, product.CategoryID,
		product.Price, product.Quantity, product.PurchaseDate, product.ExpirationDate,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID; nil se não existir.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, name, supplier_id, category_id, price, quantity, purchase_date, expiration_date, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.SupplierID, &p.CategoryID, &p.Price, &p.Quantity,
		&p.PurchaseDate, &p.ExpirationDate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update atualiza os campos cadastrais de um produto existente. Quantity fica
// de fora do SET: o saldo só muda por IncrementQuantity/SetQuantity, então uma
// edição cadastral não sobrescreve um incremento que chegou entre a leitura e
// esta escrita.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, supplier_id = $3, category_id = $4, price = $5, expiration_date = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.SupplierID, product.CategoryID,
		product.Price, product.ExpirationDate, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// IncrementQuantity soma delta ao saldo com UPDATE atômico; sem read-modify-write
// no cliente, então completudes concorrentes de pedidos distintos não se perdem.
func (r *ProductRepo) IncrementQuantity(productID string, delta int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET quantity = quantity + $2, updated_at = now() WHERE id = $1`,
		productID, delta,
	)
	if err != nil {
		return fmt.Errorf("increment product quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetQuantity atribui o saldo em um único UPDATE, para edições que enviam
// quantity explicitamente.
func (r *ProductRepo) SetQuantity(productID string, quantity int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET quantity = $2, updated_at = now() WHERE id = $1`,
		productID, quantity,
	)
	if err != nil {
		return fmt.Errorf("set product quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista produtos com paginação.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT id, name, supplier_id, category_id, price, quantity, purchase_date, expiration_date, created_at, updated_at
		FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// ListLowStock lista produtos com saldo abaixo do limiar.
func (r *ProductRepo) ListLowStock(threshold int) ([]*entity.Product, error) {
	query := `
		SELECT id, name, supplier_id, category_id, price, quantity, purchase_date, expiration_date, created_at, updated_at
		FROM products WHERE quantity < $1 ORDER BY quantity ASC`
	rows, err := r.q.Query(context.Background(), query, threshold)
	if err != nil {
		return nil, fmt.Errorf("list low stock products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// ListExpiringBefore lista produtos com validade anterior à data dada.
func (r *ProductRepo) ListExpiringBefore(t time.Time) ([]*entity.Product, error) {
	query := `
		SELECT id, name, supplier_id, category_id, price, quantity, purchase_date, expiration_date, created_at, updated_at
		FROM products WHERE expiration_date IS NOT NULL AND expiration_date < $1 ORDER BY expiration_date ASC`
	rows, err := r.q.Query(context.Background(), query, t)
	if err != nil {
		return nil, fmt.Errorf("list expiring products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// Delete elimina um produto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.SupplierID, &p.CategoryID, &p.Price, &p.Quantity,
			&p.PurchaseDate, &p.ExpirationDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
