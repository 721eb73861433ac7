package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"sales/src/products/domain/entity"
	"sales/src/products/domain/port"
	domainCriteria "sales/src/shared/domain/criteria"
	sqlCriteria "sales/src/shared/infrastructure/criteria"

	"github.com/google/uuid"
)

// ProductPostgresRepository implementa ProductRepository usando PostgreSQL
type ProductPostgresRepository struct {
	db        *sql.DB
	converter *sqlCriteria.SQLCriteriaConverter
}

// NewProductPostgresRepository crea una nueva instancia del repositorio
func NewProductPostgresRepository(db *sql.DB) port.ProductRepository {
	return &ProductPostgresRepository{
		db:        db,
		converter: sqlCriteria.NewSQLCriteriaConverter(),
	}
}

// Save persiste un producto nuevo
func (r *ProductPostgresRepository) Save(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (
			id, name, description, category, price, image_url, is_active, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
	`

	_, err := r.db.ExecContext(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Category,
		product.Price,
		product.ImageURL,
		product.IsActive,
		product.CreatedAt,
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("error saving product: %w", err)
	}

	return nil
}

// Update persiste los cambios de un producto existente
func (r *ProductPostgresRepository) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, category = $4, price = $5,
			image_url = $6, is_active = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Category,
		product.Price,
		product.ImageURL,
		product.IsActive,
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("error updating product: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return entity.ErrProductNotFound
	}

	return nil
}

// FindByID busca un producto por su ID
func (r *ProductPostgresRepository) FindByID(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	query := `
		SELECT id, name, description, category, price, image_url, is_active, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	product, err := r.scanProduct(r.db.QueryRowContext(ctx, query, productID))
	if err == sql.ErrNoRows {
		return nil, entity.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding product: %w", err)
	}

	return product, nil
}

// Search retorna productos según criteria y el total sin paginar
func (r *ProductPostgresRepository) Search(ctx context.Context, crit domainCriteria.Criteria) ([]*entity.Product, int, error) {
	countQuery, countParams := r.converter.ToCountSQL(`SELECT COUNT(*) FROM products`, crit)

	var totalCount int
	if err := r.db.QueryRowContext(ctx, countQuery, countParams...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("error counting products: %w", err)
	}

	baseQuery := `
		SELECT id, name, description, category, price, image_url, is_active, created_at, updated_at
		FROM products
	`

	query, params := r.converter.ToSelectSQL(baseQuery, crit)

	rows, err := r.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		product, err := r.scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating products: %w", err)
	}

	return products, totalCount, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *ProductPostgresRepository) scanProduct(row rowScanner) (*entity.Product, error) {
	product := &entity.Product{}
	var updatedAt sql.NullTime

	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Category,
		&product.Price,
		&product.ImageURL,
		&product.IsActive,
		&product.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if updatedAt.Valid {
		t := updatedAt.Time
		product.UpdatedAt = &t
	}

	return product, nil
}
