package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"sales/src/sales/domain/entity"
	"sales/src/sales/domain/port"
	domainCriteria "sales/src/shared/domain/criteria"
	sqlCriteria "sales/src/shared/infrastructure/criteria"

	"github.com/google/uuid"
)

// SalePostgresRepository implementa SaleRepository usando PostgreSQL
type SalePostgresRepository struct {
	db        *sql.DB
	converter *sqlCriteria.SQLCriteriaConverter
}

// NewSalePostgresRepository crea una nueva instancia del repositorio
func NewSalePostgresRepository(db *sql.DB) port.SaleRepository {
	return &SalePostgresRepository{
		db:        db,
		converter: sqlCriteria.NewSQLCriteriaConverter(),
	}
}

// Save persiste una venta nueva con sus items (DDD Aggregate)
func (r *SalePostgresRepository) Save(ctx context.Context, sale *entity.Sale) error {
	// Iniciar transacción para garantizar atomicidad del aggregate
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	// 1. Insertar venta (aggregate root)
	querySale := `
		INSERT INTO sales (
			id, sale_number, sale_date, customer_id, customer_name,
			branch_id, branch_name, total_amount, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
	`

	_, err = tx.ExecContext(ctx, querySale,
		sale.ID,
		sale.SaleNumber,
		sale.SaleDate,
		sale.CustomerID,
		sale.CustomerName,
		sale.BranchID,
		sale.BranchName,
		sale.TotalAmount,
		sale.Status,
		sale.CreatedAt,
		sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("error saving sale: %w", err)
	}

	// 2. Insertar items (entities dentro del aggregate)
	if err := r.insertItems(ctx, tx, sale); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// Update persiste el estado actual del aggregate completo.
// Los items se reemplazan por la colección actual: delete + reinsert
// dentro de la misma transacción.
func (r *SalePostgresRepository) Update(ctx context.Context, sale *entity.Sale) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	// 1. Actualizar venta (aggregate root)
	querySale := `
		UPDATE sales
		SET total_amount = $2, status = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := tx.ExecContext(ctx, querySale,
		sale.ID,
		sale.TotalAmount,
		sale.Status,
		sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("error updating sale: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return entity.ErrSaleNotFound
	}

	// 2. Reemplazar items por la colección actual
	if _, err := tx.ExecContext(ctx, `DELETE FROM sale_items WHERE sale_id = $1`, sale.ID); err != nil {
		return fmt.Errorf("error deleting sale items: %w", err)
	}

	if err := r.insertItems(ctx, tx, sale); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

func (r *SalePostgresRepository) insertItems(ctx context.Context, tx *sql.Tx, sale *entity.Sale) error {
	queryItem := `
		INSERT INTO sale_items (
			id, sale_id, product_id, product_name,
			quantity, unit_price, discount, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
	`

	for i := range sale.Items {
		item := &sale.Items[i]
		_, err := tx.ExecContext(ctx, queryItem,
			item.ID,
			sale.ID,
			item.ProductID,
			item.ProductName,
			item.Quantity,
			item.UnitPrice,
			item.Discount,
			item.CreatedAt,
			item.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("error saving sale item %s: %w", item.ID, err)
		}
	}

	return nil
}

// FindByID busca una venta con sus items por su ID (DDD: load aggregate)
func (r *SalePostgresRepository) FindByID(ctx context.Context, saleID uuid.UUID) (*entity.Sale, error) {
	querySale := `
		SELECT id, sale_number, sale_date, customer_id, customer_name,
			branch_id, branch_name, total_amount, status, created_at, updated_at
		FROM sales
		WHERE id = $1
	`

	sale, err := r.scanSale(r.db.QueryRowContext(ctx, querySale, saleID))
	if err == sql.ErrNoRows {
		return nil, entity.ErrSaleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding sale: %w", err)
	}

	items, err := r.loadItems(ctx, sale.ID)
	if err != nil {
		return nil, err
	}
	sale.Items = items

	return sale, nil
}

// Search retorna ventas según criteria, con sus items, y el total sin paginar
func (r *SalePostgresRepository) Search(ctx context.Context, crit domainCriteria.Criteria) ([]*entity.Sale, int, error) {
	// 1. Contar total con los mismos filtros
	countQuery, countParams := r.converter.ToCountSQL(`SELECT COUNT(*) FROM sales`, crit)

	var totalCount int
	if err := r.db.QueryRowContext(ctx, countQuery, countParams...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("error counting sales: %w", err)
	}

	// 2. Obtener ventas paginadas
	baseQuery := `
		SELECT id, sale_number, sale_date, customer_id, customer_name,
			branch_id, branch_name, total_amount, status, created_at, updated_at
		FROM sales
	`

	query, params := r.converter.ToSelectSQL(baseQuery, crit)

	rows, err := r.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale
	for rows.Next() {
		sale, err := r.scanSale(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning sale: %w", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating sales: %w", err)
	}

	// 3. Cargar items de cada venta
	for _, sale := range sales {
		items, err := r.loadItems(ctx, sale.ID)
		if err != nil {
			return nil, 0, err
		}
		sale.Items = items
	}

	return sales, totalCount, nil
}

// NextSaleNumber genera el siguiente número de venta secuencial
func (r *SalePostgresRepository) NextSaleNumber(ctx context.Context) (int, error) {
	var next int
	query := `SELECT COALESCE(MAX(sale_number), 0) + 1 FROM sales`

	if err := r.db.QueryRowContext(ctx, query).Scan(&next); err != nil {
		return 0, fmt.Errorf("error generating sale number: %w", err)
	}

	return next, nil
}

// rowScanner abstrae *sql.Row y *sql.Rows para reuso del scan
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *SalePostgresRepository) scanSale(row rowScanner) (*entity.Sale, error) {
	sale := &entity.Sale{}
	var updatedAt sql.NullTime

	err := row.Scan(
		&sale.ID,
		&sale.SaleNumber,
		&sale.SaleDate,
		&sale.CustomerID,
		&sale.CustomerName,
		&sale.BranchID,
		&sale.BranchName,
		&sale.TotalAmount,
		&sale.Status,
		&sale.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if updatedAt.Valid {
		t := updatedAt.Time
		sale.UpdatedAt = &t
	}

	return sale, nil
}

func (r *SalePostgresRepository) loadItems(ctx context.Context, saleID uuid.UUID) ([]entity.SaleItem, error) {
	queryItems := `
		SELECT id, sale_id, product_id, product_name,
			quantity, unit_price, discount, created_at, updated_at
		FROM sale_items
		WHERE sale_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, queryItems, saleID)
	if err != nil {
		return nil, fmt.Errorf("error finding sale items: %w", err)
	}
	defer rows.Close()

	var items []entity.SaleItem
	for rows.Next() {
		var item entity.SaleItem
		var updatedAt sql.NullTime

		err := rows.Scan(
			&item.ID,
			&item.SaleID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.UnitPrice,
			&item.Discount,
			&item.CreatedAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning sale item: %w", err)
		}

		if updatedAt.Valid {
			t := updatedAt.Time
			item.UpdatedAt = &t
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale items: %w", err)
	}

	return items, nil
}
