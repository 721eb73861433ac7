package usecase

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"sales/src/sales/application/response"

	"github.com/shopspring/decimal"
)

// DailyReportUseCase caso de uso para el reporte diario de ventas.
// Agregaciones directas en SQL, combinadas en memoria.
type DailyReportUseCase struct {
	db *sql.DB
}

// NewDailyReportUseCase crea una nueva instancia del caso de uso
func NewDailyReportUseCase(db *sql.DB) *DailyReportUseCase {
	return &DailyReportUseCase{
		db: db,
	}
}

// Execute genera el reporte para una fecha específica (YYYY-MM-DD).
// Usa rango [from, to) sobre sale_date para aprovechar el índice.
func (uc *DailyReportUseCase) Execute(ctx context.Context, date string) (*response.DailyReportResponse, error) {
	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date format, expected YYYY-MM-DD: %w", err)
	}

	from := parsedDate
	to := parsedDate.AddDate(0, 0, 1)

	// 1. Conteos y neto sobre la raíz del aggregate.
	// Las ventas canceladas se cuentan aparte y no suman a los montos.
	querySales := `
		SELECT
			COUNT(*) FILTER (WHERE status != 'CANCELED') AS sales_count,
			COUNT(*) FILTER (WHERE status = 'CANCELED') AS canceled_count,
			COALESCE(SUM(total_amount) FILTER (WHERE status != 'CANCELED'), 0) AS net_total,
			MIN(sale_date) AS first_sale,
			MAX(sale_date) AS last_sale
		FROM sales
		WHERE sale_date >= $1
			AND sale_date < $2
	`

	var salesCount, canceledCount int
	var netTotal decimal.Decimal
	var firstSale, lastSale sql.NullTime

	err = uc.db.QueryRowContext(ctx, querySales, from, to).Scan(
		&salesCount,
		&canceledCount,
		&netTotal,
		&firstSale,
		&lastSale,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying sales: %w", err)
	}

	// 2. Bruto y descuentos sobre los items
	queryItems := `
		SELECT
			COALESCE(SUM(i.unit_price * i.quantity), 0) AS gross_total,
			COALESCE(SUM(i.discount), 0) AS total_discounts
		FROM sale_items i
		JOIN sales s ON s.id = i.sale_id
		WHERE s.sale_date >= $1
			AND s.sale_date < $2
			AND s.status != 'CANCELED'
	`

	var grossTotal, totalDiscounts decimal.Decimal

	err = uc.db.QueryRowContext(ctx, queryItems, from, to).Scan(
		&grossTotal,
		&totalDiscounts,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying sale_items: %w", err)
	}

	report := &response.DailyReportResponse{
		Date:           date,
		SalesCount:     salesCount,
		CanceledCount:  canceledCount,
		GrossTotal:     grossTotal,
		TotalDiscounts: totalDiscounts,
		NetTotal:       netTotal,
	}

	if firstSale.Valid {
		first := firstSale.Time.UTC().Format(time.RFC3339)
		report.FirstSale = &first
	}
	if lastSale.Valid {
		last := lastSale.Time.UTC().Format(time.RFC3339)
		report.LastSale = &last
	}

	return report, nil
}
