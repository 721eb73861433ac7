package response

import "github.com/shopspring/decimal"

// DailyReportResponse representa el reporte diario de ventas
type DailyReportResponse struct {
	Date           string          `json:"date"`
	SalesCount     int             `json:"sales_count"`
	CanceledCount  int             `json:"canceled_count"`
	GrossTotal     decimal.Decimal `json:"gross_total"`
	TotalDiscounts decimal.Decimal `json:"total_discounts"`
	NetTotal       decimal.Decimal `json:"net_total"`
	FirstSale      *string         `json:"first_sale,omitempty"`
	LastSale       *string         `json:"last_sale,omitempty"`
}
