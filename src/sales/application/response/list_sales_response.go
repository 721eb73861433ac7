package response

// ListSalesResponse representa la respuesta paginada de ventas
type ListSalesResponse struct {
	Items      []SaleResponse `json:"items"`
	TotalCount int            `json:"total_count"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}
