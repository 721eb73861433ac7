package controller

import (
	"errors"
	"log"
	"net/http"

	"sales/src/sales/application/request"
	"sales/src/sales/application/usecase"
	"sales/src/sales/domain/entity"
	sharedCriteria "sales/src/shared/infrastructure/criteria"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Campos por los que se permite filtrar y ordenar el listado de ventas
var saleSearchFields = []string{
	"sale_number", "sale_date", "customer_id", "customer_name",
	"branch_id", "branch_name", "total_amount", "status", "created_at",
}

// SaleController maneja las peticiones HTTP para ventas
type SaleController struct {
	createSaleUC     *usecase.CreateSaleUseCase
	getSaleUC        *usecase.GetSaleUseCase
	listSalesUC      *usecase.ListSalesUseCase
	updateSaleUC     *usecase.UpdateSaleUseCase
	cancelSaleUC     *usecase.CancelSaleUseCase
	addSaleItemUC    *usecase.AddSaleItemUseCase
	removeSaleItemUC *usecase.RemoveSaleItemUseCase
	criteriaHelper   *sharedCriteria.ControllerHelper
}

// NewSaleController crea una nueva instancia del controlador
func NewSaleController(
	createSaleUC *usecase.CreateSaleUseCase,
	getSaleUC *usecase.GetSaleUseCase,
	listSalesUC *usecase.ListSalesUseCase,
	updateSaleUC *usecase.UpdateSaleUseCase,
	cancelSaleUC *usecase.CancelSaleUseCase,
	addSaleItemUC *usecase.AddSaleItemUseCase,
	removeSaleItemUC *usecase.RemoveSaleItemUseCase,
) *SaleController {
	return &SaleController{
		createSaleUC:     createSaleUC,
		getSaleUC:        getSaleUC,
		listSalesUC:      listSalesUC,
		updateSaleUC:     updateSaleUC,
		cancelSaleUC:     cancelSaleUC,
		addSaleItemUC:    addSaleItemUC,
		removeSaleItemUC: removeSaleItemUC,
		criteriaHelper:   sharedCriteria.NewControllerHelper(),
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *SaleController) RegisterRoutes(router *gin.RouterGroup) {
	sales := router.Group("/sales")
	{
		sales.GET("", c.ListSales)
		sales.GET("/:sale_id", c.GetSale)
		sales.POST("", c.CreateSale)
		sales.PUT("/:sale_id", c.UpdateSale)
		sales.DELETE("/:sale_id", c.CancelSale)
		sales.POST("/:sale_id/items", c.AddSaleItem)
		sales.DELETE("/:sale_id/items/:item_id", c.RemoveSaleItem)
	}

	log.Println("Rutas Sales disponibles:")
	log.Println("  GET    /api/v1/sales")
	log.Println("  GET    /api/v1/sales/:sale_id")
	log.Println("  POST   /api/v1/sales")
	log.Println("  PUT    /api/v1/sales/:sale_id")
	log.Println("  DELETE /api/v1/sales/:sale_id")
	log.Println("  POST   /api/v1/sales/:sale_id/items")
	log.Println("  DELETE /api/v1/sales/:sale_id/items/:item_id")
}

// CreateSale maneja la creación de una venta
func (c *SaleController) CreateSale(ctx *gin.Context) {
	var req request.CreateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := c.createSaleUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		c.handleError(ctx, err, "Error creating sale")
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// GetSale retorna una venta con sus items
func (c *SaleController) GetSale(ctx *gin.Context) {
	saleID, ok := c.parseSaleID(ctx)
	if !ok {
		return
	}

	resp, err := c.getSaleUC.Execute(ctx.Request.Context(), saleID)
	if err != nil {
		c.handleError(ctx, err, "Error getting sale")
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ListSales lista ventas con filtros, ordenamiento y paginación
func (c *SaleController) ListSales(ctx *gin.Context) {
	builder := c.criteriaHelper.BuildCriteriaFromQuery(ctx)

	// Filtros específicos del módulo
	if customerID := ctx.Query("customer_id"); customerID != "" {
		builder.WithFilter("customer_id", "=", customerID)
	}
	if branchID := ctx.Query("branch_id"); branchID != "" {
		builder.WithFilter("branch_id", "=", branchID)
	}
	if status := ctx.Query("status"); status != "" {
		builder.WithFilter("status", "=", status)
	}
	if startDate := ctx.Query("start_date"); startDate != "" {
		builder.WithFilter("sale_date", ">=", startDate)
	}
	if endDate := ctx.Query("end_date"); endDate != "" {
		builder.WithFilter("sale_date", "<=", endDate)
	}

	crit := c.criteriaHelper.ValidateAndSanitizeCriteria(builder.Build(), saleSearchFields)

	resp, err := c.listSalesUC.Execute(ctx.Request.Context(), crit)
	if err != nil {
		log.Printf("Error listing sales: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// UpdateSale actualiza cantidades de items de una venta
func (c *SaleController) UpdateSale(ctx *gin.Context) {
	saleID, ok := c.parseSaleID(ctx)
	if !ok {
		return
	}

	var req request.UpdateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := c.updateSaleUC.Execute(ctx.Request.Context(), saleID, &req)
	if err != nil {
		c.handleError(ctx, err, "Error updating sale")
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// CancelSale cancela una venta (estado terminal)
func (c *SaleController) CancelSale(ctx *gin.Context) {
	saleID, ok := c.parseSaleID(ctx)
	if !ok {
		return
	}

	resp, err := c.cancelSaleUC.Execute(ctx.Request.Context(), saleID)
	if err != nil {
		c.handleError(ctx, err, "Error canceling sale")
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// AddSaleItem agrega un item a una venta existente
func (c *SaleController) AddSaleItem(ctx *gin.Context) {
	saleID, ok := c.parseSaleID(ctx)
	if !ok {
		return
	}

	var req request.AddSaleItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := c.addSaleItemUC.Execute(ctx.Request.Context(), saleID, &req)
	if err != nil {
		c.handleError(ctx, err, "Error adding sale item")
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// RemoveSaleItem remueve un item de una venta
func (c *SaleController) RemoveSaleItem(ctx *gin.Context) {
	saleID, ok := c.parseSaleID(ctx)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(ctx.Param("item_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item_id format"})
		return
	}

	resp, err := c.removeSaleItemUC.Execute(ctx.Request.Context(), saleID, itemID)
	if err != nil {
		c.handleError(ctx, err, "Error removing sale item")
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

func (c *SaleController) parseSaleID(ctx *gin.Context) (uuid.UUID, bool) {
	saleID, err := uuid.Parse(ctx.Param("sale_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale_id format"})
		return uuid.Nil, false
	}
	return saleID, true
}

// handleError mapea errores de dominio a códigos HTTP
func (c *SaleController) handleError(ctx *gin.Context, err error, logPrefix string) {
	log.Printf("%s: %v", logPrefix, err)

	switch {
	case errors.Is(err, entity.ErrSaleNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
	case errors.Is(err, entity.ErrItemNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": entity.ErrItemNotFound.Error()})
	case errors.Is(err, entity.ErrSaleAlreadyCanceled):
		ctx.JSON(http.StatusConflict, gin.H{"error": entity.ErrSaleAlreadyCanceled.Error()})
	case errors.Is(err, entity.ErrInvalidQuantity), errors.Is(err, entity.ErrInvalidPrice):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "details": err.Error()})
	}
}
