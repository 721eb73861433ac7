package controller

import (
	"errors"
	"log"
	"net/http"

	"sales/src/products/application/request"
	"sales/src/products/application/usecase"
	"sales/src/products/domain/entity"
	sharedCriteria "sales/src/shared/infrastructure/criteria"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Campos por los que se permite filtrar y ordenar el listado de productos
var productSearchFields = []string{
	"name", "category", "price", "is_active", "created_at",
}

// ProductController maneja las peticiones HTTP para productos
type ProductController struct {
	createProductUC *usecase.CreateProductUseCase
	getProductUC    *usecase.GetProductUseCase
	listProductsUC  *usecase.ListProductsUseCase
	updateProductUC *usecase.UpdateProductUseCase
	deleteProductUC *usecase.DeleteProductUseCase
	criteriaHelper  *sharedCriteria.ControllerHelper
}

// NewProductController crea una nueva instancia del controlador
func NewProductController(
	createProductUC *usecase.CreateProductUseCase,
	getProductUC *usecase.GetProductUseCase,
	listProductsUC *usecase.ListProductsUseCase,
	updateProductUC *usecase.UpdateProductUseCase,
	deleteProductUC *usecase.DeleteProductUseCase,
) *ProductController {
	return &ProductController{
		createProductUC: createProductUC,
		getProductUC:    getProductUC,
		listProductsUC:  listProductsUC,
		updateProductUC: updateProductUC,
		deleteProductUC: deleteProductUC,
		criteriaHelper:  sharedCriteria.NewControllerHelper(),
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *ProductController) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", c.ListProducts)
		products.GET("/:product_id", c.GetProduct)
		products.POST("", c.CreateProduct)
		products.PUT("/:product_id", c.UpdateProduct)
		products.DELETE("/:product_id", c.DeleteProduct)
	}

	log.Println("Rutas Products disponibles:")
	log.Println("  GET    /api/v1/products")
	log.Println("  GET    /api/v1/products/:product_id")
	log.Println("  POST   /api/v1/products")
	log.Println("  PUT    /api/v1/products/:product_id")
	log.Println("  DELETE /api/v1/products/:product_id")
}

// CreateProduct maneja la creación de un producto
func (c *ProductController) CreateProduct(ctx *gin.Context) {
	var req request.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := c.createProductUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		c.handleError(ctx, err, "Error creating product")
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// GetProduct retorna un producto por su ID
func (c *ProductController) GetProduct(ctx *gin.Context) {
	productID, ok := c.parseProductID(ctx)
	if !ok {
		return
	}

	resp, err := c.getProductUC.Execute(ctx.Request.Context(), productID)
	if err != nil {
		c.handleError(ctx, err, "Error getting product")
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ListProducts lista productos con filtros, ordenamiento y paginación
func (c *ProductController) ListProducts(ctx *gin.Context) {
	builder := c.criteriaHelper.BuildCriteriaFromQuery(ctx)

	if category := ctx.Query("category"); category != "" {
		builder.WithFilter("category", "=", category)
	}
	if name := ctx.Query("name"); name != "" {
		builder.WithFilter("name", "LIKE", name)
	}
	if active := ctx.Query("is_active"); active != "" {
		builder.WithFilter("is_active", "=", active == "true")
	}

	crit := c.criteriaHelper.ValidateAndSanitizeCriteria(builder.Build(), productSearchFields)

	resp, err := c.listProductsUC.Execute(ctx.Request.Context(), crit)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// UpdateProduct actualiza un producto existente
func (c *ProductController) UpdateProduct(ctx *gin.Context) {
	productID, ok := c.parseProductID(ctx)
	if !ok {
		return
	}

	var req request.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := c.updateProductUC.Execute(ctx.Request.Context(), productID, &req)
	if err != nil {
		c.handleError(ctx, err, "Error updating product")
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// DeleteProduct da de baja un producto (baja lógica)
func (c *ProductController) DeleteProduct(ctx *gin.Context) {
	productID, ok := c.parseProductID(ctx)
	if !ok {
		return
	}

	if err := c.deleteProductUC.Execute(ctx.Request.Context(), productID); err != nil {
		c.handleError(ctx, err, "Error deleting product")
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *ProductController) parseProductID(ctx *gin.Context) (uuid.UUID, bool) {
	productID, err := uuid.Parse(ctx.Param("product_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id format"})
		return uuid.Nil, false
	}
	return productID, true
}

func (c *ProductController) handleError(ctx *gin.Context, err error, logPrefix string) {
	log.Printf("%s: %v", logPrefix, err)

	switch {
	case errors.Is(err, entity.ErrProductNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, entity.ErrProductNameRequired), errors.Is(err, entity.ErrInvalidPrice):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "details": err.Error()})
	}
}
