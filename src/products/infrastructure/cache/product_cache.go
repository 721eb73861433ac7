package cache

import (
	"sync"

	"sales/src/products/domain/entity"

	"github.com/google/uuid"
)

// ProductCache cache en memoria de productos, read-through.
// Los use cases de mutación lo invalidan; GetProduct lo puebla.
type ProductCache struct {
	mu       sync.RWMutex
	products map[uuid.UUID]*entity.Product
}

// NewProductCache crea un nuevo cache de productos
func NewProductCache() *ProductCache {
	return &ProductCache{
		products: make(map[uuid.UUID]*entity.Product),
	}
}

// Get retorna el producto cacheado, si existe
func (c *ProductCache) Get(productID uuid.UUID) (*entity.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	product, ok := c.products[productID]
	return product, ok
}

// Set almacena el producto en el cache
func (c *ProductCache) Set(product *entity.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products[product.ID] = product
}

// Remove invalida la entrada del producto
func (c *ProductCache) Remove(productID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.products, productID)
}

// Len retorna la cantidad de productos cacheados
func (c *ProductCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}
