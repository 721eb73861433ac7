package usecase

import (
	"context"
	"testing"

	"sales/src/products/application/request"
	"sales/src/products/domain/entity"
	"sales/src/products/infrastructure/cache"
	"sales/src/shared/domain/criteria"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProductRepository implementa port.ProductRepository en memoria
type fakeProductRepository struct {
	products  map[uuid.UUID]*entity.Product
	findCalls int
}

func newFakeProductRepository() *fakeProductRepository {
	return &fakeProductRepository{products: make(map[uuid.UUID]*entity.Product)}
}

func (r *fakeProductRepository) Save(ctx context.Context, product *entity.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepository) Update(ctx context.Context, product *entity.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return entity.ErrProductNotFound
	}
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepository) FindByID(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	r.findCalls++
	product, ok := r.products[productID]
	if !ok {
		return nil, entity.ErrProductNotFound
	}
	return product, nil
}

func (r *fakeProductRepository) Search(ctx context.Context, crit criteria.Criteria) ([]*entity.Product, int, error) {
	var result []*entity.Product
	for _, product := range r.products {
		result = append(result, product)
	}
	return result, len(result), nil
}

func TestCreateProductUseCase_Execute(t *testing.T) {
	repo := newFakeProductRepository()
	productCache := cache.NewProductCache()
	uc := NewCreateProductUseCase(repo, productCache)

	resp, err := uc.Execute(context.Background(), &request.CreateProductRequest{
		Name:  "Teclado",
		Price: decimal.NewFromFloat(89.90),
	})
	require.NoError(t, err)

	assert.Equal(t, "Teclado", resp.Name)
	assert.True(t, resp.IsActive)
	assert.Equal(t, 1, productCache.Len())
}

func TestCreateProductUseCase_InvalidPrice(t *testing.T) {
	uc := NewCreateProductUseCase(newFakeProductRepository(), nil)

	_, err := uc.Execute(context.Background(), &request.CreateProductRequest{
		Name:  "Teclado",
		Price: decimal.Zero,
	})
	assert.ErrorIs(t, err, entity.ErrInvalidPrice)
}

func TestGetProductUseCase_ReadThroughCache(t *testing.T) {
	repo := newFakeProductRepository()
	productCache := cache.NewProductCache()

	product, err := entity.NewProduct("Teclado", "", "", decimal.NewFromInt(50), "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), product))

	uc := NewGetProductUseCase(repo, productCache)

	// Primera lectura va al repositorio y puebla el cache
	_, err = uc.Execute(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.findCalls)
	assert.Equal(t, 1, productCache.Len())

	// Segunda lectura sale del cache
	_, err = uc.Execute(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.findCalls)
}

func TestGetProductUseCase_NotFound(t *testing.T) {
	uc := NewGetProductUseCase(newFakeProductRepository(), nil)

	_, err := uc.Execute(context.Background(), uuid.New())
	assert.ErrorIs(t, err, entity.ErrProductNotFound)
}

func TestDeleteProductUseCase_DeactivatesAndInvalidatesCache(t *testing.T) {
	repo := newFakeProductRepository()
	productCache := cache.NewProductCache()

	product, err := entity.NewProduct("Teclado", "", "", decimal.NewFromInt(50), "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), product))
	productCache.Set(product)

	uc := NewDeleteProductUseCase(repo, productCache)
	require.NoError(t, uc.Execute(context.Background(), product.ID))

	assert.False(t, repo.products[product.ID].IsActive)
	assert.Equal(t, 0, productCache.Len())
}
