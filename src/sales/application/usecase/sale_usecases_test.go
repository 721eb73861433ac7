package usecase

import (
	"context"
	"testing"

	"sales/src/sales/application/request"
	"sales/src/sales/domain/entity"
	"sales/src/shared/domain/criteria"
	shared "sales/src/shared/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSaleRepository implementa port.SaleRepository en memoria para tests
type fakeSaleRepository struct {
	sales      map[uuid.UUID]*entity.Sale
	nextNumber int
}

func newFakeSaleRepository() *fakeSaleRepository {
	return &fakeSaleRepository{
		sales:      make(map[uuid.UUID]*entity.Sale),
		nextNumber: 1,
	}
}

func (r *fakeSaleRepository) Save(ctx context.Context, sale *entity.Sale) error {
	r.sales[sale.ID] = sale
	return nil
}

func (r *fakeSaleRepository) Update(ctx context.Context, sale *entity.Sale) error {
	if _, ok := r.sales[sale.ID]; !ok {
		return entity.ErrSaleNotFound
	}
	r.sales[sale.ID] = sale
	return nil
}

func (r *fakeSaleRepository) FindByID(ctx context.Context, saleID uuid.UUID) (*entity.Sale, error) {
	sale, ok := r.sales[saleID]
	if !ok {
		return nil, entity.ErrSaleNotFound
	}
	return sale, nil
}

func (r *fakeSaleRepository) Search(ctx context.Context, crit criteria.Criteria) ([]*entity.Sale, int, error) {
	var result []*entity.Sale
	for _, sale := range r.sales {
		result = append(result, sale)
	}
	return result, len(result), nil
}

func (r *fakeSaleRepository) NextSaleNumber(ctx context.Context) (int, error) {
	n := r.nextNumber
	r.nextNumber++
	return n, nil
}

// publisherSpy captura los eventos publicados
type publisherSpy struct {
	published []shared.DomainEvent
}

func (p *publisherSpy) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	p.published = append(p.published, events...)
	return nil
}

func validCreateRequest() *request.CreateSaleRequest {
	return &request.CreateSaleRequest{
		CustomerID:   uuid.New(),
		CustomerName: "Cliente Teste",
		BranchID:     uuid.New(),
		BranchName:   "Filial Teste",
		Items: []request.CreateSaleItemRequest{
			{ProductID: uuid.New(), ProductName: "Producto A", Quantity: 2, UnitPrice: decimal.NewFromInt(50)},
			{ProductID: uuid.New(), ProductName: "Producto B", Quantity: 5, UnitPrice: decimal.NewFromInt(30)},
		},
	}
}

func TestCreateSaleUseCase_Execute(t *testing.T) {
	repo := newFakeSaleRepository()
	spy := &publisherSpy{}
	uc := NewCreateSaleUseCase(repo, spy)

	resp, err := uc.Execute(context.Background(), validCreateRequest())
	require.NoError(t, err)

	// 2x50 = 100 sin descuento, 5x30 = 135 con 10%
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(235)))
	assert.Equal(t, 1, resp.SaleNumber)
	assert.Equal(t, 2, resp.TotalItems)
	assert.Equal(t, "CREATED", resp.Status)

	// Persistido antes de publicar
	saved, err := repo.FindByID(context.Background(), resp.SaleID)
	require.NoError(t, err)
	assert.Equal(t, 2, saved.TotalItems())

	// SaleCreated + un SaleModified por cada item
	require.Len(t, spy.published, 3)
	assert.Equal(t, entity.EventSaleCreated, spy.published[0].EventName())
	assert.Equal(t, entity.EventSaleModified, spy.published[1].EventName())
	assert.Equal(t, entity.EventSaleModified, spy.published[2].EventName())
}

func TestCreateSaleUseCase_InvalidQuantityNotPersisted(t *testing.T) {
	repo := newFakeSaleRepository()
	spy := &publisherSpy{}
	uc := NewCreateSaleUseCase(repo, spy)

	req := validCreateRequest()
	req.Items[0].Quantity = 21

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, entity.ErrInvalidQuantity)
	assert.Empty(t, repo.sales)
	assert.Empty(t, spy.published)
}

func TestCreateSaleUseCase_SequentialSaleNumbers(t *testing.T) {
	repo := newFakeSaleRepository()
	uc := NewCreateSaleUseCase(repo, &publisherSpy{})

	first, err := uc.Execute(context.Background(), validCreateRequest())
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, first.SaleNumber)
	assert.Equal(t, 2, second.SaleNumber)
}

func TestAddSaleItemUseCase_Execute(t *testing.T) {
	repo := newFakeSaleRepository()
	spy := &publisherSpy{}
	createUC := NewCreateSaleUseCase(repo, spy)

	created, err := createUC.Execute(context.Background(), validCreateRequest())
	require.NoError(t, err)
	spy.published = nil

	addUC := NewAddSaleItemUseCase(repo, spy)
	resp, err := addUC.Execute(context.Background(), created.SaleID, &request.AddSaleItemRequest{
		ProductID:   uuid.New(),
		ProductName: "Producto C",
		Quantity:    10,
		UnitPrice:   decimal.NewFromInt(50),
	})
	require.NoError(t, err)

	// 235 + (10x50 con 20% = 400) = 635
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(635)))
	require.Len(t, spy.published, 1)
	assert.Equal(t, entity.EventSaleModified, spy.published[0].EventName())
}

func TestAddSaleItemUseCase_SaleNotFound(t *testing.T) {
	uc := NewAddSaleItemUseCase(newFakeSaleRepository(), &publisherSpy{})

	_, err := uc.Execute(context.Background(), uuid.New(), &request.AddSaleItemRequest{
		ProductID:   uuid.New(),
		ProductName: "Producto A",
		Quantity:    1,
		UnitPrice:   decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, entity.ErrSaleNotFound)
}

func TestRemoveSaleItemUseCase_Execute(t *testing.T) {
	repo := newFakeSaleRepository()
	spy := &publisherSpy{}
	createUC := NewCreateSaleUseCase(repo, spy)

	created, err := createUC.Execute(context.Background(), validCreateRequest())
	require.NoError(t, err)
	spy.published = nil

	sale, err := repo.FindByID(context.Background(), created.SaleID)
	require.NoError(t, err)
	itemID := sale.Items[0].ID

	removeUC := NewRemoveSaleItemUseCase(repo, spy)
	resp, err := removeUC.Execute(context.Background(), created.SaleID, itemID)
	require.NoError(t, err)

	// Queda solo 5x30 con 10% = 135
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(135)))

	require.Len(t, spy.published, 2)
	assert.Equal(t, entity.EventItemCanceled, spy.published[0].EventName())
	assert.Equal(t, entity.EventSaleModified, spy.published[1].EventName())
}

func TestCancelSaleUseCase_Execute(t *testing.T) {
	repo := newFakeSaleRepository()
	spy := &publisherSpy{}
	createUC := NewCreateSaleUseCase(repo, spy)

	created, err := createUC.Execute(context.Background(), validCreateRequest())
	require.NoError(t, err)
	spy.published = nil

	cancelUC := NewCancelSaleUseCase(repo, spy)
	resp, err := cancelUC.Execute(context.Background(), created.SaleID)
	require.NoError(t, err)

	assert.True(t, resp.IsCanceled)
	// Items y total quedan como registro histórico
	assert.Len(t, resp.Items, 2)
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(235)))

	require.Len(t, spy.published, 1)
	assert.Equal(t, entity.EventSaleCanceled, spy.published[0].EventName())

	// Cancelar dos veces falla
	_, err = cancelUC.Execute(context.Background(), created.SaleID)
	assert.ErrorIs(t, err, entity.ErrSaleAlreadyCanceled)
}

func TestUpdateSaleUseCase_CanceledSaleRejectsChanges(t *testing.T) {
	repo := newFakeSaleRepository()
	spy := &publisherSpy{}
	createUC := NewCreateSaleUseCase(repo, spy)

	created, err := createUC.Execute(context.Background(), validCreateRequest())
	require.NoError(t, err)

	cancelUC := NewCancelSaleUseCase(repo, spy)
	_, err = cancelUC.Execute(context.Background(), created.SaleID)
	require.NoError(t, err)

	addUC := NewAddSaleItemUseCase(repo, spy)
	_, err = addUC.Execute(context.Background(), created.SaleID, &request.AddSaleItemRequest{
		ProductID:   uuid.New(),
		ProductName: "Producto C",
		Quantity:    1,
		UnitPrice:   decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, entity.ErrSaleAlreadyCanceled)
}

func TestGetSaleUseCase_NotFound(t *testing.T) {
	uc := NewGetSaleUseCase(newFakeSaleRepository())

	_, err := uc.Execute(context.Background(), uuid.New())
	assert.ErrorIs(t, err, entity.ErrSaleNotFound)
}

func TestListSalesUseCase_Pagination(t *testing.T) {
	repo := newFakeSaleRepository()
	spy := &publisherSpy{}
	createUC := NewCreateSaleUseCase(repo, spy)

	for i := 0; i < 3; i++ {
		_, err := createUC.Execute(context.Background(), validCreateRequest())
		require.NoError(t, err)
	}

	listUC := NewListSalesUseCase(repo)
	crit := criteria.NewCriteriaBuilder().WithPagination(1, 2).Build()

	resp, err := listUC.Execute(context.Background(), crit)
	require.NoError(t, err)

	assert.Equal(t, 3, resp.TotalCount)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 2, resp.PageSize)
	assert.Equal(t, 2, resp.TotalPages)
}
