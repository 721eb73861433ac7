package criteria

import (
	"net/url"
	"strconv"
)

// FilterOperator representa el operador de comparación de un filtro
type FilterOperator string

const (
	OpEqual              FilterOperator = "="
	OpNotEqual           FilterOperator = "!="
	OpGreaterThan        FilterOperator = ">"
	OpGreaterThanOrEqual FilterOperator = ">="
	OpLessThan           FilterOperator = "<"
	OpLessThanOrEqual    FilterOperator = "<="
	OpLike               FilterOperator = "LIKE"
	OpIn                 FilterOperator = "IN"
	OpIsNull             FilterOperator = "IS NULL"
	OpIsNotNull          FilterOperator = "IS NOT NULL"
	OpArrayContains      FilterOperator = "@>"
)

// OrderType representa la dirección de ordenamiento
type OrderType string

const (
	ASC  OrderType = "ASC"
	DESC OrderType = "DESC"
)

// Filter representa una condición de filtrado sobre un campo
type Filter struct {
	Field    string
	Operator FilterOperator
	Value    interface{}
}

// NewFilter crea un nuevo filtro
func NewFilter(field string, operator FilterOperator, value interface{}) Filter {
	return Filter{
		Field:    field,
		Operator: operator,
		Value:    value,
	}
}

// Filters es una colección ordenada de filtros
type Filters struct {
	Items []Filter
}

// NewFilters crea una colección de filtros
func NewFilters(filters ...Filter) Filters {
	return Filters{Items: filters}
}

// Add agrega un filtro a la colección
func (f *Filters) Add(filter Filter) {
	f.Items = append(f.Items, filter)
}

// IsEmpty indica si no hay filtros
func (f Filters) IsEmpty() bool {
	return len(f.Items) == 0
}

// Order representa el ordenamiento de un resultado
type Order struct {
	Field     string
	OrderType OrderType
}

// NewOrder crea un nuevo ordenamiento
func NewOrder(field string, orderType OrderType) Order {
	return Order{Field: field, OrderType: orderType}
}

// IsEmpty indica si no hay ordenamiento definido
func (o Order) IsEmpty() bool {
	return o.Field == ""
}

// Criteria combina filtros, orden y paginación para una búsqueda
type Criteria struct {
	Filters Filters
	Order   Order
	Limit   *int
	Offset  *int
}

// NewCriteria crea un criteria completo
func NewCriteria(filters Filters, order Order, limit, offset *int) Criteria {
	return Criteria{
		Filters: filters,
		Order:   order,
		Limit:   limit,
		Offset:  offset,
	}
}

// CriteriaBuilder construye criterias de forma fluida.
// Los módulos lo extienden agregando sus propios filtros permitidos.
type CriteriaBuilder struct {
	filters Filters
	order   Order
	limit   *int
	offset  *int
}

// NewCriteriaBuilder crea un builder vacío
func NewCriteriaBuilder() *CriteriaBuilder {
	return &CriteriaBuilder{}
}

// FromURLValues extrae paginación y ordenamiento de los query parameters:
// page, page_size, sort_by, sort_dir. Valores fuera de rango usan defaults.
func (b *CriteriaBuilder) FromURLValues(values url.Values) *CriteriaBuilder {
	page := 1
	if p, err := strconv.Atoi(values.Get("page")); err == nil && p > 0 {
		page = p
	}

	pageSize := 10
	if ps, err := strconv.Atoi(values.Get("page_size")); err == nil && ps > 0 && ps <= 100 {
		pageSize = ps
	}

	b.WithPagination(page, pageSize)

	if sortBy := values.Get("sort_by"); sortBy != "" {
		orderType := ASC
		if values.Get("sort_dir") == "desc" || values.Get("sort_dir") == "DESC" {
			orderType = DESC
		}
		b.order = NewOrder(sortBy, orderType)
	}

	return b
}

// WithFilter agrega un filtro
func (b *CriteriaBuilder) WithFilter(field string, operator FilterOperator, value interface{}) *CriteriaBuilder {
	b.filters.Add(NewFilter(field, operator, value))
	return b
}

// WithOrder define el ordenamiento
func (b *CriteriaBuilder) WithOrder(field string, orderType OrderType) *CriteriaBuilder {
	b.order = NewOrder(field, orderType)
	return b
}

// WithPagination define la paginación en términos de página y tamaño
func (b *CriteriaBuilder) WithPagination(page, pageSize int) *CriteriaBuilder {
	limit := pageSize
	offset := (page - 1) * pageSize
	b.limit = &limit
	b.offset = &offset
	return b
}

// Build construye el criteria final
func (b *CriteriaBuilder) Build() Criteria {
	return NewCriteria(b.filters, b.order, b.limit, b.offset)
}

// Page retorna la página actual implicada por limit/offset (1-based)
func (c Criteria) Page() int {
	if c.Limit == nil || c.Offset == nil || *c.Limit == 0 {
		return 1
	}
	return (*c.Offset / *c.Limit) + 1
}

// PageSize retorna el tamaño de página, o el default si no hay paginación
func (c Criteria) PageSize() int {
	if c.Limit == nil {
		return 10
	}
	return *c.Limit
}
