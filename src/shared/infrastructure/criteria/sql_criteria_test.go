package criteria

import (
	"testing"

	domainCriteria "sales/src/shared/domain/criteria"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSelectSQL_NoFilters(t *testing.T) {
	converter := NewSQLCriteriaConverter()
	c := domainCriteria.NewCriteria(domainCriteria.NewFilters(), domainCriteria.Order{}, nil, nil)

	query, params := converter.ToSelectSQL("SELECT * FROM sales", c)

	assert.Equal(t, "SELECT * FROM sales", query)
	assert.Empty(t, params)
}

func TestToSelectSQL_FiltersOrderAndPagination(t *testing.T) {
	converter := NewSQLCriteriaConverter()
	c := domainCriteria.NewCriteriaBuilder().
		WithFilter("status", domainCriteria.OpEqual, "CREATED").
		WithFilter("total_amount", domainCriteria.OpGreaterThanOrEqual, 100).
		WithOrder("sale_date", domainCriteria.DESC).
		WithPagination(2, 10).
		Build()

	query, params := converter.ToSelectSQL("SELECT * FROM sales", c)

	assert.Equal(t, "SELECT * FROM sales WHERE status = $1 AND total_amount >= $2 ORDER BY sale_date DESC LIMIT 10 OFFSET 10", query)
	require.Len(t, params, 2)
	assert.Equal(t, "CREATED", params[0])
	assert.Equal(t, 100, params[1])
}

func TestToSelectSQL_LikeWrapsValueInWildcards(t *testing.T) {
	converter := NewSQLCriteriaConverter()
	c := domainCriteria.NewCriteriaBuilder().
		WithFilter("customer_name", domainCriteria.OpLike, "Perez").
		Build()

	query, params := converter.ToSelectSQL("SELECT * FROM sales", c)

	assert.Contains(t, query, "customer_name LIKE $1")
	require.Len(t, params, 1)
	assert.Equal(t, "%Perez%", params[0])
}

func TestToSelectSQL_NullOperatorsNeedNoParams(t *testing.T) {
	converter := NewSQLCriteriaConverter()
	c := domainCriteria.NewCriteriaBuilder().
		WithFilter("updated_at", domainCriteria.OpIsNull, nil).
		WithFilter("status", domainCriteria.OpEqual, "CREATED").
		Build()

	query, params := converter.ToSelectSQL("SELECT * FROM sales", c)

	// El placeholder del segundo filtro debe seguir siendo $1
	assert.Contains(t, query, "updated_at IS NULL AND status = $1")
	require.Len(t, params, 1)
	assert.Equal(t, "CREATED", params[0])
}

func TestToCountSQL_IgnoresOrderAndPagination(t *testing.T) {
	converter := NewSQLCriteriaConverter()
	c := domainCriteria.NewCriteriaBuilder().
		WithFilter("branch_id", domainCriteria.OpEqual, "abc").
		WithOrder("sale_date", domainCriteria.DESC).
		WithPagination(1, 10).
		Build()

	query, params := converter.ToCountSQL("SELECT COUNT(*) FROM sales", c)

	assert.Equal(t, "SELECT COUNT(*) FROM sales WHERE branch_id = $1", query)
	require.Len(t, params, 1)
}
