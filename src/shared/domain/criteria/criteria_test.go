package criteria

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriteriaBuilder_Defaults(t *testing.T) {
	c := NewCriteriaBuilder().FromURLValues(url.Values{}).Build()

	require.NotNil(t, c.Limit)
	require.NotNil(t, c.Offset)
	assert.Equal(t, 10, *c.Limit)
	assert.Equal(t, 0, *c.Offset)
	assert.Equal(t, 1, c.Page())
	assert.Equal(t, 10, c.PageSize())
	assert.True(t, c.Filters.IsEmpty())
	assert.True(t, c.Order.IsEmpty())
}

func TestCriteriaBuilder_FromURLValues(t *testing.T) {
	values := url.Values{}
	values.Set("page", "3")
	values.Set("page_size", "25")
	values.Set("sort_by", "sale_date")
	values.Set("sort_dir", "desc")

	c := NewCriteriaBuilder().FromURLValues(values).Build()

	assert.Equal(t, 25, *c.Limit)
	assert.Equal(t, 50, *c.Offset)
	assert.Equal(t, 3, c.Page())
	assert.Equal(t, "sale_date", c.Order.Field)
	assert.Equal(t, DESC, c.Order.OrderType)
}

func TestCriteriaBuilder_InvalidPaginationFallsBackToDefaults(t *testing.T) {
	values := url.Values{}
	values.Set("page", "-1")
	values.Set("page_size", "5000")

	c := NewCriteriaBuilder().FromURLValues(values).Build()

	assert.Equal(t, 10, *c.Limit)
	assert.Equal(t, 0, *c.Offset)
}

func TestCriteriaBuilder_WithFilters(t *testing.T) {
	c := NewCriteriaBuilder().
		WithFilter("status", OpEqual, "CREATED").
		WithFilter("total_amount", OpGreaterThan, 100).
		WithOrder("created_at", DESC).
		WithPagination(2, 20).
		Build()

	require.Len(t, c.Filters.Items, 2)
	assert.Equal(t, "status", c.Filters.Items[0].Field)
	assert.Equal(t, OpEqual, c.Filters.Items[0].Operator)
	assert.Equal(t, "CREATED", c.Filters.Items[0].Value)
	assert.Equal(t, 20, *c.Limit)
	assert.Equal(t, 20, *c.Offset)
}

func TestCriteria_PageWithoutPagination(t *testing.T) {
	c := NewCriteria(NewFilters(), Order{}, nil, nil)

	assert.Equal(t, 1, c.Page())
	assert.Equal(t, 10, c.PageSize())
}
