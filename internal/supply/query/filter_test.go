package query

import (
	"fmt"
	"testing"
	"time"

	"github.com/bbabadara/gestion-approvisionnement-exam-s6/internal/supply/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCatalog = map[int64]entity.Item{
	1: {ID: 1, Label: "Ordinateur portable", UnitPrice: 800},
	2: {ID: 2, Label: "Souris sans fil", UnitPrice: 30},
	3: {ID: 3, Label: "Clavier mécanique", UnitPrice: 80},
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testOrder(id int64, date time.Time, supplierID int64, supplierName, status string, itemIDs ...int64) entity.Order {
	sup := &entity.Supplier{ID: supplierID, Name: supplierName}
	o := entity.Order{
		ID:         id,
		Date:       date,
		SupplierID: supplierID,
		Supplier:   sup,
		Status:     status,
	}
	for _, itemID := range itemIDs {
		o.Lines = append(o.Lines, entity.OrderLine{ItemID: itemID, Quantity: 1, UnitPrice: 10})
	}
	return o
}

func testOrders() []entity.Order {
	return []entity.Order{
		testOrder(1, day(2025, 11, 1), 1, "Fournisseur A", entity.OrderStatusPending, 1, 2),
		testOrder(2, day(2025, 10, 25), 2, "Fournisseur B", entity.OrderStatusReceived, 3),
		testOrder(3, day(2025, 10, 10), 1, "Fournisseur A", entity.OrderStatusReceived, 2),
	}
}

func TestFilterSearchTerm(t *testing.T) {
	orders := testOrders()

	// Supplier name, case-insensitive substring.
	got := Filter(orders, testCatalog, ListQuery{Search: "fournisseur b"})
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)

	// Stringified order id.
	got = Filter(orders, testCatalog, ListQuery{Search: "3"})
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)

	// Referenced item label.
	got = Filter(orders, testCatalog, ListQuery{Search: "souris"})
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)

	// No sub-match at all.
	got = Filter(orders, testCatalog, ListQuery{Search: "imprimante"})
	assert.Empty(t, got)
}

func TestFilterConjunctive(t *testing.T) {
	orders := testOrders()

	got := Filter(orders, testCatalog, ListQuery{
		SupplierID: 1,
		Status:     entity.OrderStatusReceived,
	})
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)
}

func TestFilterByItemAndStatus(t *testing.T) {
	orders := testOrders()

	got := Filter(orders, testCatalog, ListQuery{ItemID: 2})
	require.Len(t, got, 2)

	got = Filter(orders, testCatalog, ListQuery{Status: entity.OrderStatusPending})
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestFilterDateRangeInclusive(t *testing.T) {
	orders := []entity.Order{
		testOrder(1, time.Date(2025, 10, 25, 15, 30, 0, 0, time.UTC), 1, "A", entity.OrderStatusPending, 1),
		testOrder(2, day(2025, 10, 26), 1, "A", entity.OrderStatusPending, 1),
	}

	// The end date covers the whole day, so 15:30 on the bound still matches.
	got := Filter(orders, testCatalog, ListQuery{
		StartDate: day(2025, 10, 25),
		EndDate:   day(2025, 10, 25),
	})
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	got = Filter(orders, testCatalog, ListQuery{StartDate: day(2025, 10, 26)})
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestSortByDate(t *testing.T) {
	orders := testOrders()

	desc := Filter(orders, testCatalog, ListQuery{})
	for i := 1; i < len(desc); i++ {
		assert.False(t, desc[i-1].Date.Before(desc[i].Date), "descending order broken at %d", i)
	}

	asc := Filter(orders, testCatalog, ListQuery{Sort: SortAsc})
	for i := 1; i < len(asc); i++ {
		assert.False(t, asc[i-1].Date.After(asc[i].Date), "ascending order broken at %d", i)
	}
}

func TestApplyPagination(t *testing.T) {
	var orders []entity.Order
	for i := 1; i <= 25; i++ {
		orders = append(orders, testOrder(int64(i), day(2025, 1, 1).AddDate(0, 0, i), 1, "A", entity.OrderStatusPending, 1))
	}

	page, p := Apply(orders, testCatalog, ListQuery{Page: 1, PageSize: 10})
	assert.Len(t, page, 10)
	assert.Equal(t, 25, p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 1, p.Page)

	// Requesting past the end clamps to the last page.
	page, p = Apply(orders, testCatalog, ListQuery{Page: 5, PageSize: 10})
	assert.Len(t, page, 5)
	assert.Equal(t, 3, p.Page)

	// No matches: page stays 1.
	page, p = Apply(orders, testCatalog, ListQuery{Search: "introuvable", Page: 4})
	assert.Empty(t, page)
	assert.Equal(t, 0, p.Total)
	assert.Equal(t, 0, p.TotalPages)
	assert.Equal(t, 1, p.Page)
}

func TestApplyDefaults(t *testing.T) {
	orders := testOrders()

	page, p := Apply(orders, testCatalog, ListQuery{})
	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, DefaultPageSize, p.PageSize)
	// Default sort is descending by date.
	require.Len(t, page, 3)
	assert.Equal(t, int64(1), page[0].ID)
	assert.Equal(t, int64(3), page[2].ID)
}

func TestPageNumbers(t *testing.T) {
	tests := []struct {
		current, total int
		want           []int
	}{
		{1, 3, []int{1, 2, 3}},
		{1, 10, []int{1, 2, 3, 4, 5}},
		{5, 10, []int{3, 4, 5, 6, 7}},
		{10, 10, []int{6, 7, 8, 9, 10}},
		{9, 10, []int{6, 7, 8, 9, 10}},
		{1, 1, []int{1}},
		{1, 0, []int{}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_of_%d", tt.current, tt.total), func(t *testing.T) {
			assert.Equal(t, tt.want, PageNumbers(tt.current, tt.total))
		})
	}
}
