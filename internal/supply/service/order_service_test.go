package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bbabadara/gestion-approvisionnement-exam-s6/internal/supply/entity"
	"github.com/bbabadara/gestion-approvisionnement-exam-s6/internal/supply/query"
	"github.com/bbabadara/gestion-approvisionnement-exam-s6/internal/supply/repository"
)

func listAll() query.ListQuery {
	return query.ListQuery{}
}

func setupService(t *testing.T) (*OrderService, *repository.Repositories) {
	t.Helper()
	repos := repository.NewRepositories()
	repository.SeedDemoData(repos)
	return NewOrderService(repos.Order, repos.Catalog), repos
}

func TestDraftRejectsInvalidLines(t *testing.T) {
	draft := NewOrderDraft()
	if err := draft.AddLine(1, 2, 100); err != nil {
		t.Fatalf("valid add failed: %v", err)
	}

	cases := []struct {
		name      string
		itemID    int64
		qty       int
		unitPrice float64
	}{
		{"no item selected", 0, 1, 10},
		{"zero quantity", 1, 0, 10},
		{"negative quantity", 1, -3, 10},
		{"negative price", 1, 1, -0.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := draft.AddLine(tc.itemID, tc.qty, tc.unitPrice)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			// The rejected add must not have mutated the draft.
			if len(draft.Lines()) != 1 {
				t.Fatalf("draft mutated by rejected add: %d lines", len(draft.Lines()))
			}
			if draft.Total() != 200 {
				t.Fatalf("draft total mutated by rejected add: %v", draft.Total())
			}
		})
	}
}

func TestDraftRunningTotal(t *testing.T) {
	draft := NewOrderDraft()
	if !draft.Empty() {
		t.Fatal("new draft should be empty")
	}

	draft.AddLine(1, 10, 1500)
	draft.AddLine(2, 20, 200)
	if draft.Total() != 19000 {
		t.Fatalf("expected total 19000, got %v", draft.Total())
	}

	if err := draft.RemoveLine(0); err != nil {
		t.Fatalf("RemoveLine failed: %v", err)
	}
	if draft.Total() != 4000 {
		t.Fatalf("expected total 4000 after removal, got %v", draft.Total())
	}

	if err := draft.RemoveLine(5); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for out-of-range removal, got %v", err)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	valid := func() *CreateOrderRequest {
		return &CreateOrderRequest{
			Date:       "2025-11-20",
			Reference:  "APP-2025-010",
			SupplierID: 1,
			Lines:      []OrderLineRequest{{ItemID: 1, Quantity: 2, UnitPrice: 800}},
		}
	}

	cases := []struct {
		name   string
		mutate func(*CreateOrderRequest)
	}{
		{"missing date", func(r *CreateOrderRequest) { r.Date = "" }},
		{"malformed date", func(r *CreateOrderRequest) { r.Date = "20/11/2025" }},
		{"missing reference", func(r *CreateOrderRequest) { r.Reference = "" }},
		{"no lines", func(r *CreateOrderRequest) { r.Lines = nil }},
		{"bad line", func(r *CreateOrderRequest) { r.Lines[0].Quantity = 0 }},
		{"no supplier", func(r *CreateOrderRequest) { r.SupplierID = 0 }},
		{"unknown supplier", func(r *CreateOrderRequest) { r.SupplierID = 99 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid()
			tc.mutate(req)
			if _, err := svc.CreateOrder(ctx, req); !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}

	// Nothing was stored by the rejected submissions.
	if got := len(svc.FilterOrders(ctx, listAll())); got != 2 {
		t.Fatalf("expected the 2 seeded orders only, got %d", got)
	}
}

func TestCreateOrderSuccess(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, &CreateOrderRequest{
		Date:       "2025-11-20",
		Reference:  "APP-2025-003",
		SupplierID: 3,
		Notes:      "Commande urgente",
		Lines: []OrderLineRequest{
			{ItemID: 4, Quantity: 5, UnitPrice: 200},
			{ItemID: 5, Quantity: 2, UnitPrice: 100},
		},
	})
	if err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}

	if order.ID != 3 {
		t.Fatalf("expected id 3 after the seeded {1,2}, got %d", order.ID)
	}
	if order.Status != entity.OrderStatusPending {
		t.Fatalf("expected pending status, got %q", order.Status)
	}
	if order.TotalAmount != 1200 {
		t.Fatalf("expected stored total 1200, got %v", order.TotalAmount)
	}
	if order.Supplier == nil || order.Supplier.Name != "Fournisseur C" {
		t.Fatalf("expected resolved supplier, got %+v", order.Supplier)
	}
	if len(order.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(order.Lines))
	}
}

func TestCreateOrderWithNewSupplier(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, &CreateOrderRequest{
		Date:      "2025-11-20",
		Reference: "APP-2025-004",
		Supplier:  &NewSupplierRequest{Name: "Fournisseur D", Phone: "77 456-78-90"},
		Lines:     []OrderLineRequest{{ItemID: 1, Quantity: 1, UnitPrice: 800}},
	})
	if err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}

	if order.Supplier.ID != 4 {
		t.Fatalf("expected new supplier id 4, got %d", order.Supplier.ID)
	}
	if got := len(svc.ListSuppliers(ctx)); got != 4 {
		t.Fatalf("expected 4 suppliers, got %d", got)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	// Seeded order 1 is pending.
	order, err := svc.UpdateStatus(ctx, 1, entity.OrderStatusReceived)
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if order.Status != entity.OrderStatusReceived {
		t.Fatalf("expected received, got %q", order.Status)
	}

	// Received never goes back to pending.
	if _, err := svc.UpdateStatus(ctx, 1, entity.OrderStatusPending); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation on reverse transition, got %v", err)
	}

	if _, err := svc.UpdateStatus(ctx, 1, "cancelled"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation on unknown status, got %v", err)
	}

	if _, err := svc.UpdateStatus(ctx, 99, entity.OrderStatusReceived); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNextReference(t *testing.T) {
	repos := repository.NewRepositories()
	svc := NewOrderService(repos.Order, repos.Catalog)

	want := fmt.Sprintf("APP-%s-001", time.Now().Format("2006"))
	if got := svc.NextReference(context.Background()); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestGetStatsUsesCatalogPrices(t *testing.T) {
	svc, _ := setupService(t)

	stats := svc.GetStats(context.Background())

	// Seeded order 1 stores 1500/200 unit prices but the catalog says 800/30;
	// the dashboard recomputes with catalog prices: 10*800 + 20*30 = 8600.
	// Seeded order 2: 100 * 80 (catalog) = 8000.
	if stats.TotalAmount != 16600 {
		t.Fatalf("expected effective total 16600, got %v", stats.TotalAmount)
	}
	if stats.TopSupplier == nil || stats.TopSupplier.Supplier.Name != "Fournisseur A" {
		t.Fatalf("expected Fournisseur A on top, got %+v", stats.TopSupplier)
	}
	if stats.TopSupplier.Total != 8600 {
		t.Fatalf("expected top total 8600, got %v", stats.TopSupplier.Total)
	}
	if stats.PendingCount != 1 || stats.ReceivedCount != 1 {
		t.Fatalf("expected 1 pending / 1 received, got %d/%d", stats.PendingCount, stats.ReceivedCount)
	}
}
