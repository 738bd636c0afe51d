package repository

import (
	"time"

	"github.com/bbabadara/gestion-approvisionnement-exam-s6/internal/supply/entity"
)

// DefaultItems is the fixed reference catalog.
func DefaultItems() []entity.Item {
	return []entity.Item{
		{ID: 1, Label: "Ordinateur portable", UnitPrice: 800},
		{ID: 2, Label: "Souris sans fil", UnitPrice: 30},
		{ID: 3, Label: "Clavier mécanique", UnitPrice: 80},
		{ID: 4, Label: "Écran 24 pouces", UnitPrice: 200},
		{ID: 5, Label: "Casque audio", UnitPrice: 100},
	}
}

// SeedDemoData loads the demo working set: three suppliers and two orders,
// one pending and one already received.
func SeedDemoData(repos *Repositories) {
	suppliers := []entity.Supplier{
		{ID: 1, Name: "Fournisseur A", Phone: "77 123-45-67"},
		{ID: 2, Name: "Fournisseur B", Phone: "77 234-56-78"},
		{ID: 3, Name: "Fournisseur C", Phone: "77 345-67-89"},
	}

	orders := []entity.Order{
		{
			ID:         1,
			Reference:  "APP-2025-001",
			Date:       time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
			SupplierID: 1,
			Status:     entity.OrderStatusPending,
			Notes:      "Livraison partielle attendue",
			Lines: []entity.OrderLine{
				{ItemID: 1, Quantity: 10, UnitPrice: 1500},
				{ItemID: 2, Quantity: 20, UnitPrice: 200},
			},
			TotalAmount: 10*1500 + 20*200,
			CreatedAt:   time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:         2,
			Reference:  "APP-2025-002",
			Date:       time.Date(2025, 10, 25, 0, 0, 0, 0, time.UTC),
			SupplierID: 2,
			Status:     entity.OrderStatusReceived,
			Lines: []entity.OrderLine{
				{ItemID: 3, Quantity: 100, UnitPrice: 50},
			},
			TotalAmount: 100 * 50,
			CreatedAt:   time.Date(2025, 10, 25, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2025, 10, 25, 0, 0, 0, 0, time.UTC),
		},
	}

	repos.Order.Load(suppliers, orders)
}
