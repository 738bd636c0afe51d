package repository

import "errors"

var (
	ErrNotFound = errors.New("record not found")
)

// Repositories holds the supply stores handed to services.
type Repositories struct {
	Order   *OrderRepository
	Catalog *CatalogRepository
}

// NewRepositories creates empty stores with the fixed item catalog loaded.
func NewRepositories() *Repositories {
	return &Repositories{
		Order:   NewOrderRepository(),
		Catalog: NewCatalogRepository(DefaultItems()),
	}
}
