package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bbabadara/gestion-approvisionnement-exam-s6/internal/supply/entity"
	"github.com/bbabadara/gestion-approvisionnement-exam-s6/internal/supply/repository"
	"github.com/gin-gonic/gin"
)

// TestEnv holds the backing stores and router under test.
type TestEnv struct {
	Repos  *repository.Repositories
	Router *gin.Engine
	T      *testing.T
}

// SetupRouter creates a gin test router.
func SetupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())
	return r
}

// SeedOrder loads one order with a fixed date into the store, registering its
// supplier alongside the ones already known.
func SeedOrder(t *testing.T, repos *repository.Repositories, o entity.Order) {
	t.Helper()

	ctx := context.Background()
	existing := repos.Order.FindAll(ctx)
	suppliers := repos.Order.Suppliers(ctx)
	repos.Order.Load(suppliers, append(existing, o))
}

// Supplier builds a supplier fixture.
func Supplier(id int64, name string) *entity.Supplier {
	return &entity.Supplier{ID: id, Name: name, Phone: "77 000-00-00"}
}

// Order builds an order fixture with one line.
func Order(id int64, date time.Time, sup *entity.Supplier, status string, itemID int64, qty int, price float64) entity.Order {
	return entity.Order{
		ID:         id,
		Reference:  "APP-TEST",
		Date:       date,
		SupplierID: sup.ID,
		Supplier:   sup,
		Status:     status,
		Lines: []entity.OrderLine{
			{ItemID: itemID, Quantity: qty, UnitPrice: price},
		},
		TotalAmount: float64(qty) * price,
	}
}

// DoRequest executes an HTTP request against the test router.
func DoRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ParseResponse parses the JSON response envelope into a map.
func ParseResponse(w *httptest.ResponseRecorder) map[string]interface{} {
	var result map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}
