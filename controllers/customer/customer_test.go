package customer_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"catering-booking/database"
	bookingModel "catering-booking/models/booking"
	customerModel "catering-booking/models/customer"
	"catering-booking/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	app := fiber.New()
	routes.SetupRoutes(app, db)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestCreateCustomer(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/customers", fiber.Map{
		"name":         "Al",
		"email":        "al@x.com",
		"phone_number": "555-1111",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created customerModel.Customer
	decodeBody(t, resp, &created)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Al", created.Name)
	assert.True(t, created.IsActive)
}

func TestCreateCustomerDuplicateEmail(t *testing.T) {
	app, _ := newTestApp(t)

	payload := fiber.Map{"name": "Al", "email": "al@x.com", "phone_number": "555-1111"}
	resp := doJSON(t, app, fiber.MethodPost, "/customers", payload)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, fiber.MethodPost, "/customers", payload)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Contains(t, body, "error")
}

func TestCreateCustomerMissingField(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/customers", fiber.Map{
		"name": "Al", "email": "al@x.com",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "Missing required field: phone_number", body["error"])
}

func TestUpdateCustomerPartial(t *testing.T) {
	app, db := newTestApp(t)

	c := customerModel.Customer{Name: "Al", Email: "al@x.com", PhoneNumber: "555-1111", IsActive: true}
	require.NoError(t, db.Create(&c).Error)

	resp := doJSON(t, app, fiber.MethodPut, fmt.Sprintf("/customers/%d", c.ID), fiber.Map{
		"phone_number": "555-2222",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated customerModel.Customer
	decodeBody(t, resp, &updated)
	assert.Equal(t, "555-2222", updated.PhoneNumber)
	assert.Equal(t, "Al", updated.Name)
	assert.Equal(t, "al@x.com", updated.Email)
}

func TestUpdateCustomerNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPut, "/customers/999", fiber.Map{"name": "Nobody"})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestDeactivateCustomer(t *testing.T) {
	app, db := newTestApp(t)

	c := customerModel.Customer{Name: "Al", Email: "al@x.com", PhoneNumber: "555-1111", IsActive: true}
	require.NoError(t, db.Create(&c).Error)

	resp := doJSON(t, app, fiber.MethodPatch, fmt.Sprintf("/customers/%d", c.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var reloaded customerModel.Customer
	require.NoError(t, db.First(&reloaded, c.ID).Error)
	assert.False(t, reloaded.IsActive)
}

func TestDeactivateCustomerWithBookings(t *testing.T) {
	app, db := newTestApp(t)

	c := customerModel.Customer{Name: "Al", Email: "al@x.com", PhoneNumber: "555-1111", IsActive: true}
	require.NoError(t, db.Create(&c).Error)

	b := bookingModel.Booking{
		RequestedDate:  time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		EventLocation:  "123 Main St",
		EventType:      "Birthday",
		CustomerID:     c.ID,
		NumberOfGuests: 20,
		BidStatus:      "open",
		UserID:         1,
		ServiceType:    "catering",
	}
	require.NoError(t, db.Create(&b).Error)

	resp := doJSON(t, app, fiber.MethodPatch, fmt.Sprintf("/customers/%d", c.ID), nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "Cannot deactivate customer with existing bookings", body["error"])

	var reloaded customerModel.Customer
	require.NoError(t, db.First(&reloaded, c.ID).Error)
	assert.True(t, reloaded.IsActive)
}

func TestReactivateCustomer(t *testing.T) {
	app, db := newTestApp(t)

	c := customerModel.Customer{Name: "Al", Email: "al@x.com", PhoneNumber: "555-1111", IsActive: true}
	require.NoError(t, db.Create(&c).Error)
	require.NoError(t, db.Model(&c).Update("is_active", false).Error)

	resp := doJSON(t, app, fiber.MethodPatch, fmt.Sprintf("/customers/%d/reactivate", c.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var reloaded customerModel.Customer
	require.NoError(t, db.First(&reloaded, c.ID).Error)
	assert.True(t, reloaded.IsActive)
}

func TestListCustomers(t *testing.T) {
	app, db := newTestApp(t)

	for i := 0; i < 3; i++ {
		c := customerModel.Customer{
			Name:        fmt.Sprintf("Customer %d", i),
			Email:       fmt.Sprintf("c%d@x.com", i),
			PhoneNumber: "555-0000",
			IsActive:    true,
		}
		require.NoError(t, db.Create(&c).Error)
	}

	resp := doJSON(t, app, fiber.MethodGet, "/customers", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var customers []customerModel.Customer
	decodeBody(t, resp, &customers)
	assert.Len(t, customers, 3)
}
