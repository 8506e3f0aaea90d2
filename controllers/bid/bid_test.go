package bid_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"catering-booking/database"
	bidModel "catering-booking/models/bid"
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

func seedCustomerAndBooking(t *testing.T, db *gorm.DB, active bool) (customerModel.Customer, bookingModel.Booking) {
	t.Helper()

	c := customerModel.Customer{
		Name:        "Test Customer",
		Email:       fmt.Sprintf("%s@x.com", t.Name()),
		PhoneNumber: "555-1111",
		IsActive:    true,
	}
	require.NoError(t, db.Create(&c).Error)
	if !active {
		require.NoError(t, db.Model(&c).Update("is_active", false).Error)
		c.IsActive = false
	}

	b := bookingModel.Booking{
		RequestedDate:  time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		EventLocation:  "123 Main St",
		EventType:      "Birthday",
		CustomerID:     c.ID,
		NumberOfGuests: 25,
		BidStatus:      "open",
		UserID:         1,
		ServiceType:    "catering",
	}
	require.NoError(t, db.Create(&b).Error)
	return c, b
}

func mealPrepPayload(customerID, bookingID uint) fiber.Map {
	return fiber.Map{
		"bid_status":          "submitted",
		"miles":               12.5,
		"service_fee":         150.00,
		"estimated_groceries": 220.00,
		"estimated_bid_price": 450.00,
		"supplies":            35.00,
		"booking_id":          bookingID,
		"customer_id":         customerID,
	}
}

func cateringPayload(customerID, bookingID uint) fiber.Map {
	return fiber.Map{
		"bid_status":          "submitted",
		"miles":               8.0,
		"service_fee":         300.00,
		"clean_up":            true,
		"decorations":         false,
		"estimated_groceries": 500.00,
		"foods":               "brisket, sides, dessert",
		"estimated_bid_price": 1200.00,
		"booking_id":          bookingID,
		"customer_id":         customerID,
	}
}

func TestCreateMealPrepBid(t *testing.T) {
	app, db := newTestApp(t)
	c, b := seedCustomerAndBooking(t, db, true)

	resp := doJSON(t, app, fiber.MethodPost, "/meal_prep_bids", mealPrepPayload(c.ID, b.ID))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created bidModel.MealPrepBid
	decodeBody(t, resp, &created)
	assert.NotZero(t, created.ID)
	assert.Equal(t, b.ID, created.BookingID)
	assert.Equal(t, c.ID, created.CustomerID)
	assert.InDelta(t, 450.00, created.EstimatedBidPrice, 0.001)
}

func TestSecondBidAcrossTypesRejected(t *testing.T) {
	app, db := newTestApp(t)
	c, b := seedCustomerAndBooking(t, db, true)

	resp := doJSON(t, app, fiber.MethodPost, "/meal_prep_bids", mealPrepPayload(c.ID, b.ID))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, fiber.MethodPost, "/catering_bids", cateringPayload(c.ID, b.ID))
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "A bid already exists for this booking", body["error"])
}

func TestSecondBidSameTypeRejected(t *testing.T) {
	app, db := newTestApp(t)
	c, b := seedCustomerAndBooking(t, db, true)

	resp := doJSON(t, app, fiber.MethodPost, "/catering_bids", cateringPayload(c.ID, b.ID))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, fiber.MethodPost, "/catering_bids", cateringPayload(c.ID, b.ID))
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestBidForInactiveCustomerRejected(t *testing.T) {
	app, db := newTestApp(t)
	c, b := seedCustomerAndBooking(t, db, false)

	resp := doJSON(t, app, fiber.MethodPost, "/meal_prep_bids", mealPrepPayload(c.ID, b.ID))
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "Cannot create a bid for an inactive customer", body["error"])
}

func TestBidMissingFieldRejected(t *testing.T) {
	app, db := newTestApp(t)
	c, b := seedCustomerAndBooking(t, db, true)

	payload := mealPrepPayload(c.ID, b.ID)
	delete(payload, "service_fee")

	resp := doJSON(t, app, fiber.MethodPost, "/meal_prep_bids", payload)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "Missing required field: service_fee", body["error"])
}

func TestUpdateMealPrepBidPartialIdempotent(t *testing.T) {
	app, db := newTestApp(t)
	c, b := seedCustomerAndBooking(t, db, true)

	resp := doJSON(t, app, fiber.MethodPost, "/meal_prep_bids", mealPrepPayload(c.ID, b.ID))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created bidModel.MealPrepBid
	decodeBody(t, resp, &created)

	payload := fiber.Map{"bid_status": "accepted", "estimated_bid_price": 475.00}
	for i := 0; i < 2; i++ {
		resp = doJSON(t, app, fiber.MethodPut, fmt.Sprintf("/meal_prep_bids/%d", created.ID), payload)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	var reloaded bidModel.MealPrepBid
	require.NoError(t, db.First(&reloaded, created.ID).Error)
	assert.Equal(t, "accepted", reloaded.BidStatus)
	assert.InDelta(t, 475.00, reloaded.EstimatedBidPrice, 0.001)
	assert.InDelta(t, 12.5, reloaded.Miles, 0.001)
}

func TestUpdateBidWithCompositeKey(t *testing.T) {
	app, db := newTestApp(t)
	c, b := seedCustomerAndBooking(t, db, true)

	resp := doJSON(t, app, fiber.MethodPost, "/catering_bids", cateringPayload(c.ID, b.ID))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created bidModel.CateringBid
	decodeBody(t, resp, &created)

	// Wrong customer part of the composite key misses the row.
	path := fmt.Sprintf("/catering_bids/%d/%d", created.ID, c.ID+100)
	resp = doJSON(t, app, fiber.MethodPut, path, fiber.Map{"bid_status": "accepted"})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	path = fmt.Sprintf("/catering_bids/%d/%d/%d", created.ID, c.ID, b.ID)
	resp = doJSON(t, app, fiber.MethodPut, path, fiber.Map{"bid_status": "accepted"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var reloaded bidModel.CateringBid
	require.NoError(t, db.First(&reloaded, created.ID).Error)
	assert.Equal(t, "accepted", reloaded.BidStatus)
}

func TestDeleteBidWithCompositeKey(t *testing.T) {
	app, db := newTestApp(t)
	c, b := seedCustomerAndBooking(t, db, true)

	resp := doJSON(t, app, fiber.MethodPost, "/meal_prep_bids", mealPrepPayload(c.ID, b.ID))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created bidModel.MealPrepBid
	decodeBody(t, resp, &created)

	path := fmt.Sprintf("/meal_prep_bids/%d/%d/%d", created.ID, c.ID, b.ID+1)
	resp = doJSON(t, app, fiber.MethodDelete, path, nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/meal_prep_bids/%d", created.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var count int64
	require.NoError(t, db.Model(&bidModel.MealPrepBid{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestListBids(t *testing.T) {
	app, db := newTestApp(t)
	c, b := seedCustomerAndBooking(t, db, true)

	resp := doJSON(t, app, fiber.MethodPost, "/meal_prep_bids", mealPrepPayload(c.ID, b.ID))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, fiber.MethodGet, "/meal_prep_bids", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var mealBids []bidModel.MealPrepBid
	decodeBody(t, resp, &mealBids)
	assert.Len(t, mealBids, 1)

	resp = doJSON(t, app, fiber.MethodGet, "/catering_bids", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var cateringBids []bidModel.CateringBid
	decodeBody(t, resp, &cateringBids)
	assert.Empty(t, cateringBids)
}
