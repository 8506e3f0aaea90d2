package customer

import (
	"errors"
	"fmt"

	"catering-booking/apperrors"
	"catering-booking/logger"
	bookingModel "catering-booking/models/booking"
	customerModel "catering-booking/models/customer"
	"catering-booking/types"
	customerTypes "catering-booking/types/customer"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CustomerController handles customer-related HTTP requests
type CustomerController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewCustomerController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *CustomerController {
	return &CustomerController{DB: db, Logger: asyncLogger}
}

func respondError(c *fiber.Ctx, context string, err error) error {
	logger.Error(context, err)
	return c.Status(apperrors.Status(err)).JSON(types.ErrorResponse{Error: apperrors.PublicMessage(err)})
}

// Index returns all customers.
func (cc *CustomerController) Index(c *fiber.Ctx) error {
	var customers []customerModel.Customer
	if err := cc.DB.Order("id").Find(&customers).Error; err != nil {
		return respondError(c, "Failed to list customers", apperrors.Internal("Failed to list customers", err))
	}
	return c.Status(fiber.StatusOK).JSON(customers)
}

// Store creates a new customer.
func (cc *CustomerController) Store(c *fiber.Ctx) error {
	var req customerTypes.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, "Failed to parse request body", apperrors.Validation("Invalid request body"))
	}

	if err := req.Validate(); err != nil {
		return respondError(c, "Customer validation failed", err)
	}

	customer := customerModel.Customer{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		IsActive:    true,
	}

	if err := cc.DB.Create(&customer).Error; err != nil {
		return respondError(c, "Failed to create customer",
			apperrors.FromDB(err, "Could not add customer, possibly a duplicate entry."))
	}

	logger.Success(fmt.Sprintf("Customer created successfully with ID: %d", customer.ID))
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// Update applies a partial update to a customer.
func (cc *CustomerController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, "Invalid customer id", apperrors.Validation("Invalid customer id"))
	}

	var req customerTypes.UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, "Failed to parse request body", apperrors.Validation("Invalid request body"))
	}

	var customer customerModel.Customer
	if err := cc.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, "Customer not found", apperrors.NotFound("Customer not found"))
		}
		return respondError(c, "Failed to load customer", apperrors.Internal("Failed to load customer", err))
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		customer.PhoneNumber = *req.PhoneNumber
	}

	if err := cc.DB.Save(&customer).Error; err != nil {
		return respondError(c, "Failed to update customer",
			apperrors.FromDB(err, "Could not update customer, possibly a duplicate entry."))
	}

	return c.Status(fiber.StatusOK).JSON(customer)
}

// Deactivate soft-deactivates a customer. Customers with existing bookings
// cannot be deactivated.
func (cc *CustomerController) Deactivate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, "Invalid customer id", apperrors.Validation("Invalid customer id"))
	}

	var customer customerModel.Customer
	if err := cc.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, "Customer not found", apperrors.NotFound("Customer not found"))
		}
		return respondError(c, "Failed to load customer", apperrors.Internal("Failed to load customer", err))
	}

	var bookingCount int64
	if err := cc.DB.Model(&bookingModel.Booking{}).
		Where("customer_id = ?", customer.ID).Count(&bookingCount).Error; err != nil {
		return respondError(c, "Failed to count bookings", apperrors.Internal("Failed to count bookings", err))
	}
	if bookingCount > 0 {
		return respondError(c, fmt.Sprintf("Customer %d has existing bookings", customer.ID),
			apperrors.Conflict("Cannot deactivate customer with existing bookings"))
	}

	customer.IsActive = false
	if err := cc.DB.Save(&customer).Error; err != nil {
		return respondError(c, "Failed to deactivate customer", apperrors.Internal("Failed to deactivate customer", err))
	}

	logger.Success(fmt.Sprintf("Customer %d deactivated", customer.ID))
	return c.Status(fiber.StatusOK).JSON(customer)
}

// Reactivate flips an inactive customer back to active.
func (cc *CustomerController) Reactivate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, "Invalid customer id", apperrors.Validation("Invalid customer id"))
	}

	var customer customerModel.Customer
	if err := cc.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, "Customer not found", apperrors.NotFound("Customer not found"))
		}
		return respondError(c, "Failed to load customer", apperrors.Internal("Failed to load customer", err))
	}

	customer.IsActive = true
	if err := cc.DB.Save(&customer).Error; err != nil {
		return respondError(c, "Failed to reactivate customer", apperrors.Internal("Failed to reactivate customer", err))
	}

	logger.Success(fmt.Sprintf("Customer %d reactivated", customer.ID))
	return c.Status(fiber.StatusOK).JSON(customer)
}
