package user

import (
	"catering-booking/apperrors"
	"catering-booking/logger"
	userModel "catering-booking/models/user"
	"catering-booking/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserController serves user account reads.
type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// Index returns all users. Password hashes are never serialized.
func (uc *UserController) Index(c *fiber.Ctx) error {
	var users []userModel.User
	if err := uc.DB.Order("id").Find(&users).Error; err != nil {
		err = apperrors.Internal("Failed to list users", err)
		logger.Error("Failed to list users", err)
		return c.Status(apperrors.Status(err)).JSON(types.ErrorResponse{Error: apperrors.PublicMessage(err)})
	}
	return c.Status(fiber.StatusOK).JSON(users)
}
