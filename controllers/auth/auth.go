package auth

import (
	"errors"
	"os"
	"time"

	"catering-booking/apperrors"
	"catering-booking/logger"
	userModel "catering-booking/models/user"
	"catering-booking/types"
	userTypes "catering-booking/types/user"
	"catering-booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AuthController struct {
	db             *gorm.DB
	loggerInstance *logger.AsyncLogger
}

func NewAuthController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *AuthController {
	return &AuthController{db: db, loggerInstance: asyncLogger}
}

func respondError(c *fiber.Ctx, context string, err error) error {
	logger.Error(context, err)
	return c.Status(apperrors.Status(err)).JSON(types.ErrorResponse{Error: apperrors.PublicMessage(err)})
}

// Helper function to set secure cookies based on environment
func (h *AuthController) setSecureCookie(c *fiber.Ctx, name, value string, maxAge int) {
	isProduction := os.Getenv("APP_ENV") == "production"

	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		HTTPOnly: false,
		Secure:   isProduction,
		SameSite: "Strict",
		MaxAge:   maxAge,
		Path:     "/",
	})
}

// Login verifies a username/password pair against the stored bcrypt hash.
// Unknown user and wrong password produce the same response.
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req userTypes.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, "Error parsing request body", apperrors.Validation("Invalid request body"))
	}

	if err := req.Validate(); err != nil {
		return respondError(c, "Login validation failed", err)
	}

	var u userModel.User
	if err := h.db.Where("username = ?", req.Username).First(&u).Error; err != nil {
		return respondError(c, "Login failed for user "+req.Username,
			apperrors.Credential("Invalid username or password"))
	}

	if !utils.CheckPassword(u.Password, req.Password) {
		return respondError(c, "Login failed for user "+req.Username,
			apperrors.Credential("Invalid username or password"))
	}

	token, err := utils.GenerateAccessToken(&u)
	if err != nil {
		return respondError(c, "Failed to generate access token", apperrors.Internal("Failed to generate access token", err))
	}

	h.setSecureCookie(c, "access", token, 8*60*60)

	currentTime := time.Now().Format("2006-01-02 03:04:05 PM")
	logger.Success("User logged in successfully: " + u.Username + " at " + currentTime)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Login successful",
		"user":    u,
		"token":   token,
	})
}

// Register creates a new user account with a hashed password.
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req userTypes.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, "Error parsing request body", apperrors.Validation("Invalid request body"))
	}

	if err := req.Validate(); err != nil {
		return respondError(c, "Register validation failed", err)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return respondError(c, "Failed to hash password", apperrors.Internal("Failed to hash password", err))
	}

	u := userModel.User{
		Username: req.Username,
		Password: hashed,
		Email:    req.Email,
	}

	if err := h.db.Create(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return respondError(c, "Duplicate username "+req.Username,
				apperrors.Conflict("Username already exists"))
		}
		return respondError(c, "Failed to create user", apperrors.Internal("Error creating user", err))
	}

	logger.Success("User registered successfully: " + u.Username)
	return c.Status(fiber.StatusCreated).JSON(types.MessageResponse{Message: "User created successfully"})
}
