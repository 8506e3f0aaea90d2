package apperrors

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestStatusMapping(t *testing.T) {
	assert.Equal(t, fiber.StatusBadRequest, Status(Validation("bad input")))
	assert.Equal(t, fiber.StatusBadRequest, Status(Conflict("duplicate")))
	assert.Equal(t, fiber.StatusNotFound, Status(NotFound("missing")))
	assert.Equal(t, fiber.StatusUnauthorized, Status(Credential("nope")))
	assert.Equal(t, fiber.StatusForbidden, Status(Forbidden("inactive")))
	assert.Equal(t, fiber.StatusBadGateway, Status(Dependency("remote down", errors.New("boom"))))
	assert.Equal(t, fiber.StatusInternalServerError, Status(Internal("oops", errors.New("boom"))))
	assert.Equal(t, fiber.StatusInternalServerError, Status(errors.New("raw error")))
}

func TestPublicMessageRedactsInternal(t *testing.T) {
	assert.Equal(t, "bad input", PublicMessage(Validation("bad input")))
	assert.Equal(t, "An unexpected error occurred.", PublicMessage(Internal("db exploded", errors.New("boom"))))
	assert.Equal(t, "An unexpected error occurred.", PublicMessage(errors.New("raw error")))
}

func TestFromDBClassification(t *testing.T) {
	assert.Equal(t, KindNotFound, FromDB(gorm.ErrRecordNotFound, "missing").Kind)
	assert.Equal(t, KindConflict, FromDB(gorm.ErrDuplicatedKey, "dup").Kind)
	assert.Equal(t, KindConflict, FromDB(gorm.ErrForeignKeyViolated, "fk").Kind)
	assert.Equal(t, KindInternal, FromDB(errors.New("io error"), "other").Kind)
}

func TestErrorWrapping(t *testing.T) {
	cause := errors.New("boom")
	err := Internal("db exploded", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "db exploded: boom", err.Error())
	assert.True(t, Is(err, KindInternal))
	assert.False(t, Is(err, KindValidation))
}
