package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/shared"
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/shift"
	"github.com/Wh0mever/Palma-backend-sub000/internal/interfaces/http/dto"
)

// actorFrom extracts the already-authenticated actor the auth middleware
// placed on the request. Capability verification happens upstream; the
// handlers only pass the result along.
func actorFrom(c *gin.Context) (shared.Actor, bool) {
	rawID := c.GetHeader("X-Actor-ID")
	id, err := uuid.Parse(rawID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("UNAUTHENTICATED", "Actor identity missing"))
		return shared.Actor{}, false
	}
	isAdmin, _ := strconv.ParseBool(c.GetHeader("X-Actor-Admin"))
	return shared.Actor{ID: id, IsAdmin: isAdmin}, true
}

// pathUUID parses a UUID path parameter, responding 400 on failure
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("INVALID_ID", "Invalid "+name+" parameter"))
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps domain errors onto HTTP statuses
func respondError(c *gin.Context, err error) {
	var stateErr *shift.StateError
	if errors.As(err, &stateErr) {
		c.JSON(http.StatusConflict, dto.NewErrorResponse(stateErr.Code, stateErr.Message))
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		c.JSON(statusFor(domainErr), dto.NewErrorResponse(domainErr.Code, domainErr.Message))
		return
	}

	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("INTERNAL_ERROR", "Internal server error"))
}

func statusFor(err *shared.DomainError) int {
	switch err.Code {
	case shared.ErrNotFound.Code:
		return http.StatusNotFound
	case shared.ErrForbidden.Code:
		return http.StatusForbidden
	case shared.ErrLedgerInconsistent.Code:
		return http.StatusConflict
	case shared.ErrConcurrencyConflict.Code:
		return http.StatusConflict
	case shared.ErrInvalidState.Code, "ALREADY_DELETED":
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
