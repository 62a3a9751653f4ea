package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appshift "github.com/Wh0mever/Palma-backend-sub000/internal/application/shift"
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/shift"
	"github.com/Wh0mever/Palma-backend-sub000/internal/interfaces/http/dto"
)

// ShiftHandler exposes cashier shift operations over HTTP
type ShiftHandler struct {
	shifts *appshift.Service
}

// NewShiftHandler creates a new ShiftHandler
func NewShiftHandler(shifts *appshift.Service) *ShiftHandler {
	return &ShiftHandler{shifts: shifts}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *ShiftHandler) RegisterRoutes(rg *gin.RouterGroup) {
	shifts := rg.Group("/shifts")
	{
		shifts.GET("", h.History)
		shifts.GET("/current", h.Current)
		shifts.POST("/open", h.Open)
		shifts.POST("/close", h.Close)
	}
}

// Open handles POST /api/v1/shifts/open
func (h *ShiftHandler) Open(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	opened, err := h.shifts.Open(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(toShiftResponse(opened)))
}

// CloseShiftRequest is the JSON body for shift close
type CloseShiftRequest struct {
	OwnPaymentsOnly bool `json:"own_payments_only"`
}

// Close handles POST /api/v1/shifts/close
func (h *ShiftHandler) Close(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req CloseShiftRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("INVALID_REQUEST", err.Error()))
			return
		}
	}
	closed, err := h.shifts.Close(c.Request.Context(), actor.ID, actor.ID, appshift.CloseOptions{
		OwnPaymentsOnly: req.OwnPaymentsOnly,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(toShiftResponse(closed)))
}

// Current handles GET /api/v1/shifts/current
func (h *ShiftHandler) Current(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	open, err := h.shifts.FindOpen(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	if open == nil {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(nil))
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(toShiftResponse(open)))
}

// History handles GET /api/v1/shifts
func (h *ShiftHandler) History(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	shifts, err := h.shifts.History(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	responses := make([]ShiftResponse, len(shifts))
	for i, s := range shifts {
		responses[i] = toShiftResponse(s)
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(responses))
}

// ShiftResponse is the JSON shape of a cashier shift
type ShiftResponse struct {
	ID              uuid.UUID  `json:"id"`
	OperatorID      uuid.UUID  `json:"operator_id"`
	StartedAt       time.Time  `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
	ClosedBy        *uuid.UUID `json:"closed_by,omitempty"`
	OverallIncome   string     `json:"overall_income"`
	OverallOutcome  string     `json:"overall_outcome"`
	CashIncome      string     `json:"cash_income"`
	CashOutcome     string     `json:"cash_outcome"`
	TotalProfit     string     `json:"total_profit"`
	TotalProfitCash string     `json:"total_profit_cash"`
}

func toShiftResponse(s *shift.CashierShift) ShiftResponse {
	return ShiftResponse{
		ID:              s.ID,
		OperatorID:      s.OperatorID,
		StartedAt:       s.StartedAt,
		EndedAt:         s.EndedAt,
		ClosedBy:        s.ClosedBy,
		OverallIncome:   s.OverallIncome.String(),
		OverallOutcome:  s.OverallOutcome.String(),
		CashIncome:      s.CashIncome.String(),
		CashOutcome:     s.CashOutcome.String(),
		TotalProfit:     s.TotalProfit().String(),
		TotalProfitCash: s.TotalProfitCash().String(),
	}
}
