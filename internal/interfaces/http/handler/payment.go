package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	appledger "github.com/Wh0mever/Palma-backend-sub000/internal/application/ledger"
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/ledger"
	"github.com/Wh0mever/Palma-backend-sub000/internal/interfaces/http/dto"
)

// PaymentHandler exposes the payment ledger over HTTP
type PaymentHandler struct {
	payments *appledger.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(payments *appledger.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payments := rg.Group("/payments")
	{
		payments.GET("", h.List)
		payments.GET("/:id", h.Get)
		payments.POST("/order", h.CreateOrderPayment)
		payments.POST("/provider", h.CreateProviderPayment)
		payments.POST("/income", h.CreateIncomePayment)
		payments.POST("/outlay", h.CreateOutlayPayment)
		payments.PATCH("/:id", h.Update)
		payments.DELETE("/:id", h.Delete)
	}
}

// CreateOrderPaymentRequest is the JSON body for order payments
type CreateOrderPaymentRequest struct {
	OrderID   uuid.UUID  `json:"order_id" binding:"required"`
	ClientID  *uuid.UUID `json:"client_id"`
	Amount    string     `json:"amount" binding:"required"`
	Direction string     `json:"direction" binding:"required,oneof=INCOME OUTCOME"`
	MethodID  uuid.UUID  `json:"method_id" binding:"required"`
	Comment   string     `json:"comment"`
	IsDebt    bool       `json:"is_debt"`
}

// CreateOrderPayment handles POST /api/v1/payments/order
func (h *PaymentHandler) CreateOrderPayment(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req CreateOrderPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("INVALID_REQUEST", err.Error()))
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("INVALID_AMOUNT", "Amount is not a valid decimal"))
		return
	}

	payment, err := h.payments.CreateOrderPayment(c.Request.Context(), actor, appledger.CreateOrderPaymentRequest{
		OrderID:   req.OrderID,
		ClientID:  req.ClientID,
		Amount:    amount,
		Direction: ledger.PaymentDirection(req.Direction),
		MethodID:  req.MethodID,
		Comment:   req.Comment,
		IsDebt:    req.IsDebt,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(toPaymentResponse(payment)))
}

// CreateProviderPaymentRequest is the JSON body for provider payments
type CreateProviderPaymentRequest struct {
	ProviderID uuid.UUID `json:"provider_id" binding:"required"`
	Amount     string    `json:"amount" binding:"required"`
	Direction  string    `json:"direction" binding:"required,oneof=INCOME OUTCOME"`
	MethodID   uuid.UUID `json:"method_id" binding:"required"`
	Comment    string    `json:"comment"`
}

// CreateProviderPayment handles POST /api/v1/payments/provider
func (h *PaymentHandler) CreateProviderPayment(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req CreateProviderPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("INVALID_REQUEST", err.Error()))
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("INVALID_AMOUNT", "Amount is not a valid decimal"))
		return
	}

	payment, err := h.payments.CreateProviderPayment(c.Request.Context(), actor, appledger.CreateProviderPaymentRequest{
		ProviderID: req.ProviderID,
		Amount:     amount,
		Direction:  ledger.PaymentDirection(req.Direction),
		MethodID:   req.MethodID,
		Comment:    req.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(toPaymentResponse(payment)))
}

// CreateIncomePaymentRequest is the JSON body for income payments
type CreateIncomePaymentRequest struct {
	IncomeItemID uuid.UUID `json:"income_item_id" binding:"required"`
	Amount       string    `json:"amount" binding:"required"`
	MethodID     uuid.UUID `json:"method_id" binding:"required"`
	Comment      string    `json:"comment"`
}

// CreateIncomePayment handles POST /api/v1/payments/income
func (h *PaymentHandler) CreateIncomePayment(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req CreateIncomePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("INVALID_REQUEST", err.Error()))
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("INVALID_AMOUNT", "Amount is not a valid decimal"))
		return
	}

	payment, err := h.payments.CreateIncomePayment(c.Request.Context(), actor, appledger.CreateIncomePaymentRequest{
		IncomeItemID: req.IncomeItemID,
		Amount:       amount,
		MethodID:     req.MethodID,
		Comment:      req.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(toPaymentResponse(payment)))
}

// CreateOutlayPaymentRequest is the JSON body for outlay payments
type CreateOutlayPaymentRequest struct {
	OutlayItemID uuid.UUID  `json:"outlay_item_id" binding:"required"`
	WorkerID     *uuid.UUID `json:"worker_id"`
	Amount       string     `json:"amount" binding:"required"`
	MethodID     uuid.UUID  `json:"method_id" binding:"required"`
	Comment      string     `json:"comment"`
}

// CreateOutlayPayment handles POST /api/v1/payments/outlay
func (h *PaymentHandler) CreateOutlayPayment(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req CreateOutlayPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("INVALID_REQUEST", err.Error()))
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("INVALID_AMOUNT", "Amount is not a valid decimal"))
		return
	}

	payment, err := h.payments.CreateOutlayPayment(c.Request.Context(), actor, appledger.CreateOutlayPaymentRequest{
		OutlayItemID: req.OutlayItemID,
		WorkerID:     req.WorkerID,
		Amount:       amount,
		MethodID:     req.MethodID,
		Comment:      req.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(toPaymentResponse(payment)))
}

// UpdatePaymentRequest is the JSON body for payment updates; absent fields
// stay unchanged
type UpdatePaymentRequest struct {
	Amount    *string    `json:"amount"`
	Direction *string    `json:"direction" binding:"omitempty,oneof=INCOME OUTCOME"`
	MethodID  *uuid.UUID `json:"method_id"`
	Comment   *string    `json:"comment"`
	IsDebt    *bool      `json:"is_debt"`
}

// Update handles PATCH /api/v1/payments/:id
func (h *PaymentHandler) Update(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("INVALID_REQUEST", err.Error()))
		return
	}

	upd := appledger.UpdatePaymentRequest{
		MethodID: req.MethodID,
		Comment:  req.Comment,
		IsDebt:   req.IsDebt,
	}
	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("INVALID_AMOUNT", "Amount is not a valid decimal"))
			return
		}
		upd.Amount = &amount
	}
	if req.Direction != nil {
		direction := ledger.PaymentDirection(*req.Direction)
		upd.Direction = &direction
	}

	payment, err := h.payments.Update(c.Request.Context(), actor, id, upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(toPaymentResponse(payment)))
}

// Delete handles DELETE /api/v1/payments/:id
func (h *PaymentHandler) Delete(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.payments.Delete(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(nil))
}

// Get handles GET /api/v1/payments/:id
func (h *PaymentHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	payment, err := h.payments.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(toPaymentResponse(payment)))
}

// List handles GET /api/v1/payments
func (h *PaymentHandler) List(c *gin.Context) {
	var query struct {
		Kind           *string    `form:"kind" binding:"omitempty,oneof=ORDER PROVIDER INCOME OUTLAY"`
		OrderID        *uuid.UUID `form:"order_id"`
		ProviderID     *uuid.UUID `form:"provider_id"`
		WorkerID       *uuid.UUID `form:"worker_id"`
		From           *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
		To             *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
		IncludeDeleted bool       `form:"include_deleted"`
		Page           int        `form:"page,default=1"`
		PageSize       int        `form:"page_size,default=50"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("INVALID_REQUEST", err.Error()))
		return
	}

	filter := ledger.PaymentFilter{
		OrderID:        query.OrderID,
		ProviderID:     query.ProviderID,
		WorkerID:       query.WorkerID,
		From:           query.From,
		To:             query.To,
		IncludeDeleted: query.IncludeDeleted,
		Page:           query.Page,
		PageSize:       query.PageSize,
	}
	if query.Kind != nil {
		kind := ledger.PaymentKind(*query.Kind)
		filter.Kind = &kind
	}

	payments, total, err := h.payments.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	responses := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		responses[i] = toPaymentResponse(p)
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(responses, total, query.Page, query.PageSize))
}

// PaymentResponse is the JSON shape of a payment
type PaymentResponse struct {
	ID           uuid.UUID  `json:"id"`
	Amount       string     `json:"amount"`
	Direction    string     `json:"direction"`
	Kind         string     `json:"kind"`
	MethodID     uuid.UUID  `json:"method_id"`
	OrderID      *uuid.UUID `json:"order_id,omitempty"`
	ProviderID   *uuid.UUID `json:"provider_id,omitempty"`
	IncomeItemID *uuid.UUID `json:"income_item_id,omitempty"`
	OutlayItemID *uuid.UUID `json:"outlay_item_id,omitempty"`
	WorkerID     *uuid.UUID `json:"worker_id,omitempty"`
	ClientID     *uuid.UUID `json:"client_id,omitempty"`
	CreatedBy    uuid.UUID  `json:"created_by"`
	Comment      string     `json:"comment,omitempty"`
	IsDebt       bool       `json:"is_debt"`
	IsDeleted    bool       `json:"is_deleted"`
	CreatedAt    time.Time  `json:"created_at"`
}

func toPaymentResponse(p *ledger.Payment) PaymentResponse {
	return PaymentResponse{
		ID:           p.ID,
		Amount:       p.Amount.String(),
		Direction:    p.Direction.String(),
		Kind:         p.Kind.String(),
		MethodID:     p.MethodID,
		OrderID:      p.OrderID,
		ProviderID:   p.ProviderID,
		IncomeItemID: p.IncomeItemID,
		OutlayItemID: p.OutlayItemID,
		WorkerID:     p.WorkerID,
		ClientID:     p.ClientID,
		CreatedBy:    p.CreatedBy,
		Comment:      p.Comment,
		IsDebt:       p.IsDebt,
		IsDeleted:    p.IsDeleted,
		CreatedAt:    p.CreatedAt,
	}
}
