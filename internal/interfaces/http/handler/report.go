package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	appledger "github.com/Wh0mever/Palma-backend-sub000/internal/application/ledger"
	"github.com/Wh0mever/Palma-backend-sub000/internal/application/report"
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/shared/valueobject"
	"github.com/Wh0mever/Palma-backend-sub000/internal/interfaces/http/dto"
)

// ReportHandler exposes ledger reports over HTTP
type ReportHandler struct {
	allocator *report.DebtAllocator
	payments  *appledger.PaymentService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(allocator *report.DebtAllocator, payments *appledger.PaymentService) *ReportHandler {
	return &ReportHandler{allocator: allocator, payments: payments}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/orders/:id/debt-breakdown", h.OrderDebtBreakdown)
	}

	balances := rg.Group("/balances")
	{
		balances.GET("/cashiers/:id", h.CashierBalance)
		balances.GET("/providers/:id", h.ProviderBalance)
		balances.GET("/workers/:id", h.WorkerBalance)
	}
}

// OrderDebtBreakdown handles GET /api/v1/reports/orders/:id/debt-breakdown
func (h *ReportHandler) OrderDebtBreakdown(c *gin.Context) {
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var query struct {
		CategoryID uuid.UUID  `form:"category_id" binding:"required"`
		From       *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
		To         *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("INVALID_REQUEST", err.Error()))
		return
	}

	breakdown, err := h.allocator.AllocateOrder(c.Request.Context(), orderID, query.CategoryID, report.Window{
		From: query.From,
		To:   query.To,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(breakdown))
}

// BalanceResponse is the JSON shape of one account balance
type BalanceResponse struct {
	AccountType string    `json:"account_type"`
	AccountID   uuid.UUID `json:"account_id"`
	Balance     string    `json:"balance"`
	Currency    string    `json:"currency"`
}

// CashierBalance handles GET /api/v1/balances/cashiers/:id
func (h *ReportHandler) CashierBalance(c *gin.Context) {
	h.balance(c, "CASHIER", h.payments.CashierBalance)
}

// ProviderBalance handles GET /api/v1/balances/providers/:id
func (h *ReportHandler) ProviderBalance(c *gin.Context) {
	h.balance(c, "PROVIDER", h.payments.ProviderBalance)
}

// WorkerBalance handles GET /api/v1/balances/workers/:id
func (h *ReportHandler) WorkerBalance(c *gin.Context) {
	h.balance(c, "WORKER", h.payments.WorkerBalance)
}

func (h *ReportHandler) balance(c *gin.Context, accountType string, fetch func(ctx context.Context, id uuid.UUID) (decimal.Decimal, error)) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	balance, err := fetch(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	money := valueobject.NewMoneyUZS(balance)
	c.JSON(http.StatusOK, dto.NewSuccessResponse(BalanceResponse{
		AccountType: accountType,
		AccountID:   id,
		Balance:     money.Amount().String(),
		Currency:    string(money.Currency()),
	}))
}
