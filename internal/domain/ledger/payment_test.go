package ledger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/shared"
)

func createOrderPayment(t *testing.T, amount string, direction PaymentDirection) *Payment {
	t.Helper()
	orderID := uuid.New()
	p, err := NewOrderPayment(orderID, nil, decimal.RequireFromString(amount), direction, uuid.New(), uuid.New(), "", false)
	require.NoError(t, err)
	return p
}

func TestPaymentDirection_IsValid(t *testing.T) {
	tests := []struct {
		direction PaymentDirection
		isValid   bool
	}{
		{DirectionIncome, true},
		{DirectionOutcome, true},
		{PaymentDirection("SIDEWAYS"), false},
		{PaymentDirection(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.direction), func(t *testing.T) {
			assert.Equal(t, tt.isValid, tt.direction.IsValid())
		})
	}
}

func TestPaymentKind_IsValid(t *testing.T) {
	tests := []struct {
		kind    PaymentKind
		isValid bool
	}{
		{KindOrder, true},
		{KindProvider, true},
		{KindIncome, true},
		{KindOutlay, true},
		{PaymentKind("REFUND"), false},
		{PaymentKind(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.isValid, tt.kind.IsValid())
		})
	}
}

func TestNewOrderPayment(t *testing.T) {
	orderID := uuid.New()
	clientID := uuid.New()
	methodID := uuid.New()
	createdBy := uuid.New()

	t.Run("valid payment", func(t *testing.T) {
		p, err := NewOrderPayment(orderID, &clientID, decimal.NewFromInt(500), DirectionIncome, methodID, createdBy, "first installment", true)
		require.NoError(t, err)
		assert.Equal(t, KindOrder, p.Kind)
		assert.Equal(t, orderID, *p.OrderID)
		assert.Equal(t, clientID, *p.ClientID)
		assert.True(t, p.IsDebt)
		assert.False(t, p.IsDeleted)
	})

	t.Run("zero amount rejected", func(t *testing.T) {
		_, err := NewOrderPayment(orderID, nil, decimal.Zero, DirectionIncome, methodID, createdBy, "", false)
		assertDomainError(t, err, "INVALID_AMOUNT")
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		_, err := NewOrderPayment(orderID, nil, decimal.NewFromInt(-10), DirectionIncome, methodID, createdBy, "", false)
		assertDomainError(t, err, "INVALID_AMOUNT")
	})

	t.Run("invalid direction rejected", func(t *testing.T) {
		_, err := NewOrderPayment(orderID, nil, decimal.NewFromInt(10), PaymentDirection("UP"), methodID, createdBy, "", false)
		assertDomainError(t, err, "INVALID_DIRECTION")
	})

	t.Run("missing order rejected", func(t *testing.T) {
		_, err := NewOrderPayment(uuid.Nil, nil, decimal.NewFromInt(10), DirectionIncome, methodID, createdBy, "", false)
		assertDomainError(t, err, "INVALID_ORDER")
	})

	t.Run("missing method rejected", func(t *testing.T) {
		_, err := NewOrderPayment(orderID, nil, decimal.NewFromInt(10), DirectionIncome, uuid.Nil, createdBy, "", false)
		assertDomainError(t, err, "INVALID_METHOD")
	})
}

func TestNewIncomePayment_ForcesIncomeDirection(t *testing.T) {
	p, err := NewIncomePayment(uuid.New(), decimal.NewFromInt(100), uuid.New(), uuid.New(), "")
	require.NoError(t, err)
	assert.Equal(t, DirectionIncome, p.Direction)
	assert.Equal(t, KindIncome, p.Kind)
	assert.False(t, p.IsDebt)
}

func TestNewOutlayPayment(t *testing.T) {
	outlayItemID := uuid.New()
	workerID := uuid.New()

	t.Run("forces outcome direction", func(t *testing.T) {
		p, err := NewOutlayPayment(outlayItemID, nil, false, decimal.NewFromInt(100), uuid.New(), uuid.New(), "rent")
		require.NoError(t, err)
		assert.Equal(t, DirectionOutcome, p.Direction)
		assert.Nil(t, p.WorkerID)
	})

	t.Run("worker attached when given", func(t *testing.T) {
		p, err := NewOutlayPayment(outlayItemID, &workerID, true, decimal.NewFromInt(100), uuid.New(), uuid.New(), "salary")
		require.NoError(t, err)
		assert.Equal(t, workerID, *p.WorkerID)
	})

	t.Run("workers category requires worker", func(t *testing.T) {
		_, err := NewOutlayPayment(outlayItemID, nil, true, decimal.NewFromInt(100), uuid.New(), uuid.New(), "salary")
		assertDomainError(t, err, "WORKER_REQUIRED")
	})

	t.Run("zero worker id rejected", func(t *testing.T) {
		nilWorker := uuid.Nil
		_, err := NewOutlayPayment(outlayItemID, &nilWorker, false, decimal.NewFromInt(100), uuid.New(), uuid.New(), "")
		assertDomainError(t, err, "INVALID_WORKER")
	})
}

func TestPayment_SignedAmount(t *testing.T) {
	income := createOrderPayment(t, "250", DirectionIncome)
	assert.True(t, income.SignedAmount().Equal(decimal.NewFromInt(250)))

	outcome := createOrderPayment(t, "250", DirectionOutcome)
	assert.True(t, outcome.SignedAmount().Equal(decimal.NewFromInt(-250)))
}

func TestPayment_Entries(t *testing.T) {
	cashierID := uuid.New()

	t.Run("order payment touches only the cashier", func(t *testing.T) {
		p := createOrderPayment(t, "100", DirectionIncome)
		entries, err := p.Entries(cashierID, false)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, AccountCashier, entries[0].AccountType)
		assert.Equal(t, cashierID, entries[0].AccountID)
		assert.Equal(t, EntryApply, entries[0].Kind)
		assert.True(t, entries[0].Amount.Equal(decimal.NewFromInt(100)))
	})

	t.Run("provider payment touches cashier and provider", func(t *testing.T) {
		providerID := uuid.New()
		p, err := NewProviderPayment(providerID, decimal.NewFromInt(80), DirectionOutcome, uuid.New(), uuid.New(), "")
		require.NoError(t, err)

		entries, err := p.Entries(cashierID, false)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, AccountProvider, entries[1].AccountType)
		assert.Equal(t, providerID, entries[1].AccountID)
		assert.True(t, entries[1].Amount.Equal(decimal.NewFromInt(-80)))
	})

	t.Run("outlay with worker touches cashier and worker", func(t *testing.T) {
		workerID := uuid.New()
		p, err := NewOutlayPayment(uuid.New(), &workerID, true, decimal.NewFromInt(60), uuid.New(), uuid.New(), "")
		require.NoError(t, err)

		entries, err := p.Entries(cashierID, false)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, AccountWorker, entries[1].AccountType)
		assert.True(t, entries[1].Amount.Equal(decimal.NewFromInt(-60)))
	})

	t.Run("reverse flips every entry sign", func(t *testing.T) {
		providerID := uuid.New()
		p, err := NewProviderPayment(providerID, decimal.NewFromInt(80), DirectionOutcome, uuid.New(), uuid.New(), "")
		require.NoError(t, err)

		applied, err := p.Entries(cashierID, false)
		require.NoError(t, err)
		reversed, err := p.Entries(cashierID, true)
		require.NoError(t, err)
		require.Len(t, reversed, len(applied))
		for i := range applied {
			assert.True(t, reversed[i].Amount.Equal(applied[i].Amount.Neg()))
			assert.Equal(t, EntryReversal, reversed[i].Kind)
		}
	})

	t.Run("nil cashier rejected", func(t *testing.T) {
		p := createOrderPayment(t, "100", DirectionIncome)
		_, err := p.Entries(uuid.Nil, false)
		assertDomainError(t, err, "INVALID_CASHIER")
	})

	t.Run("kind without its reference is inconsistent", func(t *testing.T) {
		p := createOrderPayment(t, "100", DirectionIncome)
		p.OrderID = nil
		_, err := p.Entries(cashierID, false)
		assertDomainError(t, err, "LEDGER_INCONSISTENT")
	})

	t.Run("unknown kind is inconsistent", func(t *testing.T) {
		p := createOrderPayment(t, "100", DirectionIncome)
		p.Kind = PaymentKind("REFUND")
		_, err := p.Entries(cashierID, false)
		assertDomainError(t, err, "LEDGER_INCONSISTENT")
	})
}

func TestPayment_MarkDeleted(t *testing.T) {
	deletedBy := uuid.New()

	t.Run("marks and records actor", func(t *testing.T) {
		p := createOrderPayment(t, "100", DirectionIncome)
		require.NoError(t, p.MarkDeleted(deletedBy))
		assert.True(t, p.IsDeleted)
		assert.Equal(t, deletedBy, *p.DeletedBy)
	})

	t.Run("double delete rejected", func(t *testing.T) {
		p := createOrderPayment(t, "100", DirectionIncome)
		require.NoError(t, p.MarkDeleted(deletedBy))
		assertDomainError(t, p.MarkDeleted(deletedBy), "ALREADY_DELETED")
	})
}

func assertDomainError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, code, domainErr.Code)
}
