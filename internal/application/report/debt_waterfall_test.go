package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appledger "github.com/Wh0mever/Palma-backend-sub000/internal/application/ledger"
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/ledger"
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/order"
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/partner"
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/shared"
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/shift"
)

func debtPayment(t *testing.T, orderID uuid.UUID, amount int64, createdAt time.Time) *ledger.Payment {
	t.Helper()
	p, err := ledger.NewOrderPayment(orderID, nil, decimal.NewFromInt(amount), ledger.DirectionIncome, uuid.New(), uuid.New(), "", true)
	require.NoError(t, err)
	p.CreatedAt = createdAt
	return p
}

func TestDecompose(t *testing.T) {
	orderID := uuid.New()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("other bucket claims first", func(t *testing.T) {
		payments := []*ledger.Payment{
			debtPayment(t, orderID, 300, base),
			debtPayment(t, orderID, 500, base.Add(time.Hour)),
		}

		allocs := Decompose(decimal.NewFromInt(300), payments)
		require.Len(t, allocs, 2)

		assert.True(t, allocs[0].CategoryPortion.IsZero())
		assert.True(t, allocs[0].OtherPortion.Equal(decimal.NewFromInt(300)))
		assert.True(t, allocs[1].CategoryPortion.Equal(decimal.NewFromInt(500)))
		assert.True(t, allocs[1].OtherPortion.IsZero())
	})

	t.Run("payment straddling the threshold splits", func(t *testing.T) {
		payments := []*ledger.Payment{
			debtPayment(t, orderID, 200, base),
			debtPayment(t, orderID, 200, base.Add(time.Hour)),
		}

		allocs := Decompose(decimal.NewFromInt(300), payments)
		require.Len(t, allocs, 2)

		assert.True(t, allocs[0].CategoryPortion.IsZero())
		assert.True(t, allocs[1].OtherPortion.Equal(decimal.NewFromInt(100)))
		assert.True(t, allocs[1].CategoryPortion.Equal(decimal.NewFromInt(100)))
	})

	t.Run("zero other bucket sends everything to the category", func(t *testing.T) {
		payments := []*ledger.Payment{debtPayment(t, orderID, 150, base)}

		allocs := Decompose(decimal.Zero, payments)
		require.Len(t, allocs, 1)
		assert.True(t, allocs[0].CategoryPortion.Equal(decimal.NewFromInt(150)))
	})

	t.Run("no payments yields no allocations", func(t *testing.T) {
		assert.Empty(t, Decompose(decimal.NewFromInt(100), nil))
	})

	t.Run("portions always sum to the amount", func(t *testing.T) {
		payments := []*ledger.Payment{
			debtPayment(t, orderID, 37, base),
			debtPayment(t, orderID, 411, base.Add(time.Minute)),
			debtPayment(t, orderID, 8, base.Add(2*time.Minute)),
			debtPayment(t, orderID, 255, base.Add(3*time.Minute)),
		}

		for _, otherSum := range []int64{0, 100, 400, 711, 5000} {
			allocs := Decompose(decimal.NewFromInt(otherSum), payments)
			for i, alloc := range allocs {
				sum := alloc.CategoryPortion.Add(alloc.OtherPortion)
				assert.True(t, sum.Equal(alloc.Amount), "otherSum=%d alloc=%d", otherSum, i)
				assert.False(t, alloc.CategoryPortion.IsNegative())
				assert.False(t, alloc.OtherPortion.IsNegative())
			}
		}
	})
}

// reportStore is a fixed-data TransactionScope for allocator tests
type reportStore struct {
	order       *order.Order
	debtBearing decimal.Decimal
	category    decimal.Decimal
	payments    []*ledger.Payment
}

func (s *reportStore) Execute(_ context.Context, fn func(repos appledger.TxRepositories) error) error {
	return fn(s)
}

func (s *reportStore) Payments() ledger.PaymentRepository       { return (*reportPaymentRepo)(s) }
func (s *reportStore) Orders() order.Repository                 { return (*reportOrderRepo)(s) }
func (s *reportStore) Entries() ledger.AccountEntryRepository   { return nil }
func (s *reportStore) Cashiers() ledger.CashierRepository       { return nil }
func (s *reportStore) Methods() ledger.PaymentMethodRepository  { return nil }
func (s *reportStore) OutlayItems() ledger.OutlayItemRepository { return nil }
func (s *reportStore) IncomeItems() ledger.IncomeItemRepository { return nil }
func (s *reportStore) Providers() partner.ProviderRepository    { return nil }
func (s *reportStore) Workers() partner.WorkerRepository        { return nil }
func (s *reportStore) Shifts() shift.Repository                 { return nil }

type reportOrderRepo reportStore

func (r *reportOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*order.Order, error) {
	if r.order == nil || r.order.ID != id {
		return nil, shared.ErrNotFound
	}
	return r.order, nil
}

func (r *reportOrderRepo) ListItems(_ context.Context, _ uuid.UUID) ([]*order.OrderItem, error) {
	return nil, nil
}

func (r *reportOrderRepo) DebtBearingTotal(_ context.Context, _ uuid.UUID) (decimal.Decimal, error) {
	return r.debtBearing, nil
}

func (r *reportOrderRepo) CategoryTotal(_ context.Context, _ uuid.UUID, _ uuid.UUID) (decimal.Decimal, error) {
	return r.category, nil
}

type reportPaymentRepo reportStore

func (r *reportPaymentRepo) Create(_ context.Context, _ *ledger.Payment) error { return nil }
func (r *reportPaymentRepo) FindByID(_ context.Context, _ uuid.UUID) (*ledger.Payment, error) {
	return nil, shared.ErrNotFound
}
func (r *reportPaymentRepo) FindByIDForUpdate(_ context.Context, _ uuid.UUID) (*ledger.Payment, error) {
	return nil, shared.ErrNotFound
}
func (r *reportPaymentRepo) Save(_ context.Context, _ *ledger.Payment) error { return nil }
func (r *reportPaymentRepo) List(_ context.Context, _ ledger.PaymentFilter) ([]*ledger.Payment, int64, error) {
	return nil, 0, nil
}
func (r *reportPaymentRepo) ListDebtByOrder(_ context.Context, _ uuid.UUID) ([]*ledger.Payment, error) {
	return r.payments, nil
}
func (r *reportPaymentRepo) WindowTotals(_ context.Context, _ ledger.TotalsWindow) (ledger.WindowTotals, error) {
	return ledger.WindowTotals{}, nil
}

func TestDebtAllocator_AllocateOrder(t *testing.T) {
	ctx := context.Background()
	categoryID := uuid.New()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	newOrder := func(debt int64) *order.Order {
		return &order.Order{BaseEntity: shared.NewBaseEntity(), Number: "ORD-1", Debt: decimal.NewFromInt(debt)}
	}

	t.Run("full scenario", func(t *testing.T) {
		ord := newOrder(200)
		store := &reportStore{
			order:       ord,
			debtBearing: decimal.NewFromInt(1000),
			category:    decimal.NewFromInt(700),
			payments: []*ledger.Payment{
				debtPayment(t, ord.ID, 300, base),
				debtPayment(t, ord.ID, 500, base.Add(time.Hour)),
			},
		}
		allocator := NewDebtAllocator(store)

		breakdown, err := allocator.AllocateOrder(ctx, ord.ID, categoryID, Window{})
		require.NoError(t, err)

		assert.True(t, breakdown.CategorySum.Equal(decimal.NewFromInt(700)))
		assert.True(t, breakdown.OtherSum.Equal(decimal.NewFromInt(300)))
		assert.True(t, breakdown.CategorySettled.Equal(decimal.NewFromInt(500)))
		assert.True(t, breakdown.TotalSettled.Equal(decimal.NewFromInt(800)))
		assert.True(t, breakdown.RemainingCategory.Equal(decimal.NewFromInt(200)))
		assert.Len(t, breakdown.Allocations, 2)
	})

	t.Run("window filters sums but not bucket consumption", func(t *testing.T) {
		ord := newOrder(200)
		store := &reportStore{
			order:       ord,
			debtBearing: decimal.NewFromInt(1000),
			category:    decimal.NewFromInt(700),
			payments: []*ledger.Payment{
				debtPayment(t, ord.ID, 300, base),
				debtPayment(t, ord.ID, 500, base.Add(time.Hour)),
			},
		}
		allocator := NewDebtAllocator(store)

		from := base.Add(30 * time.Minute)
		breakdown, err := allocator.AllocateOrder(ctx, ord.ID, categoryID, Window{From: &from})
		require.NoError(t, err)

		// the first payment is outside the window but still consumed the
		// other bucket, so the second payment is pure category
		require.Len(t, breakdown.Allocations, 1)
		assert.True(t, breakdown.CategorySettled.Equal(decimal.NewFromInt(500)))
		assert.True(t, breakdown.TotalSettled.Equal(decimal.NewFromInt(500)))
	})

	t.Run("category exceeding the order total clamps the other bucket", func(t *testing.T) {
		ord := newOrder(0)
		store := &reportStore{
			order:       ord,
			debtBearing: decimal.NewFromInt(400),
			category:    decimal.NewFromInt(600),
			payments:    []*ledger.Payment{debtPayment(t, ord.ID, 100, base)},
		}
		allocator := NewDebtAllocator(store)

		breakdown, err := allocator.AllocateOrder(ctx, ord.ID, categoryID, Window{})
		require.NoError(t, err)
		assert.True(t, breakdown.OtherSum.IsZero())
		assert.True(t, breakdown.CategorySettled.Equal(decimal.NewFromInt(100)))
	})

	t.Run("unknown order fails", func(t *testing.T) {
		store := &reportStore{order: newOrder(0)}
		allocator := NewDebtAllocator(store)
		_, err := allocator.AllocateOrder(ctx, uuid.New(), categoryID, Window{})
		require.Error(t, err)
	})

	t.Run("settled debt reports zero remaining", func(t *testing.T) {
		ord := newOrder(0)
		store := &reportStore{
			order:       ord,
			debtBearing: decimal.NewFromInt(1000),
			category:    decimal.NewFromInt(700),
			payments: []*ledger.Payment{
				debtPayment(t, ord.ID, 1000, base),
			},
		}
		allocator := NewDebtAllocator(store)

		breakdown, err := allocator.AllocateOrder(ctx, ord.ID, categoryID, Window{})
		require.NoError(t, err)
		assert.True(t, breakdown.RemainingCategory.IsZero())
	})
}
