package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/ledger"
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/shared"
)

// PaymentService is the write side of the financial ledger. Every create,
// delete and update runs inside one transaction that persists the payment
// row, appends the matching account entries and holds row locks on every
// counter-account it touches.
type PaymentService struct {
	scope     TransactionScope
	entryRepo ledger.AccountEntryRepository
	payRepo   ledger.PaymentRepository
	logger    *zap.Logger
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	scope TransactionScope,
	entryRepo ledger.AccountEntryRepository,
	payRepo ledger.PaymentRepository,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		scope:     scope,
		entryRepo: entryRepo,
		payRepo:   payRepo,
		logger:    logger,
	}
}

// CreateOrderPayment records a payment against a client order
func (s *PaymentService) CreateOrderPayment(ctx context.Context, actor shared.Actor, req CreateOrderPaymentRequest) (*ledger.Payment, error) {
	var created *ledger.Payment
	err := s.scope.Execute(ctx, func(repos TxRepositories) error {
		if _, err := repos.Orders().FindByID(ctx, req.OrderID); err != nil {
			return fmt.Errorf("order lookup failed: %w", err)
		}
		payment, err := ledger.NewOrderPayment(req.OrderID, req.ClientID, req.Amount, req.Direction, req.MethodID, actor.ID, req.Comment, req.IsDebt)
		if err != nil {
			return err
		}
		created = payment
		return s.persist(ctx, repos, payment)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// CreateProviderPayment records a payment against a provider. It moves both
// the cashier account of the method and the provider's settlement account.
func (s *PaymentService) CreateProviderPayment(ctx context.Context, actor shared.Actor, req CreateProviderPaymentRequest) (*ledger.Payment, error) {
	var created *ledger.Payment
	err := s.scope.Execute(ctx, func(repos TxRepositories) error {
		payment, err := ledger.NewProviderPayment(req.ProviderID, req.Amount, req.Direction, req.MethodID, actor.ID, req.Comment)
		if err != nil {
			return err
		}
		created = payment
		return s.persist(ctx, repos, payment)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// CreateIncomePayment records a non-order income payment
func (s *PaymentService) CreateIncomePayment(ctx context.Context, actor shared.Actor, req CreateIncomePaymentRequest) (*ledger.Payment, error) {
	var created *ledger.Payment
	err := s.scope.Execute(ctx, func(repos TxRepositories) error {
		if _, err := repos.IncomeItems().FindByID(ctx, req.IncomeItemID); err != nil {
			return fmt.Errorf("income item lookup failed: %w", err)
		}
		payment, err := ledger.NewIncomePayment(req.IncomeItemID, req.Amount, req.MethodID, actor.ID, req.Comment)
		if err != nil {
			return err
		}
		created = payment
		return s.persist(ctx, repos, payment)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// CreateOutlayPayment records an expense payment. Payroll outlays (items in
// the workers category) must reference a worker; the payment then also
// moves that worker's account.
func (s *PaymentService) CreateOutlayPayment(ctx context.Context, actor shared.Actor, req CreateOutlayPaymentRequest) (*ledger.Payment, error) {
	var created *ledger.Payment
	err := s.scope.Execute(ctx, func(repos TxRepositories) error {
		item, err := repos.OutlayItems().FindByID(ctx, req.OutlayItemID)
		if err != nil {
			return fmt.Errorf("outlay item lookup failed: %w", err)
		}
		payment, err := ledger.NewOutlayPayment(req.OutlayItemID, req.WorkerID, item.RequiresWorker(), req.Amount, req.MethodID, actor.ID, req.Comment)
		if err != nil {
			return err
		}
		created = payment
		return s.persist(ctx, repos, payment)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// persist writes the payment and appends its apply entries, locking every
// counter-account row the payment touches. Runs inside the caller's
// transaction.
func (s *PaymentService) persist(ctx context.Context, repos TxRepositories, payment *ledger.Payment) error {
	// The method row lock is the serialization point with shift close,
	// which locks every method row before reading totals.
	if _, err := repos.Methods().FindByIDForUpdate(ctx, payment.MethodID); err != nil {
		return fmt.Errorf("payment method lookup failed: %w", err)
	}
	if err := s.lockCounterAccounts(ctx, repos, payment); err != nil {
		return err
	}

	cashier, err := repos.Cashiers().FindOrCreateByMethodForUpdate(ctx, payment.MethodID)
	if err != nil {
		return fmt.Errorf("cashier provisioning failed: %w", err)
	}

	if err := repos.Payments().Create(ctx, payment); err != nil {
		return fmt.Errorf("payment insert failed: %w", err)
	}

	entries, err := payment.Entries(cashier.ID, false)
	if err != nil {
		return err
	}
	if err := repos.Entries().Append(ctx, entries); err != nil {
		return fmt.Errorf("entry append failed: %w", err)
	}
	return nil
}

// lockCounterAccounts takes row locks on the provider or worker the payment
// references, doubling as an existence check. The cashier row is locked by
// its own lazy-provisioning lookup.
func (s *PaymentService) lockCounterAccounts(ctx context.Context, repos TxRepositories, payment *ledger.Payment) error {
	if payment.ProviderID != nil {
		if _, err := repos.Providers().FindByIDForUpdate(ctx, *payment.ProviderID); err != nil {
			return fmt.Errorf("provider lookup failed: %w", err)
		}
	}
	if payment.WorkerID != nil {
		if _, err := repos.Workers().FindByIDForUpdate(ctx, *payment.WorkerID); err != nil {
			return fmt.Errorf("worker lookup failed: %w", err)
		}
	}
	return nil
}

// Delete reverses every account entry the payment currently holds and marks
// the row deleted. The row stays in place for the audit trail. Requires an
// administrator actor.
func (s *PaymentService) Delete(ctx context.Context, actor shared.Actor, paymentID uuid.UUID) error {
	if !actor.IsAdmin {
		return shared.ErrForbidden
	}

	return s.scope.Execute(ctx, func(repos TxRepositories) error {
		payment, err := repos.Payments().FindByIDForUpdate(ctx, paymentID)
		if err != nil {
			return fmt.Errorf("payment lookup failed: %w", err)
		}
		if payment.IsDeleted {
			return shared.NewDomainError("ALREADY_DELETED", "Payment is already deleted")
		}
		if err := payment.VerifyConsistent(); err != nil {
			s.logger.Error("refusing to delete inconsistent payment",
				zap.String("payment_id", payment.ID.String()),
				zap.String("kind", payment.Kind.String()),
				zap.Error(err))
			return err
		}
		if err := s.lockCounterAccounts(ctx, repos, payment); err != nil {
			return err
		}
		if _, err := repos.Cashiers().FindOrCreateByMethodForUpdate(ctx, payment.MethodID); err != nil {
			return fmt.Errorf("cashier lookup failed: %w", err)
		}

		if err := s.reverseNet(ctx, repos, payment.ID); err != nil {
			return err
		}
		if err := payment.MarkDeleted(actor.ID); err != nil {
			return err
		}
		return repos.Payments().Save(ctx, payment)
	})
}

// Update applies field changes as reverse-old, mutate, re-apply-new inside
// one transaction. Requires an administrator actor.
func (s *PaymentService) Update(ctx context.Context, actor shared.Actor, paymentID uuid.UUID, req UpdatePaymentRequest) (*ledger.Payment, error) {
	if !actor.IsAdmin {
		return nil, shared.ErrForbidden
	}

	var updated *ledger.Payment
	err := s.scope.Execute(ctx, func(repos TxRepositories) error {
		payment, err := repos.Payments().FindByIDForUpdate(ctx, paymentID)
		if err != nil {
			return fmt.Errorf("payment lookup failed: %w", err)
		}
		if err := payment.VerifyConsistent(); err != nil {
			s.logger.Error("refusing to update inconsistent payment",
				zap.String("payment_id", payment.ID.String()),
				zap.String("kind", payment.Kind.String()),
				zap.Error(err))
			return err
		}
		if err := s.lockCounterAccounts(ctx, repos, payment); err != nil {
			return err
		}
		if _, err := repos.Cashiers().FindOrCreateByMethodForUpdate(ctx, payment.MethodID); err != nil {
			return fmt.Errorf("cashier lookup failed: %w", err)
		}

		if err := s.reverseNet(ctx, repos, payment.ID); err != nil {
			return err
		}

		if err := payment.ApplyUpdate(req.toDomain()); err != nil {
			return err
		}
		if req.MethodID != nil {
			if _, err := repos.Methods().FindByIDForUpdate(ctx, *req.MethodID); err != nil {
				return fmt.Errorf("payment method lookup failed: %w", err)
			}
		}

		cashier, err := repos.Cashiers().FindOrCreateByMethodForUpdate(ctx, payment.MethodID)
		if err != nil {
			return fmt.Errorf("cashier provisioning failed: %w", err)
		}
		entries, err := payment.Entries(cashier.ID, false)
		if err != nil {
			return err
		}
		if err := repos.Entries().Append(ctx, entries); err != nil {
			return fmt.Errorf("entry append failed: %w", err)
		}
		if err := repos.Payments().Save(ctx, payment); err != nil {
			return err
		}
		updated = payment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// reverseNet appends reversal entries negating the payment's current net on
// every account it touches. A payment already fully reversed nets to zero
// and produces nothing.
func (s *PaymentService) reverseNet(ctx context.Context, repos TxRepositories, paymentID uuid.UUID) error {
	nets, err := repos.Entries().NetByPayment(ctx, paymentID)
	if err != nil {
		return fmt.Errorf("entry net computation failed: %w", err)
	}
	reversals := make([]ledger.AccountEntry, 0, len(nets))
	for _, net := range nets {
		if net.Amount.IsZero() {
			continue
		}
		reversals = append(reversals, ledger.NewReversalEntry(paymentID, net.AccountType, net.AccountID, net.Amount))
	}
	if len(reversals) == 0 {
		return nil
	}
	return repos.Entries().Append(ctx, reversals)
}

// FindByID returns a payment by id
func (s *PaymentService) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Payment, error) {
	return s.payRepo.FindByID(ctx, id)
}

// List returns payments matching the filter
func (s *PaymentService) List(ctx context.Context, filter ledger.PaymentFilter) ([]*ledger.Payment, int64, error) {
	return s.payRepo.List(ctx, filter)
}

// CashierBalance folds the entry ledger into a cashier account balance
func (s *PaymentService) CashierBalance(ctx context.Context, cashierID uuid.UUID) (decimal.Decimal, error) {
	return s.entryRepo.Balance(ctx, ledger.AccountCashier, cashierID)
}

// ProviderBalance folds the entry ledger into a provider account balance
func (s *PaymentService) ProviderBalance(ctx context.Context, providerID uuid.UUID) (decimal.Decimal, error) {
	return s.entryRepo.Balance(ctx, ledger.AccountProvider, providerID)
}

// WorkerBalance folds the entry ledger into a worker account balance
func (s *PaymentService) WorkerBalance(ctx context.Context, workerID uuid.UUID) (decimal.Decimal, error) {
	return s.entryRepo.Balance(ctx, ledger.AccountWorker, workerID)
}

// IsNotFound reports whether err is the shared not-found sentinel
func IsNotFound(err error) bool {
	return errors.Is(err, shared.ErrNotFound)
}
