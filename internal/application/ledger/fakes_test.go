package ledger

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/ledger"
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/order"
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/partner"
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/shared"
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/shift"
)

// memStore is an in-memory stand-in for the persistence layer. It implements
// TransactionScope and TxRepositories over plain maps; a failed Execute
// restores the pre-transaction snapshot so tests observe rollback semantics.
type memStore struct {
	payments    map[uuid.UUID]*ledger.Payment
	entries     []ledger.AccountEntry
	cashiers    map[uuid.UUID]*ledger.Cashier
	methods     map[uuid.UUID]*ledger.PaymentMethod
	outlayItems map[uuid.UUID]*ledger.OutlayItem
	incomeItems map[uuid.UUID]*ledger.IncomeItem
	providers   map[uuid.UUID]*partner.Provider
	workers     map[uuid.UUID]*partner.Worker
	orders      map[uuid.UUID]*order.Order
	shifts      map[uuid.UUID]*shift.CashierShift

	// method ids locked for update during the current Execute, in call order
	lockedMethods []uuid.UUID
}

func newMemStore() *memStore {
	return &memStore{
		payments:    make(map[uuid.UUID]*ledger.Payment),
		cashiers:    make(map[uuid.UUID]*ledger.Cashier),
		methods:     make(map[uuid.UUID]*ledger.PaymentMethod),
		outlayItems: make(map[uuid.UUID]*ledger.OutlayItem),
		incomeItems: make(map[uuid.UUID]*ledger.IncomeItem),
		providers:   make(map[uuid.UUID]*partner.Provider),
		workers:     make(map[uuid.UUID]*partner.Worker),
		orders:      make(map[uuid.UUID]*order.Order),
		shifts:      make(map[uuid.UUID]*shift.CashierShift),
	}
}

func (m *memStore) snapshot() *memStore {
	c := newMemStore()
	for k, v := range m.payments {
		p := *v
		c.payments[k] = &p
	}
	c.entries = append([]ledger.AccountEntry(nil), m.entries...)
	for k, v := range m.cashiers {
		cs := *v
		c.cashiers[k] = &cs
	}
	for k, v := range m.methods {
		c.methods[k] = v
	}
	for k, v := range m.outlayItems {
		c.outlayItems[k] = v
	}
	for k, v := range m.incomeItems {
		c.incomeItems[k] = v
	}
	for k, v := range m.providers {
		c.providers[k] = v
	}
	for k, v := range m.workers {
		c.workers[k] = v
	}
	for k, v := range m.orders {
		c.orders[k] = v
	}
	for k, v := range m.shifts {
		s := *v
		c.shifts[k] = &s
	}
	c.lockedMethods = append([]uuid.UUID(nil), m.lockedMethods...)
	return c
}

func (m *memStore) restore(snap *memStore) {
	*m = *snap
}

// Execute implements TransactionScope
func (m *memStore) Execute(_ context.Context, fn func(repos TxRepositories) error) error {
	snap := m.snapshot()
	if err := fn(m); err != nil {
		m.restore(snap)
		return err
	}
	return nil
}

func (m *memStore) Payments() ledger.PaymentRepository       { return (*memPaymentRepo)(m) }
func (m *memStore) Entries() ledger.AccountEntryRepository   { return (*memEntryRepo)(m) }
func (m *memStore) Cashiers() ledger.CashierRepository       { return (*memCashierRepo)(m) }
func (m *memStore) Methods() ledger.PaymentMethodRepository  { return (*memMethodRepo)(m) }
func (m *memStore) OutlayItems() ledger.OutlayItemRepository { return (*memOutlayItemRepo)(m) }
func (m *memStore) IncomeItems() ledger.IncomeItemRepository { return (*memIncomeItemRepo)(m) }
func (m *memStore) Providers() partner.ProviderRepository    { return (*memProviderRepo)(m) }
func (m *memStore) Workers() partner.WorkerRepository        { return (*memWorkerRepo)(m) }
func (m *memStore) Orders() order.Repository                 { return (*memOrderRepo)(m) }
func (m *memStore) Shifts() shift.Repository                 { return (*memShiftRepo)(m) }

// Seeding helpers

func (m *memStore) seedMethod(category ledger.MethodCategory) uuid.UUID {
	method, _ := ledger.NewPaymentMethod(string(category)+" method", category)
	m.methods[method.ID] = method
	return method.ID
}

func (m *memStore) seedOrder(debt decimal.Decimal) uuid.UUID {
	ord := &order.Order{BaseEntity: shared.NewBaseEntity(), Number: "ORD-1", Debt: debt}
	m.orders[ord.ID] = ord
	return ord.ID
}

func (m *memStore) seedProvider() uuid.UUID {
	p, _ := partner.NewProvider("Provider", "")
	m.providers[p.ID] = p
	return p.ID
}

func (m *memStore) seedWorker() uuid.UUID {
	w, _ := partner.NewWorker("Worker", "", "florist")
	m.workers[w.ID] = w
	return w.ID
}

func (m *memStore) seedOutlayItem(category string) uuid.UUID {
	item, _ := ledger.NewOutlayItem("item", category)
	m.outlayItems[item.ID] = item
	return item.ID
}

func (m *memStore) seedIncomeItem() uuid.UUID {
	item, _ := ledger.NewIncomeItem("item")
	m.incomeItems[item.ID] = item
	return item.ID
}

// cashierFor returns the lazily provisioned cashier of a method, if any
func (m *memStore) cashierFor(methodID uuid.UUID) *ledger.Cashier {
	for _, c := range m.cashiers {
		if c.MethodID == methodID {
			return c
		}
	}
	return nil
}

type memPaymentRepo memStore

func (r *memPaymentRepo) Create(_ context.Context, p *ledger.Payment) error {
	c := *p
	r.payments[p.ID] = &c
	return nil
}

func (r *memPaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*ledger.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	c := *p
	return &c, nil
}

func (r *memPaymentRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*ledger.Payment, error) {
	return r.FindByID(ctx, id)
}

func (r *memPaymentRepo) Save(_ context.Context, p *ledger.Payment) error {
	if _, ok := r.payments[p.ID]; !ok {
		return shared.ErrNotFound
	}
	c := *p
	r.payments[p.ID] = &c
	return nil
}

func (r *memPaymentRepo) List(_ context.Context, filter ledger.PaymentFilter) ([]*ledger.Payment, int64, error) {
	var out []*ledger.Payment
	for _, p := range r.payments {
		if !filter.IncludeDeleted && p.IsDeleted {
			continue
		}
		if filter.Kind != nil && p.Kind != *filter.Kind {
			continue
		}
		if filter.OrderID != nil && (p.OrderID == nil || *p.OrderID != *filter.OrderID) {
			continue
		}
		c := *p
		out = append(out, &c)
	}
	sortPayments(out)
	return out, int64(len(out)), nil
}

func (r *memPaymentRepo) ListDebtByOrder(_ context.Context, orderID uuid.UUID) ([]*ledger.Payment, error) {
	var out []*ledger.Payment
	for _, p := range r.payments {
		if p.Kind != ledger.KindOrder || p.Direction != ledger.DirectionIncome {
			continue
		}
		if !p.IsDebt || p.IsDeleted {
			continue
		}
		if p.OrderID == nil || *p.OrderID != orderID {
			continue
		}
		c := *p
		out = append(out, &c)
	}
	sortPayments(out)
	return out, nil
}

func (r *memPaymentRepo) WindowTotals(_ context.Context, window ledger.TotalsWindow) (ledger.WindowTotals, error) {
	totals := ledger.WindowTotals{
		Income:      decimal.Zero,
		Outcome:     decimal.Zero,
		CashIncome:  decimal.Zero,
		CashOutcome: decimal.Zero,
	}
	for _, p := range r.payments {
		if p.IsDeleted {
			continue
		}
		if p.CreatedAt.Before(window.Start) || !p.CreatedAt.Before(window.End) {
			continue
		}
		if window.CreatedBy != nil && p.CreatedBy != *window.CreatedBy {
			continue
		}
		method := r.methods[p.MethodID]
		cash := method != nil && method.Category.IsCash()
		if p.Direction == ledger.DirectionIncome {
			totals.Income = totals.Income.Add(p.Amount)
			if cash {
				totals.CashIncome = totals.CashIncome.Add(p.Amount)
			}
		} else {
			totals.Outcome = totals.Outcome.Add(p.Amount)
			if cash {
				totals.CashOutcome = totals.CashOutcome.Add(p.Amount)
			}
		}
	}
	return totals, nil
}

func sortPayments(payments []*ledger.Payment) {
	sort.Slice(payments, func(i, j int) bool {
		if payments[i].CreatedAt.Equal(payments[j].CreatedAt) {
			return payments[i].ID.String() < payments[j].ID.String()
		}
		return payments[i].CreatedAt.Before(payments[j].CreatedAt)
	})
}

type memEntryRepo memStore

func (r *memEntryRepo) Append(_ context.Context, entries []ledger.AccountEntry) error {
	r.entries = append(r.entries, entries...)
	return nil
}

func (r *memEntryRepo) NetByPayment(_ context.Context, paymentID uuid.UUID) ([]ledger.AccountNet, error) {
	type key struct {
		accountType ledger.AccountType
		accountID   uuid.UUID
	}
	nets := make(map[key]decimal.Decimal)
	var keys []key
	for _, e := range r.entries {
		if e.PaymentID != paymentID {
			continue
		}
		k := key{e.AccountType, e.AccountID}
		if _, seen := nets[k]; !seen {
			keys = append(keys, k)
		}
		nets[k] = nets[k].Add(e.Amount)
	}
	out := make([]ledger.AccountNet, 0, len(keys))
	for _, k := range keys {
		out = append(out, ledger.AccountNet{AccountType: k.accountType, AccountID: k.accountID, Amount: nets[k]})
	}
	return out, nil
}

func (r *memEntryRepo) Balance(_ context.Context, accountType ledger.AccountType, accountID uuid.UUID) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, e := range r.entries {
		if e.AccountType == accountType && e.AccountID == accountID {
			sum = sum.Add(e.Amount)
		}
	}
	return sum, nil
}

func (r *memEntryRepo) ListByPayment(_ context.Context, paymentID uuid.UUID) ([]ledger.AccountEntry, error) {
	var out []ledger.AccountEntry
	for _, e := range r.entries {
		if e.PaymentID == paymentID {
			out = append(out, e)
		}
	}
	return out, nil
}

type memCashierRepo memStore

func (r *memCashierRepo) FindByMethod(_ context.Context, methodID uuid.UUID) (*ledger.Cashier, error) {
	if c := (*memStore)(r).cashierFor(methodID); c != nil {
		return c, nil
	}
	return nil, shared.ErrNotFound
}

func (r *memCashierRepo) FindOrCreateByMethodForUpdate(_ context.Context, methodID uuid.UUID) (*ledger.Cashier, error) {
	if c := (*memStore)(r).cashierFor(methodID); c != nil {
		return c, nil
	}
	method, ok := r.methods[methodID]
	if !ok {
		return nil, shared.ErrNotFound
	}
	c, err := ledger.NewCashier(methodID, method.Name)
	if err != nil {
		return nil, err
	}
	r.cashiers[c.ID] = c
	return c, nil
}

func (r *memCashierRepo) List(_ context.Context) ([]*ledger.Cashier, error) {
	out := make([]*ledger.Cashier, 0, len(r.cashiers))
	for _, c := range r.cashiers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	return out, nil
}

type memMethodRepo memStore

func (r *memMethodRepo) Create(_ context.Context, method *ledger.PaymentMethod) error {
	r.methods[method.ID] = method
	return nil
}

func (r *memMethodRepo) FindByID(_ context.Context, id uuid.UUID) (*ledger.PaymentMethod, error) {
	m, ok := r.methods[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return m, nil
}

func (r *memMethodRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*ledger.PaymentMethod, error) {
	m, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.lockedMethods = append(r.lockedMethods, id)
	return m, nil
}

func (r *memMethodRepo) ListAllForUpdate(_ context.Context) ([]*ledger.PaymentMethod, error) {
	out := make([]*ledger.PaymentMethod, 0, len(r.methods))
	for _, m := range r.methods {
		out = append(out, m)
		r.lockedMethods = append(r.lockedMethods, m.ID)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	return out, nil
}

func (r *memMethodRepo) List(_ context.Context) ([]*ledger.PaymentMethod, error) {
	out := make([]*ledger.PaymentMethod, 0, len(r.methods))
	for _, m := range r.methods {
		out = append(out, m)
	}
	return out, nil
}

type memOutlayItemRepo memStore

func (r *memOutlayItemRepo) Create(_ context.Context, item *ledger.OutlayItem) error {
	r.outlayItems[item.ID] = item
	return nil
}

func (r *memOutlayItemRepo) FindByID(_ context.Context, id uuid.UUID) (*ledger.OutlayItem, error) {
	item, ok := r.outlayItems[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return item, nil
}

func (r *memOutlayItemRepo) List(_ context.Context) ([]*ledger.OutlayItem, error) {
	out := make([]*ledger.OutlayItem, 0, len(r.outlayItems))
	for _, item := range r.outlayItems {
		out = append(out, item)
	}
	return out, nil
}

type memIncomeItemRepo memStore

func (r *memIncomeItemRepo) Create(_ context.Context, item *ledger.IncomeItem) error {
	r.incomeItems[item.ID] = item
	return nil
}

func (r *memIncomeItemRepo) FindByID(_ context.Context, id uuid.UUID) (*ledger.IncomeItem, error) {
	item, ok := r.incomeItems[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return item, nil
}

func (r *memIncomeItemRepo) List(_ context.Context) ([]*ledger.IncomeItem, error) {
	out := make([]*ledger.IncomeItem, 0, len(r.incomeItems))
	for _, item := range r.incomeItems {
		out = append(out, item)
	}
	return out, nil
}

type memProviderRepo memStore

func (r *memProviderRepo) Create(_ context.Context, p *partner.Provider) error {
	r.providers[p.ID] = p
	return nil
}

func (r *memProviderRepo) FindByID(_ context.Context, id uuid.UUID) (*partner.Provider, error) {
	p, ok := r.providers[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return p, nil
}

func (r *memProviderRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*partner.Provider, error) {
	return r.FindByID(ctx, id)
}

func (r *memProviderRepo) Save(_ context.Context, p *partner.Provider) error {
	r.providers[p.ID] = p
	return nil
}

func (r *memProviderRepo) List(_ context.Context) ([]*partner.Provider, error) {
	out := make([]*partner.Provider, 0, len(r.providers))
	for _, p := range r.providers {
		out = append(out, p)
	}
	return out, nil
}

type memWorkerRepo memStore

func (r *memWorkerRepo) Create(_ context.Context, w *partner.Worker) error {
	r.workers[w.ID] = w
	return nil
}

func (r *memWorkerRepo) FindByID(_ context.Context, id uuid.UUID) (*partner.Worker, error) {
	w, ok := r.workers[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return w, nil
}

func (r *memWorkerRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*partner.Worker, error) {
	return r.FindByID(ctx, id)
}

func (r *memWorkerRepo) Save(_ context.Context, w *partner.Worker) error {
	r.workers[w.ID] = w
	return nil
}

func (r *memWorkerRepo) List(_ context.Context) ([]*partner.Worker, error) {
	out := make([]*partner.Worker, 0, len(r.workers))
	for _, w := range r.workers {
		out = append(out, w)
	}
	return out, nil
}

type memOrderRepo memStore

func (r *memOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*order.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return o, nil
}

func (r *memOrderRepo) ListItems(_ context.Context, _ uuid.UUID) ([]*order.OrderItem, error) {
	return nil, nil
}

func (r *memOrderRepo) DebtBearingTotal(_ context.Context, _ uuid.UUID) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (r *memOrderRepo) CategoryTotal(_ context.Context, _ uuid.UUID, _ uuid.UUID) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

type memShiftRepo memStore

func (r *memShiftRepo) Create(_ context.Context, s *shift.CashierShift) error {
	c := *s
	r.shifts[s.ID] = &c
	return nil
}

func (r *memShiftRepo) FindByID(_ context.Context, id uuid.UUID) (*shift.CashierShift, error) {
	s, ok := r.shifts[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	c := *s
	return &c, nil
}

func (r *memShiftRepo) FindOpenByOperator(_ context.Context, operatorID uuid.UUID) (*shift.CashierShift, error) {
	for _, s := range r.shifts {
		if s.OperatorID == operatorID && s.IsOpen() {
			c := *s
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memShiftRepo) FindOpenByOperatorForUpdate(ctx context.Context, operatorID uuid.UUID) (*shift.CashierShift, error) {
	return r.FindOpenByOperator(ctx, operatorID)
}

func (r *memShiftRepo) Save(_ context.Context, s *shift.CashierShift) error {
	if _, ok := r.shifts[s.ID]; !ok {
		return shared.ErrNotFound
	}
	c := *s
	r.shifts[s.ID] = &c
	return nil
}

func (r *memShiftRepo) ListByOperator(_ context.Context, operatorID uuid.UUID) ([]*shift.CashierShift, error) {
	var out []*shift.CashierShift
	for _, s := range r.shifts {
		if s.OperatorID == operatorID {
			c := *s
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.After(out[j].StartedAt) })
	return out, nil
}

var (
	_ TransactionScope = (*memStore)(nil)
	_ TxRepositories   = (*memStore)(nil)
)
