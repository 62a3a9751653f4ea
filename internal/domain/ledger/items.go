package ledger

import (
	"github.com/Wh0mever/Palma-backend-sub000/internal/domain/shared"
)

// OutlayCategoryWorkers is the outlay item category that makes a worker
// reference mandatory on the payment (payroll outlays).
const OutlayCategoryWorkers = "workers"

// OutlayItem is an expense category a shop spends money on: rent,
// utilities, worker salaries.
type OutlayItem struct {
	shared.BaseEntity
	Name     string
	Category string
}

// NewOutlayItem creates a new outlay item
func NewOutlayItem(name, category string) (*OutlayItem, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Outlay item name cannot be empty")
	}
	return &OutlayItem{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Category:   category,
	}, nil
}

// RequiresWorker returns true if payments against this item must carry a
// worker reference.
func (i *OutlayItem) RequiresWorker() bool {
	return i.Category == OutlayCategoryWorkers
}

// IncomeItem is a non-order income category: rebates, found surplus,
// one-off side sales.
type IncomeItem struct {
	shared.BaseEntity
	Name string
}

// NewIncomeItem creates a new income item
func NewIncomeItem(name string) (*IncomeItem, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Income item name cannot be empty")
	}
	return &IncomeItem{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
	}, nil
}
