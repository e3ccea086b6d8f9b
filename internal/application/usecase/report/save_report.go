// Package report contains the month-keyed report reconciliation use cases.
package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/resto-reports/backend/internal/domain/entity"
	domainerror "github.com/resto-reports/backend/internal/domain/error"
	"github.com/resto-reports/backend/internal/domain/valueobject"
)

// SaveReportInput represents the input for saving a full monthly report.
// The category maps may be partial: defaults are merged in before the write,
// so an incomplete caller can never erase template items.
type SaveReportInput struct {
	UserID              uuid.UUID
	MonthKey            string
	RevenueItems        entity.ItemMap
	CostOfGoodsItems    entity.ItemMap
	SalaryExpenses      entity.ItemMap
	DistributorExpenses entity.ItemMap
	UtilitiesExpenses   entity.ItemMap
	OperationalExpenses entity.ItemMap
	OtherExpenses       entity.ItemMap
	Subcategories       entity.Subcategories
	Budget              *entity.Budget
}

// SaveReportOutput represents the output of saving a monthly report.
type SaveReportOutput struct {
	Report *entity.Report
}

// SaveReportUseCase handles full-document report saves.
type SaveReportUseCase struct {
	stores Stores
}

// NewSaveReportUseCase creates a new SaveReportUseCase instance.
func NewSaveReportUseCase(stores Stores) *SaveReportUseCase {
	return &SaveReportUseCase{
		stores: stores,
	}
}

// Execute performs the report save: defaults merged in, insert-or-update on
// the user's tier, and a best-effort mirror into the local store after a
// successful remote write.
func (uc *SaveReportUseCase) Execute(ctx context.Context, input SaveReportInput) (*SaveReportOutput, error) {
	if !valueobject.ValidMonthKey(input.MonthKey) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidMonthKey,
			fmt.Sprintf("month key %q is not in YYYY-MM form", input.MonthKey),
			domainerror.ErrInvalidMonthKey,
		)
	}

	rep := entity.NewReport(input.UserID, input.MonthKey)
	rep.RevenueItems = input.RevenueItems.Clone()
	rep.CostOfGoodsItems = input.CostOfGoodsItems.Clone()
	rep.SalaryExpenses = input.SalaryExpenses.Clone()
	rep.DistributorExpenses = input.DistributorExpenses.Clone()
	rep.UtilitiesExpenses = input.UtilitiesExpenses.Clone()
	rep.OperationalExpenses = input.OperationalExpenses.Clone()
	rep.OtherExpenses = input.OtherExpenses.Clone()
	rep.Budget = input.Budget
	if input.Subcategories.RevenueItems != nil {
		rep.Subcategories.RevenueItems = input.Subcategories.RevenueItems
	}
	if input.Subcategories.Expenses != nil {
		rep.Subcategories.Expenses = input.Subcategories.Expenses
	}

	backfill(rep)

	if err := uc.stores.persist(ctx, input.UserID, rep); err != nil {
		return nil, err
	}

	return &SaveReportOutput{
		Report: rep,
	}, nil
}
