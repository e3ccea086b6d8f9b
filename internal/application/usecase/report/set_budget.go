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

// SetBudgetInput represents the input for recording a month's budget targets.
type SetBudgetInput struct {
	UserID   uuid.UUID
	MonthKey string
	Budget   entity.Budget
}

// SetBudgetOutput represents the output of recording a budget.
type SetBudgetOutput struct {
	Report *entity.Report
}

// SetBudgetUseCase attaches budget targets to a month's report document.
type SetBudgetUseCase struct {
	stores Stores
}

// NewSetBudgetUseCase creates a new SetBudgetUseCase instance.
func NewSetBudgetUseCase(stores Stores) *SetBudgetUseCase {
	return &SetBudgetUseCase{
		stores: stores,
	}
}

// Execute loads the month's document (creating it from defaults when
// absent), records the budget, and persists the result.
func (uc *SetBudgetUseCase) Execute(ctx context.Context, input SetBudgetInput) (*SetBudgetOutput, error) {
	if !valueobject.ValidMonthKey(input.MonthKey) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidMonthKey,
			fmt.Sprintf("month key %q is not in YYYY-MM form", input.MonthKey),
			domainerror.ErrInvalidMonthKey,
		)
	}

	rep, _, err := uc.stores.loadForMutation(ctx, input.UserID, input.MonthKey)
	if err != nil {
		return nil, err
	}

	budget := input.Budget
	rep.Budget = &budget

	if err := uc.stores.persist(ctx, input.UserID, rep); err != nil {
		return nil, err
	}

	return &SetBudgetOutput{
		Report: rep,
	}, nil
}
