// Package summary contains the derived-totals use cases.
package summary

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/resto-reports/backend/internal/application/usecase/report"
)

// BudgetVarianceInput represents the input for a budget variance view.
type BudgetVarianceInput struct {
	UserID   uuid.UUID
	MonthKey string
}

// VarianceLine compares one target against its actual value.
// Variance is actual minus target; Attainment is actual/target as a ratio.
type VarianceLine struct {
	Target     float64
	Actual     float64
	Variance   float64
	Attainment float64
}

// BudgetVarianceOutput represents the output of the variance view.
// HasBudget is false when the month has no budget record; the lines are
// zero-valued in that case.
type BudgetVarianceOutput struct {
	MonthKey  string
	HasBudget bool
	Revenue   VarianceLine
	Expenses  VarianceLine
	Profit    VarianceLine
}

// BudgetVarianceUseCase computes target-versus-actual lines for a month.
type BudgetVarianceUseCase struct {
	loader *report.LoadReportUseCase
}

// NewBudgetVarianceUseCase creates a new BudgetVarianceUseCase instance.
func NewBudgetVarianceUseCase(loader *report.LoadReportUseCase) *BudgetVarianceUseCase {
	return &BudgetVarianceUseCase{
		loader: loader,
	}
}

// Execute loads the month and compares its totals against the stored budget.
func (uc *BudgetVarianceUseCase) Execute(ctx context.Context, input BudgetVarianceInput) (*BudgetVarianceOutput, error) {
	loaded, err := uc.loader.Execute(ctx, report.LoadReportInput{
		UserID:   input.UserID,
		MonthKey: input.MonthKey,
	})
	if err != nil {
		return nil, err
	}

	rep := loaded.Report
	if rep.Budget == nil {
		return &BudgetVarianceOutput{
			MonthKey: input.MonthKey,
		}, nil
	}

	return &BudgetVarianceOutput{
		MonthKey:  input.MonthKey,
		HasBudget: true,
		Revenue:   varianceLine(rep.Budget.TargetRevenue, rep.TotalRevenue()),
		Expenses:  varianceLine(rep.Budget.TargetExpenses, rep.TotalExpenses()),
		Profit:    varianceLine(rep.Budget.TargetProfit, rep.NetProfit()),
	}, nil
}

// varianceLine computes actual minus target and the plain actual/target
// ratio. The ratio keeps its arithmetic sense for negative targets too: a
// planned loss of 100 with an actual loss of 50 is 50% attainment, not 150%.
func varianceLine(target, actual float64) VarianceLine {
	variance := decimal.NewFromFloat(actual).
		Sub(decimal.NewFromFloat(target)).
		InexactFloat64()
	attainment := float64(0)
	if target != 0 {
		attainment = decimal.NewFromFloat(actual).
			Div(decimal.NewFromFloat(target)).
			InexactFloat64()
	}
	return VarianceLine{
		Target:     target,
		Actual:     actual,
		Variance:   variance,
		Attainment: attainment,
	}
}
