// Package summary contains the derived-totals use cases.
package summary

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/resto-reports/backend/internal/application/usecase/report"
	domainerror "github.com/resto-reports/backend/internal/domain/error"
	"github.com/resto-reports/backend/internal/domain/valueobject"
)

// CompareMonthsInput represents the input for a month-over-month comparison.
type CompareMonthsInput struct {
	UserID    uuid.UUID
	MonthKeys []string
}

// MonthTotals holds one month's totals plus the relative change against the
// previous month in the requested sequence. Changes are ratios (0.25 = +25%).
type MonthTotals struct {
	MonthKey       string
	DisplayName    string
	TotalRevenue   float64
	TotalExpenses  float64
	NetProfit      float64
	RevenueChange  float64
	ExpensesChange float64
	ProfitChange   float64
}

// CompareMonthsOutput represents the output of the comparison.
type CompareMonthsOutput struct {
	Months []MonthTotals
}

// CompareMonthsUseCase computes totals for a sequence of months.
type CompareMonthsUseCase struct {
	loader *report.LoadReportUseCase
}

// NewCompareMonthsUseCase creates a new CompareMonthsUseCase instance.
func NewCompareMonthsUseCase(loader *report.LoadReportUseCase) *CompareMonthsUseCase {
	return &CompareMonthsUseCase{
		loader: loader,
	}
}

// Execute loads every requested month and computes totals plus changes
// between consecutive entries. Months without stored data contribute the
// default-template totals, so a comparison never fails on a missing month.
func (uc *CompareMonthsUseCase) Execute(ctx context.Context, input CompareMonthsInput) (*CompareMonthsOutput, error) {
	if len(input.MonthKeys) == 0 {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidMonthKey,
			"at least one month key is required",
			domainerror.ErrInvalidMonthKey,
		)
	}
	for _, key := range input.MonthKeys {
		if !valueobject.ValidMonthKey(key) {
			return nil, domainerror.NewReportError(
				domainerror.ErrCodeInvalidMonthKey,
				fmt.Sprintf("month key %q is not in YYYY-MM form", key),
				domainerror.ErrInvalidMonthKey,
			)
		}
	}

	months := make([]MonthTotals, 0, len(input.MonthKeys))
	for i, key := range input.MonthKeys {
		loaded, err := uc.loader.Execute(ctx, report.LoadReportInput{
			UserID:   input.UserID,
			MonthKey: key,
		})
		if err != nil {
			return nil, err
		}

		rep := loaded.Report
		totals := MonthTotals{
			MonthKey:      key,
			DisplayName:   valueobject.FormatMonthKey(key),
			TotalRevenue:  rep.TotalRevenue(),
			TotalExpenses: rep.TotalExpenses(),
			NetProfit:     rep.NetProfit(),
		}
		if i > 0 {
			prev := months[i-1]
			totals.RevenueChange = valueobject.PercentChange(prev.TotalRevenue, totals.TotalRevenue)
			totals.ExpensesChange = valueobject.PercentChange(prev.TotalExpenses, totals.TotalExpenses)
			totals.ProfitChange = valueobject.PercentChange(prev.NetProfit, totals.NetProfit)
		}
		months = append(months, totals)
	}

	return &CompareMonthsOutput{
		Months: months,
	}, nil
}
