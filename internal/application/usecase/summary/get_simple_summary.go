// Package summary contains the derived-totals use cases.
package summary

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/resto-reports/backend/internal/application/usecase/report"
	"github.com/resto-reports/backend/internal/domain/entity"
)

// GetSimpleSummaryInput represents the input for the simple summary variant.
type GetSimpleSummaryInput struct {
	UserID   uuid.UUID
	MonthKey string
}

// GetSimpleSummaryOutput is the simple-page variant of the monthly totals.
// Here gross profit subtracts the explicit cost-of-goods total from revenue.
// The default summary treats gross profit as equal to revenue; the business
// rule divergence is deliberate and the two paths stay separate.
type GetSimpleSummaryOutput struct {
	MonthKey      string
	TotalRevenue  float64
	CostOfGoods   float64
	GrossProfit   float64
	TotalExpenses float64
	NetProfit     float64
	Warning       string
}

// GetSimpleSummaryUseCase computes the cost-of-goods-aware summary.
type GetSimpleSummaryUseCase struct {
	loader *report.LoadReportUseCase
}

// NewGetSimpleSummaryUseCase creates a new GetSimpleSummaryUseCase instance.
func NewGetSimpleSummaryUseCase(loader *report.LoadReportUseCase) *GetSimpleSummaryUseCase {
	return &GetSimpleSummaryUseCase{
		loader: loader,
	}
}

// Execute loads the month and computes the simple totals.
func (uc *GetSimpleSummaryUseCase) Execute(ctx context.Context, input GetSimpleSummaryInput) (*GetSimpleSummaryOutput, error) {
	loaded, err := uc.loader.Execute(ctx, report.LoadReportInput{
		UserID:   input.UserID,
		MonthKey: input.MonthKey,
	})
	if err != nil {
		return nil, err
	}

	rep := loaded.Report
	revenue := decimal.NewFromFloat(rep.TotalRevenue())
	costOfGoods := decimal.NewFromFloat(rep.FieldTotal(entity.FieldCostOfGoodsItems))
	expenses := decimal.NewFromFloat(rep.TotalExpenses())
	gross := revenue.Sub(costOfGoods)

	return &GetSimpleSummaryOutput{
		MonthKey:      input.MonthKey,
		TotalRevenue:  revenue.InexactFloat64(),
		CostOfGoods:   costOfGoods.InexactFloat64(),
		GrossProfit:   gross.InexactFloat64(),
		TotalExpenses: expenses.InexactFloat64(),
		NetProfit:     gross.Sub(expenses).InexactFloat64(),
		Warning:       loaded.Warning,
	}, nil
}
