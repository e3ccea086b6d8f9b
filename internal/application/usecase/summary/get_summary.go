// Package summary contains the derived-totals use cases. Totals are never
// stored; every request recomputes them from the live category maps.
package summary

import (
	"context"

	"github.com/google/uuid"

	"github.com/resto-reports/backend/internal/application/usecase/report"
	"github.com/resto-reports/backend/internal/domain/entity"
)

// GetSummaryInput represents the input for the monthly summary.
type GetSummaryInput struct {
	UserID   uuid.UUID
	MonthKey string
}

// GetSummaryOutput represents the computed totals for one month.
// GrossProfit equals TotalRevenue in this flow; the simple variant in
// get_simple_summary.go subtracts cost of goods instead.
type GetSummaryOutput struct {
	MonthKey       string
	KitchenRevenue float64
	BarRevenue     float64
	TotalRevenue   float64
	CostOfGoods    float64
	FieldTotals    map[entity.StorageField]float64
	TotalExpenses  float64
	GrossProfit    float64
	NetProfit      float64
	Warning        string
}

// GetSummaryUseCase computes the default monthly summary.
type GetSummaryUseCase struct {
	loader *report.LoadReportUseCase
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(loader *report.LoadReportUseCase) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		loader: loader,
	}
}

// Execute loads the month (defaults included) and computes its totals.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	loaded, err := uc.loader.Execute(ctx, report.LoadReportInput{
		UserID:   input.UserID,
		MonthKey: input.MonthKey,
	})
	if err != nil {
		return nil, err
	}

	rep := loaded.Report
	kitchen, bar := rep.RevenueSplit()

	fieldTotals := make(map[entity.StorageField]float64, len(entity.AllStorageFields))
	for _, field := range entity.AllStorageFields {
		fieldTotals[field] = rep.FieldTotal(field)
	}

	return &GetSummaryOutput{
		MonthKey:       input.MonthKey,
		KitchenRevenue: kitchen,
		BarRevenue:     bar,
		TotalRevenue:   rep.TotalRevenue(),
		CostOfGoods:    rep.FieldTotal(entity.FieldCostOfGoodsItems),
		FieldTotals:    fieldTotals,
		TotalExpenses:  rep.TotalExpenses(),
		GrossProfit:    rep.GrossProfit(),
		NetProfit:      rep.NetProfit(),
		Warning:        loaded.Warning,
	}, nil
}
