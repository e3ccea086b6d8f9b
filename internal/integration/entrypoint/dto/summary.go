package dto

import (
	"github.com/resto-reports/backend/internal/application/usecase/summary"
	"github.com/resto-reports/backend/internal/domain/valueobject"
)

// SummaryResponse represents the monthly summary. Formatted fields carry the
// display strings (RON amounts with Romanian separators) alongside the raw
// numbers.
type SummaryResponse struct {
	MonthKey             string             `json:"month_key"`
	MonthDisplay         string             `json:"month_display"`
	KitchenRevenue       float64            `json:"kitchen_revenue"`
	BarRevenue           float64            `json:"bar_revenue"`
	TotalRevenue         float64            `json:"total_revenue"`
	CostOfGoods          float64            `json:"cost_of_goods"`
	FieldTotals          map[string]float64 `json:"field_totals"`
	TotalExpenses        float64            `json:"total_expenses"`
	GrossProfit          float64            `json:"gross_profit"`
	NetProfit            float64            `json:"net_profit"`
	TotalRevenueDisplay  string             `json:"total_revenue_display"`
	TotalExpensesDisplay string             `json:"total_expenses_display"`
	NetProfitDisplay     string             `json:"net_profit_display"`
	Warning              string             `json:"warning,omitempty"`
}

// ToSummaryResponse converts a GetSummaryOutput to a SummaryResponse DTO.
func ToSummaryResponse(output *summary.GetSummaryOutput) SummaryResponse {
	fieldTotals := make(map[string]float64, len(output.FieldTotals))
	for field, total := range output.FieldTotals {
		fieldTotals[string(field)] = total
	}
	return SummaryResponse{
		MonthKey:             output.MonthKey,
		MonthDisplay:         valueobject.FormatMonthKey(output.MonthKey),
		KitchenRevenue:       output.KitchenRevenue,
		BarRevenue:           output.BarRevenue,
		TotalRevenue:         output.TotalRevenue,
		CostOfGoods:          output.CostOfGoods,
		FieldTotals:          fieldTotals,
		TotalExpenses:        output.TotalExpenses,
		GrossProfit:          output.GrossProfit,
		NetProfit:            output.NetProfit,
		TotalRevenueDisplay:  valueobject.FormatRON(output.TotalRevenue),
		TotalExpensesDisplay: valueobject.FormatRON(output.TotalExpenses),
		NetProfitDisplay:     valueobject.FormatRON(output.NetProfit),
		Warning:              output.Warning,
	}
}

// SimpleSummaryResponse represents the cost-of-goods-aware summary, where
// gross profit is revenue minus cost of goods.
type SimpleSummaryResponse struct {
	MonthKey      string  `json:"month_key"`
	MonthDisplay  string  `json:"month_display"`
	TotalRevenue  float64 `json:"total_revenue"`
	CostOfGoods   float64 `json:"cost_of_goods"`
	GrossProfit   float64 `json:"gross_profit"`
	TotalExpenses float64 `json:"total_expenses"`
	NetProfit     float64 `json:"net_profit"`
	Warning       string  `json:"warning,omitempty"`
}

// ToSimpleSummaryResponse converts a GetSimpleSummaryOutput to its DTO.
func ToSimpleSummaryResponse(output *summary.GetSimpleSummaryOutput) SimpleSummaryResponse {
	return SimpleSummaryResponse{
		MonthKey:      output.MonthKey,
		MonthDisplay:  valueobject.FormatMonthKey(output.MonthKey),
		TotalRevenue:  output.TotalRevenue,
		CostOfGoods:   output.CostOfGoods,
		GrossProfit:   output.GrossProfit,
		TotalExpenses: output.TotalExpenses,
		NetProfit:     output.NetProfit,
		Warning:       output.Warning,
	}
}

// MonthTotalsResponse represents one month in the comparison view. The
// change ratios compare against the previous month in the sequence; the
// first month carries zeros.
type MonthTotalsResponse struct {
	MonthKey       string  `json:"month_key"`
	DisplayName    string  `json:"display_name"`
	TotalRevenue   float64 `json:"total_revenue"`
	TotalExpenses  float64 `json:"total_expenses"`
	NetProfit      float64 `json:"net_profit"`
	RevenueChange  string  `json:"revenue_change"`
	ExpensesChange string  `json:"expenses_change"`
	ProfitChange   string  `json:"profit_change"`
}

// ComparisonResponse represents the month-over-month comparison.
type ComparisonResponse struct {
	Months []MonthTotalsResponse `json:"months"`
}

// ToComparisonResponse converts a CompareMonthsOutput to its DTO.
func ToComparisonResponse(output *summary.CompareMonthsOutput) ComparisonResponse {
	months := make([]MonthTotalsResponse, len(output.Months))
	for i, m := range output.Months {
		months[i] = MonthTotalsResponse{
			MonthKey:       m.MonthKey,
			DisplayName:    m.DisplayName,
			TotalRevenue:   m.TotalRevenue,
			TotalExpenses:  m.TotalExpenses,
			NetProfit:      m.NetProfit,
			RevenueChange:  valueobject.FormatPercent(m.RevenueChange),
			ExpensesChange: valueobject.FormatPercent(m.ExpensesChange),
			ProfitChange:   valueobject.FormatPercent(m.ProfitChange),
		}
	}
	return ComparisonResponse{Months: months}
}

// VarianceLineResponse compares one budget target with its actual value.
type VarianceLineResponse struct {
	Target     float64 `json:"target"`
	Actual     float64 `json:"actual"`
	Variance   float64 `json:"variance"`
	Attainment string  `json:"attainment"`
}

// BudgetVarianceResponse represents the budget variance view.
type BudgetVarianceResponse struct {
	MonthKey  string               `json:"month_key"`
	HasBudget bool                 `json:"has_budget"`
	Revenue   VarianceLineResponse `json:"revenue"`
	Expenses  VarianceLineResponse `json:"expenses"`
	Profit    VarianceLineResponse `json:"profit"`
}

// ToBudgetVarianceResponse converts a BudgetVarianceOutput to its DTO.
func ToBudgetVarianceResponse(output *summary.BudgetVarianceOutput) BudgetVarianceResponse {
	return BudgetVarianceResponse{
		MonthKey:  output.MonthKey,
		HasBudget: output.HasBudget,
		Revenue:   toVarianceLineResponse(output.Revenue),
		Expenses:  toVarianceLineResponse(output.Expenses),
		Profit:    toVarianceLineResponse(output.Profit),
	}
}

func toVarianceLineResponse(line summary.VarianceLine) VarianceLineResponse {
	return VarianceLineResponse{
		Target:     line.Target,
		Actual:     line.Actual,
		Variance:   line.Variance,
		Attainment: valueobject.FormatPercent(line.Attainment),
	}
}
