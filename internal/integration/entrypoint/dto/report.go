package dto

import (
	"time"

	"github.com/resto-reports/backend/internal/application/usecase/report"
	"github.com/resto-reports/backend/internal/domain/entity"
)

// SaveReportRequest represents the request body for a full-document report
// save. Omitted category maps are treated as empty; the default template is
// merged back in on write, so a partial body never erases default items.
type SaveReportRequest struct {
	RevenueItems        map[string]float64 `json:"revenue_items"`
	CostOfGoodsItems    map[string]float64 `json:"cost_of_goods_items"`
	SalaryExpenses      map[string]float64 `json:"salary_expenses"`
	DistributorExpenses map[string]float64 `json:"distributor_expenses"`
	UtilitiesExpenses   map[string]float64 `json:"utilities_expenses"`
	OperationalExpenses map[string]float64 `json:"operational_expenses"`
	OtherExpenses       map[string]float64 `json:"other_expenses"`
	Subcategories       *SubcategoriesBody `json:"subcategories"`
	Budget              *BudgetBody        `json:"budget"`
}

// SubcategoriesBody maps item names to their subsection labels.
type SubcategoriesBody struct {
	RevenueItems map[string]string `json:"revenue_items"`
	Expenses     map[string]string `json:"expenses"`
}

// BudgetBody carries the monthly targets.
type BudgetBody struct {
	TargetRevenue  float64 `json:"target_revenue"`
	TargetExpenses float64 `json:"target_expenses"`
	TargetProfit   float64 `json:"target_profit"`
}

// AddItemRequest represents the request body for adding a line item.
type AddItemRequest struct {
	Category     string  `json:"category" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	InitialValue float64 `json:"initial_value"`
	Subsection   string  `json:"subsection"`
}

// RenameItemRequest represents the request body for renaming a line item.
type RenameItemRequest struct {
	Category string `json:"category" binding:"required"`
	OldName  string `json:"old_name" binding:"required"`
	NewName  string `json:"new_name" binding:"required"`
}

// UpdateItemRequest represents the request body for updating an item value.
type UpdateItemRequest struct {
	Category string  `json:"category" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Value    float64 `json:"value"`
}

// DeleteItemRequest represents the request body for deleting a line item.
// Items are addressed by body rather than by path because names are free
// text (spaces, diacritics).
type DeleteItemRequest struct {
	Category string `json:"category" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

// SetBudgetRequest represents the request body for recording a budget.
type SetBudgetRequest struct {
	TargetRevenue  float64 `json:"target_revenue" binding:"min=0"`
	TargetExpenses float64 `json:"target_expenses" binding:"min=0"`
	TargetProfit   float64 `json:"target_profit"`
}

// ReportResponse represents a monthly report in API responses. Source says
// which storage tier served the document; Warning is set when the remote
// tier was unreachable and locally saved data was shown instead.
type ReportResponse struct {
	MonthKey            string             `json:"month_key"`
	RevenueItems        map[string]float64 `json:"revenue_items"`
	CostOfGoodsItems    map[string]float64 `json:"cost_of_goods_items"`
	SalaryExpenses      map[string]float64 `json:"salary_expenses"`
	DistributorExpenses map[string]float64 `json:"distributor_expenses"`
	UtilitiesExpenses   map[string]float64 `json:"utilities_expenses"`
	OperationalExpenses map[string]float64 `json:"operational_expenses"`
	OtherExpenses       map[string]float64 `json:"other_expenses"`
	Subcategories       SubcategoriesBody  `json:"subcategories"`
	Budget              *BudgetBody        `json:"budget,omitempty"`
	HealedKeys          []string           `json:"healed_keys,omitempty"`
	Source              string             `json:"source,omitempty"`
	Warning             string             `json:"warning,omitempty"`
	UpdatedAt           time.Time          `json:"updated_at"`
}

// ToReportResponse converts a Report entity to a ReportResponse DTO.
func ToReportResponse(rep *entity.Report) ReportResponse {
	resp := ReportResponse{
		MonthKey:            rep.MonthKey,
		RevenueItems:        rep.RevenueItems,
		CostOfGoodsItems:    rep.CostOfGoodsItems,
		SalaryExpenses:      rep.SalaryExpenses,
		DistributorExpenses: rep.DistributorExpenses,
		UtilitiesExpenses:   rep.UtilitiesExpenses,
		OperationalExpenses: rep.OperationalExpenses,
		OtherExpenses:       rep.OtherExpenses,
		Subcategories: SubcategoriesBody{
			RevenueItems: rep.Subcategories.RevenueItems,
			Expenses:     rep.Subcategories.Expenses,
		},
		HealedKeys: rep.HealedKeys,
		UpdatedAt:  rep.UpdatedAt,
	}
	if rep.Budget != nil {
		resp.Budget = &BudgetBody{
			TargetRevenue:  rep.Budget.TargetRevenue,
			TargetExpenses: rep.Budget.TargetExpenses,
			TargetProfit:   rep.Budget.TargetProfit,
		}
	}
	return resp
}

// ToLoadReportResponse converts a load output to a ReportResponse DTO,
// carrying the storage source and any fallback warning.
func ToLoadReportResponse(output *report.LoadReportOutput) ReportResponse {
	resp := ToReportResponse(output.Report)
	resp.Source = string(output.Source)
	resp.Warning = output.Warning
	return resp
}

// ToSaveReportInput converts a save request to the use case input.
func ToSaveReportInput(req SaveReportRequest) report.SaveReportInput {
	input := report.SaveReportInput{
		RevenueItems:        entity.ItemMap(req.RevenueItems),
		CostOfGoodsItems:    entity.ItemMap(req.CostOfGoodsItems),
		SalaryExpenses:      entity.ItemMap(req.SalaryExpenses),
		DistributorExpenses: entity.ItemMap(req.DistributorExpenses),
		UtilitiesExpenses:   entity.ItemMap(req.UtilitiesExpenses),
		OperationalExpenses: entity.ItemMap(req.OperationalExpenses),
		OtherExpenses:       entity.ItemMap(req.OtherExpenses),
	}
	if req.Subcategories != nil {
		input.Subcategories = entity.Subcategories{
			RevenueItems: req.Subcategories.RevenueItems,
			Expenses:     req.Subcategories.Expenses,
		}
	}
	if req.Budget != nil {
		input.Budget = &entity.Budget{
			TargetRevenue:  req.Budget.TargetRevenue,
			TargetExpenses: req.Budget.TargetExpenses,
			TargetProfit:   req.Budget.TargetProfit,
		}
	}
	return input
}
