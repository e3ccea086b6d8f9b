// Package model defines database models for persistence layer.
package model

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/resto-reports/backend/internal/domain/entity"
)

// ReportModel represents the reports table in the database. The category
// maps are stored as jsonb documents keyed by item name; totals are never
// persisted.
type ReportModel struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_reports_user_date"`
	Date                string         `gorm:"type:varchar(7);not null;uniqueIndex:idx_reports_user_date"`
	RevenueItems        string         `gorm:"type:jsonb;not null;default:'{}'"`
	CostOfGoodsItems    string         `gorm:"type:jsonb;not null;default:'{}'"`
	SalaryExpenses      string         `gorm:"type:jsonb;not null;default:'{}'"`
	DistributorExpenses string         `gorm:"type:jsonb;not null;default:'{}'"`
	UtilitiesExpenses   string         `gorm:"type:jsonb;not null;default:'{}'"`
	OperationalExpenses string         `gorm:"type:jsonb;not null;default:'{}'"`
	OtherExpenses       string         `gorm:"type:jsonb;not null;default:'{}'"`
	Subcategories       string         `gorm:"type:jsonb;not null;default:'{}'"`
	Budget              sql.NullString `gorm:"type:jsonb"`
	HealedKeys          pq.StringArray `gorm:"type:text[]"`
	CreatedAt           time.Time      `gorm:"not null"`
	UpdatedAt           time.Time      `gorm:"not null"`
}

// TableName returns the table name for the ReportModel.
func (ReportModel) TableName() string {
	return "reports"
}

// subcategoriesDoc is the stored shape of the subcategory side-maps.
type subcategoriesDoc struct {
	RevenueItems map[string]string `json:"revenueItems"`
	Expenses     map[string]string `json:"expenses"`
}

// budgetDoc is the stored shape of the budget record.
type budgetDoc struct {
	TargetRevenue  float64 `json:"targetRevenue"`
	TargetExpenses float64 `json:"targetExpenses"`
	TargetProfit   float64 `json:"targetProfit"`
}

// decodeItemMap parses a stored category document. Values that are not
// numeric are coerced to 0 rather than rejected.
func decodeItemMap(raw string, field entity.StorageField) entity.ItemMap {
	items := entity.ItemMap{}
	if raw == "" {
		return items
	}
	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		slog.Warn("Failed to unmarshal report category document", "field", field, "error", err)
		return items
	}
	for name, value := range doc {
		if amount, ok := value.(float64); ok {
			items[name] = amount
		} else {
			items[name] = 0
		}
	}
	return items
}

// encodeItemMap serializes a category map, defaulting to an empty document.
func encodeItemMap(items entity.ItemMap) string {
	if items == nil {
		items = entity.ItemMap{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// ToEntity converts a ReportModel to a domain Report entity.
func (m *ReportModel) ToEntity() *entity.Report {
	rep := &entity.Report{
		UserID:              m.UserID,
		MonthKey:            m.Date,
		RevenueItems:        decodeItemMap(m.RevenueItems, entity.FieldRevenueItems),
		CostOfGoodsItems:    decodeItemMap(m.CostOfGoodsItems, entity.FieldCostOfGoodsItems),
		SalaryExpenses:      decodeItemMap(m.SalaryExpenses, entity.FieldSalaryExpenses),
		DistributorExpenses: decodeItemMap(m.DistributorExpenses, entity.FieldDistributorExpenses),
		UtilitiesExpenses:   decodeItemMap(m.UtilitiesExpenses, entity.FieldUtilitiesExpenses),
		OperationalExpenses: decodeItemMap(m.OperationalExpenses, entity.FieldOperationalExpenses),
		OtherExpenses:       decodeItemMap(m.OtherExpenses, entity.FieldOtherExpenses),
		Subcategories: entity.Subcategories{
			RevenueItems: map[string]string{},
			Expenses:     map[string]string{},
		},
		HealedKeys: m.HealedKeys,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}

	if m.Subcategories != "" {
		var doc subcategoriesDoc
		if err := json.Unmarshal([]byte(m.Subcategories), &doc); err != nil {
			slog.Warn("Failed to unmarshal report subcategories", "id", m.ID, "error", err)
		} else {
			if doc.RevenueItems != nil {
				rep.Subcategories.RevenueItems = doc.RevenueItems
			}
			if doc.Expenses != nil {
				rep.Subcategories.Expenses = doc.Expenses
			}
		}
	}

	if m.Budget.Valid && m.Budget.String != "" {
		var doc budgetDoc
		if err := json.Unmarshal([]byte(m.Budget.String), &doc); err != nil {
			slog.Warn("Failed to unmarshal report budget", "id", m.ID, "error", err)
		} else {
			rep.Budget = &entity.Budget{
				TargetRevenue:  doc.TargetRevenue,
				TargetExpenses: doc.TargetExpenses,
				TargetProfit:   doc.TargetProfit,
			}
		}
	}

	return rep
}

// ReportFromEntity creates a ReportModel from a domain Report entity.
// The model ID is assigned by the repository on insert.
func ReportFromEntity(rep *entity.Report) *ReportModel {
	subcats, err := json.Marshal(subcategoriesDoc{
		RevenueItems: rep.Subcategories.RevenueItems,
		Expenses:     rep.Subcategories.Expenses,
	})
	if err != nil {
		subcats = []byte("{}")
	}

	m := &ReportModel{
		UserID:              rep.UserID,
		Date:                rep.MonthKey,
		RevenueItems:        encodeItemMap(rep.RevenueItems),
		CostOfGoodsItems:    encodeItemMap(rep.CostOfGoodsItems),
		SalaryExpenses:      encodeItemMap(rep.SalaryExpenses),
		DistributorExpenses: encodeItemMap(rep.DistributorExpenses),
		UtilitiesExpenses:   encodeItemMap(rep.UtilitiesExpenses),
		OperationalExpenses: encodeItemMap(rep.OperationalExpenses),
		OtherExpenses:       encodeItemMap(rep.OtherExpenses),
		Subcategories:       string(subcats),
		HealedKeys:          pq.StringArray(rep.HealedKeys),
		CreatedAt:           rep.CreatedAt,
		UpdatedAt:           rep.UpdatedAt,
	}

	if rep.Budget != nil {
		budget, err := json.Marshal(budgetDoc{
			TargetRevenue:  rep.Budget.TargetRevenue,
			TargetExpenses: rep.Budget.TargetExpenses,
			TargetProfit:   rep.Budget.TargetProfit,
		})
		if err == nil {
			m.Budget = sql.NullString{String: string(budget), Valid: true}
		}
	}

	return m
}
