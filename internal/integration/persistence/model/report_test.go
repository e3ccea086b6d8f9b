package model

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"

	"github.com/resto-reports/backend/internal/domain/entity"
)

func TestDecodeItemMap(t *testing.T) {
	t.Run("numeric values pass through", func(t *testing.T) {
		items := decodeItemMap(`{"Adi": 4050, "Ioana": 4050.5}`, entity.FieldSalaryExpenses)
		if items["Adi"] != 4050 {
			t.Errorf("expected Adi 4050, got %v", items["Adi"])
		}
		if items["Ioana"] != 4050.5 {
			t.Errorf("expected Ioana 4050.5, got %v", items["Ioana"])
		}
	})

	t.Run("non-numeric values coerce to zero", func(t *testing.T) {
		items := decodeItemMap(`{"Corrupt": "oops", "Null": null, "Nested": {"a": 1}}`, entity.FieldOtherExpenses)
		for name, value := range items {
			if value != 0 {
				t.Errorf("expected %s coerced to 0, got %v", name, value)
			}
		}
		if len(items) != 3 {
			t.Errorf("expected all keys kept, got %d", len(items))
		}
	})

	t.Run("empty and malformed documents yield an empty map", func(t *testing.T) {
		if items := decodeItemMap("", entity.FieldOtherExpenses); len(items) != 0 {
			t.Errorf("expected empty map for empty document, got %v", items)
		}
		if items := decodeItemMap("not json", entity.FieldOtherExpenses); len(items) != 0 {
			t.Errorf("expected empty map for malformed document, got %v", items)
		}
	})
}

func TestReportModelConversion(t *testing.T) {
	userID := uuid.New()

	t.Run("entity round trip", func(t *testing.T) {
		rep := entity.NewDefaultReport(userID, "2025-03")
		rep.SetItem(entity.CategorySalaryExpenses, "Adi", 4500, "")
		rep.Budget = &entity.Budget{TargetRevenue: 60000, TargetExpenses: 40000, TargetProfit: 20000}
		rep.HealedKeys = []string{"salaryExpenses/Victoria"}

		m := ReportFromEntity(rep)
		if m.Date != "2025-03" {
			t.Errorf("expected date 2025-03, got %s", m.Date)
		}
		if !m.Budget.Valid {
			t.Fatal("expected budget document present")
		}

		back := m.ToEntity()
		if back.MonthKey != "2025-03" {
			t.Errorf("expected month key restored, got %s", back.MonthKey)
		}
		if back.SalaryExpenses["Adi"] != 4500 {
			t.Errorf("expected Adi 4500, got %v", back.SalaryExpenses["Adi"])
		}
		if back.Budget == nil || back.Budget.TargetProfit != 20000 {
			t.Fatalf("expected budget restored, got %+v", back.Budget)
		}
		if back.Subcategories.RevenueItems["Espresso"] != entity.SubsectionBar {
			t.Errorf("expected revenue labels restored, got %q", back.Subcategories.RevenueItems["Espresso"])
		}
		if len(back.HealedKeys) != 1 {
			t.Errorf("expected healed keys restored, got %v", back.HealedKeys)
		}
	})

	t.Run("missing budget stays nil", func(t *testing.T) {
		m := ReportFromEntity(entity.NewReport(userID, "2025-04"))
		if m.Budget.Valid {
			t.Error("expected no budget document")
		}
		if back := m.ToEntity(); back.Budget != nil {
			t.Errorf("expected nil budget, got %+v", back.Budget)
		}
	})

	t.Run("corrupt stored documents degrade to empty maps", func(t *testing.T) {
		m := &ReportModel{
			UserID:        userID,
			Date:          "2025-05",
			RevenueItems:  "not json",
			Subcategories: "also not json",
			Budget:        sql.NullString{String: "still not json", Valid: true},
		}
		back := m.ToEntity()
		if len(back.RevenueItems) != 0 {
			t.Errorf("expected empty revenue map, got %v", back.RevenueItems)
		}
		if back.Budget != nil {
			t.Errorf("expected nil budget, got %+v", back.Budget)
		}
		if back.Subcategories.RevenueItems == nil {
			t.Error("expected initialized subcategory maps")
		}
	})
}
