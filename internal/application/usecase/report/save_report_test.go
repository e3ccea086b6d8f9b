package report

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/resto-reports/backend/internal/domain/entity"
	domainerror "github.com/resto-reports/backend/internal/domain/error"
)

func TestSaveReportUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("partial input is completed from the default template", func(t *testing.T) {
		local := newFakeStore()
		uc := NewSaveReportUseCase(Stores{Local: local})
		out, err := uc.Execute(ctx, SaveReportInput{
			UserID:         uuid.Nil,
			MonthKey:       "2025-03",
			SalaryExpenses: entity.ItemMap{"Adi": 4500},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Report.SalaryExpenses["Adi"] != 4500 {
			t.Errorf("expected supplied Adi 4500, got %v", out.Report.SalaryExpenses["Adi"])
		}
		if out.Report.SalaryExpenses["Ioana"] != 4050 {
			t.Errorf("expected template Ioana merged in, got %v", out.Report.SalaryExpenses["Ioana"])
		}
		if _, ok := out.Report.RevenueItems["Espresso"]; !ok {
			t.Error("expected omitted revenue map filled from defaults")
		}
		if local.saveCalls != 1 {
			t.Errorf("expected one write, got %d", local.saveCalls)
		}
	})

	t.Run("budget and subcategories are carried", func(t *testing.T) {
		local := newFakeStore()
		uc := NewSaveReportUseCase(Stores{Local: local})
		out, err := uc.Execute(ctx, SaveReportInput{
			UserID:   uuid.Nil,
			MonthKey: "2025-03",
			Budget:   &entity.Budget{TargetRevenue: 60000, TargetExpenses: 40000, TargetProfit: 20000},
			Subcategories: entity.Subcategories{
				RevenueItems: map[string]string{"Negroni": entity.SubsectionBar},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Report.Budget == nil || out.Report.Budget.TargetRevenue != 60000 {
			t.Fatalf("expected budget carried, got %+v", out.Report.Budget)
		}
		if out.Report.Subcategories.RevenueItems["Negroni"] != entity.SubsectionBar {
			t.Errorf("expected supplied label kept, got %q", out.Report.Subcategories.RevenueItems["Negroni"])
		}
	})

	t.Run("invalid month key is rejected", func(t *testing.T) {
		uc := NewSaveReportUseCase(Stores{Local: newFakeStore()})
		_, err := uc.Execute(ctx, SaveReportInput{UserID: uuid.Nil, MonthKey: "03-2025"})
		assertReportErrorCode(t, err, domainerror.ErrCodeInvalidMonthKey)
	})

	t.Run("remote write failure surfaces the storage code", func(t *testing.T) {
		remote := newFakeStore()
		remote.saveErr = errStoreDown
		uc := NewSaveReportUseCase(Stores{Remote: remote, Local: newFakeStore()})
		_, err := uc.Execute(ctx, SaveReportInput{UserID: userID, MonthKey: "2025-03"})
		assertReportErrorCode(t, err, domainerror.ErrCodeRemoteStoreWrite)
	})
}

func TestSetBudgetUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("attaches a budget to an existing document", func(t *testing.T) {
		local := newFakeStore()
		local.put(entity.NewDefaultReport(uuid.Nil, "2025-03"))
		uc := NewSetBudgetUseCase(Stores{Local: local})
		out, err := uc.Execute(ctx, SetBudgetInput{
			UserID:   uuid.Nil,
			MonthKey: "2025-03",
			Budget:   entity.Budget{TargetRevenue: 60000, TargetExpenses: 40000, TargetProfit: 20000},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Report.Budget == nil || out.Report.Budget.TargetProfit != 20000 {
			t.Fatalf("expected budget recorded, got %+v", out.Report.Budget)
		}
		if local.saveCalls != 1 {
			t.Errorf("expected one write, got %d", local.saveCalls)
		}
	})

	t.Run("creates the document from defaults when absent", func(t *testing.T) {
		local := newFakeStore()
		uc := NewSetBudgetUseCase(Stores{Local: local})
		out, err := uc.Execute(ctx, SetBudgetInput{
			UserID:   uuid.Nil,
			MonthKey: "2025-04",
			Budget:   entity.Budget{TargetRevenue: 55000},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Report.SalaryExpenses["Adi"] != 4050 {
			t.Errorf("expected a default-template document, got Adi %v", out.Report.SalaryExpenses["Adi"])
		}
		if out.Report.Budget.TargetRevenue != 55000 {
			t.Errorf("expected budget target 55000, got %v", out.Report.Budget.TargetRevenue)
		}
	})

	t.Run("invalid month key is rejected", func(t *testing.T) {
		uc := NewSetBudgetUseCase(Stores{Local: newFakeStore()})
		_, err := uc.Execute(ctx, SetBudgetInput{UserID: uuid.Nil, MonthKey: "bad"})
		assertReportErrorCode(t, err, domainerror.ErrCodeInvalidMonthKey)
	})
}
