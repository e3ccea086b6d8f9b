package summary

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/resto-reports/backend/internal/application/adapter"
	"github.com/resto-reports/backend/internal/application/usecase/report"
	"github.com/resto-reports/backend/internal/domain/entity"
	domainerror "github.com/resto-reports/backend/internal/domain/error"
)

// memStore is a minimal in-memory ReportStore for driving the loader.
type memStore struct {
	reports map[string]*entity.Report
}

func newMemStore() *memStore {
	return &memStore{reports: map[string]*entity.Report{}}
}

func (s *memStore) Load(_ context.Context, userID uuid.UUID, monthKey string) (*entity.Report, error) {
	return s.reports[userID.String()+"|"+monthKey], nil
}

func (s *memStore) Save(_ context.Context, rep *entity.Report) error {
	s.reports[rep.UserID.String()+"|"+rep.MonthKey] = rep
	return nil
}

func (s *memStore) Exists(_ context.Context, userID uuid.UUID, monthKey string) (bool, error) {
	_, ok := s.reports[userID.String()+"|"+monthKey]
	return ok, nil
}

var _ adapter.ReportStore = (*memStore)(nil)

func newLoader(store *memStore) *report.LoadReportUseCase {
	return report.NewLoadReportUseCase(report.Stores{Local: store})
}

func TestGetSummaryUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("default month summary", func(t *testing.T) {
		uc := NewGetSummaryUseCase(newLoader(newMemStore()))
		out, err := uc.Execute(ctx, GetSummaryInput{UserID: uuid.Nil, MonthKey: "2025-03"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.TotalRevenue != 0 {
			t.Errorf("expected revenue 0, got %v", out.TotalRevenue)
		}
		if out.TotalExpenses != 16200 {
			t.Errorf("expected expenses 16200, got %v", out.TotalExpenses)
		}
		if out.NetProfit != -16200 {
			t.Errorf("expected net -16200, got %v", out.NetProfit)
		}
		if out.GrossProfit != out.TotalRevenue {
			t.Errorf("expected gross profit equal to revenue, got %v", out.GrossProfit)
		}
		if out.FieldTotals[entity.FieldSalaryExpenses] != 16200 {
			t.Errorf("expected salary field total 16200, got %v", out.FieldTotals[entity.FieldSalaryExpenses])
		}
	})

	t.Run("kitchen and bar revenue are split by label", func(t *testing.T) {
		store := newMemStore()
		rep := entity.NewDefaultReport(uuid.Nil, "2025-03")
		rep.SetItem(entity.CategoryKitchenItems, "Il Classico", 1200, "")
		rep.SetItem(entity.CategoryBarItems, "Espresso", 300, "")
		_ = store.Save(ctx, rep)

		uc := NewGetSummaryUseCase(newLoader(store))
		out, err := uc.Execute(ctx, GetSummaryInput{UserID: uuid.Nil, MonthKey: "2025-03"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.KitchenRevenue != 1200 {
			t.Errorf("expected kitchen revenue 1200, got %v", out.KitchenRevenue)
		}
		if out.BarRevenue != 300 {
			t.Errorf("expected bar revenue 300, got %v", out.BarRevenue)
		}
		if out.TotalRevenue != 1500 {
			t.Errorf("expected total revenue 1500, got %v", out.TotalRevenue)
		}
	})
}

func TestGetSimpleSummaryUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("gross profit subtracts cost of goods", func(t *testing.T) {
		store := newMemStore()
		rep := entity.NewDefaultReport(uuid.Nil, "2025-03")
		rep.SetItem(entity.CategoryCostOfGoodsItems, "Marfa Bucatarie", 3000, "")
		_ = store.Save(ctx, rep)

		uc := NewGetSimpleSummaryUseCase(newLoader(store))
		out, err := uc.Execute(ctx, GetSimpleSummaryInput{UserID: uuid.Nil, MonthKey: "2025-03"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.CostOfGoods != 3000 {
			t.Errorf("expected cost of goods 3000, got %v", out.CostOfGoods)
		}
		if out.GrossProfit != -3000 {
			t.Errorf("expected gross -3000, got %v", out.GrossProfit)
		}
		if out.NetProfit != -19200 {
			t.Errorf("expected net -19200, got %v", out.NetProfit)
		}
	})
}

func TestCompareMonthsUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("computes consecutive changes", func(t *testing.T) {
		store := newMemStore()
		march := entity.NewDefaultReport(uuid.Nil, "2025-03")
		march.SetItem(entity.CategoryKitchenItems, "Il Classico", 10000, "")
		_ = store.Save(ctx, march)
		april := entity.NewDefaultReport(uuid.Nil, "2025-04")
		april.SetItem(entity.CategoryKitchenItems, "Il Classico", 12500, "")
		_ = store.Save(ctx, april)

		uc := NewCompareMonthsUseCase(newLoader(store))
		out, err := uc.Execute(ctx, CompareMonthsInput{
			UserID:    uuid.Nil,
			MonthKeys: []string{"2025-03", "2025-04"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Months) != 2 {
			t.Fatalf("expected 2 months, got %d", len(out.Months))
		}
		first, second := out.Months[0], out.Months[1]
		if first.RevenueChange != 0 {
			t.Errorf("expected no change on the first month, got %v", first.RevenueChange)
		}
		if first.DisplayName != "Martie 2025" {
			t.Errorf("expected display name Martie 2025, got %q", first.DisplayName)
		}
		if second.RevenueChange != 0.25 {
			t.Errorf("expected 25%% revenue change, got %v", second.RevenueChange)
		}
		if second.ExpensesChange != 0 {
			t.Errorf("expected flat expenses, got %v", second.ExpensesChange)
		}
	})

	t.Run("missing months contribute default totals", func(t *testing.T) {
		uc := NewCompareMonthsUseCase(newLoader(newMemStore()))
		out, err := uc.Execute(ctx, CompareMonthsInput{
			UserID:    uuid.Nil,
			MonthKeys: []string{"2025-01", "2025-02"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, month := range out.Months {
			if month.TotalExpenses != 16200 {
				t.Errorf("expected default expenses 16200 for %s, got %v", month.MonthKey, month.TotalExpenses)
			}
		}
	})

	t.Run("empty and malformed inputs are rejected", func(t *testing.T) {
		uc := NewCompareMonthsUseCase(newLoader(newMemStore()))
		_, err := uc.Execute(ctx, CompareMonthsInput{UserID: uuid.Nil})
		assertInvalidMonthKey(t, err)

		_, err = uc.Execute(ctx, CompareMonthsInput{UserID: uuid.Nil, MonthKeys: []string{"2025-03", "junk"}})
		assertInvalidMonthKey(t, err)
	})
}

func TestBudgetVarianceUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("month without a budget reports HasBudget false", func(t *testing.T) {
		uc := NewBudgetVarianceUseCase(newLoader(newMemStore()))
		out, err := uc.Execute(ctx, BudgetVarianceInput{UserID: uuid.Nil, MonthKey: "2025-03"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.HasBudget {
			t.Error("expected HasBudget false")
		}
		if out.Revenue.Target != 0 || out.Revenue.Actual != 0 {
			t.Errorf("expected zero-valued lines, got %+v", out.Revenue)
		}
	})

	t.Run("variance and attainment against a stored budget", func(t *testing.T) {
		store := newMemStore()
		rep := entity.NewDefaultReport(uuid.Nil, "2025-03")
		rep.SetItem(entity.CategoryKitchenItems, "Il Classico", 45000, "")
		rep.Budget = &entity.Budget{TargetRevenue: 60000, TargetExpenses: 16200, TargetProfit: 20000}
		_ = store.Save(ctx, rep)

		uc := NewBudgetVarianceUseCase(newLoader(store))
		out, err := uc.Execute(ctx, BudgetVarianceInput{UserID: uuid.Nil, MonthKey: "2025-03"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.HasBudget {
			t.Fatal("expected HasBudget true")
		}
		if out.Revenue.Variance != -15000 {
			t.Errorf("expected revenue variance -15000, got %v", out.Revenue.Variance)
		}
		if out.Revenue.Attainment != 0.75 {
			t.Errorf("expected revenue attainment 0.75, got %v", out.Revenue.Attainment)
		}
		if out.Expenses.Variance != 0 {
			t.Errorf("expected expense variance 0, got %v", out.Expenses.Variance)
		}
		if out.Expenses.Attainment != 1 {
			t.Errorf("expected expense attainment 1, got %v", out.Expenses.Attainment)
		}
	})

	t.Run("planned loss keeps the plain ratio sense", func(t *testing.T) {
		store := newMemStore()
		rep := entity.NewDefaultReport(uuid.Nil, "2025-06")
		rep.Budget = &entity.Budget{TargetProfit: -32400}
		_ = store.Save(ctx, rep)

		uc := NewBudgetVarianceUseCase(newLoader(store))
		out, err := uc.Execute(ctx, BudgetVarianceInput{UserID: uuid.Nil, MonthKey: "2025-06"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Actual loss of 16200 against a planned loss of 32400.
		if out.Profit.Actual != -16200 {
			t.Fatalf("expected actual profit -16200, got %v", out.Profit.Actual)
		}
		if out.Profit.Attainment != 0.5 {
			t.Errorf("expected attainment 0.5, got %v", out.Profit.Attainment)
		}
		if out.Profit.Variance != 16200 {
			t.Errorf("expected variance 16200, got %v", out.Profit.Variance)
		}
	})
}

func assertInvalidMonthKey(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	var reportErr *domainerror.ReportError
	if !errors.As(err, &reportErr) {
		t.Fatalf("expected a ReportError, got %T: %v", err, err)
	}
	if reportErr.Code != domainerror.ErrCodeInvalidMonthKey {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidMonthKey, reportErr.Code)
	}
}
