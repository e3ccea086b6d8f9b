package report

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/resto-reports/backend/internal/domain/entity"
	domainerror "github.com/resto-reports/backend/internal/domain/error"
)

func TestLoadReportUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("invalid month key is rejected", func(t *testing.T) {
		uc := NewLoadReportUseCase(Stores{Local: newFakeStore()})
		_, err := uc.Execute(ctx, LoadReportInput{UserID: uuid.Nil, MonthKey: "2025-13"})
		assertReportErrorCode(t, err, domainerror.ErrCodeInvalidMonthKey)
	})

	t.Run("absent month yields the default template", func(t *testing.T) {
		local := newFakeStore()
		uc := NewLoadReportUseCase(Stores{Local: local})
		out, err := uc.Execute(ctx, LoadReportInput{UserID: uuid.Nil, MonthKey: "2025-03"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Source != SourceDefault {
			t.Errorf("expected source %s, got %s", SourceDefault, out.Source)
		}
		if out.Report.TotalExpenses() != 16200 {
			t.Errorf("expected default expenses 16200, got %v", out.Report.TotalExpenses())
		}
		if local.saveCalls != 0 {
			t.Errorf("expected no write for a pure default load, got %d", local.saveCalls)
		}
	})

	t.Run("stored document with missing defaults is healed and re-saved", func(t *testing.T) {
		remote := newFakeStore()
		partial := entity.NewReport(userID, "2025-03")
		partial.SalaryExpenses = entity.ItemMap{"Adi": 4500}
		remote.put(partial)

		uc := NewLoadReportUseCase(Stores{Remote: remote, Local: newFakeStore()})
		out, err := uc.Execute(ctx, LoadReportInput{UserID: userID, MonthKey: "2025-03"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Healed {
			t.Error("expected the load to report healing")
		}
		if out.Report.SalaryExpenses["Adi"] != 4500 {
			t.Errorf("expected stored Adi 4500 to survive, got %v", out.Report.SalaryExpenses["Adi"])
		}
		if out.Report.SalaryExpenses["Ioana"] != 4050 {
			t.Errorf("expected Ioana backfilled at 4050, got %v", out.Report.SalaryExpenses["Ioana"])
		}
		if remote.saveCalls == 0 {
			t.Error("expected the healed document to be re-persisted")
		}
		if len(out.Report.HealedKeys) == 0 {
			t.Error("expected healed keys recorded on the report")
		}
	})

	t.Run("complete stored document heals nothing", func(t *testing.T) {
		remote := newFakeStore()
		remote.put(entity.NewDefaultReport(userID, "2025-03"))

		uc := NewLoadReportUseCase(Stores{Remote: remote, Local: newFakeStore()})
		out, err := uc.Execute(ctx, LoadReportInput{UserID: userID, MonthKey: "2025-03"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Healed {
			t.Error("expected no healing for a complete document")
		}
		if out.Source != SourceRemote {
			t.Errorf("expected source %s, got %s", SourceRemote, out.Source)
		}
		if remote.saveCalls != 0 {
			t.Errorf("expected no re-save, got %d", remote.saveCalls)
		}
	})

	t.Run("remote failure falls back to the local store with a warning", func(t *testing.T) {
		remote := newFakeStore()
		remote.loadErr = errStoreDown
		local := newFakeStore()
		stored := entity.NewDefaultReport(userID, "2025-03")
		stored.SetItem(entity.CategorySalaryExpenses, "Adi", 4500, "")
		local.put(stored)

		uc := NewLoadReportUseCase(Stores{Remote: remote, Local: local})
		out, err := uc.Execute(ctx, LoadReportInput{UserID: userID, MonthKey: "2025-03"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Source != SourceLocal {
			t.Errorf("expected source %s, got %s", SourceLocal, out.Source)
		}
		if out.Warning != "remote store unavailable, showing locally saved data" {
			t.Errorf("unexpected warning %q", out.Warning)
		}
		if out.Report.SalaryExpenses["Adi"] != 4500 {
			t.Errorf("expected the local document served, got Adi %v", out.Report.SalaryExpenses["Adi"])
		}
	})

	t.Run("both tiers failing surfaces the error", func(t *testing.T) {
		remote := newFakeStore()
		remote.loadErr = errStoreDown
		local := newFakeStore()
		local.loadErr = errStoreDown

		uc := NewLoadReportUseCase(Stores{Remote: remote, Local: local})
		_, err := uc.Execute(ctx, LoadReportInput{UserID: userID, MonthKey: "2025-03"})
		if err == nil {
			t.Fatal("expected an error when both stores fail")
		}
		if !errors.Is(err, errStoreDown) {
			t.Errorf("expected the store error wrapped, got %v", err)
		}
	})

	t.Run("anonymous load never touches the remote tier", func(t *testing.T) {
		remote := newFakeStore()
		remote.loadErr = errStoreDown
		local := newFakeStore()
		local.put(entity.NewDefaultReport(uuid.Nil, "2025-03"))

		uc := NewLoadReportUseCase(Stores{Remote: remote, Local: local})
		out, err := uc.Execute(ctx, LoadReportInput{UserID: uuid.Nil, MonthKey: "2025-03"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Source != SourceLocal {
			t.Errorf("expected source %s, got %s", SourceLocal, out.Source)
		}
		if out.Warning != "" {
			t.Errorf("expected no warning for a direct local read, got %q", out.Warning)
		}
	})
}

// assertReportErrorCode fails the test unless err is a ReportError carrying
// the expected code.
func assertReportErrorCode(t *testing.T, err error, code domainerror.ReportErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	var reportErr *domainerror.ReportError
	if !errors.As(err, &reportErr) {
		t.Fatalf("expected a ReportError, got %T: %v", err, err)
	}
	if reportErr.Code != code {
		t.Errorf("expected code %s, got %s", code, reportErr.Code)
	}
}
