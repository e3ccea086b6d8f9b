package localstore

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/resto-reports/backend/internal/domain/entity"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	store, err := NewStore(db)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

func TestStoreSaveLoad(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	userID := uuid.New()

	t.Run("round trip preserves the document", func(t *testing.T) {
		rep := entity.NewDefaultReport(userID, "2025-03")
		rep.SetItem(entity.CategorySalaryExpenses, "Adi", 4500, "")
		rep.Budget = &entity.Budget{TargetRevenue: 60000, TargetExpenses: 40000, TargetProfit: 20000}
		rep.HealedKeys = []string{"salaryExpenses/Victoria"}

		if err := store.Save(ctx, rep); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		loaded, err := store.Load(ctx, userID, "2025-03")
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if loaded == nil {
			t.Fatal("expected a stored document")
		}
		if loaded.SalaryExpenses["Adi"] != 4500 {
			t.Errorf("expected Adi at 4500, got %v", loaded.SalaryExpenses["Adi"])
		}
		if loaded.Budget == nil || loaded.Budget.TargetRevenue != 60000 {
			t.Fatalf("expected budget restored, got %+v", loaded.Budget)
		}
		if len(loaded.HealedKeys) != 1 || loaded.HealedKeys[0] != "salaryExpenses/Victoria" {
			t.Errorf("expected healed keys restored, got %v", loaded.HealedKeys)
		}
		if loaded.Subcategories.RevenueItems["Espresso"] != entity.SubsectionBar {
			t.Errorf("expected revenue labels restored, got %q", loaded.Subcategories.RevenueItems["Espresso"])
		}
		if loaded.UserID != userID {
			t.Errorf("expected the caller's user id restored, got %s", loaded.UserID)
		}
	})

	t.Run("save is an upsert keyed by month", func(t *testing.T) {
		rep := entity.NewDefaultReport(userID, "2025-03")
		rep.SetItem(entity.CategorySalaryExpenses, "Adi", 5000, "")
		if err := store.Save(ctx, rep); err != nil {
			t.Fatalf("save failed: %v", err)
		}
		loaded, err := store.Load(ctx, userID, "2025-03")
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if loaded.SalaryExpenses["Adi"] != 5000 {
			t.Errorf("expected the second save to win, got %v", loaded.SalaryExpenses["Adi"])
		}
	})

	t.Run("absent month returns nil without error", func(t *testing.T) {
		loaded, err := store.Load(ctx, userID, "2030-01")
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if loaded != nil {
			t.Errorf("expected nil for an absent month, got %+v", loaded)
		}
	})

	t.Run("anonymous load restores the recorded owner", func(t *testing.T) {
		loaded, err := store.Load(ctx, uuid.Nil, "2025-03")
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if loaded == nil {
			t.Fatal("expected a stored document")
		}
		if loaded.UserID != userID {
			t.Errorf("expected the document owner restored for an anonymous caller, got %s", loaded.UserID)
		}
	})

	t.Run("lookup ignores the user id", func(t *testing.T) {
		otherUser := uuid.New()
		loaded, err := store.Load(ctx, otherUser, "2025-03")
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if loaded == nil {
			t.Fatal("expected the single-tenant mirror to serve any caller")
		}
		if loaded.UserID != otherUser {
			t.Errorf("expected the caller's id on the entity, got %s", loaded.UserID)
		}
	})
}

func TestStoreExists(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	ok, err := store.Exists(ctx, uuid.Nil, "2025-03")
	if err != nil {
		t.Fatalf("exists failed: %v", err)
	}
	if ok {
		t.Error("expected no document yet")
	}

	if err := store.Save(ctx, entity.NewDefaultReport(uuid.Nil, "2025-03")); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	ok, err = store.Exists(ctx, uuid.Nil, "2025-03")
	if err != nil {
		t.Fatalf("exists failed: %v", err)
	}
	if !ok {
		t.Error("expected the document to be reported present")
	}
}

func TestCoerceItems(t *testing.T) {
	items := coerceItems(map[string]interface{}{
		"Adi":     4050.0,
		"Corrupt": "not a number",
		"Null":    nil,
	})
	if items["Adi"] != 4050 {
		t.Errorf("expected Adi 4050, got %v", items["Adi"])
	}
	if items["Corrupt"] != 0 {
		t.Errorf("expected non-numeric value coerced to 0, got %v", items["Corrupt"])
	}
	if items["Null"] != 0 {
		t.Errorf("expected null coerced to 0, got %v", items["Null"])
	}
}
