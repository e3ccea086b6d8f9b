package entity

import (
	"testing"

	"github.com/google/uuid"
)

func TestCategoryStorageField(t *testing.T) {
	t.Run("kitchen and bar share the revenue field", func(t *testing.T) {
		if CategoryKitchenItems.StorageField() != FieldRevenueItems {
			t.Errorf("expected kitchenItems to map to %s, got %s", FieldRevenueItems, CategoryKitchenItems.StorageField())
		}
		if CategoryBarItems.StorageField() != FieldRevenueItems {
			t.Errorf("expected barItems to map to %s, got %s", FieldRevenueItems, CategoryBarItems.StorageField())
		}
	})

	t.Run("expense categories map onto themselves", func(t *testing.T) {
		cases := map[Category]StorageField{
			CategoryCostOfGoodsItems:    FieldCostOfGoodsItems,
			CategorySalaryExpenses:      FieldSalaryExpenses,
			CategoryDistributorExpenses: FieldDistributorExpenses,
			CategoryUtilitiesExpenses:   FieldUtilitiesExpenses,
			CategoryOperationalExpenses: FieldOperationalExpenses,
			CategoryOtherExpenses:       FieldOtherExpenses,
		}
		for category, field := range cases {
			if got := category.StorageField(); got != field {
				t.Errorf("expected %s to map to %s, got %s", category, field, got)
			}
		}
	})

	t.Run("unknown category is invalid", func(t *testing.T) {
		if Category("merchandising").IsValid() {
			t.Error("expected merchandising to be invalid")
		}
		if !CategorySalaryExpenses.IsValid() {
			t.Error("expected salaryExpenses to be valid")
		}
	})
}

func TestNewDefaultReport(t *testing.T) {
	report := NewDefaultReport(uuid.Nil, "2025-03")

	t.Run("default totals", func(t *testing.T) {
		if got := report.TotalRevenue(); got != 0 {
			t.Errorf("expected default revenue 0, got %v", got)
		}
		if got := report.TotalExpenses(); got != 16200 {
			t.Errorf("expected default expenses 16200, got %v", got)
		}
		if got := report.NetProfit(); got != -16200 {
			t.Errorf("expected default net profit -16200, got %v", got)
		}
	})

	t.Run("salary defaults present", func(t *testing.T) {
		for _, name := range []string{"Adi", "Ioana", "Andreea", "Victoria"} {
			if value, ok := report.SalaryExpenses[name]; !ok || value != 4050 {
				t.Errorf("expected default salary %s of 4050, got %v (present=%v)", name, value, ok)
			}
		}
	})

	t.Run("revenue labels route items to their subsection", func(t *testing.T) {
		if got := report.SubcategoryFor(CategoryKitchenItems, "Espresso"); got != SubsectionBar {
			t.Errorf("expected Espresso routed to %s, got %s", SubsectionBar, got)
		}
		if got := report.SubcategoryFor(CategoryKitchenItems, "Il Classico"); got != SubsectionKitchen {
			t.Errorf("expected Il Classico routed to %s, got %s", SubsectionKitchen, got)
		}
	})
}

func TestReportSetItem(t *testing.T) {
	t.Run("updating a salary moves the expense total", func(t *testing.T) {
		report := NewDefaultReport(uuid.Nil, "2025-03")
		report.SetItem(CategorySalaryExpenses, "Adi", 4500, "")
		if got := report.TotalExpenses(); got != 16650 {
			t.Errorf("expected expenses 16650 after raise, got %v", got)
		}
	})

	t.Run("same name overwrites instead of erroring", func(t *testing.T) {
		report := NewReport(uuid.Nil, "2025-03")
		report.SetItem(CategoryBarItems, "Espresso", 100, SubsectionBar)
		report.SetItem(CategoryBarItems, "Espresso", 250, SubsectionBar)
		if got := report.RevenueItems["Espresso"]; got != 250 {
			t.Errorf("expected overwrite to 250, got %v", got)
		}
		if len(report.RevenueItems) != 1 {
			t.Errorf("expected a single revenue item, got %d", len(report.RevenueItems))
		}
	})

	t.Run("kitchen and bar items land in the same physical map", func(t *testing.T) {
		report := NewReport(uuid.Nil, "2025-03")
		report.SetItem(CategoryKitchenItems, "Pizza Speciale", 120, SubsectionKitchen)
		report.SetItem(CategoryBarItems, "Negroni", 45, SubsectionBar)
		if len(report.RevenueItems) != 2 {
			t.Fatalf("expected 2 revenue items, got %d", len(report.RevenueItems))
		}
		kitchen, bar := report.RevenueSplit()
		if kitchen != 120 {
			t.Errorf("expected kitchen split 120, got %v", kitchen)
		}
		if bar != 45 {
			t.Errorf("expected bar split 45, got %v", bar)
		}
	})

	t.Run("unlabeled revenue item falls back to the kitchen side", func(t *testing.T) {
		report := NewReport(uuid.Nil, "2025-03")
		report.SetItem(CategoryKitchenItems, "Paste", 80, "")
		kitchen, bar := report.RevenueSplit()
		if kitchen != 80 || bar != 0 {
			t.Errorf("expected kitchen 80 / bar 0, got %v / %v", kitchen, bar)
		}
	})
}

func TestReportRenameItem(t *testing.T) {
	t.Run("carries value and label to the new name", func(t *testing.T) {
		report := NewDefaultReport(uuid.Nil, "2025-03")
		if !report.RenameItem(CategoryBarItems, "Espresso", "Espresso Dublu") {
			t.Fatal("expected rename to succeed")
		}
		if _, ok := report.RevenueItems["Espresso"]; ok {
			t.Error("expected old name to be gone")
		}
		if _, ok := report.RevenueItems["Espresso Dublu"]; !ok {
			t.Error("expected new name to be present")
		}
		if got := report.SubcategoryFor(CategoryBarItems, "Espresso Dublu"); got != SubsectionBar {
			t.Errorf("expected label %s carried over, got %s", SubsectionBar, got)
		}
	})

	t.Run("missing item reports false and leaves the report unchanged", func(t *testing.T) {
		report := NewDefaultReport(uuid.Nil, "2025-03")
		before := len(report.RevenueItems)
		if report.RenameItem(CategoryKitchenItems, "Nope", "Still Nope") {
			t.Error("expected rename of a missing item to fail")
		}
		if len(report.RevenueItems) != before {
			t.Errorf("expected map size unchanged, got %d want %d", len(report.RevenueItems), before)
		}
	})

	t.Run("renaming onto an existing name overwrites it", func(t *testing.T) {
		report := NewReport(uuid.Nil, "2025-03")
		report.SetItem(CategorySalaryExpenses, "Adi", 4050, "")
		report.SetItem(CategorySalaryExpenses, "Ioana", 4200, "")
		if !report.RenameItem(CategorySalaryExpenses, "Ioana", "Adi") {
			t.Fatal("expected rename to succeed")
		}
		if got := report.SalaryExpenses["Adi"]; got != 4200 {
			t.Errorf("expected Adi overwritten to 4200, got %v", got)
		}
		if len(report.SalaryExpenses) != 1 {
			t.Errorf("expected a single salary item, got %d", len(report.SalaryExpenses))
		}
	})
}

func TestReportDeleteItem(t *testing.T) {
	t.Run("removes the item and its label", func(t *testing.T) {
		report := NewDefaultReport(uuid.Nil, "2025-03")
		if !report.DeleteItem(CategoryBarItems, "Espresso") {
			t.Fatal("expected delete to succeed")
		}
		if _, ok := report.RevenueItems["Espresso"]; ok {
			t.Error("expected item removed from the revenue map")
		}
		if _, ok := report.Subcategories.RevenueItems["Espresso"]; ok {
			t.Error("expected label removed from the side-map")
		}
	})

	t.Run("missing item reports false", func(t *testing.T) {
		report := NewReport(uuid.Nil, "2025-03")
		if report.DeleteItem(CategoryOtherExpenses, "Nothing") {
			t.Error("expected delete of a missing item to fail")
		}
	})
}

func TestMergeDefaults(t *testing.T) {
	t.Run("stored values win over defaults", func(t *testing.T) {
		merged, added := MergeDefaults(FieldSalaryExpenses, ItemMap{"Adi": 4500})
		if merged["Adi"] != 4500 {
			t.Errorf("expected stored Adi 4500 to win, got %v", merged["Adi"])
		}
		if merged["Ioana"] != 4050 {
			t.Errorf("expected template Ioana 4050 backfilled, got %v", merged["Ioana"])
		}
		want := []string{
			"salaryExpenses/Andreea",
			"salaryExpenses/Ioana",
			"salaryExpenses/Victoria",
		}
		if len(added) != len(want) {
			t.Fatalf("expected %d healed keys, got %d: %v", len(want), len(added), added)
		}
		for i, key := range want {
			if added[i] != key {
				t.Errorf("expected healed key %q at %d, got %q", key, i, added[i])
			}
		}
	})

	t.Run("deleted default item resurrects at its template value", func(t *testing.T) {
		report := NewDefaultReport(uuid.Nil, "2025-03")
		report.DeleteItem(CategorySalaryExpenses, "Victoria")
		merged, added := MergeDefaults(FieldSalaryExpenses, report.SalaryExpenses)
		if merged["Victoria"] != 4050 {
			t.Errorf("expected Victoria back at 4050, got %v", merged["Victoria"])
		}
		if len(added) != 1 || added[0] != "salaryExpenses/Victoria" {
			t.Errorf("expected healed key salaryExpenses/Victoria, got %v", added)
		}
	})

	t.Run("complete map heals nothing", func(t *testing.T) {
		merged, added := MergeDefaults(FieldSalaryExpenses, DefaultItems(FieldSalaryExpenses))
		if len(added) != 0 {
			t.Errorf("expected no healed keys, got %v", added)
		}
		if len(merged) != 4 {
			t.Errorf("expected 4 salary entries, got %d", len(merged))
		}
	})

	t.Run("extra stored items survive the merge", func(t *testing.T) {
		merged, _ := MergeDefaults(FieldOtherExpenses, ItemMap{"Reparatii": 500})
		if merged["Reparatii"] != 500 {
			t.Errorf("expected custom item preserved, got %v", merged["Reparatii"])
		}
		if merged["Diverse"] != 0 {
			t.Errorf("expected template Diverse backfilled, got %v", merged["Diverse"])
		}
	})
}

func TestItemMapClone(t *testing.T) {
	t.Run("nil receiver yields an empty map", func(t *testing.T) {
		var m ItemMap
		clone := m.Clone()
		if clone == nil || len(clone) != 0 {
			t.Errorf("expected empty map, got %v", clone)
		}
	})

	t.Run("mutating the clone leaves the original alone", func(t *testing.T) {
		original := ItemMap{"Adi": 4050}
		clone := original.Clone()
		clone["Adi"] = 9999
		if original["Adi"] != 4050 {
			t.Errorf("expected original untouched, got %v", original["Adi"])
		}
	})
}
