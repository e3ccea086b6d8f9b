// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category identifies a logical group of line items as presented to the user.
type Category string

const (
	CategoryKitchenItems        Category = "kitchenItems"
	CategoryBarItems            Category = "barItems"
	CategoryCostOfGoodsItems    Category = "costOfGoodsItems"
	CategorySalaryExpenses      Category = "salaryExpenses"
	CategoryDistributorExpenses Category = "distributorExpenses"
	CategoryUtilitiesExpenses   Category = "utilitiesExpenses"
	CategoryOperationalExpenses Category = "operationalExpenses"
	CategoryOtherExpenses       Category = "otherExpenses"
)

// StorageField identifies a physical category map on the stored report
// document. Kitchen and bar items share the revenue field and are told apart
// only by the subcategory side-map.
type StorageField string

const (
	FieldRevenueItems        StorageField = "revenueItems"
	FieldCostOfGoodsItems    StorageField = "costOfGoodsItems"
	FieldSalaryExpenses      StorageField = "salaryExpenses"
	FieldDistributorExpenses StorageField = "distributorExpenses"
	FieldUtilitiesExpenses   StorageField = "utilitiesExpenses"
	FieldOperationalExpenses StorageField = "operationalExpenses"
	FieldOtherExpenses       StorageField = "otherExpenses"
)

// StorageField maps a logical category to the physical field that stores it.
func (c Category) StorageField() StorageField {
	switch c {
	case CategoryKitchenItems, CategoryBarItems:
		return FieldRevenueItems
	case CategoryCostOfGoodsItems:
		return FieldCostOfGoodsItems
	case CategorySalaryExpenses:
		return FieldSalaryExpenses
	case CategoryDistributorExpenses:
		return FieldDistributorExpenses
	case CategoryUtilitiesExpenses:
		return FieldUtilitiesExpenses
	case CategoryOperationalExpenses:
		return FieldOperationalExpenses
	case CategoryOtherExpenses:
		return FieldOtherExpenses
	default:
		return ""
	}
}

// IsValid reports whether c is one of the known logical categories.
func (c Category) IsValid() bool {
	return c.StorageField() != ""
}

// IsRevenue reports whether the category contributes to revenue rather than expenses.
func (c Category) IsRevenue() bool {
	return c == CategoryKitchenItems || c == CategoryBarItems
}

// AllStorageFields lists every physical category map on a report document.
var AllStorageFields = []StorageField{
	FieldRevenueItems,
	FieldCostOfGoodsItems,
	FieldSalaryExpenses,
	FieldDistributorExpenses,
	FieldUtilitiesExpenses,
	FieldOperationalExpenses,
	FieldOtherExpenses,
}

// ItemMap maps a line item name to its amount in currency units.
// Amounts are non-negative by convention but not enforced.
type ItemMap map[string]float64

// Clone returns a shallow copy of the map. A nil receiver yields an empty map.
func (m ItemMap) Clone() ItemMap {
	out := make(ItemMap, len(m))
	for name, value := range m {
		out[name] = value
	}
	return out
}

// Subcategories holds the display-grouping labels attached to items,
// independent of their physical storage category.
type Subcategories struct {
	RevenueItems map[string]string
	Expenses     map[string]string
}

// Budget holds the monthly targets used for variance comparison.
type Budget struct {
	TargetRevenue  float64
	TargetExpenses float64
	TargetProfit   float64
}

// Report is one month of revenue and expense line items for a user,
// identified by (UserID, MonthKey) with MonthKey in "YYYY-MM" form.
// Totals are never stored; they are derived from the live maps.
type Report struct {
	UserID              uuid.UUID
	MonthKey            string
	RevenueItems        ItemMap
	CostOfGoodsItems    ItemMap
	SalaryExpenses      ItemMap
	DistributorExpenses ItemMap
	UtilitiesExpenses   ItemMap
	OperationalExpenses ItemMap
	OtherExpenses       ItemMap
	Subcategories       Subcategories
	Budget              *Budget
	// HealedKeys records the "field/name" keys the last default backfill had
	// to insert, making a healed document distinguishable from a fresh one.
	HealedKeys []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewReport creates an empty report for the given user and month.
func NewReport(userID uuid.UUID, monthKey string) *Report {
	now := time.Now().UTC()
	return &Report{
		UserID:              userID,
		MonthKey:            monthKey,
		RevenueItems:        ItemMap{},
		CostOfGoodsItems:    ItemMap{},
		SalaryExpenses:      ItemMap{},
		DistributorExpenses: ItemMap{},
		UtilitiesExpenses:   ItemMap{},
		OperationalExpenses: ItemMap{},
		OtherExpenses:       ItemMap{},
		Subcategories: Subcategories{
			RevenueItems: map[string]string{},
			Expenses:     map[string]string{},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewDefaultReport creates a report pre-filled with the default item
// templates for every category.
func NewDefaultReport(userID uuid.UUID, monthKey string) *Report {
	report := NewReport(userID, monthKey)
	for _, field := range AllStorageFields {
		report.SetFieldMap(field, DefaultItems(field))
	}
	for name, label := range DefaultRevenueLabels() {
		report.Subcategories.RevenueItems[name] = label
	}
	for name, label := range DefaultExpenseLabels() {
		report.Subcategories.Expenses[name] = label
	}
	return report
}

// FieldMap returns the live category map stored under the given physical field.
func (r *Report) FieldMap(field StorageField) ItemMap {
	switch field {
	case FieldRevenueItems:
		return r.RevenueItems
	case FieldCostOfGoodsItems:
		return r.CostOfGoodsItems
	case FieldSalaryExpenses:
		return r.SalaryExpenses
	case FieldDistributorExpenses:
		return r.DistributorExpenses
	case FieldUtilitiesExpenses:
		return r.UtilitiesExpenses
	case FieldOperationalExpenses:
		return r.OperationalExpenses
	case FieldOtherExpenses:
		return r.OtherExpenses
	default:
		return nil
	}
}

// SetFieldMap replaces the category map stored under the given physical field.
func (r *Report) SetFieldMap(field StorageField, items ItemMap) {
	switch field {
	case FieldRevenueItems:
		r.RevenueItems = items
	case FieldCostOfGoodsItems:
		r.CostOfGoodsItems = items
	case FieldSalaryExpenses:
		r.SalaryExpenses = items
	case FieldDistributorExpenses:
		r.DistributorExpenses = items
	case FieldUtilitiesExpenses:
		r.UtilitiesExpenses = items
	case FieldOperationalExpenses:
		r.OperationalExpenses = items
	case FieldOtherExpenses:
		r.OtherExpenses = items
	}
}

// subcategoryMap returns the side-map that tracks labels for the category.
func (r *Report) subcategoryMap(category Category) map[string]string {
	if category.IsRevenue() {
		if r.Subcategories.RevenueItems == nil {
			r.Subcategories.RevenueItems = map[string]string{}
		}
		return r.Subcategories.RevenueItems
	}
	if r.Subcategories.Expenses == nil {
		r.Subcategories.Expenses = map[string]string{}
	}
	return r.Subcategories.Expenses
}

// SubcategoryFor returns the display label tracked for an item, or the
// category-specific fallback when no label was recorded.
func (r *Report) SubcategoryFor(category Category, name string) string {
	if label, ok := r.subcategoryMap(category)[name]; ok && label != "" {
		return label
	}
	return FallbackLabel(category)
}

// SetItem inserts or overwrites an item in the category's physical map.
// An existing item with the same name loses its prior value; collisions are
// resolved by overwrite, not by error.
func (r *Report) SetItem(category Category, name string, value float64, label string) {
	field := category.StorageField()
	items := r.FieldMap(field)
	if items == nil {
		items = ItemMap{}
		r.SetFieldMap(field, items)
	}
	items[name] = value
	if label != "" {
		r.subcategoryMap(category)[name] = label
	}
	r.UpdatedAt = time.Now().UTC()
}

// RenameItem moves an item's value from oldName to newName within the
// category's physical map, carrying over any tracked subcategory label.
// It reports false and leaves the report untouched when oldName is absent.
// When newName already exists its prior value is overwritten.
func (r *Report) RenameItem(category Category, oldName, newName string) bool {
	items := r.FieldMap(category.StorageField())
	value, ok := items[oldName]
	if !ok {
		return false
	}
	delete(items, oldName)
	items[newName] = value

	labels := r.subcategoryMap(category)
	if label, ok := labels[oldName]; ok {
		delete(labels, oldName)
		labels[newName] = label
	}
	r.UpdatedAt = time.Now().UTC()
	return true
}

// DeleteItem removes an item from the category's physical map and from the
// subcategory side-map. It reports false when the item is absent. Deleting a
// default-template item does not unregister it from the template, so it
// reappears at its template value on the next load.
func (r *Report) DeleteItem(category Category, name string) bool {
	items := r.FieldMap(category.StorageField())
	if _, ok := items[name]; !ok {
		return false
	}
	delete(items, name)
	delete(r.subcategoryMap(category), name)
	r.UpdatedAt = time.Now().UTC()
	return true
}

// sumItems adds a category map with decimal arithmetic to avoid float drift.
func sumItems(items ItemMap) decimal.Decimal {
	total := decimal.Zero
	for _, value := range items {
		total = total.Add(decimal.NewFromFloat(value))
	}
	return total
}

// FieldTotal returns the sum of one physical category map.
func (r *Report) FieldTotal(field StorageField) float64 {
	return sumItems(r.FieldMap(field)).InexactFloat64()
}

// RevenueSplit returns the kitchen and bar portions of the revenue map,
// routed by subcategory label with the kitchen label as fallback.
func (r *Report) RevenueSplit() (kitchen, bar float64) {
	kitchenTotal := decimal.Zero
	barTotal := decimal.Zero
	for name, value := range r.RevenueItems {
		if r.SubcategoryFor(CategoryKitchenItems, name) == SubsectionBar {
			barTotal = barTotal.Add(decimal.NewFromFloat(value))
		} else {
			kitchenTotal = kitchenTotal.Add(decimal.NewFromFloat(value))
		}
	}
	return kitchenTotal.InexactFloat64(), barTotal.InexactFloat64()
}

// TotalRevenue returns the sum of all revenue items (kitchen and bar).
func (r *Report) TotalRevenue() float64 {
	return sumItems(r.RevenueItems).InexactFloat64()
}

// TotalExpenses returns the sum of the five expense category maps.
// Cost of goods is tracked separately and is not an operating expense here.
func (r *Report) TotalExpenses() float64 {
	total := sumItems(r.SalaryExpenses).
		Add(sumItems(r.DistributorExpenses)).
		Add(sumItems(r.UtilitiesExpenses)).
		Add(sumItems(r.OperationalExpenses)).
		Add(sumItems(r.OtherExpenses))
	return total.InexactFloat64()
}

// GrossProfit equals total revenue in the default report flow. The simple
// summary variant subtracts cost of goods instead; the two are intentionally
// not unified.
func (r *Report) GrossProfit() float64 {
	return r.TotalRevenue()
}

// NetProfit returns gross profit minus total expenses.
func (r *Report) NetProfit() float64 {
	return decimal.NewFromFloat(r.GrossProfit()).
		Sub(decimal.NewFromFloat(r.TotalExpenses())).
		InexactFloat64()
}
