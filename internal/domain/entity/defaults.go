// Package entity defines the core business entities for the domain layer.
package entity

import "sort"

// Subsection labels used to route revenue items to their displayed group.
const (
	SubsectionKitchen = "Bucatarie"
	SubsectionBar     = "Bar"
)

// defaultKitchenItems is the starter menu for the kitchen revenue section.
var defaultKitchenItems = ItemMap{
	"Il Classico":         0,
	"Il Piccante":         0,
	"Quattro Formaggi":    0,
	"Prosciutto e Funghi": 0,
	"Calzone":             0,
	"Focaccia":            0,
	"Tiramisu":            0,
	"Platou":              0,
}

// defaultBarItems is the starter menu for the bar revenue section.
var defaultBarItems = ItemMap{
	"Espresso":        0,
	"Cappuccino":      0,
	"Limonada":        0,
	"Fresh Portocale": 0,
	"Vin Alb":         0,
	"Vin Rosu":        0,
	"Bere":            0,
	"Aperol Spritz":   0,
}

var defaultCostOfGoodsItems = ItemMap{
	"Marfa Bucatarie": 0,
	"Marfa Bar":       0,
}

var defaultSalaryExpenses = ItemMap{
	"Adi":      4050,
	"Ioana":    4050,
	"Andreea":  4050,
	"Victoria": 4050,
}

var defaultDistributorExpenses = ItemMap{
	"Metro":               0,
	"Selgros":             0,
	"Distribuitor Legume": 0,
}

var defaultUtilitiesExpenses = ItemMap{
	"Curent":      0,
	"Apa":         0,
	"Gaz":         0,
	"Internet":    0,
	"Salubritate": 0,
}

var defaultOperationalExpenses = ItemMap{
	"Chirie":        0,
	"Contabilitate": 0,
	"Marketing":     0,
}

var defaultOtherExpenses = ItemMap{
	"Diverse": 0,
}

// DefaultItems returns a copy of the default item template for a physical
// field. The revenue template is the union of the kitchen and bar menus.
func DefaultItems(field StorageField) ItemMap {
	switch field {
	case FieldRevenueItems:
		out := defaultKitchenItems.Clone()
		for name, value := range defaultBarItems {
			out[name] = value
		}
		return out
	case FieldCostOfGoodsItems:
		return defaultCostOfGoodsItems.Clone()
	case FieldSalaryExpenses:
		return defaultSalaryExpenses.Clone()
	case FieldDistributorExpenses:
		return defaultDistributorExpenses.Clone()
	case FieldUtilitiesExpenses:
		return defaultUtilitiesExpenses.Clone()
	case FieldOperationalExpenses:
		return defaultOperationalExpenses.Clone()
	case FieldOtherExpenses:
		return defaultOtherExpenses.Clone()
	default:
		return ItemMap{}
	}
}

// MergeDefaults unions the field's default template with a stored map.
// Stored values win over same-named defaults; defaults absent from storage
// are inserted at their template value. The returned slice lists the keys
// the merge added, qualified as "field/name"; a non-empty slice is the
// signal to re-persist the healed document.
func MergeDefaults(field StorageField, stored ItemMap) (ItemMap, []string) {
	merged := DefaultItems(field)
	var added []string
	for name := range merged {
		if _, ok := stored[name]; !ok {
			added = append(added, string(field)+"/"+name)
		}
	}
	sort.Strings(added)
	for name, value := range stored {
		merged[name] = value
	}
	return merged, added
}

// DefaultRevenueLabels returns the subsection label for every default
// revenue item.
func DefaultRevenueLabels() map[string]string {
	labels := make(map[string]string, len(defaultKitchenItems)+len(defaultBarItems))
	for name := range defaultKitchenItems {
		labels[name] = SubsectionKitchen
	}
	for name := range defaultBarItems {
		labels[name] = SubsectionBar
	}
	return labels
}

// DefaultExpenseLabels returns the subsection label for every default
// expense item, grouped under its category title.
func DefaultExpenseLabels() map[string]string {
	labels := map[string]string{}
	for _, category := range []Category{
		CategoryCostOfGoodsItems,
		CategorySalaryExpenses,
		CategoryDistributorExpenses,
		CategoryUtilitiesExpenses,
		CategoryOperationalExpenses,
		CategoryOtherExpenses,
	} {
		for name := range DefaultItems(category.StorageField()) {
			labels[name] = FallbackLabel(category)
		}
	}
	return labels
}

// categoryTitles are the display titles used as fallback subsection labels
// for expense categories.
var categoryTitles = map[Category]string{
	CategoryKitchenItems:        SubsectionKitchen,
	CategoryBarItems:            SubsectionBar,
	CategoryCostOfGoodsItems:    "Marfa",
	CategorySalaryExpenses:      "Salarii",
	CategoryDistributorExpenses: "Distribuitori",
	CategoryUtilitiesExpenses:   "Utilitati",
	CategoryOperationalExpenses: "Operationale",
	CategoryOtherExpenses:       "Alte Cheltuieli",
}

// FallbackLabel returns the label used when an item has no tracked
// subcategory entry.
func FallbackLabel(category Category) string {
	if title, ok := categoryTitles[category]; ok {
		return title
	}
	return string(category)
}
