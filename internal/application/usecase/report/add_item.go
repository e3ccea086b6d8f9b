// Package report contains the month-keyed report reconciliation use cases.
package report

import (
	"context"

	"github.com/google/uuid"

	"github.com/resto-reports/backend/internal/domain/entity"
)

// AddItemInput represents the input for adding a line item to a category.
// Subsection is optional; when empty the category's fallback label applies
// at display time.
type AddItemInput struct {
	UserID       uuid.UUID
	MonthKey     string
	Category     entity.Category
	ItemName     string
	InitialValue float64
	Subsection   string
}

// AddItemOutput represents the output of adding a line item.
type AddItemOutput struct {
	Report *entity.Report
	// Created reports whether the month had no stored document and one was
	// built from defaults before the first write.
	Created bool
}

// AddItemUseCase handles line item creation.
type AddItemUseCase struct {
	stores Stores
}

// NewAddItemUseCase creates a new AddItemUseCase instance.
func NewAddItemUseCase(stores Stores) *AddItemUseCase {
	return &AddItemUseCase{
		stores: stores,
	}
}

// Execute performs the item insertion. When no document exists for the month
// one is created from category defaults and the new item is inserted before
// the very first write, avoiding a separate create-then-update round trip.
// An item whose name collides with an existing key silently overwrites its
// value: collision overwrite is the documented policy, not an error.
func (uc *AddItemUseCase) Execute(ctx context.Context, input AddItemInput) (*AddItemOutput, error) {
	if err := validateItemTarget(input.MonthKey, input.Category, input.ItemName); err != nil {
		return nil, err
	}

	rep, created, err := uc.stores.loadForMutation(ctx, input.UserID, input.MonthKey)
	if err != nil {
		return nil, err
	}

	rep.SetItem(input.Category, input.ItemName, input.InitialValue, input.Subsection)

	if err := uc.stores.persist(ctx, input.UserID, rep); err != nil {
		return nil, err
	}

	return &AddItemOutput{
		Report:  rep,
		Created: created,
	}, nil
}
