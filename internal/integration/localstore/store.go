// Package localstore implements the local fallback tier of the report
// storage port on an embedded SQLite database. It mirrors documents written
// to the remote store and serves reads when no user is authenticated or the
// remote store is unreachable.
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/resto-reports/backend/internal/application/adapter"
	"github.com/resto-reports/backend/internal/domain/entity"
)

// localReportModel represents the local_reports table. The whole report is
// kept as one JSON document per month key; the local tier is a single-tenant
// mirror, so the user is part of the document, not the key.
type localReportModel struct {
	MonthKey  string    `gorm:"type:varchar(7);primaryKey"`
	Document  string    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the localReportModel.
func (localReportModel) TableName() string {
	return "local_reports"
}

// reportDoc is the stored document shape, camelCase like the API payloads.
type reportDoc struct {
	UserID              string                 `json:"userId,omitempty"`
	RevenueItems        map[string]interface{} `json:"revenueItems"`
	CostOfGoodsItems    map[string]interface{} `json:"costOfGoodsItems"`
	SalaryExpenses      map[string]interface{} `json:"salaryExpenses"`
	DistributorExpenses map[string]interface{} `json:"distributorExpenses"`
	UtilitiesExpenses   map[string]interface{} `json:"utilitiesExpenses"`
	OperationalExpenses map[string]interface{} `json:"operationalExpenses"`
	OtherExpenses       map[string]interface{} `json:"otherExpenses"`
	Subcategories       subcategoriesDoc       `json:"subcategories"`
	Budget              *budgetDoc             `json:"budget,omitempty"`
	HealedKeys          []string               `json:"healedKeys,omitempty"`
	CreatedAt           time.Time              `json:"createdAt"`
}

type subcategoriesDoc struct {
	RevenueItems map[string]string `json:"revenueItems"`
	Expenses     map[string]string `json:"expenses"`
}

type budgetDoc struct {
	TargetRevenue  float64 `json:"targetRevenue"`
	TargetExpenses float64 `json:"targetExpenses"`
	TargetProfit   float64 `json:"targetProfit"`
}

// Store implements adapter.ReportStore on an embedded SQLite database.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the local fallback database at path and migrates
// its schema. Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}
	if err := db.AutoMigrate(&localReportModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate local store: %w", err)
	}
	slog.Info("Local fallback store opened", "path", path)
	return &Store{db: db}, nil
}

// NewStore wraps an existing GORM connection, used by tests.
func NewStore(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&localReportModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate local store: %w", err)
	}
	return &Store{db: db}, nil
}

// coerceItems converts a decoded JSON map into an ItemMap, coercing
// non-numeric values to 0.
func coerceItems(doc map[string]interface{}) entity.ItemMap {
	items := entity.ItemMap{}
	for name, value := range doc {
		if amount, ok := value.(float64); ok {
			items[name] = amount
		} else {
			items[name] = 0
		}
	}
	return items
}

func toDocMap(items entity.ItemMap) map[string]interface{} {
	doc := make(map[string]interface{}, len(items))
	for name, value := range items {
		doc[name] = value
	}
	return doc
}

// Load retrieves the locally stored report for monthKey. The userID is not
// part of the lookup key; an authenticated caller's ID is restored onto the
// returned entity, while an anonymous caller gets the owner recorded in the
// document, so a mirrored report can be re-saved remotely unchanged.
func (s *Store) Load(ctx context.Context, userID uuid.UUID, monthKey string) (*entity.Report, error) {
	var reportModel localReportModel
	result := s.db.WithContext(ctx).
		Where("month_key = ?", monthKey).
		First(&reportModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	var doc reportDoc
	if err := json.Unmarshal([]byte(reportModel.Document), &doc); err != nil {
		return nil, fmt.Errorf("failed to decode local report document: %w", err)
	}

	rep := entity.NewReport(userID, monthKey)
	if userID == uuid.Nil && doc.UserID != "" {
		if ownerID, parseErr := uuid.Parse(doc.UserID); parseErr == nil {
			rep.UserID = ownerID
		}
	}
	rep.RevenueItems = coerceItems(doc.RevenueItems)
	rep.CostOfGoodsItems = coerceItems(doc.CostOfGoodsItems)
	rep.SalaryExpenses = coerceItems(doc.SalaryExpenses)
	rep.DistributorExpenses = coerceItems(doc.DistributorExpenses)
	rep.UtilitiesExpenses = coerceItems(doc.UtilitiesExpenses)
	rep.OperationalExpenses = coerceItems(doc.OperationalExpenses)
	rep.OtherExpenses = coerceItems(doc.OtherExpenses)
	if doc.Subcategories.RevenueItems != nil {
		rep.Subcategories.RevenueItems = doc.Subcategories.RevenueItems
	}
	if doc.Subcategories.Expenses != nil {
		rep.Subcategories.Expenses = doc.Subcategories.Expenses
	}
	if doc.Budget != nil {
		rep.Budget = &entity.Budget{
			TargetRevenue:  doc.Budget.TargetRevenue,
			TargetExpenses: doc.Budget.TargetExpenses,
			TargetProfit:   doc.Budget.TargetProfit,
		}
	}
	rep.HealedKeys = doc.HealedKeys
	if !doc.CreatedAt.IsZero() {
		rep.CreatedAt = doc.CreatedAt
	}
	rep.UpdatedAt = reportModel.UpdatedAt
	return rep, nil
}

// Save upserts the document under its month key.
func (s *Store) Save(ctx context.Context, rep *entity.Report) error {
	doc := reportDoc{
		RevenueItems:        toDocMap(rep.RevenueItems),
		CostOfGoodsItems:    toDocMap(rep.CostOfGoodsItems),
		SalaryExpenses:      toDocMap(rep.SalaryExpenses),
		DistributorExpenses: toDocMap(rep.DistributorExpenses),
		UtilitiesExpenses:   toDocMap(rep.UtilitiesExpenses),
		OperationalExpenses: toDocMap(rep.OperationalExpenses),
		OtherExpenses:       toDocMap(rep.OtherExpenses),
		Subcategories: subcategoriesDoc{
			RevenueItems: rep.Subcategories.RevenueItems,
			Expenses:     rep.Subcategories.Expenses,
		},
		HealedKeys: rep.HealedKeys,
		CreatedAt:  rep.CreatedAt,
	}
	if rep.UserID != uuid.Nil {
		doc.UserID = rep.UserID.String()
	}
	if rep.Budget != nil {
		doc.Budget = &budgetDoc{
			TargetRevenue:  rep.Budget.TargetRevenue,
			TargetExpenses: rep.Budget.TargetExpenses,
			TargetProfit:   rep.Budget.TargetProfit,
		}
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode local report document: %w", err)
	}

	reportModel := localReportModel{
		MonthKey:  rep.MonthKey,
		Document:  string(data),
		UpdatedAt: time.Now().UTC(),
	}
	return s.db.WithContext(ctx).Save(&reportModel).Error
}

// Exists reports whether a document is stored for monthKey.
func (s *Store) Exists(ctx context.Context, _ uuid.UUID, monthKey string) (bool, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&localReportModel{}).
		Where("month_key = ?", monthKey).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// interface guard
var _ adapter.ReportStore = (*Store)(nil)
