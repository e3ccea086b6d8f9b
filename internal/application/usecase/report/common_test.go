package report

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/resto-reports/backend/internal/application/adapter"
	"github.com/resto-reports/backend/internal/domain/entity"
)

// fakeStore is an in-memory ReportStore keyed by (userID, monthKey).
type fakeStore struct {
	reports   map[string]*entity.Report
	saveCalls int
	loadErr   error
	saveErr   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{reports: map[string]*entity.Report{}}
}

func storeKey(userID uuid.UUID, monthKey string) string {
	return userID.String() + "|" + monthKey
}

func (s *fakeStore) Load(_ context.Context, userID uuid.UUID, monthKey string) (*entity.Report, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.reports[storeKey(userID, monthKey)], nil
}

func (s *fakeStore) Save(_ context.Context, report *entity.Report) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saveCalls++
	s.reports[storeKey(report.UserID, report.MonthKey)] = report
	return nil
}

func (s *fakeStore) Exists(_ context.Context, userID uuid.UUID, monthKey string) (bool, error) {
	_, ok := s.reports[storeKey(userID, monthKey)]
	return ok, nil
}

var _ adapter.ReportStore = (*fakeStore)(nil)

var errStoreDown = errors.New("connection refused")

// put stores a report directly, bypassing Save bookkeeping.
func (s *fakeStore) put(report *entity.Report) {
	s.reports[storeKey(report.UserID, report.MonthKey)] = report
}
