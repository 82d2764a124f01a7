package application

import (
	"context"

	"store-uptime/internal/domain"
)

// MockStoreStatusRepository is a mock implementation of domain.StoreStatusRepository
type MockStoreStatusRepository struct {
	Observations   map[string][]domain.PollObservation
	StoreIDOrder   []string
	GetStoreIDsFunc func(ctx context.Context) ([]string, error)
	GetByStoreIDFunc func(ctx context.Context, storeID string) ([]domain.PollObservation, error)
}

func NewMockStoreStatusRepository() *MockStoreStatusRepository {
	return &MockStoreStatusRepository{
		Observations: make(map[string][]domain.PollObservation),
	}
}

func (m *MockStoreStatusRepository) GetStoreIDs(ctx context.Context) ([]string, error) {
	if m.GetStoreIDsFunc != nil {
		return m.GetStoreIDsFunc(ctx)
	}
	return m.StoreIDOrder, nil
}

func (m *MockStoreStatusRepository) GetByStoreID(ctx context.Context, storeID string) ([]domain.PollObservation, error) {
	if m.GetByStoreIDFunc != nil {
		return m.GetByStoreIDFunc(ctx, storeID)
	}
	return m.Observations[storeID], nil
}

func (m *MockStoreStatusRepository) Insert(ctx context.Context, obs domain.PollObservation) error {
	if _, seen := m.Observations[obs.StoreID]; !seen {
		m.StoreIDOrder = append(m.StoreIDOrder, obs.StoreID)
	}
	m.Observations[obs.StoreID] = append(m.Observations[obs.StoreID], obs)
	return nil
}

// MockTimezoneRepository is a mock implementation of domain.TimezoneRepository
type MockTimezoneRepository struct {
	Zones            map[string]string
	GetByStoreIDFunc func(ctx context.Context, storeID string) (string, error)
}

func NewMockTimezoneRepository() *MockTimezoneRepository {
	return &MockTimezoneRepository{Zones: make(map[string]string)}
}

func (m *MockTimezoneRepository) GetByStoreID(ctx context.Context, storeID string) (string, error) {
	if m.GetByStoreIDFunc != nil {
		return m.GetByStoreIDFunc(ctx, storeID)
	}
	return m.Zones[storeID], nil
}

func (m *MockTimezoneRepository) Upsert(ctx context.Context, storeID, timezone string) error {
	m.Zones[storeID] = timezone
	return nil
}

// MockBusinessHoursRepository is a mock implementation of domain.BusinessHoursRepository
type MockBusinessHoursRepository struct {
	Records          map[string][]domain.HoursRecord
	GetByStoreIDFunc func(ctx context.Context, storeID string) ([]domain.HoursRecord, error)
}

func NewMockBusinessHoursRepository() *MockBusinessHoursRepository {
	return &MockBusinessHoursRepository{Records: make(map[string][]domain.HoursRecord)}
}

func (m *MockBusinessHoursRepository) GetByStoreID(ctx context.Context, storeID string) ([]domain.HoursRecord, error) {
	if m.GetByStoreIDFunc != nil {
		return m.GetByStoreIDFunc(ctx, storeID)
	}
	return m.Records[storeID], nil
}

func (m *MockBusinessHoursRepository) Insert(ctx context.Context, storeID string, rec domain.HoursRecord) error {
	m.Records[storeID] = append(m.Records[storeID], rec)
	return nil
}

// MockReportRepository is a mock implementation of domain.ReportRepository
type MockReportRepository struct {
	Reports   map[string]*domain.Report
	State     domain.GenerationState
	SaveFunc  func(ctx context.Context, report *domain.Report) error
	StartFunc func(ctx context.Context, reportID string) (bool, string, error)
}

func NewMockReportRepository() *MockReportRepository {
	return &MockReportRepository{
		Reports: make(map[string]*domain.Report),
		State:   domain.GenerationState{Status: domain.JobComplete},
	}
}

func (m *MockReportRepository) Save(ctx context.Context, report *domain.Report) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, report)
	}
	m.Reports[report.ID] = report
	return nil
}

func (m *MockReportRepository) GetByID(ctx context.Context, id string) (*domain.Report, error) {
	return m.Reports[id], nil
}

func (m *MockReportRepository) TryStartGeneration(ctx context.Context, reportID string) (bool, string, error) {
	if m.StartFunc != nil {
		return m.StartFunc(ctx, reportID)
	}
	if m.State.IsRunning() {
		return false, m.State.ReportID, nil
	}
	m.State = domain.GenerationState{Status: domain.JobRunning, ReportID: reportID}
	return true, reportID, nil
}

func (m *MockReportRepository) FinishGeneration(ctx context.Context) error {
	m.State.Status = domain.JobComplete
	return nil
}

func (m *MockReportRepository) GetGenerationState(ctx context.Context) (domain.GenerationState, error) {
	return m.State, nil
}
