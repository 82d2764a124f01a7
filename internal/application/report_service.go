package application

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"store-uptime/internal/domain"
)

// InProgressError is returned when a report generation is already running.
// It carries the identifier of the in-flight run.
type InProgressError struct {
	ReportID string
}

func (e *InProgressError) Error() string {
	return fmt.Sprintf("report generation already running: %s", e.ReportID)
}

// ReportRunner executes report generation out of band. The HTTP trigger
// enqueues onto it instead of blocking the request.
type ReportRunner interface {
	Enqueue(reportID string)
}

// TriggerResult describes the outcome of a trigger call.
type TriggerResult struct {
	ReportID  string
	Completed bool // true when generation ran synchronously to completion
}

// ReportService orchestrates report generation and retrieval, gated by the
// system-wide generation sentinel.
type ReportService struct {
	reportRepo domain.ReportRepository
	uptime     *UptimeService
	runner     ReportRunner
	nowFunc    func() time.Time
}

// NewReportService creates a new ReportService
func NewReportService(reportRepo domain.ReportRepository, uptime *UptimeService) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		uptime:     uptime,
		nowFunc:    time.Now,
	}
}

// SetRunner wires a background runner. Without one, TriggerReport generates
// synchronously and blocks the caller until the report is persisted.
func (s *ReportService) SetRunner(runner ReportRunner) {
	s.runner = runner
}

// TriggerReport starts a new generation run. The sentinel transition is a
// single conditional update, so two concurrent triggers can never both
// start; the loser receives an InProgressError naming the active run.
func (s *ReportService) TriggerReport(ctx context.Context) (*TriggerResult, error) {
	reportID := uuid.NewString()

	started, runningID, err := s.reportRepo.TryStartGeneration(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to start generation: %w", err)
	}
	if !started {
		return nil, &InProgressError{ReportID: runningID}
	}

	if s.runner != nil {
		s.runner.Enqueue(reportID)
		return &TriggerResult{ReportID: reportID}, nil
	}

	if err := s.Generate(ctx, reportID); err != nil {
		return nil, err
	}
	return &TriggerResult{ReportID: reportID, Completed: true}, nil
}

// Generate runs the pipeline for every known store, strictly sequentially,
// and persists the finished report. A failure on any store loses the whole
// run; the sentinel is returned to complete either way so the system cannot
// stay wedged in running.
func (s *ReportService) Generate(ctx context.Context, reportID string) error {
	defer func() {
		if err := s.reportRepo.FinishGeneration(ctx); err != nil {
			log.Printf("Failed to finish generation %s: %v", reportID, err)
		}
	}()

	now := s.nowFunc()

	storeIDs, err := s.uptime.StoreIDs(ctx)
	if err != nil {
		return err
	}

	report := domain.NewReport(reportID)
	report.GeneratedAt = now

	for _, storeID := range storeIDs {
		row, err := s.uptime.StoreMetrics(ctx, storeID, now)
		if err != nil {
			return fmt.Errorf("failed to process store %s: %w", storeID, err)
		}
		report.AddRow(row)
	}

	if err := s.reportRepo.Save(ctx, report); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// GetReport retrieves a completed report. Any in-flight generation rejects
// retrieval with an InProgressError, even for an unrelated completed
// identifier; an unknown identifier yields domain.ErrReportNotFound.
func (s *ReportService) GetReport(ctx context.Context, reportID string) (*domain.Report, error) {
	state, err := s.reportRepo.GetGenerationState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get generation state: %w", err)
	}
	if state.IsRunning() {
		return nil, &InProgressError{ReportID: state.ReportID}
	}

	report, err := s.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	if report == nil {
		return nil, domain.ErrReportNotFound
	}
	return report, nil
}

// ReportStatus reports "running" while the given identifier is the active
// run, "complete" once the report is persisted, and ErrReportNotFound
// otherwise.
func (s *ReportService) ReportStatus(ctx context.Context, reportID string) (domain.JobStatus, error) {
	state, err := s.reportRepo.GetGenerationState(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get generation state: %w", err)
	}
	if state.IsRunning() && state.ReportID == reportID {
		return domain.JobRunning, nil
	}

	report, err := s.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		return "", fmt.Errorf("failed to get report: %w", err)
	}
	if report == nil {
		return "", domain.ErrReportNotFound
	}
	return domain.JobComplete, nil
}
