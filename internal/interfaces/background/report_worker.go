package background

import (
	"context"
	"log"

	"store-uptime/internal/application"
)

// ReportWorker executes report generation off the request path. Triggers
// enqueue a claimed report id; the worker runs one generation at a time.
type ReportWorker struct {
	service *application.ReportService
	jobs    chan string
	stop    chan struct{}
	done    chan struct{}
}

// NewReportWorker creates a new report worker
func NewReportWorker(service *application.ReportService) *ReportWorker {
	return &ReportWorker{
		service: service,
		// The generation sentinel admits one run at a time, so a single
		// slot is enough.
		jobs: make(chan string, 1),
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
}

// Enqueue implements application.ReportRunner
func (w *ReportWorker) Enqueue(reportID string) {
	w.jobs <- reportID
}

// Start begins the generation loop
func (w *ReportWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

// Stop gracefully stops the worker
func (w *ReportWorker) Stop() {
	close(w.stop)
	<-w.done
}

func (w *ReportWorker) run(ctx context.Context) {
	defer close(w.done)

	for {
		select {
		case reportID := <-w.jobs:
			w.generate(ctx, reportID)
		case <-w.stop:
			log.Println("Report worker stopping...")
			return
		case <-ctx.Done():
			log.Println("Report worker context cancelled...")
			return
		}
	}
}

func (w *ReportWorker) generate(ctx context.Context, reportID string) {
	log.Printf("Generating report %s", reportID)
	if err := w.service.Generate(ctx, reportID); err != nil {
		log.Printf("Report generation %s failed: %v", reportID, err)
		return
	}
	log.Printf("Report %s complete", reportID)
}
