package http

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"store-uptime/internal/application"
	"store-uptime/internal/domain"

	"github.com/go-chi/chi/v5"
)

type reportResponse struct {
	Message  string `json:"message"`
	ReportID string `json:"report_id"`
}

type statusResponse struct {
	ReportID string `json:"report_id"`
	Status   string `json:"status"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// csvHeader matches the report row field names, in report column order.
var csvHeader = []string{
	"store_id",
	"uptime_last_hour", "downtime_last_hour",
	"uptime_last_day", "downtime_last_day",
	"uptime_last_week", "downtime_last_week",
}

// Helper functions
func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, errorResponse{Message: message})
}

// @Summary Trigger report generation
// @Description Start a new uptime report run; rejected while one is running
// @Tags reports
// @Produce json
// @Success 200 {object} reportResponse
// @Success 202 {object} reportResponse
// @Failure 409 {object} reportResponse
// @Router /reports [post]
func (s *Server) apiTriggerReport(w http.ResponseWriter, r *http.Request) {
	result, err := s.reportService.TriggerReport(r.Context())

	var inProgress *application.InProgressError
	if errors.As(err, &inProgress) {
		s.respondJSON(w, http.StatusConflict, reportResponse{
			Message:  "Running",
			ReportID: inProgress.ReportID,
		})
		return
	}
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if result.Completed {
		s.respondJSON(w, http.StatusOK, reportResponse{Message: "Complete", ReportID: result.ReportID})
		return
	}
	s.respondJSON(w, http.StatusAccepted, reportResponse{Message: "Running", ReportID: result.ReportID})
}

// @Summary Fetch a completed report
// @Description Download a completed report as CSV; rejected while any run is active
// @Tags reports
// @Produce text/csv
// @Param id path string true "Report ID"
// @Success 200 {string} string "CSV report"
// @Failure 404 {object} errorResponse
// @Failure 409 {object} reportResponse
// @Router /reports/{id} [get]
func (s *Server) apiGetReport(w http.ResponseWriter, r *http.Request) {
	reportID := chi.URLParam(r, "id")

	report, err := s.reportService.GetReport(r.Context(), reportID)

	var inProgress *application.InProgressError
	if errors.As(err, &inProgress) {
		s.respondJSON(w, http.StatusConflict, reportResponse{
			Message:  "Running",
			ReportID: inProgress.ReportID,
		})
		return
	}
	if errors.Is(err, domain.ErrReportNotFound) {
		s.respondError(w, http.StatusNotFound, "invalid report id")
		return
	}
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=report-%s.csv", report.ID))

	writer := csv.NewWriter(w)
	writer.Write(csvHeader)
	for _, row := range report.Rows {
		writer.Write([]string{
			row.StoreID,
			formatMetric(row.UptimeLastHour), formatMetric(row.DowntimeLastHour),
			formatMetric(row.UptimeLastDay), formatMetric(row.DowntimeLastDay),
			formatMetric(row.UptimeLastWeek), formatMetric(row.DowntimeLastWeek),
		})
	}
	writer.Flush()
}

// @Summary Poll report generation status
// @Description Report whether the given report id is running or complete
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} statusResponse
// @Failure 404 {object} errorResponse
// @Router /reports/{id}/status [get]
func (s *Server) apiGetReportStatus(w http.ResponseWriter, r *http.Request) {
	reportID := chi.URLParam(r, "id")

	status, err := s.reportService.ReportStatus(r.Context(), reportID)
	if errors.Is(err, domain.ErrReportNotFound) {
		s.respondError(w, http.StatusNotFound, "invalid report id")
		return
	}
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, statusResponse{ReportID: reportID, Status: string(status)})
}

func formatMetric(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
