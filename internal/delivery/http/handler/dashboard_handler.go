package handler

import (
	"net/http"
	"time"

	"clinic-agenda-server/internal/usecase"
	"clinic-agenda-server/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
	}
}

// GetStats returns aggregate appointment counts. The reference day
// defaults to the server's today and is passed down explicitly so the
// aggregation stays deterministic.
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	stats, err := h.dashboardUsecase.GetStats(r.Context(), date)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to get stats")
		}
		return
	}

	response.Success(w, http.StatusOK, "Stats retrieved successfully", stats)
}
