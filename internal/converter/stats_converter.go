package converter

import (
	"clinic-agenda-server/internal/delivery/dto"
	"clinic-agenda-server/internal/domain/entity"
)

// StatsToResponse converts AgendaStats to the dashboard DTO. PerDoctor
// entries follow the doctor roster order so chart feeds are stable.
func StatsToResponse(stats entity.AgendaStats, doctors []entity.Doctor, date string) *dto.DashboardStatsResponse {
	perDoctor := make([]dto.DoctorCount, len(doctors))
	for i, d := range doctors {
		perDoctor[i] = dto.DoctorCount{
			DoctorID:   d.ID,
			DoctorName: d.Name,
			Count:      stats.PerDoctor[d.ID],
		}
	}

	perStatus := make(map[string]int, len(stats.PerStatus))
	for status, count := range stats.PerStatus {
		perStatus[string(status)] = count
	}

	return &dto.DashboardStatsResponse{
		Date:      date,
		Total:     stats.Total,
		Completed: stats.Completed,
		Today:     stats.Today,
		PerDoctor: perDoctor,
		PerStatus: perStatus,
	}
}
