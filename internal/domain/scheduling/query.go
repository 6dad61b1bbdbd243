package scheduling

import (
	"sort"

	"clinic-agenda-server/internal/domain/entity"
)

// Agenda returns the appointments on the filter's calendar day, ordered
// by time ascending. Times are zero-padded HH:mm, so lexicographic
// comparison is chronological. A filter doctor id of
// entity.DoctorFilterAll keeps every doctor.
func Agenda(appointments []entity.Appointment, filter entity.AgendaFilter) []entity.Appointment {
	out := make([]entity.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.Date != filter.Date {
			continue
		}
		if filter.DoctorID != entity.DoctorFilterAll && a.DoctorID != filter.DoctorID {
			continue
		}
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})
	return out
}

// History returns the given patient's appointments, most recent date
// first. Same-date entries keep their input order. An unknown patient id
// yields an empty result, not an error.
func History(appointments []entity.Appointment, patientID string) []entity.Appointment {
	out := make([]entity.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// Stats aggregates the appointment collection for the dashboard. The
// reference day is caller-supplied (YYYY-MM-DD) so the computation stays
// deterministic. PerDoctor carries an entry for every known doctor,
// zero-count included; appointments referencing an unknown doctor still
// count toward Total and PerStatus.
func Stats(appointments []entity.Appointment, doctors []entity.Doctor, today string) entity.AgendaStats {
	stats := entity.AgendaStats{
		Total:     len(appointments),
		PerDoctor: make(map[string]int, len(doctors)),
		PerStatus: make(map[entity.AppointmentStatus]int),
	}

	for _, d := range doctors {
		stats.PerDoctor[d.ID] = 0
	}

	for _, a := range appointments {
		if a.IsCompleted() {
			stats.Completed++
		}
		if a.Date == today {
			stats.Today++
		}
		if _, known := stats.PerDoctor[a.DoctorID]; known {
			stats.PerDoctor[a.DoctorID]++
		}
		stats.PerStatus[a.Status]++
	}

	return stats
}
