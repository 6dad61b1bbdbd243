package scheduling

import "clinic-agenda-server/internal/domain/entity"

// UpsertAppointment creates or updates an appointment.
//
// With an existing appointment, its entry is replaced in place (matched
// by id, position preserved) with every field except the id overwritten
// from the form and the resolved patient id. Without one, a new
// appointment is appended under a fresh id.
//
// The returned collection is one element longer when creating and the
// same length when updating; no other entry is altered.
func UpsertAppointment(existing *entity.Appointment, form AppointmentForm, patientID string, appointments []entity.Appointment) []entity.Appointment {
	if existing != nil {
		out := make([]entity.Appointment, len(appointments))
		copy(out, appointments)
		for i := range out {
			if out[i].ID == existing.ID {
				out[i] = entity.Appointment{
					ID:        existing.ID,
					PatientID: patientID,
					DoctorID:  form.DoctorID,
					Date:      form.Date,
					Time:      form.Time,
					Reason:    form.Reason,
					Status:    form.Status,
				}
			}
		}
		return out
	}

	created := entity.Appointment{
		ID:        newID(),
		PatientID: patientID,
		DoctorID:  form.DoctorID,
		Date:      form.Date,
		Time:      form.Time,
		Reason:    form.Reason,
		Status:    form.Status,
	}

	out := make([]entity.Appointment, len(appointments), len(appointments)+1)
	copy(out, appointments)
	return append(out, created)
}

// RemoveAppointment removes the appointment with the given id. A miss
// returns an equivalent collection unchanged; removal is idempotent and
// never errors.
func RemoveAppointment(id string, appointments []entity.Appointment) []entity.Appointment {
	out := make([]entity.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.ID != id {
			out = append(out, a)
		}
	}
	return out
}
