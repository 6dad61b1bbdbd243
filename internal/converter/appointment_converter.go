package converter

import (
	"clinic-agenda-server/internal/delivery/dto"
	"clinic-agenda-server/internal/domain/entity"
)

// UnknownName is shown when an appointment references a patient or
// doctor that no longer resolves. Lookup misses degrade to this
// sentinel instead of failing.
const UnknownName = "Desconocido"

// NameIndex resolves patient and doctor ids to display names.
type NameIndex struct {
	patients map[string]string
	doctors  map[string]string
}

// NewNameIndex builds the lookup tables once per snapshot so list
// conversions stay linear.
func NewNameIndex(snap entity.Snapshot) NameIndex {
	idx := NameIndex{
		patients: make(map[string]string, len(snap.Patients)),
		doctors:  make(map[string]string, len(snap.Doctors)),
	}
	for _, p := range snap.Patients {
		idx.patients[p.ID] = p.Name
	}
	for _, d := range snap.Doctors {
		idx.doctors[d.ID] = d.Name
	}
	return idx
}

func (idx NameIndex) PatientName(id string) string {
	if name, ok := idx.patients[id]; ok {
		return name
	}
	return UnknownName
}

func (idx NameIndex) DoctorName(id string) string {
	if name, ok := idx.doctors[id]; ok {
		return name
	}
	return UnknownName
}

// AppointmentToResponse converts an Appointment entity to an
// AppointmentResponse DTO, resolving display names through the index.
func AppointmentToResponse(appointment *entity.Appointment, idx NameIndex) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:          appointment.ID,
		PatientID:   appointment.PatientID,
		PatientName: idx.PatientName(appointment.PatientID),
		DoctorID:    appointment.DoctorID,
		DoctorName:  idx.DoctorName(appointment.DoctorID),
		Date:        appointment.Date,
		Time:        appointment.Time,
		Reason:      appointment.Reason,
		Status:      string(appointment.Status),
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to a
// slice of AppointmentResponse DTOs.
func AppointmentsToResponses(appointments []entity.Appointment, idx NameIndex) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		responses[i] = *AppointmentToResponse(&appointment, idx)
	}
	return responses
}
