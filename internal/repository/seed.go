package repository

import (
	"time"

	"clinic-agenda-server/internal/domain/entity"
)

// SeedSnapshot builds the fixed demo data set the clinic starts with.
// Appointment dates are computed relative to the given day so the
// agenda, history and dashboard views have material spanning yesterday,
// today and tomorrow regardless of when the process starts.
func SeedSnapshot(now time.Time) entity.Snapshot {
	today := now.Format("2006-01-02")
	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")

	return entity.Snapshot{
		Doctors: []entity.Doctor{
			{ID: "doc1", Name: "Dra. Ana Pérez", Specialty: "Cardiología"},
			{ID: "doc2", Name: "Dr. Carlos Gómez", Specialty: "Medicina General"},
			{ID: "doc3", Name: "Dra. Luisa Martínez", Specialty: "Dermatología"},
			{ID: "doc4", Name: "Dr. Juan Rodríguez", Specialty: "Ortopedia"},
		},
		Patients: []entity.Patient{
			{ID: "pat1", Name: "Elena Vázquez", Phone: "555-1234", Identification: "12345678A", HistoryNotes: "Paciente con hipertensión controlada."},
			{ID: "pat2", Name: "Roberto Fernández", Phone: "555-5678", Identification: "87654321B", HistoryNotes: "Alergia a la penicilina."},
			{ID: "pat3", Name: "Carmen Ruiz", Phone: "555-8765", Identification: "45678912C", HistoryNotes: "Chequeo anual."},
		},
		Appointments: []entity.Appointment{
			{ID: "app1", PatientID: "pat1", DoctorID: "doc1", Date: today, Time: "10:00", Reason: "Revisión de marcapasos", Status: entity.AppointmentStatusConfirmed},
			{ID: "app2", PatientID: "pat2", DoctorID: "doc2", Date: today, Time: "11:30", Reason: "Consulta general, resfriado", Status: entity.AppointmentStatusPending},
			{ID: "app3", PatientID: "pat3", DoctorID: "doc3", Date: tomorrow, Time: "09:00", Reason: "Revisión de lunar", Status: entity.AppointmentStatusConfirmed},
			{ID: "app4", PatientID: "pat1", DoctorID: "doc4", Date: tomorrow, Time: "12:00", Reason: "Dolor de rodilla", Status: entity.AppointmentStatusPending},
			{ID: "app5", PatientID: "pat2", DoctorID: "doc2", Date: yesterday, Time: "15:00", Reason: "Seguimiento", Status: entity.AppointmentStatusCompleted},
		},
	}
}
