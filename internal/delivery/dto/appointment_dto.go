package dto

// Request DTOs

// PatientForm carries the patient block of an appointment submission.
// Required when no patient_id is supplied.
type PatientForm struct {
	Name           string `json:"name" validate:"required,min=2"`
	Phone          string `json:"phone" validate:"omitempty,max=30"`
	Identification string `json:"identification" validate:"omitempty,max=50"`
	HistoryNotes   string `json:"history_notes" validate:"omitempty"`
}

// SaveAppointmentRequest is shared by create (POST) and update (PUT).
// Required-field enforcement happens here, before the domain module is
// ever called.
type SaveAppointmentRequest struct {
	PatientID string       `json:"patient_id" validate:"omitempty"`
	Patient   *PatientForm `json:"patient" validate:"omitempty"`
	DoctorID  string       `json:"doctor_id" validate:"required"`
	Date      string       `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string       `json:"time" validate:"required,datetime=15:04"`
	Reason    string       `json:"reason" validate:"required"`
	Status    string       `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          string `json:"id"`
	PatientID   string `json:"patient_id"`
	PatientName string `json:"patient_name"`
	DoctorID    string `json:"doctor_id"`
	DoctorName  string `json:"doctor_name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Reason      string `json:"reason"`
	Status      string `json:"status"`
}

type AgendaResponse struct {
	Date         string                `json:"date"`
	DoctorID     string                `json:"doctor_id"`
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
