package dto

// Response DTOs

type PatientResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Identification string `json:"identification"`
	HistoryNotes   string `json:"history_notes"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}

// PatientHistoryResponse is the roster detail view: the patient plus
// their appointments, most recent first.
type PatientHistoryResponse struct {
	Patient      PatientResponse       `json:"patient"`
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
