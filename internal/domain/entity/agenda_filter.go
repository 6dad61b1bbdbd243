package entity

// DoctorFilterAll is the sentinel meaning "no doctor filter". It is
// reserved and never collides with a real doctor id.
const DoctorFilterAll = "all"

// AgendaFilter is a domain-level filter for the per-day agenda.
// Used by the scheduling operations to avoid coupling with delivery DTOs.
type AgendaFilter struct {
	Date     string // Format: YYYY-MM-DD
	DoctorID string // A doctor id, or DoctorFilterAll
}
