package entity

// Patient represents a clinic patient. The deduplication key is
// Identification (a free-text national ID), not ID: at most one patient
// exists per distinct identification value. ID is assigned at creation
// and immutable.
type Patient struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Identification string `json:"identification"`
	HistoryNotes   string `json:"history_notes"`
}
