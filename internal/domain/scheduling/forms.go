// Package scheduling holds the clinic's domain operations as pure
// functions over in-memory collections: patient identity resolution,
// appointment upsert and removal, and the agenda, history and stats
// queries. Every function takes the current collection and returns the
// next one; inputs are never mutated and there is no hidden state, so
// the caller owns the mutable reference and is responsible for
// serializing concurrent submissions.
package scheduling

import (
	"clinic-agenda-server/internal/domain/entity"

	"github.com/google/uuid"
)

// PatientForm carries the already-validated patient fields submitted
// with an appointment.
type PatientForm struct {
	Name           string
	Phone          string
	Identification string
	HistoryNotes   string
}

// AppointmentForm carries the already-validated appointment fields.
// Required-field enforcement is the caller's concern.
type AppointmentForm struct {
	DoctorID string
	Date     string // YYYY-MM-DD
	Time     string // HH:mm
	Reason   string
	Status   entity.AppointmentStatus
}

// newID returns a collision-resistant random identifier. Entity ids are
// opaque strings; nothing orders or parses them.
func newID() string {
	return uuid.NewString()
}
