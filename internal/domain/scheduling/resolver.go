package scheduling

import "clinic-agenda-server/internal/domain/entity"

// ResolvePatient resolves a submitted patient form to a patient id,
// creating the patient when necessary.
//
// When submittedID is non-empty it is returned unchanged and the
// existing patient's record is never touched: editing an appointment for
// a known patient does not rewrite that patient's profile.
//
// Otherwise the patients are searched for an exact identification match.
// A match silently reuses the existing patient, discarding whatever
// other fields the form carried: identification is authoritative. An
// empty identification is a valid, if degenerate, match key.
//
// With no match, a new patient is appended under a fresh id.
func ResolvePatient(submittedID string, form PatientForm, patients []entity.Patient) (string, []entity.Patient) {
	if submittedID != "" {
		return submittedID, patients
	}

	for _, p := range patients {
		if p.Identification == form.Identification {
			return p.ID, patients
		}
	}

	created := entity.Patient{
		ID:             newID(),
		Name:           form.Name,
		Phone:          form.Phone,
		Identification: form.Identification,
		HistoryNotes:   form.HistoryNotes,
	}

	out := make([]entity.Patient, len(patients), len(patients)+1)
	copy(out, patients)
	return created.ID, append(out, created)
}
