package entity

// Snapshot is an immutable view of the three collections. Domain
// operations take the current snapshot and return the next one; they
// never mutate slices in place. Insertion order is significant only as
// the default display order before explicit sorting.
type Snapshot struct {
	Patients     []Patient
	Doctors      []Doctor
	Appointments []Appointment
}

// Clone returns a deep copy of the snapshot so the receiver can be
// handed out without aliasing the caller's slices.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Patients:     make([]Patient, len(s.Patients)),
		Doctors:      make([]Doctor, len(s.Doctors)),
		Appointments: make([]Appointment, len(s.Appointments)),
	}
	copy(out.Patients, s.Patients)
	copy(out.Doctors, s.Doctors)
	copy(out.Appointments, s.Appointments)
	return out
}

// FindDoctor returns the doctor with the given id, or nil when unknown.
func (s Snapshot) FindDoctor(id string) *Doctor {
	for i := range s.Doctors {
		if s.Doctors[i].ID == id {
			return &s.Doctors[i]
		}
	}
	return nil
}

// FindPatient returns the patient with the given id, or nil when unknown.
func (s Snapshot) FindPatient(id string) *Patient {
	for i := range s.Patients {
		if s.Patients[i].ID == id {
			return &s.Patients[i]
		}
	}
	return nil
}

// FindAppointment returns the appointment with the given id, or nil when unknown.
func (s Snapshot) FindAppointment(id string) *Appointment {
	for i := range s.Appointments {
		if s.Appointments[i].ID == id {
			return &s.Appointments[i]
		}
	}
	return nil
}
