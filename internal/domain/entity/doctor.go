package entity

// Doctor is read-only reference data supplied at startup; appointments
// reference it via DoctorID.
type Doctor struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}
