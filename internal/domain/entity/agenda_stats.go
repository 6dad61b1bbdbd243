package entity

// AgendaStats is the aggregate view consumed by the dashboard.
// Today counts appointments whose date equals the caller-supplied
// reference day (calendar-day equality, never a hidden clock).
type AgendaStats struct {
	Total     int
	Completed int
	Today     int
	PerDoctor map[string]int // doctor id -> appointment count
	PerStatus map[AppointmentStatus]int
}
