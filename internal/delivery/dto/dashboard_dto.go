package dto

// Response DTOs

// DoctorCount feeds the per-doctor bar chart.
type DoctorCount struct {
	DoctorID   string `json:"doctor_id"`
	DoctorName string `json:"doctor_name"`
	Count      int    `json:"count"`
}

type DashboardStatsResponse struct {
	Date      string         `json:"date"`
	Total     int            `json:"total"`
	Completed int            `json:"completed"`
	Today     int            `json:"today"`
	PerDoctor []DoctorCount  `json:"per_doctor"`
	PerStatus map[string]int `json:"per_status"`
}
