package dto

// Request DTOs

type SuggestSpecialtyRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// Response DTOs

type SuggestSpecialtyResponse struct {
	Specialty string `json:"specialty"`
}
