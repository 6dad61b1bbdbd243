package handler

import (
	"encoding/json"
	"net/http"

	"clinic-agenda-server/internal/delivery/dto"
	"clinic-agenda-server/internal/usecase"
	"clinic-agenda-server/pkg/response"
	"clinic-agenda-server/pkg/validator"
)

type SuggestionHandler struct {
	suggestionUsecase usecase.SuggestionUsecase
	validator         *validator.CustomValidator
}

func NewSuggestionHandler(suggestionUsecase usecase.SuggestionUsecase, validator *validator.CustomValidator) *SuggestionHandler {
	return &SuggestionHandler{
		suggestionUsecase: suggestionUsecase,
		validator:         validator,
	}
}

// SuggestSpecialty suggests a specialty for a visit reason. Upstream
// failures answer 200 with the fallback string, never an error status.
func (h *SuggestionHandler) SuggestSpecialty(w http.ResponseWriter, r *http.Request) {
	var req dto.SuggestSpecialtyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	suggestion, err := h.suggestionUsecase.SuggestSpecialty(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to get suggestion")
		return
	}

	response.Success(w, http.StatusOK, "Suggestion retrieved successfully", suggestion)
}
