package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"clinic-agenda-server/internal/delivery/dto"
	"clinic-agenda-server/internal/usecase"
	"clinic-agenda-server/pkg/response"
	"clinic-agenda-server/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// GetAgenda returns one calendar day of appointments. The date defaults
// to the server's today, the doctor filter to "all".
func (h *AppointmentHandler) GetAgenda(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	doctorID := r.URL.Query().Get("doctor_id")

	agenda, err := h.appointmentUsecase.GetAgenda(r.Context(), date, doctorID)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to get agenda")
		}
		return
	}

	response.Success(w, http.StatusOK, "Agenda retrieved successfully", agenda)
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeSaveRequest(w, r)
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), req)
	if err != nil {
		h.writeSaveError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID := vars["id"]

	req, ok := h.decodeSaveRequest(w, r)
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.UpdateAppointment(r.Context(), appointmentID, req)
	if err != nil {
		h.writeSaveError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

// DeleteAppointment removes by id; deleting an absent id still succeeds.
func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.appointmentUsecase.DeleteAppointment(r.Context(), vars["id"]); err != nil {
		response.InternalServerError(w, "Failed to delete appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment deleted successfully", nil)
}

func (h *AppointmentHandler) decodeSaveRequest(w http.ResponseWriter, r *http.Request) (*dto.SaveAppointmentRequest, bool) {
	var req dto.SaveAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return nil, false
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return nil, false
	}

	return &req, true
}

func (h *AppointmentHandler) writeSaveError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrAppointmentNotFound:
		response.NotFound(w, "Appointment not found")
	case usecase.ErrDoctorNotFound:
		response.NotFound(w, "Doctor not found")
	case usecase.ErrPatientRequired:
		response.Error(w, http.StatusBadRequest, "Patient data is required when no patient id is given", nil)
	case usecase.ErrInvalidDateFormat:
		response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
	case usecase.ErrInvalidTimeFormat:
		response.Error(w, http.StatusBadRequest, "Invalid time format, use HH:MM", nil)
	case usecase.ErrInvalidStatus:
		response.Error(w, http.StatusBadRequest, "Invalid appointment status", nil)
	default:
		response.InternalServerError(w, "Failed to save appointment")
	}
}
