package converter

import (
	"clinic-agenda-server/internal/delivery/dto"
	"clinic-agenda-server/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to a PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:             patient.ID,
		Name:           patient.Name,
		Phone:          patient.Phone,
		Identification: patient.Identification,
		HistoryNotes:   patient.HistoryNotes,
	}
}

// PatientsToResponses converts a slice of Patient entities to a slice of
// PatientResponse DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i, patient := range patients {
		responses[i] = *PatientToResponse(&patient)
	}
	return responses
}
