package usecase

import (
	"context"
	"errors"

	"clinic-agenda-server/internal/converter"
	"clinic-agenda-server/internal/delivery/dto"
	"clinic-agenda-server/internal/domain/repository"
	"clinic-agenda-server/internal/domain/scheduling"

	"github.com/sirupsen/logrus"
)

var ErrPatientNotFound = errors.New("patient not found")

type PatientUsecase interface {
	GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error)
	GetPatient(ctx context.Context, patientID string) (*dto.PatientResponse, error)
	GetPatientHistory(ctx context.Context, patientID string) (*dto.PatientHistoryResponse, error)
}

type patientUsecase struct {
	log      *logrus.Logger
	snapRepo repository.SnapshotRepository
}

func NewPatientUsecase(log *logrus.Logger, snapRepo repository.SnapshotRepository) PatientUsecase {
	return &patientUsecase{
		log:      log,
		snapRepo: snapRepo,
	}
}

func (u *patientUsecase) GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	snap, err := u.snapRepo.Load()
	if err != nil {
		u.log.Warnf("Failed to load snapshot: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(snap.Patients),
		Total:    len(snap.Patients),
	}, nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, patientID string) (*dto.PatientResponse, error) {
	snap, err := u.snapRepo.Load()
	if err != nil {
		u.log.Warnf("Failed to load snapshot: %+v", err)
		return nil, err
	}

	patient := snap.FindPatient(patientID)
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

// GetPatientHistory returns the patient's appointments, most recent
// date first. An unknown patient id yields an empty history, not an
// error, matching the query components' graceful-miss behavior.
func (u *patientUsecase) GetPatientHistory(ctx context.Context, patientID string) (*dto.PatientHistoryResponse, error) {
	snap, err := u.snapRepo.Load()
	if err != nil {
		u.log.Warnf("Failed to load snapshot: %+v", err)
		return nil, err
	}

	history := scheduling.History(snap.Appointments, patientID)

	response := &dto.PatientHistoryResponse{
		Appointments: converter.AppointmentsToResponses(history, converter.NewNameIndex(snap)),
		Total:        len(history),
	}
	if patient := snap.FindPatient(patientID); patient != nil {
		response.Patient = *converter.PatientToResponse(patient)
	}

	return response, nil
}
