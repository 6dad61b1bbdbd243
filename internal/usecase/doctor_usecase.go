package usecase

import (
	"context"

	"clinic-agenda-server/internal/converter"
	"clinic-agenda-server/internal/delivery/dto"
	"clinic-agenda-server/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// DoctorUsecase exposes the read-only doctor roster. Doctors are
// reference data seeded at startup; nothing creates or edits them.
type DoctorUsecase interface {
	GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	GetDoctor(ctx context.Context, doctorID string) (*dto.DoctorResponse, error)
	GetSpecialties(ctx context.Context) ([]string, error)
}

type doctorUsecase struct {
	log      *logrus.Logger
	snapRepo repository.SnapshotRepository
}

func NewDoctorUsecase(log *logrus.Logger, snapRepo repository.SnapshotRepository) DoctorUsecase {
	return &doctorUsecase{
		log:      log,
		snapRepo: snapRepo,
	}
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	snap, err := u.snapRepo.Load()
	if err != nil {
		u.log.Warnf("Failed to load snapshot: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(snap.Doctors),
		Total:   len(snap.Doctors),
	}, nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID string) (*dto.DoctorResponse, error) {
	snap, err := u.snapRepo.Load()
	if err != nil {
		u.log.Warnf("Failed to load snapshot: %+v", err)
		return nil, err
	}

	doctor := snap.FindDoctor(doctorID)
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

// GetSpecialties returns the distinct specialty names in roster order,
// for the suggestion prompt.
func (u *doctorUsecase) GetSpecialties(ctx context.Context) ([]string, error) {
	snap, err := u.snapRepo.Load()
	if err != nil {
		u.log.Warnf("Failed to load snapshot: %+v", err)
		return nil, err
	}

	seen := make(map[string]bool, len(snap.Doctors))
	specialties := make([]string, 0, len(snap.Doctors))
	for _, d := range snap.Doctors {
		if !seen[d.Specialty] {
			seen[d.Specialty] = true
			specialties = append(specialties, d.Specialty)
		}
	}

	return specialties, nil
}
