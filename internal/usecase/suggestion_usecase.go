package usecase

import (
	"context"

	"clinic-agenda-server/internal/delivery/dto"
	"clinic-agenda-server/internal/service"

	"github.com/sirupsen/logrus"
)

type SuggestionUsecase interface {
	SuggestSpecialty(ctx context.Context, req *dto.SuggestSpecialtyRequest) (*dto.SuggestSpecialtyResponse, error)
}

type suggestionUsecase struct {
	log               *logrus.Logger
	doctorUsecase     DoctorUsecase
	suggestionService *service.SuggestionService
}

func NewSuggestionUsecase(
	log *logrus.Logger,
	doctorUsecase DoctorUsecase,
	suggestionService *service.SuggestionService,
) SuggestionUsecase {
	return &suggestionUsecase{
		log:               log,
		doctorUsecase:     doctorUsecase,
		suggestionService: suggestionService,
	}
}

// SuggestSpecialty asks which of the roster's specialties fits the
// visit reason. The answer is a hint: upstream failures surface as the
// fixed fallback string, never as an error.
func (u *suggestionUsecase) SuggestSpecialty(ctx context.Context, req *dto.SuggestSpecialtyRequest) (*dto.SuggestSpecialtyResponse, error) {
	specialties, err := u.doctorUsecase.GetSpecialties(ctx)
	if err != nil {
		return nil, err
	}

	specialty := u.suggestionService.SuggestSpecialty(ctx, req.Reason, specialties)
	return &dto.SuggestSpecialtyResponse{Specialty: specialty}, nil
}
