package usecase

import (
	"context"
	"time"

	"clinic-agenda-server/internal/converter"
	"clinic-agenda-server/internal/delivery/dto"
	"clinic-agenda-server/internal/domain/repository"
	"clinic-agenda-server/internal/domain/scheduling"

	"github.com/sirupsen/logrus"
)

type DashboardUsecase interface {
	GetStats(ctx context.Context, date string) (*dto.DashboardStatsResponse, error)
}

type dashboardUsecase struct {
	log      *logrus.Logger
	snapRepo repository.SnapshotRepository
}

func NewDashboardUsecase(log *logrus.Logger, snapRepo repository.SnapshotRepository) DashboardUsecase {
	return &dashboardUsecase{
		log:      log,
		snapRepo: snapRepo,
	}
}

// GetStats aggregates the appointment collection against the given
// reference day (YYYY-MM-DD). The day always comes in from the caller:
// the aggregation itself never reads the clock.
func (u *dashboardUsecase) GetStats(ctx context.Context, date string) (*dto.DashboardStatsResponse, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidDateFormat
	}

	snap, err := u.snapRepo.Load()
	if err != nil {
		u.log.Warnf("Failed to load snapshot: %+v", err)
		return nil, err
	}

	stats := scheduling.Stats(snap.Appointments, snap.Doctors, date)
	return converter.StatsToResponse(stats, snap.Doctors, date), nil
}
