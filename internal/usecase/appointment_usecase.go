package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"clinic-agenda-server/internal/converter"
	"clinic-agenda-server/internal/delivery/dto"
	"clinic-agenda-server/internal/domain/entity"
	"clinic-agenda-server/internal/domain/repository"
	"clinic-agenda-server/internal/domain/scheduling"

	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrPatientRequired     = errors.New("patient data is required when no patient id is given")
	ErrInvalidDateFormat   = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTimeFormat   = errors.New("invalid time format, use HH:MM")
	ErrInvalidStatus       = errors.New("invalid appointment status")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.SaveAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, appointmentID string, req *dto.SaveAppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, appointmentID string) error
	GetAgenda(ctx context.Context, date, doctorID string) (*dto.AgendaResponse, error)
}

type appointmentUsecase struct {
	mu       sync.Mutex // serializes read-modify-write cycles on the snapshot
	log      *logrus.Logger
	snapRepo repository.SnapshotRepository
}

func NewAppointmentUsecase(log *logrus.Logger, snapRepo repository.SnapshotRepository) AppointmentUsecase {
	return &appointmentUsecase{
		log:      log,
		snapRepo: snapRepo,
	}
}

// CreateAppointment resolves the patient (find-or-create by
// identification) and appends a new appointment.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.SaveAppointmentRequest) (*dto.AppointmentResponse, error) {
	return u.save(ctx, "", req)
}

// UpdateAppointment replaces every field except the id on the matching
// appointment, preserving its position in the collection.
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, appointmentID string, req *dto.SaveAppointmentRequest) (*dto.AppointmentResponse, error) {
	return u.save(ctx, appointmentID, req)
}

func (u *appointmentUsecase) save(ctx context.Context, appointmentID string, req *dto.SaveAppointmentRequest) (*dto.AppointmentResponse, error) {
	form, err := appointmentForm(req)
	if err != nil {
		return nil, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	snap, err := u.snapRepo.Load()
	if err != nil {
		u.log.Warnf("Failed to load snapshot: %+v", err)
		return nil, err
	}

	// doctorId must resolve to reference data before anything is written
	if snap.FindDoctor(req.DoctorID) == nil {
		return nil, ErrDoctorNotFound
	}

	var existing *entity.Appointment
	if appointmentID != "" {
		existing = snap.FindAppointment(appointmentID)
		if existing == nil {
			return nil, ErrAppointmentNotFound
		}
	}

	if req.PatientID == "" && req.Patient == nil {
		return nil, ErrPatientRequired
	}

	patientForm := scheduling.PatientForm{}
	if req.Patient != nil {
		patientForm = scheduling.PatientForm{
			Name:           req.Patient.Name,
			Phone:          req.Patient.Phone,
			Identification: req.Patient.Identification,
			HistoryNotes:   req.Patient.HistoryNotes,
		}
	}

	patientID, patients := scheduling.ResolvePatient(req.PatientID, patientForm, snap.Patients)
	appointments := scheduling.UpsertAppointment(existing, form, patientID, snap.Appointments)

	next := entity.Snapshot{
		Patients:     patients,
		Doctors:      snap.Doctors,
		Appointments: appointments,
	}
	if err := u.snapRepo.Save(next); err != nil {
		u.log.Warnf("Failed to save snapshot: %+v", err)
		return nil, err
	}

	saved := next.FindAppointment(appointmentID)
	if saved == nil {
		// creation path: the new entry is the appended one
		saved = &next.Appointments[len(next.Appointments)-1]
	}

	u.log.Infof("Appointment saved: id=%s, doctor=%s, date=%s %s", saved.ID, saved.DoctorID, saved.Date, saved.Time)
	return converter.AppointmentToResponse(saved, converter.NewNameIndex(next)), nil
}

// DeleteAppointment removes by id. Removal is idempotent: deleting an
// absent id succeeds without error.
func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	snap, err := u.snapRepo.Load()
	if err != nil {
		u.log.Warnf("Failed to load snapshot: %+v", err)
		return err
	}

	snap.Appointments = scheduling.RemoveAppointment(appointmentID, snap.Appointments)

	if err := u.snapRepo.Save(snap); err != nil {
		u.log.Warnf("Failed to save snapshot: %+v", err)
		return err
	}

	u.log.Infof("Appointment deleted: id=%s", appointmentID)
	return nil
}

// GetAgenda returns the appointments for one calendar day, optionally
// restricted to one doctor, ordered by time ascending.
func (u *appointmentUsecase) GetAgenda(ctx context.Context, date, doctorID string) (*dto.AgendaResponse, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidDateFormat
	}
	if doctorID == "" {
		doctorID = entity.DoctorFilterAll
	}

	snap, err := u.snapRepo.Load()
	if err != nil {
		u.log.Warnf("Failed to load snapshot: %+v", err)
		return nil, err
	}

	appointments := scheduling.Agenda(snap.Appointments, entity.AgendaFilter{
		Date:     date,
		DoctorID: doctorID,
	})

	return &dto.AgendaResponse{
		Date:         date,
		DoctorID:     doctorID,
		Appointments: converter.AppointmentsToResponses(appointments, converter.NewNameIndex(snap)),
		Total:        len(appointments),
	}, nil
}

func appointmentForm(req *dto.SaveAppointmentRequest) (scheduling.AppointmentForm, error) {
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return scheduling.AppointmentForm{}, ErrInvalidDateFormat
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		return scheduling.AppointmentForm{}, ErrInvalidTimeFormat
	}

	status := entity.AppointmentStatus(req.Status)
	if !status.IsValid() {
		return scheduling.AppointmentForm{}, ErrInvalidStatus
	}

	return scheduling.AppointmentForm{
		DoctorID: req.DoctorID,
		Date:     req.Date,
		Time:     req.Time,
		Reason:   req.Reason,
		Status:   status,
	}, nil
}
