package usecase

import (
	"context"
	"testing"
	"time"

	"clinic-agenda-server/internal/delivery/dto"
	domainRepo "clinic-agenda-server/internal/domain/repository"
	"clinic-agenda-server/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDay = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

func newTestRepo() domainRepo.SnapshotRepository {
	return repository.NewMemorySnapshotRepository(repository.SeedSnapshot(testDay))
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func saveRequest() *dto.SaveAppointmentRequest {
	return &dto.SaveAppointmentRequest{
		Patient: &dto.PatientForm{
			Name:           "Nuevo Paciente",
			Phone:          "555-0000",
			Identification: "00000000X",
		},
		DoctorID: "doc1",
		Date:     "2024-05-12",
		Time:     "09:30",
		Reason:   "Consulta inicial",
		Status:   "pending",
	}
}

func TestCreateAppointmentCreatesPatientAndAppointment(t *testing.T) {
	repo := newTestRepo()
	uc := NewAppointmentUsecase(quietLogger(), repo)

	created, err := uc.CreateAppointment(context.Background(), saveRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Nuevo Paciente", created.PatientName)
	assert.Equal(t, "Dra. Ana Pérez", created.DoctorName)

	snap, err := repo.Load()
	require.NoError(t, err)
	assert.Len(t, snap.Appointments, 6)
	assert.Len(t, snap.Patients, 4)
}

func TestCreateAppointmentReusesPatientByIdentification(t *testing.T) {
	repo := newTestRepo()
	uc := NewAppointmentUsecase(quietLogger(), repo)

	req := saveRequest()
	req.Patient.Identification = "12345678A" // seeded Elena Vázquez

	created, err := uc.CreateAppointment(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "pat1", created.PatientID)
	assert.Equal(t, "Elena Vázquez", created.PatientName)

	snap, err := repo.Load()
	require.NoError(t, err)
	assert.Len(t, snap.Patients, 3)
}

func TestCreateAppointmentUnknownDoctor(t *testing.T) {
	uc := NewAppointmentUsecase(quietLogger(), newTestRepo())

	req := saveRequest()
	req.DoctorID = "doc99"

	_, err := uc.CreateAppointment(context.Background(), req)
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestCreateAppointmentRequiresPatient(t *testing.T) {
	uc := NewAppointmentUsecase(quietLogger(), newTestRepo())

	req := saveRequest()
	req.Patient = nil

	_, err := uc.CreateAppointment(context.Background(), req)
	assert.ErrorIs(t, err, ErrPatientRequired)
}

func TestCreateAppointmentValidatesForm(t *testing.T) {
	uc := NewAppointmentUsecase(quietLogger(), newTestRepo())

	bad := saveRequest()
	bad.Date = "12/05/2024"
	_, err := uc.CreateAppointment(context.Background(), bad)
	assert.ErrorIs(t, err, ErrInvalidDateFormat)

	bad = saveRequest()
	bad.Time = "9am"
	_, err = uc.CreateAppointment(context.Background(), bad)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	bad = saveRequest()
	bad.Status = "waiting"
	_, err = uc.CreateAppointment(context.Background(), bad)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateAppointmentKeepsCollectionSize(t *testing.T) {
	repo := newTestRepo()
	uc := NewAppointmentUsecase(quietLogger(), repo)

	req := saveRequest()
	req.PatientID = "pat1"
	req.Patient = nil
	req.Status = "completed"

	updated, err := uc.UpdateAppointment(context.Background(), "app1", req)
	require.NoError(t, err)
	assert.Equal(t, "app1", updated.ID)
	assert.Equal(t, "completed", updated.Status)

	snap, err := repo.Load()
	require.NoError(t, err)
	assert.Len(t, snap.Appointments, 5)
	assert.Equal(t, "app1", snap.Appointments[0].ID) // position preserved
}

func TestUpdateAppointmentUnknownID(t *testing.T) {
	uc := NewAppointmentUsecase(quietLogger(), newTestRepo())

	req := saveRequest()
	req.PatientID = "pat1"
	req.Patient = nil

	_, err := uc.UpdateAppointment(context.Background(), "missing", req)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestDeleteAppointmentIsIdempotent(t *testing.T) {
	repo := newTestRepo()
	uc := NewAppointmentUsecase(quietLogger(), repo)

	require.NoError(t, uc.DeleteAppointment(context.Background(), "app1"))
	require.NoError(t, uc.DeleteAppointment(context.Background(), "app1"))

	snap, err := repo.Load()
	require.NoError(t, err)
	assert.Len(t, snap.Appointments, 4)
}

func TestGetAgendaFiltersAndSorts(t *testing.T) {
	uc := NewAppointmentUsecase(quietLogger(), newTestRepo())

	agenda, err := uc.GetAgenda(context.Background(), testDay.Format("2006-01-02"), "")
	require.NoError(t, err)

	require.Equal(t, 2, agenda.Total)
	assert.Equal(t, "10:00", agenda.Appointments[0].Time)
	assert.Equal(t, "11:30", agenda.Appointments[1].Time)
	assert.Equal(t, "all", agenda.DoctorID)

	only, err := uc.GetAgenda(context.Background(), testDay.Format("2006-01-02"), "doc2")
	require.NoError(t, err)
	require.Equal(t, 1, only.Total)
	assert.Equal(t, "Dr. Carlos Gómez", only.Appointments[0].DoctorName)
}

func TestGetAgendaRejectsBadDate(t *testing.T) {
	uc := NewAppointmentUsecase(quietLogger(), newTestRepo())

	_, err := uc.GetAgenda(context.Background(), "not-a-date", "all")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}
