package scheduling

import (
	"testing"

	"clinic-agenda-server/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAppointments() []entity.Appointment {
	return []entity.Appointment{
		{ID: "app1", PatientID: "pat1", DoctorID: "doc1", Date: "2024-01-01", Time: "10:00", Reason: "Revisión", Status: entity.AppointmentStatusConfirmed},
		{ID: "app2", PatientID: "pat2", DoctorID: "doc2", Date: "2024-01-01", Time: "11:30", Reason: "Consulta", Status: entity.AppointmentStatusPending},
		{ID: "app3", PatientID: "pat1", DoctorID: "doc1", Date: "2024-01-02", Time: "09:00", Reason: "Seguimiento", Status: entity.AppointmentStatusPending},
	}
}

func TestUpsertAppointmentCreateAppends(t *testing.T) {
	appointments := sampleAppointments()

	form := AppointmentForm{
		DoctorID: "doc3",
		Date:     "2024-01-03",
		Time:     "08:30",
		Reason:   "Revisión de lunar",
		Status:   entity.AppointmentStatusPending,
	}

	updated := UpsertAppointment(nil, form, "pat3", appointments)

	require.Len(t, updated, len(appointments)+1)
	created := updated[len(updated)-1]
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "pat3", created.PatientID)
	assert.Equal(t, "doc3", created.DoctorID)
	assert.Equal(t, "2024-01-03", created.Date)

	// prior entries are untouched
	assert.Equal(t, appointments, updated[:len(appointments)])
}

func TestUpsertAppointmentUpdateReplacesInPlace(t *testing.T) {
	appointments := sampleAppointments()
	existing := appointments[1]

	form := AppointmentForm{
		DoctorID: "doc4",
		Date:     "2024-02-01",
		Time:     "15:00",
		Reason:   "Dolor de rodilla",
		Status:   entity.AppointmentStatusConfirmed,
	}

	updated := UpsertAppointment(&existing, form, "pat2", appointments)

	require.Len(t, updated, len(appointments))

	// same id, same position, every other field overwritten
	assert.Equal(t, "app2", updated[1].ID)
	assert.Equal(t, "doc4", updated[1].DoctorID)
	assert.Equal(t, "2024-02-01", updated[1].Date)
	assert.Equal(t, "15:00", updated[1].Time)
	assert.Equal(t, entity.AppointmentStatusConfirmed, updated[1].Status)

	assert.Equal(t, appointments[0], updated[0])
	assert.Equal(t, appointments[2], updated[2])

	// input untouched
	assert.Equal(t, "doc2", appointments[1].DoctorID)
}

func TestUpsertAppointmentUpdateCanRewirePatient(t *testing.T) {
	appointments := sampleAppointments()
	existing := appointments[0]

	form := AppointmentForm{
		DoctorID: existing.DoctorID,
		Date:     existing.Date,
		Time:     existing.Time,
		Reason:   existing.Reason,
		Status:   existing.Status,
	}

	updated := UpsertAppointment(&existing, form, "pat9", appointments)
	assert.Equal(t, "pat9", updated[0].PatientID)
}

func TestRemoveAppointment(t *testing.T) {
	appointments := sampleAppointments()

	updated := RemoveAppointment("app2", appointments)

	require.Len(t, updated, 2)
	assert.Equal(t, "app1", updated[0].ID)
	assert.Equal(t, "app3", updated[1].ID)
}

func TestRemoveAppointmentIdempotent(t *testing.T) {
	appointments := sampleAppointments()

	once := RemoveAppointment("app1", appointments)
	twice := RemoveAppointment("app1", once)

	assert.Equal(t, once, twice)
}

func TestRemoveAppointmentUnknownIDIsNoop(t *testing.T) {
	appointments := sampleAppointments()

	updated := RemoveAppointment("missing", appointments)

	assert.Equal(t, appointments, updated)
}
