package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-agenda-server/config"
	"clinic-agenda-server/internal/delivery/dto"
	"clinic-agenda-server/internal/delivery/http/handler"
	"clinic-agenda-server/internal/delivery/http/middleware"
	"clinic-agenda-server/internal/infrastructure/genai"
	"clinic-agenda-server/internal/repository"
	"clinic-agenda-server/internal/service"
	"clinic-agenda-server/internal/usecase"
	"clinic-agenda-server/pkg/jwt"
	"clinic-agenda-server/pkg/response"
	"clinic-agenda-server/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "router-test-secret",
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
	})
	tokenRegistry := service.NewTokenRegistry()
	customValidator := validator.NewValidator()

	snapRepo := repository.NewMemorySnapshotRepository(repository.SeedSnapshot(time.Now()))

	// Points at nothing reachable: suggestion requests fall back.
	genAIClient := genai.NewClient(config.GenAIConfig{
		BaseURL: "http://127.0.0.1:1",
		Model:   "test-model",
		Timeout: time.Second,
	})
	suggestionService := service.NewSuggestionService(log, genAIClient)

	authUsecase := usecase.NewAuthUsecase(log, config.AuthConfig{
		Username: "admin",
		Password: "password",
	}, jwtService, tokenRegistry)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, snapRepo)
	patientUsecase := usecase.NewPatientUsecase(log, snapRepo)
	doctorUsecase := usecase.NewDoctorUsecase(log, snapRepo)
	dashboardUsecase := usecase.NewDashboardUsecase(log, snapRepo)
	suggestionUsecase := usecase.NewSuggestionUsecase(log, doctorUsecase, suggestionService)

	router := NewRouter(
		handler.NewAuthHandler(authUsecase, customValidator, jwtService),
		handler.NewAppointmentHandler(appointmentUsecase, customValidator),
		handler.NewPatientHandler(patientUsecase),
		handler.NewDoctorHandler(doctorUsecase),
		handler.NewDashboardHandler(dashboardUsecase),
		handler.NewSuggestionHandler(suggestionUsecase, customValidator),
		middleware.NewAuthMiddleware(jwtService, tokenRegistry),
		middleware.NewCORSMiddleware(),
	)

	return router.Setup()
}

func doJSON(t *testing.T, router *mux.Router, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Success, "expected success envelope, got: %s", rec.Body.String())

	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func login(t *testing.T, router *mux.Router) dto.TokenResponse {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Username: "admin",
		Password: "password",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var tokens dto.TokenResponse
	decodeData(t, rec, &tokens)
	require.NotEmpty(t, tokens.AccessToken)
	return tokens
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/appointments/agenda", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Username: "admin",
		Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAgendaRoundTrip(t *testing.T) {
	router := newTestRouter(t)
	tokens := login(t, router)

	today := time.Now().Format("2006-01-02")
	rec := doJSON(t, router, http.MethodGet, "/api/v1/appointments/agenda?date="+today, tokens.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var agenda dto.AgendaResponse
	decodeData(t, rec, &agenda)

	require.Len(t, agenda.Appointments, 2)
	assert.Equal(t, "10:00", agenda.Appointments[0].Time)
	assert.Equal(t, "11:30", agenda.Appointments[1].Time)
	assert.Equal(t, "Elena Vázquez", agenda.Appointments[0].PatientName)
	assert.Equal(t, "all", agenda.DoctorID)
}

func TestCreateAppointmentRoundTrip(t *testing.T) {
	router := newTestRouter(t)
	tokens := login(t, router)

	today := time.Now().Format("2006-01-02")
	rec := doJSON(t, router, http.MethodPost, "/api/v1/appointments", tokens.AccessToken, dto.SaveAppointmentRequest{
		Patient: &dto.PatientForm{
			Name:           "Nuevo Paciente",
			Phone:          "555-0000",
			Identification: "99999999Z",
		},
		DoctorID: "doc1",
		Date:     today,
		Time:     "16:00",
		Reason:   "Consulta inicial",
		Status:   "pending",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created dto.AppointmentResponse
	decodeData(t, rec, &created)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Nuevo Paciente", created.PatientName)
	assert.Equal(t, "Dra. Ana Pérez", created.DoctorName)

	// The new appointment shows up in the day's agenda, after the
	// earlier ones.
	rec = doJSON(t, router, http.MethodGet, "/api/v1/appointments/agenda?date="+today, tokens.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var agenda dto.AgendaResponse
	decodeData(t, rec, &agenda)
	require.Len(t, agenda.Appointments, 3)
	assert.Equal(t, created.ID, agenda.Appointments[2].ID)
}

func TestUpdateAppointmentRoundTrip(t *testing.T) {
	router := newTestRouter(t)
	tokens := login(t, router)

	today := time.Now().Format("2006-01-02")
	rec := doJSON(t, router, http.MethodPut, "/api/v1/appointments/app1", tokens.AccessToken, dto.SaveAppointmentRequest{
		PatientID: "pat1",
		DoctorID:  "doc1",
		Date:      today,
		Time:      "10:00",
		Reason:    "Revisión de marcapasos",
		Status:    "completed",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated dto.AppointmentResponse
	decodeData(t, rec, &updated)
	assert.Equal(t, "app1", updated.ID)
	assert.Equal(t, "completed", updated.Status)
}

func TestUpdateUnknownAppointmentIs404(t *testing.T) {
	router := newTestRouter(t)
	tokens := login(t, router)

	rec := doJSON(t, router, http.MethodPut, "/api/v1/appointments/no-such-id", tokens.AccessToken, dto.SaveAppointmentRequest{
		PatientID: "pat1",
		DoctorID:  "doc1",
		Date:      "2024-05-10",
		Time:      "10:00",
		Reason:    "X",
		Status:    "pending",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteAppointmentIsIdempotent(t *testing.T) {
	router := newTestRouter(t)
	tokens := login(t, router)

	rec := doJSON(t, router, http.MethodDelete, "/api/v1/appointments/app5", tokens.AccessToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Second delete of the same id still succeeds.
	rec = doJSON(t, router, http.MethodDelete, "/api/v1/appointments/app5", tokens.AccessToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogoutRevokesAccessToken(t *testing.T) {
	router := newTestRouter(t)
	tokens := login(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/logout", tokens.AccessToken, map[string]string{
		"refresh_token": tokens.RefreshToken,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/auth/me", tokens.AccessToken, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSuggestionFallsBackWithoutUpstream(t *testing.T) {
	router := newTestRouter(t)
	tokens := login(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/suggestions/specialty", tokens.AccessToken, dto.SuggestSpecialtyRequest{
		Reason: "dolor en el pecho",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var suggestion dto.SuggestSpecialtyResponse
	decodeData(t, rec, &suggestion)
	assert.Equal(t, service.SuggestionFallback, suggestion.Specialty)
}
