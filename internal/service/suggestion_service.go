package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"clinic-agenda-server/internal/infrastructure/genai"

	"github.com/sirupsen/logrus"
)

// SuggestionFallback is returned whenever the upstream call fails or
// produces nothing usable. The suggestion is a hint, never a
// requirement, so failures degrade to this string instead of an error.
const SuggestionFallback = "No se pudo obtener una sugerencia."

// Keeps Latin letters (accented included) and whitespace; everything
// else the model may wrap the answer in gets stripped.
var nonLetterPattern = regexp.MustCompile(`[^a-zA-ZáéíóúÁÉÍÓÚñÑ\s]`)

// SuggestionService asks the generative-AI backend which specialty fits
// a visit reason best.
type SuggestionService struct {
	log    *logrus.Logger
	client *genai.Client
}

func NewSuggestionService(log *logrus.Logger, client *genai.Client) *SuggestionService {
	return &SuggestionService{
		log:    log,
		client: client,
	}
}

// SuggestSpecialty returns the suggested specialty name for the given
// reason, or SuggestionFallback when the call fails. It never returns an
// error to the caller.
func (s *SuggestionService) SuggestSpecialty(ctx context.Context, reason string, specialties []string) string {
	prompt := fmt.Sprintf(
		`Basado en el siguiente motivo de consulta: "%s", ¿cuál de las siguientes especialidades médicas es la más apropiada? Especialidades disponibles: %s. Responde únicamente con el nombre de la especialidad sugerida.`,
		reason, strings.Join(specialties, ", "),
	)

	text, err := s.client.GenerateContent(ctx, prompt)
	if err != nil {
		s.log.Warnf("Failed to get specialty suggestion: %+v", err)
		return SuggestionFallback
	}

	cleaned := strings.TrimSpace(nonLetterPattern.ReplaceAllString(strings.TrimSpace(text), ""))
	if cleaned == "" {
		return SuggestionFallback
	}

	return cleaned
}
