package advice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aqisense/aqi-sense/internal/infra/llm/gemini"
	apperrors "github.com/aqisense/aqi-sense/pkg/errors"
)

// Service generates persona-specific health guidance from AQI context.
type Service interface {
	Generate(ctx context.Context, in Input) (Advice, error)
}

// TextGenerator is the LLM contract used for advice generation.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string, cfg gemini.GenerationConfig) (string, error)
}

type service struct {
	cfg       Config
	generator TextGenerator
	store     Store
	logger    *slog.Logger
}

// NewService wires up the advice domain.
func NewService(cfg Config, generator TextGenerator, store Store, logger *slog.Logger) Service {
	return &service{
		cfg:       cfg,
		generator: generator,
		store:     store,
		logger:    logger.With("component", "advice.service"),
	}
}

func (s *service) Generate(ctx context.Context, in Input) (Advice, error) {
	key := cacheKey(in.Snapshot.AQI, in.Persona)

	if cached, ok, err := s.store.Get(ctx, key); err != nil {
		s.logger.Warn("advice cache lookup failed", "key", key, "error", err)
	} else if ok {
		s.logger.Debug("advice cache hit", "key", key)
		return cached, nil
	}

	prompt := buildPrompt(in)
	raw, err := s.generator.GenerateContent(ctx, prompt, gemini.GenerationConfig{
		Temperature:      s.cfg.Temperature,
		TopK:             s.cfg.TopK,
		TopP:             s.cfg.TopP,
		MaxOutputTokens:  s.cfg.MaxOutputTokens,
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		switch {
		case errors.Is(err, gemini.ErrNotConfigured):
			return Advice{}, apperrors.Wrap(apperrors.CodeNotConfigured, "AI service is not configured, missing API key", err)
		case errors.Is(err, gemini.ErrRateLimited):
			return Advice{}, apperrors.Wrap(apperrors.CodeRateLimited, "AI provider rate limit exceeded", err)
		default:
			return Advice{}, apperrors.Wrap(apperrors.CodeUpstream, "AI advice generation failed", err)
		}
	}

	parsed, err := parseAdvice(raw)
	if err != nil {
		// Never cache a malformed response.
		return Advice{}, apperrors.Wrap(apperrors.CodeAdviceParse, "failed to parse AI response as JSON", err)
	}

	if err := s.store.Save(ctx, key, parsed, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("advice cache save failed", "key", key, "error", err)
	}
	return parsed, nil
}

func cacheKey(aqi int, persona Persona) string {
	return fmt.Sprintf("%d-%s", aqi, persona)
}

func parseAdvice(raw string) (Advice, error) {
	sanitized := strings.TrimSpace(raw)
	sanitized = strings.TrimPrefix(sanitized, "```json")
	sanitized = strings.TrimPrefix(sanitized, "```")
	sanitized = strings.TrimSuffix(sanitized, "```")
	sanitized = strings.TrimSpace(sanitized)

	var wire struct {
		Title           string          `json:"title"`
		Recommendations json.RawMessage `json:"recommendations"`
		Precaution      string          `json:"precaution"`
	}
	if err := json.Unmarshal([]byte(sanitized), &wire); err != nil {
		return Advice{}, err
	}
	if strings.TrimSpace(wire.Title) == "" {
		return Advice{}, errors.New("title missing")
	}
	if len(wire.Recommendations) == 0 || wire.Recommendations[0] != '[' {
		return Advice{}, errors.New("recommendations must be an array")
	}

	var recommendations []string
	if err := json.Unmarshal(wire.Recommendations, &recommendations); err != nil {
		return Advice{}, err
	}

	return Advice{
		Title:           wire.Title,
		Recommendations: recommendations,
		Precaution:      wire.Precaution,
	}, nil
}
