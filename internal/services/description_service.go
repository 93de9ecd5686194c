// internal/services/description_service.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/seahome/seahome-backend/internal/config"
)

// FallbackDescription is returned whenever generation cannot complete. The
// call is best-effort enrichment and never blocks or fails listing creation.
const FallbackDescription = "Не удалось сгенерировать описание автоматически."

type DescriptionSource string

const (
	SourceGenerated DescriptionSource = "generated"
	SourceFallback  DescriptionSource = "fallback"
)

// DescriptionResult states explicitly which path produced the text, so
// callers and tests can tell a generated description from the fallback.
type DescriptionResult struct {
	Text   string            `json:"text"`
	Source DescriptionSource `json:"source"`
}

type DescribeRequest struct {
	Title         string   `json:"title" validate:"required"`
	Type          string   `json:"type"`
	Amenities     []string `json:"amenities"`
	DistanceToSea int      `json:"distance_to_sea"`
}

type DescriptionService struct {
	cfg    config.GeneratorConfig
	client *http.Client
}

func NewDescriptionService(cfg config.GeneratorConfig) *DescriptionService {
	return &DescriptionService{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Generate asks the generative-text API for a listing description. Any
// failure (missing credential, network error, bad status, malformed or empty
// response) degrades to the fixed fallback string; errors are logged for
// diagnostics only and never surfaced to the caller.
func (s *DescriptionService) Generate(ctx context.Context, req *DescribeRequest) DescriptionResult {
	if s.cfg.APIKey == "" {
		logrus.Debug("Description generation skipped: no API key configured")
		return DescriptionResult{Text: FallbackDescription, Source: SourceFallback}
	}

	prompt := fmt.Sprintf(
		"Напиши привлекательное описание для объявления о сдаче жилья у моря. "+
			"Название: %s. Тип: %s. Удобства: %s. Расстояние до моря: %d метров. "+
			"Стиль: дружелюбный, продающий, краткий. Без упоминания цены и контактов.",
		req.Title, req.Type, strings.Join(req.Amenities, ", "), req.DistanceToSea)

	body, err := json.Marshal(generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		logrus.WithError(err).Warn("Description generation failed: marshal")
		return DescriptionResult{Text: FallbackDescription, Source: SourceFallback}
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.cfg.BaseURL, s.cfg.Model, s.cfg.APIKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		logrus.WithError(err).Warn("Description generation failed: request")
		return DescriptionResult{Text: FallbackDescription, Source: SourceFallback}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		logrus.WithError(err).Warn("Description generation failed: transport")
		return DescriptionResult{Text: FallbackDescription, Source: SourceFallback}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logrus.WithField("status", resp.StatusCode).Warn("Description generation failed: bad status")
		return DescriptionResult{Text: FallbackDescription, Source: SourceFallback}
	}

	var parsed generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		logrus.WithError(err).Warn("Description generation failed: decode")
		return DescriptionResult{Text: FallbackDescription, Source: SourceFallback}
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		logrus.Warn("Description generation failed: empty response")
		return DescriptionResult{Text: FallbackDescription, Source: SourceFallback}
	}

	text := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return DescriptionResult{Text: FallbackDescription, Source: SourceFallback}
	}

	return DescriptionResult{Text: text, Source: SourceGenerated}
}
