package service

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/config"
)

// RiskClient talks to the external ML risk-scoring service. It fails
// open: any error, timeout or disabled flag yields "no signal" so an
// unavailable collaborator never blocks ingest.
type RiskClient struct {
	logger *slog.Logger
	cfg    config.RiskConfig
	http   *http.Client
}

func NewRiskClient(logger *slog.Logger, cfg config.RiskConfig) *RiskClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &RiskClient{
		logger: logger,
		cfg:    cfg,
		http:   &http.Client{Timeout: timeout},
	}
}

type areaRiskRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type areaRiskResponse struct {
	RiskScore float64 `json:"risk_score"`
	RiskLevel string  `json:"risk_level"`
}

func (c *RiskClient) AreaRisk(ctx context.Context, lat, lng float64) (float64, bool) {
	if !c.cfg.Enabled || c.cfg.URL == "" {
		return 0, false
	}

	body, err := json.Marshal(areaRiskRequest{Latitude: lat, Longitude: lng})
	if err != nil {
		return 0, false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL+"/api/predict/area-risk", bytes.NewReader(body))
	if err != nil {
		c.logger.Warn("risk request build failed", slog.Any("error", err))
		return 0, false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("risk service unreachable", slog.Any("error", err))
		return 0, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("risk service error", slog.String("status", resp.Status))
		return 0, false
	}

	var out areaRiskResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.logger.Warn("risk response decode failed", slog.Any("error", err))
		return 0, false
	}

	return out.RiskScore, true
}
