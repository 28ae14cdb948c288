package monitoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/college-select/college-cli/internal/config"
)

// AlertType identifies the kind of alert.
type AlertType string

const (
	AlertUnrankableRate AlertType = "unrankable_rate"
	AlertEmptySelection AlertType = "empty_selection"
)

// Alert represents a single alert to be sent.
type Alert struct {
	Type      AlertType      `json:"type"`
	Severity  string         `json:"severity"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// Alerter evaluates a RunSnapshot against configured thresholds
// and sends alerts via webhook when thresholds are breached.
type Alerter struct {
	cfg    config.MetricsConfig
	client *http.Client
}

// NewAlerter creates a new Alerter with the given metrics config.
func NewAlerter(cfg config.MetricsConfig) *Alerter {
	return &Alerter{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Evaluate checks the snapshot against thresholds and returns any alerts.
func (a *Alerter) Evaluate(snap *RunSnapshot) []Alert {
	var alerts []Alert
	now := time.Now().UTC()

	// A high share of survivors without coordinates usually means the
	// geolocation registry is stale or its identifier column changed.
	if snap.Unrankable > 0 && snap.UnrankableRate > a.cfg.UnrankableRateThreshold {
		alerts = append(alerts, Alert{
			Type:     AlertUnrankableRate,
			Severity: "high",
			Message: fmt.Sprintf(
				"Unrankable rate %.1f%% exceeds threshold %.1f%% (%d of %d selected schools have no coordinates)",
				snap.UnrankableRate*100, a.cfg.UnrankableRateThreshold*100,
				snap.Unrankable, snap.Unrankable+snap.Ranked,
			),
			Details: map[string]any{
				"unrankable_rate": snap.UnrankableRate,
				"threshold":       a.cfg.UnrankableRateThreshold,
				"unrankable":      snap.Unrankable,
				"ranked":          snap.Ranked,
			},
			Timestamp: now,
		})
	}

	if snap.Ranked == 0 {
		alerts = append(alerts, Alert{
			Type:     AlertEmptySelection,
			Severity: "low",
			Message:  fmt.Sprintf("No school ranked out of %d joined records", snap.Joined),
			Details: map[string]any{
				"joined": snap.Joined,
				"stages": snap.Stages,
			},
			Timestamp: now,
		})
	}

	return alerts
}

// SendAlerts logs every alert and delivers it to the configured webhook URL.
// Returns the number of alerts successfully sent.
func (a *Alerter) SendAlerts(ctx context.Context, alerts []Alert) int {
	for _, alert := range alerts {
		zap.L().Warn("monitoring: "+alert.Message,
			zap.String("type", string(alert.Type)),
			zap.String("severity", alert.Severity),
		)
	}
	if a.cfg.WebhookURL == "" || len(alerts) == 0 {
		return 0
	}

	sent := 0
	for _, alert := range alerts {
		if err := a.sendWebhook(ctx, alert); err != nil {
			zap.L().Error("monitoring: failed to send alert",
				zap.String("type", string(alert.Type)),
				zap.Error(err),
			)
			continue
		}
		zap.L().Info("monitoring: alert sent",
			zap.String("type", string(alert.Type)),
			zap.String("severity", alert.Severity),
		)
		sent++
	}
	return sent
}

// sendWebhook posts a single alert to the webhook URL.
func (a *Alerter) sendWebhook(ctx context.Context, alert Alert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return eris.Wrap(err, "monitoring: marshal alert")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cfg.WebhookURL, bytes.NewReader(payload))
	if err != nil {
		return eris.Wrap(err, "monitoring: create webhook request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return eris.Wrap(err, "monitoring: webhook request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= 400 {
		return eris.Errorf("monitoring: webhook returned status %d", resp.StatusCode)
	}
	return nil
}
