package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"jobupdate/domain/models"
	"jobupdate/domain/ports"
	"jobupdate/pkg/config"
	"jobupdate/pkg/logger"
)

// Publisher posts job messages to a WhatsApp channel through a gateway API
type Publisher struct {
	cfg        *config.WhatsAppConfig
	siteURL    string
	httpClient *http.Client
}

func NewPublisher(cfg *config.WhatsAppConfig, site *config.SiteConfig) ports.ChannelPublisher {
	return &Publisher{
		cfg:     cfg,
		siteURL: strings.TrimRight(site.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (p *Publisher) Name() string {
	return "whatsapp"
}

func (p *Publisher) IsConfigured() bool {
	return p.cfg.APIURL != "" && p.cfg.AccessToken != "" && p.cfg.ChannelID != ""
}

type apiResponse struct {
	Sent    bool   `json:"sent"`
	ID      string `json:"id"`
	Message string `json:"message"`
}

func (p *Publisher) Send(ctx context.Context, job *models.Job) (string, error) {
	if !p.IsConfigured() {
		return "", fmt.Errorf("whatsapp not configured")
	}

	payload := map[string]interface{}{
		"to":   p.cfg.ChannelID,
		"body": p.formatMessage(job),
	}

	body, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, "POST", p.cfg.APIURL, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.cfg.AccessToken)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to send WhatsApp message", "error", err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.ErrorContext(ctx, "WhatsApp gateway error", "status", resp.StatusCode)
		return "", fmt.Errorf("whatsapp gateway returned status %d", resp.StatusCode)
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		// some gateways return an empty body on success
		return "", nil
	}
	if apiResp.Message != "" && !apiResp.Sent && apiResp.ID == "" {
		return "", fmt.Errorf("whatsapp gateway error: %s", apiResp.Message)
	}

	return apiResp.ID, nil
}

// formatMessage uses WhatsApp *bold* markup, kept shorter than the
// Telegram templates
func (p *Publisher) formatMessage(job *models.Job) string {
	jobURL := p.siteURL + "/jobs/" + job.Slug

	return strings.Join([]string{
		"📢 *NEW JOB ALERT*",
		"",
		"*Organization:* " + job.Organization,
		"*Post:* " + job.Title,
		"*Qualification:* " + orDefault(job.Qualification, "See Notification"),
		"*Location:* " + orDefault(job.Location, "India"),
		"",
		"🔗 *Details & Apply:*",
		jobURL,
	}, "\n")
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
