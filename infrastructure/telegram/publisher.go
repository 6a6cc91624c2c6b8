package telegram

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

// Publisher posts job messages to a Telegram channel via the Bot API
type Publisher struct {
	cfg        *config.TelegramConfig
	siteURL    string
	httpClient *http.Client
}

func NewPublisher(cfg *config.TelegramConfig, site *config.SiteConfig) ports.ChannelPublisher {
	return &Publisher{
		cfg:     cfg,
		siteURL: strings.TrimRight(site.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (p *Publisher) Name() string {
	return "telegram"
}

func (p *Publisher) IsConfigured() bool {
	return p.cfg.BotToken != "" && p.cfg.ChannelID != ""
}

// apiResponse is the Bot API envelope; MessageID doubles as the delivery
// acknowledgment
type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
	Result      struct {
		MessageID int64 `json:"message_id"`
	} `json:"result"`
}

func (p *Publisher) Send(ctx context.Context, job *models.Job) (string, error) {
	if !p.IsConfigured() {
		return "", fmt.Errorf("telegram not configured")
	}

	message := p.formatMessage(job)

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", p.cfg.BotToken)
	payload := map[string]interface{}{
		"chat_id":                  p.cfg.ChannelID,
		"text":                     message,
		"parse_mode":               "HTML",
		"disable_web_page_preview": false,
	}

	body, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to send Telegram message", "error", err)
		return "", err
	}
	defer resp.Body.Close()

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("telegram API returned status %d", resp.StatusCode)
	}
	if !apiResp.OK {
		logger.ErrorContext(ctx, "Telegram API error", "status", resp.StatusCode, "description", apiResp.Description)
		return "", fmt.Errorf("telegram API error: %s", apiResp.Description)
	}

	return fmt.Sprintf("%d", apiResp.Result.MessageID), nil
}

// formatMessage picks a category-specific HTML template
func (p *Publisher) formatMessage(job *models.Job) string {
	jobURL := p.siteURL + "/jobs/" + job.Slug
	lastDate := "Check Notice"
	if job.LastDate != nil {
		lastDate = job.LastDate.Format("2 Jan 2006")
	}

	org := escapeHTML(job.Organization)
	post := escapeHTML(orDefault(job.PostName, job.Title))

	switch job.Category {
	case models.CategoryIT:
		return strings.Join([]string{
			"💻 <b>IT JOB OPENING</b>",
			"",
			"🏢 <b>Company:</b> " + org,
			"👨‍💻 <b>Role:</b> " + post,
			"💰 <b>Salary:</b> " + escapeHTML(orDefault(job.Salary, "Best in Industry")),
			"💼 <b>Experience:</b> " + escapeHTML(orDefault(job.Experience, "Freshers / Experienced")),
			"📍 <b>Location:</b> " + escapeHTML(orDefault(job.Location, "India")),
			"",
			"🔗 <b>Apply Now:</b>",
			jobURL,
			"",
			"#ITJobs #Software #Developer #Hiring",
		}, "\n")

	case models.CategoryBanking:
		return strings.Join([]string{
			"🏦 <b>BANK JOB ALERT</b>",
			"",
			"🏢 <b>Bank:</b> " + org,
			"📌 <b>Post:</b> " + post,
			"🎓 <b>Qualification:</b> " + escapeHTML(orDefault(job.Qualification, "Graduate")),
			"📍 <b>Location:</b> " + escapeHTML(orDefault(job.Location, "All India")),
			"📅 <b>Last Date:</b> " + lastDate,
			"",
			"🔗 <b>Full Details:</b>",
			jobURL,
			"",
			"#BankJobs #IBPS #SBI #RBI #Banking",
		}, "\n")

	case models.CategoryRailway:
		return strings.Join([]string{
			"🚂 <b>RAILWAY RECRUITMENT</b>",
			"",
			"🏢 <b>Organization:</b> " + org,
			"📌 <b>Post:</b> " + post,
			"📊 <b>Vacancies:</b> " + escapeHTML(orDefault(job.Vacancies, "Multiple")),
			"🎓 <b>Qualification:</b> " + escapeHTML(orDefault(job.Qualification, "See Notification")),
			"📅 <b>Last Date:</b> " + lastDate,
			"",
			"🔗 <b>Apply Online:</b>",
			jobURL,
			"",
			"#RailwayJobs #RRB #IndianRailways",
		}, "\n")

	case models.CategoryPolice, models.CategoryDefence:
		return strings.Join([]string{
			"🛡️ <b>DEFENCE/POLICE RECRUITMENT</b>",
			"",
			"🏢 <b>Organization:</b> " + org,
			"📌 <b>Post:</b> " + post,
			"📊 <b>Vacancies:</b> " + escapeHTML(orDefault(job.Vacancies, "Check Notice")),
			"🎓 <b>Qualification:</b> " + escapeHTML(orDefault(job.Qualification, "See Notification")),
			"📅 <b>Last Date:</b> " + lastDate,
			"",
			"🔗 <b>Full Notice:</b>",
			jobURL,
			"",
			"#Police #Defence #Army #CRPF #BSF",
		}, "\n")

	case models.CategoryPSU:
		return strings.Join([]string{
			"🏭 <b>PSU JOB NOTIFICATION</b>",
			"",
			"🏢 <b>PSU:</b> " + org,
			"📌 <b>Post:</b> " + post,
			"📊 <b>Vacancies:</b> " + escapeHTML(orDefault(job.Vacancies, "Multiple")),
			"💰 <b>Salary:</b> " + escapeHTML(orDefault(job.Salary, "As per PSU norms")),
			"📅 <b>Last Date:</b> " + lastDate,
			"",
			"🔗 <b>Apply:</b>",
			jobURL,
			"",
			"#PSU #NTPC #ONGC #BHEL #DRDO",
		}, "\n")

	case models.CategoryTeaching:
		return strings.Join([]string{
			"📚 <b>TEACHING JOB</b>",
			"",
			"🏫 <b>Organization:</b> " + org,
			"👨‍🏫 <b>Post:</b> " + post,
			"🎓 <b>Qualification:</b> " + escapeHTML(orDefault(job.Qualification, "B.Ed / M.Ed")),
			"📍 <b>Location:</b> " + escapeHTML(orDefault(job.Location, "India")),
			"📅 <b>Last Date:</b> " + lastDate,
			"",
			"🔗 <b>Apply:</b>",
			jobURL,
			"",
			"#TeachingJobs #Teacher #Faculty #KVS #NVS",
		}, "\n")

	case models.CategoryResult:
		return strings.Join([]string{
			"✅ <b>RESULT DECLARED</b>",
			"",
			"📝 <b>" + escapeHTML(job.Title) + "</b>",
			"🏢 <b>Organization:</b> " + org,
			"",
			"👉 <b>Check Result:</b>",
			orDefault(job.ApplyLink, jobURL),
			"",
			"#Result #ExamResult #" + strings.ReplaceAll(job.Organization, " ", ""),
		}, "\n")

	case models.CategoryAdmitCard:
		return strings.Join([]string{
			"🎫 <b>ADMIT CARD RELEASED</b>",
			"",
			"📝 <b>" + escapeHTML(job.Title) + "</b>",
			"🏢 <b>Organization:</b> " + org,
			"",
			"👉 <b>Download:</b>",
			orDefault(job.ApplyLink, jobURL),
			"",
			"#AdmitCard #HallTicket #Exam",
		}, "\n")
	}

	return strings.Join([]string{
		"🔥 <b>NEW JOB UPDATE</b>",
		"",
		"📌 <b>" + post + "</b>",
		"🏢 <b>Organization:</b> " + org,
		"🎓 <b>Qualification:</b> " + escapeHTML(orDefault(job.Qualification, "See Notification")),
		"🧑‍💼 <b>Experience:</b> " + escapeHTML(orDefault(job.Experience, "Freshers")),
		"📍 <b>Location:</b> " + escapeHTML(orDefault(job.Location, "All India")),
		"💰 <b>Salary:</b> " + escapeHTML(orDefault(job.Salary, "As per norms")),
		"📅 <b>Last Date:</b> " + lastDate,
		"",
		"👉 <b>Apply Here:</b>",
		jobURL,
		"",
		"🌐 More Jobs: " + p.siteURL,
	}, "\n")
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// escapeHTML escape HTML special characters for Telegram
func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
