package whatsapp

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	"weddingrsvp/internal/domain"
)

// Config holds the Twilio WhatsApp credentials. The gateway is enabled only
// when all three values are present.
type Config struct {
	AccountSID string
	AuthToken  string
	From       string
}

// NewSender creates a Messenger from config. With complete credentials it
// sends through the Twilio WhatsApp API; otherwise it returns a disabled
// sender that skips every message instead of failing the caller.
func NewSender(cfg Config, logger *slog.Logger) domain.Messenger {
	if cfg.AccountSID == "" || cfg.AuthToken == "" || cfg.From == "" {
		logger.Warn("whatsapp gateway disabled: missing Twilio credentials")
		return &disabledSender{logger: logger}
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &twilioSender{
		client: client,
		from:   NormalizePhone(cfg.From),
		logger: logger,
	}
}

type twilioSender struct {
	client *twilio.RestClient
	from   string
	logger *slog.Logger
}

func (s *twilioSender) Enabled() bool { return true }

func (s *twilioSender) Send(ctx context.Context, toPhone, body string) error {
	to := NormalizePhone(toPhone)
	if to == "" {
		return fmt.Errorf("%w: empty phone number", domain.ErrInvalidInput)
	}
	params := &twilioapi.CreateMessageParams{}
	params.SetFrom("whatsapp:" + s.from)
	params.SetTo("whatsapp:" + to)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	sid := ""
	if resp.Sid != nil {
		sid = *resp.Sid
	}
	s.logger.Info("whatsapp message sent", "to", to, "sid", sid)
	return nil
}

type disabledSender struct {
	logger *slog.Logger
}

func (s *disabledSender) Enabled() bool { return false }

func (s *disabledSender) Send(ctx context.Context, toPhone, body string) error {
	s.logger.Debug("whatsapp message skipped, gateway disabled", "to", toPhone)
	return domain.ErrProviderUnavailable
}

// NormalizePhone reduces a phone number to E.164 form. Numbers without a
// country code are assumed Brazilian (local 10 or 11 digit numbers get the
// 55 prefix). An empty result means the input had no digits.
func NormalizePhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if d == "" {
		return ""
	}
	if strings.HasPrefix(phone, "+") {
		return "+" + d
	}
	if len(d) == 10 || len(d) == 11 {
		d = "55" + d
	}
	return "+" + d
}
