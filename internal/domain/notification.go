package domain

import "context"

// Messenger sends a single outbound message to a phone number. Implementations
// wrap an external provider; a disabled gateway reports Enabled() == false and
// Send returns ErrProviderUnavailable.
type Messenger interface {
	Send(ctx context.Context, toPhone, body string) error
	Enabled() bool
}

// MessageRenderer renders a canned message template ("reminder", "thank_you",
// "venue_update", "gift_registry") with event data.
type MessageRenderer interface {
	Render(templateName string, data *MessageData) (string, error)
}

// MessageData is the data available to message templates.
type MessageData struct {
	GuestName string
	Venue     string
	Address   string
	Date      string
	Time      string
	RSVPLink  string
	GiftLink  string
}

// SendReport summarizes a bulk send. Failures never affect stored data.
type SendReport struct {
	Total   int          `json:"total"`
	Sent    int          `json:"sent"`
	Skipped int          `json:"skipped"`
	Failed  []SendFailure `json:"failed,omitempty"`
}

// SendFailure records one guest whose message could not be delivered.
type SendFailure struct {
	GuestID string `json:"guest_id"`
	Name    string `json:"name"`
	Reason  string `json:"reason"`
}

// NotificationService sends templated or custom messages to guests.
// Sending is fire-and-forget relative to data mutation: no repository write
// depends on the outcome.
type NotificationService interface {
	// SendToGuests renders templateName (or uses customMessage verbatim when
	// templateName is "custom") and sends it to each listed guest. Guests
	// without a phone number are counted as skipped. When the gateway is
	// disabled every send is skipped and the report notes the provider is off.
	SendToGuests(ctx context.Context, guestIDs []string, templateName, customMessage string) (*SendReport, error)
	// SendThankYou sends the post-confirmation thank-you to a single guest.
	SendThankYou(ctx context.Context, guest *Guest) error
	// Recipients lists the guests that can actually receive a message, i.e.
	// those with a phone number on file.
	Recipients(ctx context.Context) ([]*Guest, error)
	Enabled() bool
}
