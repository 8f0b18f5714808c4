package whatsapp

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"weddingrsvp/internal/domain"
)

//go:embed templates/*.txt
var templateFS embed.FS

// messageRenderer implements domain.MessageRenderer using embedded template files.
type messageRenderer struct{}

// NewMessageRenderer returns a MessageRenderer that loads the canned wedding
// messages from the embedded templates folder.
func NewMessageRenderer() domain.MessageRenderer {
	return &messageRenderer{}
}

// Render executes the named template (e.g. "reminder") with data and returns
// the message body.
func (r *messageRenderer) Render(templateName string, data *domain.MessageData) (string, error) {
	raw, err := templateFS.ReadFile("templates/" + templateName + ".txt")
	if err != nil {
		return "", fmt.Errorf("%w: unknown message template %q", domain.ErrInvalidInput, templateName)
	}
	t, err := template.New(templateName).Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf("parse template %q: %w", templateName, err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template %q: %w", templateName, err)
	}
	return strings.TrimSpace(buf.String()) + "\n", nil
}
