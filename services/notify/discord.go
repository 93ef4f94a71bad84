package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/vaibhavkumar/portfolio-api/model"
)

// embedColor is the decimal RGB color of the contact embed (Discord blue).
const embedColor = 3447003

// Dispatcher posts contact submissions to a Discord-style webhook. With no
// URL configured every dispatch is a silent no-op.
type Dispatcher struct {
	webhookURL string
	client     *http.Client
}

// NewDispatcher creates a dispatcher for the given webhook URL
func NewDispatcher(webhookURL string) *Dispatcher {
	return &Dispatcher{
		webhookURL: webhookURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type embedFooter struct {
	Text string `json:"text"`
}

type embed struct {
	Title     string       `json:"title"`
	Color     int          `json:"color"`
	Fields    []embedField `json:"fields"`
	Footer    embedFooter  `json:"footer"`
	Timestamp string       `json:"timestamp"`
}

type webhookPayload struct {
	Embeds []embed `json:"embeds"`
}

// DispatchContact delivers the contact message on a background goroutine.
// The triggering request never waits on it; delivery failures are logged
// and swallowed.
func (d *Dispatcher) DispatchContact(contact model.Contact) {
	if d.webhookURL == "" {
		return
	}

	go func() {
		if err := d.send(contact); err != nil {
			log.Printf("[NOTIFY] webhook delivery failed: %v", err)
		}
	}()
}

func (d *Dispatcher) send(contact model.Contact) error {
	payload := webhookPayload{
		Embeds: []embed{{
			Title: "New Contact Message",
			Color: embedColor,
			Fields: []embedField{
				{Name: "Name", Value: contact.Name},
				{Name: "Email", Value: contact.Email},
				{Name: "Message", Value: contact.Message},
			},
			Footer:    embedFooter{Text: "Portfolio contact form"},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode webhook payload: %w", err)
	}

	resp, err := d.client.Post(d.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	return nil
}
