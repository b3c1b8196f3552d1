package discord

import (
	"errors"
	"net/http"
	"time"

	"donation-report-srv/pkg/log"
)

const (
	webhookBaseURL = "https://discord.com/api/webhooks"

	// Discord rejects descriptions longer than this.
	maxDescriptionLength = 4096

	colorInfo    = 0x3498DB
	colorSuccess = 0x2ECC71
	colorWarning = 0xF1C40F
	colorError   = 0xE74C3C
)

var errWebhookRequired = errors.New("discord: webhook id and token are required")

// Config contains configuration for Discord service.
type Config struct {
	Timeout         time.Duration
	RetryCount      int
	RetryDelay      time.Duration
	DefaultUsername string
}

// DefaultConfig returns the settings used by New.
func DefaultConfig() Config {
	return Config{
		Timeout:         10 * time.Second,
		RetryCount:      2,
		RetryDelay:      500 * time.Millisecond,
		DefaultUsername: "donation-report-srv",
	}
}

// discordImpl implements IDiscord.
type discordImpl struct {
	l       log.Logger
	webhook *DiscordWebhook
	config  Config
	client  *http.Client
	baseURL string
}

// MessageType defines different types of messages.
type MessageType string

const (
	MessageTypeInfo    MessageType = "info"
	MessageTypeSuccess MessageType = "success"
	MessageTypeWarning MessageType = "warning"
	MessageTypeError   MessageType = "error"
)

// EmbedField represents a field in a Discord embed.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// EmbedFooter represents the footer of a Discord embed.
type EmbedFooter struct {
	Text string `json:"text"`
}

// Embed represents a Discord embed message.
type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Footer      *EmbedFooter `json:"footer,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

// WebhookPayload represents the payload sent to Discord webhook.
type WebhookPayload struct {
	Content  string  `json:"content,omitempty"`
	Username string  `json:"username,omitempty"`
	Embeds   []Embed `json:"embeds,omitempty"`
}

// MessageOptions contains options for creating a message.
type MessageOptions struct {
	Type        MessageType
	Title       string
	Description string
	Fields      []EmbedField
	Footer      *EmbedFooter
	Timestamp   time.Time
}
