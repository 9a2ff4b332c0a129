package prideapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pridecenter/pride-backend/internal/wizard"
	"go.uber.org/zap"
)

// Client talks to the remote REST API that owns the center's data.
type Client struct {
	BaseURL string
	Token   string
	MockAPI bool
	client  *http.Client
	logger  *zap.Logger
}

// PublicEvent is an entry of the public event listing, used only for venue
// and city suggestions.
type PublicEvent struct {
	ID        string `json:"id"`
	VenueName string `json:"venue_name"`
	City      string `json:"city"`
	State     string `json:"state"`
	Address   string `json:"address"`
}

// Artist is a band or performer available for hire.
type Artist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Organization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Sponsor struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Tier    string `json:"tier"`
	Phone   string `json:"phone"`
	Website string `json:"website"`
	LogoURL string `json:"logo_url"`
}

// APIError is returned for any non-2xx answer.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("prideapi: %s %s: status %d", e.Method, e.Path, e.StatusCode)
}

type ctxKey struct{}

// WithRequestID makes outgoing calls made with ctx carry X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestIDFromContext returns the id set by WithRequestID, if any.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// NewClient creates a new REST API client
func NewClient(baseURL, token string, timeout time.Duration, mockAPI bool, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		MockAPI: mockAPI,
		client:  &http.Client{Timeout: timeout},
		logger:  logger.Named("prideapi"),
	}
}

// CreateEventSubmission posts a composed event to /event-submissions.
func (c *Client) CreateEventSubmission(ctx context.Context, payload wizard.Payload) error {
	if c.MockAPI {
		c.logger.Info("mock event submission accepted", zap.String("venue", payload.VenueName))
		return nil
	}
	return c.do(ctx, http.MethodPost, "/event-submissions", payload, nil)
}

// ListPublicEvents fetches /karaokeevents/public-all.
func (c *Client) ListPublicEvents(ctx context.Context) ([]PublicEvent, error) {
	if c.MockAPI {
		return mockPublicEvents(), nil
	}
	var events []PublicEvent
	if err := c.do(ctx, http.MethodGet, "/karaokeevents/public-all", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// ListBands fetches /hireband/public.
func (c *Client) ListBands(ctx context.Context) ([]Artist, error) {
	if c.MockAPI {
		return []Artist{{ID: "band-1", Name: "The Glitter Tones"}, {ID: "band-2", Name: "Velvet Static"}}, nil
	}
	var bands []Artist
	if err := c.do(ctx, http.MethodGet, "/hireband/public", nil, &bands); err != nil {
		return nil, err
	}
	return bands, nil
}

// GetOrganization fetches /api/pride/:id.
func (c *Client) GetOrganization(ctx context.Context, id string) (*Organization, error) {
	if id == "" {
		return nil, errors.New("prideapi: organization id is required")
	}
	if c.MockAPI {
		return &Organization{ID: id, Name: "Pride Center"}, nil
	}
	var org Organization
	if err := c.do(ctx, http.MethodGet, "/api/pride/"+url.PathEscape(id), nil, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

// ListSponsors fetches /sponsors.
func (c *Client) ListSponsors(ctx context.Context) ([]Sponsor, error) {
	if c.MockAPI {
		return []Sponsor{{ID: "s-1", Name: "Rainbow Credit Union", Tier: "gold", Phone: "5551234567", Website: "rainbowcu.org"}}, nil
	}
	var sponsors []Sponsor
	if err := c.do(ctx, http.MethodGet, "/sponsors", nil, &sponsors); err != nil {
		return nil, err
	}
	return sponsors, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("prideapi: encode %s body: %w", path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("prideapi: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	if id := RequestIDFromContext(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return fmt.Errorf("prideapi: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("request done",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &APIError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: string(snippet)}
	}
	if out == nil {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("prideapi: read %s: %w", path, err)
	}
	return decode(raw, out)
}

// decode accepts both a bare JSON value and one wrapped in {"data": ...}.
func decode(raw []byte, out interface{}) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}
	if trimmed[0] == '{' {
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err == nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
			trimmed = envelope.Data
		}
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return fmt.Errorf("prideapi: decode response: %w", err)
	}
	return nil
}

func mockPublicEvents() []PublicEvent {
	return []PublicEvent{
		{ID: "e-1", VenueName: "The Rainbow Room", City: "Springfield", State: "IL"},
		{ID: "e-2", VenueName: "Velvet Lounge", City: "Chicago", State: "IL"},
	}
}
