// Package gateway is the HTTP client of the remote travel gateway.
//
// Every operation performs exactly one POST and returns nil when the call
// fails for any reason: transport error, non-2xx status, or a body that does
// not decode into the expected variant. Failures are logged, never returned.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/tether-travel/tether/internal/colors"
	"github.com/tether-travel/tether/internal/config"
	"github.com/tether-travel/tether/internal/domain"
	"github.com/tether-travel/tether/internal/logging"
)

const (
	headerSubscriptionKey = "Ocp-Apim-Subscription-Key"
	headerRequestID       = "X-Request-ID"

	defaultTimeout = 30 * time.Second
	maxBodyBytes   = 8 << 20
)

var errNoUser = errors.New("caller has no user id")

// Config holds the gateway location and credentials.
type Config struct {
	BaseURL         string
	SearchPath      string
	SavePath        string
	RetrievePath    string
	RemovePath      string
	SubscriptionKey string
	Timeout         time.Duration

	// MaxResponseBytes caps a reply body; a longer reply is a failed call.
	MaxResponseBytes int64
}

// ConfigFromGlobal builds a Config from the loaded configuration.
func ConfigFromGlobal() Config {
	return Config{
		BaseURL:          config.Get("gateway_url", "http://localhost:8000"),
		SearchPath:       config.Get("search_path", "/api/submitData"),
		SavePath:         config.Get("save_path", "/api/saveData"),
		RetrievePath:     config.Get("retrieve_path", "/api/retrieveData"),
		RemovePath:       config.Get("remove_path", "/api/removeData"),
		SubscriptionKey:  config.Get("subscription_key", ""),
		Timeout:          config.GetDuration("request_timeout", defaultTimeout),
		MaxResponseBytes: maxBodyBytes,
	}
}

// Client talks to the travel gateway.
type Client struct {
	httpClient *http.Client
	cfg        Config
	log        logging.Logger
	requestID  func() string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for failed calls.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// WithRequestIDFunc overrides how X-Request-ID values are generated.
func WithRequestIDFunc(fn func() string) Option {
	return func(c *Client) {
		c.requestID = fn
	}
}

// New creates a gateway client. A zero Timeout means 30 seconds and a zero
// MaxResponseBytes means 8 MiB.
func New(cfg Config, opts ...Option) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxResponseBytes <= 0 {
		cfg.MaxResponseBytes = maxBodyBytes
	}
	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		log:        logging.GetGlobal(),
		requestID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search submits q on behalf of p.
func (c *Client) Search(ctx context.Context, p *domain.Principal, q domain.Query) *domain.SearchResponse {
	if q == nil {
		c.log.Error("gateway: search without a query")
		return nil
	}
	d := q.Domain()
	body := map[string]any{string(d): q.Body()}

	var wire searchWire
	if !c.post(ctx, "search", d, c.cfg.SearchPath, p, body, &wire) {
		return nil
	}
	resp, err := wire.toResponse(d)
	if err != nil {
		logging.ForOp(c.log, "search", d).Error("gateway: unexpected search response", "error", err)
		return nil
	}
	return resp
}

// Save stores item in the user's saved list of d.
func (c *Client) Save(ctx context.Context, p *domain.Principal, d domain.Domain, item domain.SearchResult) *domain.Ack {
	if !d.Savable() {
		logging.ForOp(c.log, "save", d).Error("gateway: domain has no saved list")
		return nil
	}
	if !json.Valid(item) {
		logging.ForOp(c.log, "save", d).Error("gateway: item is not valid JSON")
		return nil
	}
	body := map[string]any{string(d): json.RawMessage(item)}

	var ack domain.Ack
	if !c.post(ctx, "save", d, c.cfg.SavePath, p, body, &ack) {
		return nil
	}
	return &ack
}

// Retrieve lists the items the user saved in d.
func (c *Client) Retrieve(ctx context.Context, p *domain.Principal, d domain.Domain) *domain.RetrieveResponse {
	if !d.Savable() {
		logging.ForOp(c.log, "retrieve", d).Error("gateway: domain has no saved list")
		return nil
	}
	body := map[string]any{"type": string(d)}

	var wire retrieveWire
	if !c.post(ctx, "retrieve", d, c.cfg.RetrievePath, p, body, &wire) {
		return nil
	}
	resp, err := wire.toResponse(d)
	if err != nil {
		logging.ForOp(c.log, "retrieve", d).Error("gateway: unexpected retrieve response", "error", err)
		return nil
	}
	return resp
}

// Remove deletes the saved item identified by itemID from d.
func (c *Client) Remove(ctx context.Context, p *domain.Principal, d domain.Domain, itemID string) *domain.Ack {
	if !d.Savable() || itemID == "" {
		logging.ForOp(c.log, "remove", d).Error("gateway: remove needs a savable domain and an item id", logging.FieldItemID, itemID)
		return nil
	}
	body := map[string]any{d.IDField(): itemID}

	var ack domain.Ack
	if !c.post(ctx, "remove", d, c.cfg.RemovePath, p, body, &ack) {
		return nil
	}
	return &ack
}

// post sends body with the caller's user_id merged in and decodes the reply
// into out. It reports whether the exchange succeeded.
func (c *Client) post(ctx context.Context, op string, d domain.Domain, path string, p *domain.Principal, body map[string]any, out any) (ok bool) {
	oplog := logging.ForOp(c.log, op, d)
	if p == nil || p.UserID == "" {
		oplog.Error("gateway: request rejected", "error", errNoUser)
		return false
	}
	body["user_id"] = p.UserID

	payload, err := json.Marshal(body)
	if err != nil {
		oplog.Error("gateway: encode request", "error", err)
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	reqURL := c.cfg.BaseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		oplog.Error("gateway: create request", "error", err)
		return false
	}
	requestID := c.requestID()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerRequestID, requestID)
	if c.cfg.SubscriptionKey != "" {
		req.Header.Set(headerSubscriptionKey, c.cfg.SubscriptionKey)
	}

	log := logging.ForRequest(c.log, op, d, requestID)
	defer func() {
		status := "failed"
		if ok {
			status = "ok"
		}
		colors.Trace(colors.Event{Op: op, Domain: string(d), RequestID: requestID, Status: status}, nil)
	}()
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("gateway request failed", "url", reqURL, "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Error("gateway returned an error status", "url", reqURL, "status", resp.StatusCode)
		return false
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.cfg.MaxResponseBytes+1))
	if err != nil {
		log.Error("gateway: read response", "error", err)
		return false
	}
	if int64(len(data)) > c.cfg.MaxResponseBytes {
		log.Error("gateway: response too large", "limit_bytes", c.cfg.MaxResponseBytes)
		return false
	}
	if len(bytes.TrimSpace(data)) == 0 {
		if _, isAck := out.(*domain.Ack); isAck {
			// Save and remove acknowledge with a bare 2xx on some deployments.
			log.Debug("gateway: empty acknowledgement", "status", resp.StatusCode)
			return true
		}
		log.Error("gateway: empty response body", "status", resp.StatusCode)
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Error("gateway: decode response", "error", err)
		return false
	}
	log.Debug("gateway request completed", "status", resp.StatusCode, "elapsed", time.Since(start).String())
	return true
}

// String describes the client for diagnostics.
func (c *Client) String() string {
	return fmt.Sprintf("gateway(%s)", c.cfg.BaseURL)
}
