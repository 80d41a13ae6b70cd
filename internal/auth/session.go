// Package auth resolves the signed-in principal and keeps it fresh.
package auth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/tether-travel/tether/internal/config"
	"github.com/tether-travel/tether/internal/domain"
	"github.com/tether-travel/tether/internal/logging"
)

const maxPrincipalBytes = 1 << 20

// Checker reports the current principal, or nil when nobody is signed in
// or the check failed.
type Checker interface {
	Principal(ctx context.Context) *domain.Principal
}

// SessionClient asks the session endpoint who is signed in.
type SessionClient struct {
	httpClient *http.Client
	url        string
	cookie     string
	log        logging.Logger
}

var _ Checker = (*SessionClient)(nil)

// SessionOption configures a SessionClient.
type SessionOption func(*SessionClient)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) SessionOption {
	return func(c *SessionClient) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for failed checks.
func WithLogger(l logging.Logger) SessionOption {
	return func(c *SessionClient) {
		c.log = l
	}
}

// NewSessionClient creates a client for the session endpoint at url.
// cookie, when set, is sent verbatim as the Cookie header.
func NewSessionClient(url, cookie string, timeout time.Duration, opts ...SessionOption) *SessionClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	c := &SessionClient{
		httpClient: &http.Client{Timeout: timeout},
		url:        url,
		cookie:     cookie,
		log:        logging.GetGlobal(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type sessionWire struct {
	ClientPrincipal *domain.Principal `json:"clientPrincipal"`
}

// Principal returns the signed-in principal. Any failure, including a
// signed-out session, yields nil.
func (c *SessionClient) Principal(ctx context.Context) *domain.Principal {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		c.log.Error("auth: create request", "error", err)
		return nil
	}
	req.Header.Set("Accept", "application/json")
	if c.cookie != "" {
		req.Header.Set("Cookie", c.cookie)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("auth: session check failed", "url", c.url, "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("auth: session endpoint returned an error status", "status", resp.StatusCode)
		return nil
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPrincipalBytes))
	if err != nil {
		c.log.Warn("auth: read session response", "error", err)
		return nil
	}
	var wire sessionWire
	if err := json.Unmarshal(data, &wire); err != nil {
		c.log.Warn("auth: decode session response", "error", err)
		return nil
	}
	if wire.ClientPrincipal == nil || wire.ClientPrincipal.UserID == "" {
		c.log.Debug("auth: no signed-in principal")
		return nil
	}
	return wire.ClientPrincipal
}

// StaticChecker always reports the same principal.
type StaticChecker struct {
	principal *domain.Principal
}

var _ Checker = (*StaticChecker)(nil)

// NewStaticChecker creates a checker for a fixed user id.
func NewStaticChecker(userID string) *StaticChecker {
	if userID == "" {
		return &StaticChecker{}
	}
	return &StaticChecker{principal: &domain.Principal{
		UserID:           userID,
		UserDetails:      userID,
		IdentityProvider: "config",
	}}
}

func (s *StaticChecker) Principal(context.Context) *domain.Principal {
	if s.principal == nil {
		return nil
	}
	p := *s.principal
	return &p
}

// CheckerFromConfig returns a static checker when user_id is configured
// and a session client for auth_url otherwise.
func CheckerFromConfig() Checker {
	if userID := config.Get("user_id", ""); userID != "" {
		return NewStaticChecker(userID)
	}
	return NewSessionClient(
		config.Get("auth_url", ""),
		config.Get("session_cookie", ""),
		config.GetDuration("request_timeout", 30*time.Second),
	)
}
