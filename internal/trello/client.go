// Package trello is a minimal client for the Trello REST API.
package trello

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"cardtracker.app/api/common/logger"
	"cardtracker.app/api/common/metrics"
	"cardtracker.app/api/core/config"
)

const (
	actionsLimit = 1000
	maxErrorBody = 512
)

// API is the subset of Trello the tracker reads from.
type API interface {
	CardActions(ctx context.Context, cardID string) ([]Action, error)
	Card(ctx context.Context, cardID string) (*Card, error)
	List(ctx context.Context, listID string) (*List, error)
	BoardLists(ctx context.Context, boardID string) ([]List, error)
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	token      string
	metrics    *metrics.Recorder
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

func WithMetrics(r *metrics.Recorder) Option {
	return func(cl *Client) {
		cl.metrics = r
	}
}

// NewClient builds a client from cfg. Empty credentials are rejected.
func NewClient(cfg config.TrelloConfig, opts ...Option) (*Client, error) {
	if cfg.APIKey == "" || cfg.Token == "" {
		return nil, ErrMissingCredentials
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.trello.com/1"
	}

	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     cfg.APIKey,
		token:      cfg.Token,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// CardActions returns the card's action log, newest first as Trello orders it.
func (c *Client) CardActions(ctx context.Context, cardID string) ([]Action, error) {
	params := url.Values{}
	params.Set("filter", "all")
	params.Set("limit", fmt.Sprint(actionsLimit))

	var actions []Action
	if err := c.get(ctx, "card_actions", "/cards/"+url.PathEscape(cardID)+"/actions", params, &actions); err != nil {
		return nil, err
	}
	return actions, nil
}

func (c *Client) Card(ctx context.Context, cardID string) (*Card, error) {
	var card Card
	if err := c.get(ctx, "card", "/cards/"+url.PathEscape(cardID), nil, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (c *Client) List(ctx context.Context, listID string) (*List, error) {
	var list List
	if err := c.get(ctx, "list", "/lists/"+url.PathEscape(listID), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) BoardLists(ctx context.Context, boardID string) ([]List, error) {
	var lists []List
	if err := c.get(ctx, "board_lists", "/boards/"+url.PathEscape(boardID)+"/lists", nil, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

func (c *Client) get(ctx context.Context, op, path string, params url.Values, out any) error {
	sc := logger.StartSpan(ctx, "trello."+op, attribute.String("trello.path", path))
	defer sc.End()
	ctx = sc.Context()

	if params == nil {
		params = url.Values{}
	}
	params.Set("key", c.apiKey)
	params.Set("token", c.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return &FetchError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveUpstream(op, 0, time.Since(start))
		sc.RecordError(err)
		return &FetchError{Op: op, Err: redact(err, c.apiKey, c.token)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	c.metrics.ObserveUpstream(op, resp.StatusCode, time.Since(start))
	sc.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if err != nil {
		sc.RecordError(err)
		return &FetchError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("reading body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		fe := &FetchError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Body:       logger.Truncate(strings.TrimSpace(string(body)), maxErrorBody),
		}
		sc.RecordError(fe)
		slog.WarnContext(ctx, "trello request failed", "op", op, "status", resp.StatusCode)
		return fe
	}

	if err := json.Unmarshal(body, out); err != nil {
		sc.RecordError(err)
		return &FetchError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

// redact strips credentials from transport errors, which embed the request URL.
func redact(err error, secrets ...string) error {
	msg := err.Error()
	redacted := msg
	for _, s := range secrets {
		if s != "" {
			redacted = strings.ReplaceAll(redacted, s, "REDACTED")
		}
	}
	if redacted == msg {
		return err
	}
	return fmt.Errorf("%s", redacted)
}
