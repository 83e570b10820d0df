package character

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	go_json "github.com/goccy/go-json"
	"golang.org/x/sync/singleflight"

	"github.com/garrettladley/dino/internal/xhttp"
)

const defaultTimeout = 5 * time.Second

type Client struct {
	Status StatusService

	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	timeout    time.Duration
	inflight   singleflight.Group
}

func New(baseURL string, opts ...Option) *Client {
	cfg := &clientConfig{
		timeout: defaultTimeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = xhttp.NewHTTPClient(
			xhttp.WithBaseTransport(cfg.transport),
			xhttp.WithTimeout(cfg.timeout),
		)
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     cfg.logger,
		timeout:    cfg.timeout,
	}

	c.Status = &statusService{client: c}

	return c
}

type clientConfig struct {
	httpClient *http.Client
	transport  http.RoundTripper
	logger     *slog.Logger
	timeout    time.Duration
}

type Option func(*clientConfig)

// WithHTTPClient replaces the default client entirely, including the dino
// transport headers.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *clientConfig) { cfg.httpClient = c }
}

func WithTransport(rt http.RoundTripper) Option {
	return func(cfg *clientConfig) { cfg.transport = rt }
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *clientConfig) { cfg.logger = logger }
}

func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) {
		if d > 0 {
			cfg.timeout = d
		}
	}
}

func (c *Client) do(ctx context.Context, method string, path string, result any) error {
	u := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	xhttp.SetRequestHeaderAcceptJSON(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseAPIError(resp)
	}

	if result != nil && resp.StatusCode != http.StatusNoContent {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading response: %w", err)
		}
		if err := go_json.NewDecoder(bytes.NewReader(body)).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w\nbody: %s", err, string(body))
		}
	}

	return nil
}
