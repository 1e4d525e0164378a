// Package directions is a typed client for the Google routes web
// service: it builds the request payload, issues a single HTTP call and
// maps the JSON response into an immutable Route -> Leg -> Step graph.
package directions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/routemark/directions/pkg/httpclient"
	"github.com/routemark/directions/pkg/logger"
	"go.uber.org/zap"
)

const (
	defaultBaseURL    = "https://routes.googleapis.com"
	computeRoutesPath = "/directions/v2:computeRoutes"

	// DefaultFieldMask restricts the response to the fields this
	// library's callers consume, keeping payloads small. Set a wider
	// mask via Config.FieldMask when more of the graph is needed.
	DefaultFieldMask = "routes.legs.steps.startLocation,routes.legs.steps.navigationInstruction"

	apiKeyHeader    = "X-Goog-Api-Key"
	fieldMaskHeader = "X-Goog-FieldMask"
)

// Config holds per-client configuration. The API key lives on the client
// it configures; there is no package-level key state.
type Config struct {
	APIKey    string
	BaseURL   string
	FieldMask string
	Timeout   time.Duration
}

// Client issues route requests against the routes service.
type Client struct {
	apiKey    string
	fieldMask string
	http      *httpclient.Client
}

// NewClient creates a client from the given configuration, filling in
// defaults for everything but the API key.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	fieldMask := cfg.FieldMask
	if fieldMask == "" {
		fieldMask = DefaultFieldMask
	}

	return &Client{
		apiKey:    cfg.APIKey,
		fieldMask: fieldMask,
		http:      httpclient.NewClient(baseURL, timeout),
	}
}

// Routes requests routes between origin and destination and maps the
// response into the typed route graph. Mapping and decode failures are
// surfaced as typed errors; no partial Result is ever returned.
func (c *Client) Routes(ctx context.Context, req *RouteRequest) (*Result, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	headers := map[string]string{
		apiKeyHeader:    c.apiKey,
		fieldMaskHeader: c.fieldMask,
	}

	logger.Debug("routes request",
		zap.String("mode", string(req.Mode)),
		zap.Bool("alternatives", req.Alternatives))

	started := time.Now()
	result, err := c.routes(ctx, req, headers)
	observeRouteRequest(time.Since(started), err)
	return result, err
}

func (c *Client) routes(ctx context.Context, req *RouteRequest, headers map[string]string) (*Result, error) {
	body, err := c.http.Post(ctx, computeRoutesPath, req.body(), headers)
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) {
			return nil, &TransportError{
				StatusCode: httpErr.StatusCode,
				Status:     httpErr.Status,
				Err:        err,
			}
		}
		return nil, &TransportError{Err: err}
	}

	doc, err := decodeDocument(body)
	if err != nil {
		return nil, err
	}

	return MapResult(doc)
}

// decodeDocument parses the raw response with UseNumber so the mapper
// sees numbers before any float coercion.
func decodeDocument(body []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, &ShapeError{Field: "body", Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}
	return doc, nil
}
