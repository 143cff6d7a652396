package bravia

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"bravia/internal/logger"
)

const discoveryMethod = "getSupportedApiInfo"

// Client talks to a Sony Bravia device over its JSON-RPC control API.
// After construction the client holds only read-only state, so a single
// instance may be shared by concurrent callers.
type Client struct {
	httpClient *http.Client
	baseURL    string
	credential string
	support    capabilityCache
	logger     zerolog.Logger
}

// NewClient connects to the device at host (host or host:port) and
// discovers which services, APIs and versions it supports. The
// credential is the pre-shared key configured on the device; it may be
// empty, in which case protected APIs cannot be called. Construction
// fails when discovery fails or the device advertises no services.
func NewClient(host, credential string, debug bool) (*Client, error) {
	client := &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:    fmt.Sprintf("http://%s/sony/", host),
		credential: credential,
		logger:     logger.New(),
	}

	if debug {
		logger.SetLevel("debug")
	}

	services, err := client.Guide().GetSupportedAPIInfo(nil)
	if err != nil {
		return nil, fmt.Errorf("discover supported apis: %w", err)
	}
	client.support = buildCapabilityCache(services)

	return client, nil
}

// request describes one JSON-RPC exchange with the device.
type request struct {
	endpoint  string
	body      requestBody
	protected bool
	hasResult bool
	get       resultSelector
}

// do is the single choke point for all control API calls: it gates the
// call on the capability cache, attaches the credential, performs one
// HTTP round trip and classifies the response. It never retries.
func (c *Client) do(req request) (json.RawMessage, error) {
	// Discovery populates the cache and cannot be gated by it.
	if req.body.Method != discoveryMethod {
		if err := c.support.check(req.endpoint, req.body.Method, req.body.Version); err != nil {
			return nil, err
		}
	}

	auth := ""
	if req.protected {
		if c.credential == "" {
			return nil, fmt.Errorf("%w: %s/%s", ErrAuthRequired, req.endpoint, req.body.Method)
		}
		auth = c.credential
	}

	payload, err := json.Marshal(req.body)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}

	url := c.baseURL + req.endpoint
	httpReq, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create control request: %w", err)
	}
	httpReq.Header.Set("X-Auth-PSK", auth)
	httpReq.Header.Set("Content-Type", "application/json")

	c.logger.Debug().
		Str("url", url).
		Str("method", req.body.Method).
		Str("version", req.body.Version).
		RawJSON("payload", payload).
		Msg("Sending control API request")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("send control request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug().
			Int("status", resp.StatusCode).
			Str("method", req.body.Method).
			Msg("Control API request failed")
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	var parsed responseBody
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode response body: %w", err)
	}

	switch {
	case parsed.Error != nil:
		var apiErr APIError
		if err := json.Unmarshal(parsed.Error, &apiErr); err != nil {
			return nil, fmt.Errorf("decode device error: %w", err)
		}
		return nil, &apiErr
	case parsed.Result != nil:
		if !req.hasResult {
			// Some set APIs echo a result anyway; callers never use it.
			return nil, nil
		}
		var result []json.RawMessage
		if err := json.Unmarshal(parsed.Result, &result); err != nil {
			return nil, fmt.Errorf("decode result array: %w", err)
		}
		return req.get.extract(result)
	default:
		return nil, ErrInvalidResponse
	}
}
