// Package client executes endpoint descriptors against the rides API and
// resolves every call to exactly one Response, whether the call produced an
// HTTP response or died in transport.
package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v3"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	"github.com/voyago/rides-go-sdk/internal/common/core"
	"github.com/voyago/rides-go-sdk/internal/common/logger"
	"github.com/voyago/rides-go-sdk/pkg/apierror"
	"github.com/voyago/rides-go-sdk/pkg/config"
	"github.com/voyago/rides-go-sdk/pkg/endpoint"
)

//go:generate mockgen --build_flags=--mod=mod --destination mock/transport.go -package mock . Transport

// Transport is the minimal sender the executor needs. *http.Client satisfies
// it; tests inject mocks or URL-rewriting wrappers.
type Transport interface {
	Do(req *http.Request) (*http.Response, error)
}

// Response is the uniform result of one executed request. StatusCode and
// RawBody are populated whenever an HTTP response was received, regardless
// of status; Err is populated for any status outside [200,299] and for
// transport failures (in which case StatusCode is 0).
type Response struct {
	StatusCode int
	RawBody    []byte
	Err        *apierror.Error
}

type Client struct {
	// Transport is exported so callers can swap in an instrumented or
	// test sender without rebuilding the client.
	Transport Transport

	cfg *config.Config
	log *logger.Logger
}

func New(cfg *config.Config, log *logger.Logger) *Client {
	return &Client{
		Transport: &http.Client{Timeout: 30 * time.Second},
		cfg:       cfg,
		log:       log,
	}
}

// Execute runs one descriptor and always returns a non-nil Response; it
// never panics for ordinary failures. The host is resolved fresh from the
// configuration, so a config change affects the next call, never one that is
// already in flight.
func (c *Client) Execute(ctx context.Context, d endpoint.Descriptor) *Response {
	reqURL, err := c.buildURL(d)
	if err != nil {
		c.log.Error("Failed to build request URL", zap.String("path", d.Path()), zap.Error(err))
		return &Response{Err: apierror.Transport(err)}
	}

	body, err := endpoint.BodyOf(d)
	if err != nil {
		c.log.Error("Failed to encode request body", zap.String("path", d.Path()), zap.Error(err))
		return &Response{Err: apierror.Transport(core.ErrFailedToMarshalBody.WithArgs(err))}
	}

	requestID := ""
	if id, err := uuid.NewV4(); err == nil {
		requestID = id.String()
	}

	attempt := func() (*http.Response, error) {
		var reqBody io.Reader
		if body != nil {
			reqBody = bytes.NewReader(body)
		}

		req, err := http.NewRequestWithContext(ctx, d.Method(), reqURL, reqBody)
		if err != nil {
			return nil, backoff.Permanent(core.ErrFailedToBuildRequest.WithArgs(err))
		}

		req.Header.Set("Accept", "application/json")
		if requestID != "" {
			req.Header.Set("X-Request-Id", requestID)
		}
		for key, value := range endpoint.HeadersOf(d) {
			req.Header.Set(key, value)
		}
		// Set last so no descriptor header can override it.
		if token := c.cfg.ServerToken; token != "" {
			req.Header.Set("Authorization", "Token "+token)
		}

		return c.Transport.Do(req)
	}

	httpResp, err := c.roundTrip(ctx, attempt)
	if err != nil {
		c.log.Warn("Transport failure",
			zap.String("method", d.Method()),
			zap.String("path", d.Path()),
			zap.String("requestID", requestID),
			zap.Error(err))
		return &Response{Err: apierror.Transport(err)}
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return &Response{
			StatusCode: httpResp.StatusCode,
			Err:        apierror.Transport(core.ErrFailedToReadResponseBody.WithArgs(err)),
		}
	}

	resp := &Response{StatusCode: httpResp.StatusCode, RawBody: raw}
	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		resp.Err = apierror.Classify(httpResp.StatusCode, raw)
		c.log.Debug("Request failed",
			zap.String("method", d.Method()),
			zap.String("path", d.Path()),
			zap.String("requestID", requestID),
			zap.Int("status", httpResp.StatusCode),
			zap.String("kind", resp.Err.Kind.String()))
	}
	return resp
}

// ExecuteAsync runs the descriptor in its own goroutine and delivers exactly
// one Response on the returned channel, then closes it.
func (c *Client) ExecuteAsync(ctx context.Context, d endpoint.Descriptor) <-chan *Response {
	ch := make(chan *Response, 1)
	go func() {
		defer close(ch)
		ch <- c.Execute(ctx, d)
	}()
	return ch
}

// roundTrip performs the transport call, retrying transport-level failures
// with exponential backoff when the configuration opts in. Classified HTTP
// errors are never retried; the caller owns any policy for those.
func (c *Client) roundTrip(ctx context.Context, attempt func() (*http.Response, error)) (*http.Response, error) {
	if c.cfg.RetryMode != core.Backoff {
		return attempt()
	}

	var resp *http.Response
	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = c.cfg.RetryMaxTime

	err := backoff.Retry(func() error {
		var err error
		resp, err = attempt()
		return err
	}, backoff.WithContext(policy, ctx))
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// buildURL resolves host + path + query into the final request URL. The
// query keeps the descriptor's parameter order; values are percent-encoded
// here and nowhere else.
func (c *Client) buildURL(d endpoint.Descriptor) (string, error) {
	u, err := url.Parse(endpoint.Host(c.cfg))
	if err != nil {
		return "", core.ErrFailedToParseURL.WithArgs(err)
	}
	u.Path = d.Path()

	if query := d.Query(); len(query) > 0 {
		var raw strings.Builder
		for i, p := range query {
			if i > 0 {
				raw.WriteByte('&')
			}
			raw.WriteString(url.QueryEscape(p.Name))
			raw.WriteByte('=')
			raw.WriteString(url.QueryEscape(p.Value))
		}
		u.RawQuery = raw.String()
	}

	return u.String(), nil
}
