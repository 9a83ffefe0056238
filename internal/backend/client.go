// internal/backend/client.go
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/anvogue/anvogue-admin/internal/config"
	"github.com/anvogue/anvogue-admin/internal/payload"
)

// ErrMalformedResponse means the backend answered 2xx with a body that is not the expected
// entity.
var ErrMalformedResponse = errors.New("malformed backend response")

// APIError is a non-2xx answer. Message is the first backend message when it sent a list.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

// Client talks to the catalog backend. It is safe for concurrent use.
type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
	log     *logrus.Entry
}

func NewClient(cfg config.BackendConfig, log *logrus.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.Timeout) * time.Second).
		SetHeader("Accept", "application/json")

	c := &Client{
		http: httpClient,
		log:  log.WithField("component", "backend"),
	}
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	return c
}

type tokenKey struct{}

// WithToken attaches the caller's bearer token; every request made with ctx forwards it.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func TokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// request describes one call. pathParams fill {placeholders} in path.
type request struct {
	method     string
	path       string
	pathParams map[string]string
	body       *payload.Payload
	rawBody    interface{}
}

// do executes r and decodes a 2xx body into out when out is not nil.
func (c *Client) do(ctx context.Context, r request, out interface{}) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
	}

	req := c.http.R().SetContext(ctx)
	if token := TokenFrom(ctx); token != "" {
		req.SetAuthToken(token)
	}
	if len(r.pathParams) > 0 {
		req.SetPathParams(r.pathParams)
	}
	switch {
	case r.body != nil:
		if err := encode(req, r.body); err != nil {
			return fmt.Errorf("encode %s %s: %w", r.method, r.path, err)
		}
	case r.rawBody != nil:
		req.SetHeader("Content-Type", "application/json").SetBody(r.rawBody)
	}

	start := time.Now()
	resp, err := req.Execute(r.method, r.path)
	if err != nil {
		c.log.WithError(err).WithFields(logrus.Fields{
			"method": r.method,
			"path":   r.path,
		}).Warn("Backend request failed")
		return fmt.Errorf("%s %s: %w", r.method, r.path, err)
	}

	c.log.WithFields(logrus.Fields{
		"method":   r.method,
		"path":     r.path,
		"status":   resp.StatusCode(),
		"duration": time.Since(start).Milliseconds(),
	}).Debug("Backend request completed")

	if !resp.IsSuccess() {
		return &APIError{
			StatusCode: resp.StatusCode(),
			Message:    extractMessage(resp.Body(), resp.StatusCode()),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrMalformedResponse, r.method, r.path, err)
	}
	return nil
}

// encode writes p as multipart when it carries a file and as JSON otherwise.
func encode(req *resty.Request, p *payload.Payload) error {
	if !p.Multipart() {
		req.SetHeader("Content-Type", "application/json").SetBody(p.JSON())
		return nil
	}

	data, err := p.FormData()
	if err != nil {
		return err
	}
	req.SetMultipartFormData(data)
	for _, f := range p.Files {
		req.SetMultipartField(f.Field, f.Upload.Filename, f.Upload.ContentType, bytes.NewReader(f.Upload.Data))
	}
	return nil
}

// extractMessage reads {"message": string | []string}; a list yields its first element.
func extractMessage(body []byte, status int) string {
	var envelope struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Message) > 0 {
		var single string
		if err := json.Unmarshal(envelope.Message, &single); err == nil && single != "" {
			return single
		}
		var list []string
		if err := json.Unmarshal(envelope.Message, &list); err == nil && len(list) > 0 {
			return list[0]
		}
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return fmt.Sprintf("status %d", status)
}
