package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"goldencitizen-backend/internal/api"
	"goldencitizen-backend/internal/apperrors"
	"goldencitizen-backend/internal/config"
	"goldencitizen-backend/internal/logger"
)

// Client talks to the Content API. Every request target is built from the
// single configured base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        logger.Logger
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

func WithLogger(l logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

func New(cfg *config.ClientConfig, opts ...Option) *Client {
	c := &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		log:        logger.NewNoOpLogger(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// GetCompanyProfile fetches GET /api/company-info.
func (c *Client) GetCompanyProfile(ctx context.Context) (*api.CompanyInfo, error) {
	var info api.CompanyInfo
	if err := c.do(ctx, http.MethodGet, api.PathCompanyInfo, nil, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// ListProperties fetches GET /api/properties in store order.
func (c *Client) ListProperties(ctx context.Context) ([]api.Property, error) {
	var props []api.Property
	if err := c.do(ctx, http.MethodGet, api.PathProperties, nil, nil, &props); err != nil {
		return nil, err
	}
	return props, nil
}

// SubmitLead posts the contact form. idempotencyKey may be empty.
func (c *Client) SubmitLead(ctx context.Context, req api.ContactRequest, idempotencyKey string) (*api.ContactResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, apperrors.Internal("istek hazırlanamadı", err)
	}
	headers := map[string]string{"Content-Type": "application/json"}
	if idempotencyKey != "" {
		headers[api.HeaderIdempotencyKey] = idempotencyKey
	}

	var resp api.ContactResponse
	if err := c.do(ctx, http.MethodPost, api.PathContact, bytes.NewReader(body), headers, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, apperrors.ServiceUnavailable("iletişim formu kabul edilmedi", nil)
	}
	return &resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, headers map[string]string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return apperrors.Internal("istek oluşturulamadı", err)
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WithError(err).Warn("API isteği başarısız", map[string]interface{}{"method": method, "path": path})
		return apperrors.ServiceUnavailable("sunucuya ulaşılamadı", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.ServiceUnavailable("yanıt okunamadı", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp.StatusCode, raw)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return apperrors.ServiceUnavailable("yanıt çözümlenemedi", err)
	}
	return nil
}

// statusError maps a non-2xx answer back onto the shared taxonomy.
func statusError(status int, raw []byte) error {
	var body api.ErrorResponse
	_ = json.Unmarshal(raw, &body)
	msg := body.Error
	if msg == "" {
		msg = http.StatusText(status)
	}

	switch {
	case status == http.StatusNotFound:
		return apperrors.NotFound(msg)
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return apperrors.Validation(body.Field, msg)
	default:
		return apperrors.ServiceUnavailable(msg, fmt.Errorf("HTTP %d", status))
	}
}
