// Package api implements the client side of the backend REST contract: the
// authorized request pipeline and one typed collaborator per endpoint
// group. Every response is decoded against the endpoint's declared schema;
// a mismatch fails fast with domain.ErrBadResponse instead of guessing at
// alternative field names.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hardwarehub/storefront/internal/core/domain"
	"github.com/hardwarehub/storefront/internal/core/ports"
)

// Client carries the base URL and the pipeline-equipped HTTP client shared
// by all collaborators.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient builds a Client whose transport injects the bearer token from
// creds and reacts to 401 by clearing it and firing onUnauthorized.
func NewClient(baseURL string, creds ports.CredentialStore, onUnauthorized func(), log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: NewTransport(nil, creds, onUnauthorized, log),
		},
		log: log,
	}
}

// envelope is the backend's uniform response shape.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
	Data    T      `json:"data,omitempty"`
	Count   int    `json:"count,omitempty"`
}

// do performs one round-trip and decodes the response envelope. Failure
// taxonomy:
//   - transport fault: returned as-is (callers map it to a generic message)
//   - 4xx/5xx with a body: *domain.APIError carrying the server message
//   - 2xx that does not decode, or success=false: domain.ErrBadResponse
func do[T any](ctx context.Context, c *Client, method, path string, body any) (*envelope[T], error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, apiError(resp.StatusCode, raw)
	}

	var env envelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", domain.ErrBadResponse, method, path, err)
	}
	if !env.Success {
		// A 2xx claiming failure is contract drift, not a user-facing error.
		return nil, fmt.Errorf("%w: %s %s: success=false with status %d",
			domain.ErrBadResponse, method, path, resp.StatusCode)
	}
	return &env, nil
}

// apiError extracts the server's message from an error body. Bodies that do
// not parse still yield an APIError with the bare status.
func apiError(status int, raw []byte) error {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	_ = json.Unmarshal(raw, &body)
	msg := body.Message
	if msg == "" {
		msg = body.Error
	}
	return &domain.APIError{Status: status, Message: msg}
}

// query renders url.Values as a path suffix, or "" when empty.
func query(v url.Values) string {
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}
