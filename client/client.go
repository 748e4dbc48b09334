// Package client is the single entry point for all network calls:
// every resource module goes through Request, which attaches the
// bearer token, negotiates the body encoding and applies one uniform
// response-parsing and error-extraction policy.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fondajosmar/fonda-client/utils"
)

// TokenSource supplies the current bearer token. An empty string means
// no token and the Authorization header is omitted. The session store
// implements this.
type TokenSource interface {
	Token() string
}

// APIError carries the message extracted from a failed response.
// Error() returns the message verbatim so callers can surface it to
// the user unchanged.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

// Client wraps an http.Client with the session token source.
type Client struct {
	http   *http.Client
	tokens TokenSource
}

// New builds a Client. tokens may be nil for unauthenticated use.
func New(tokens TokenSource) *Client {
	return &Client{
		http:   &http.Client{Timeout: 30 * time.Second},
		tokens: tokens,
	}
}

// Options shape a single request. Method defaults to GET. ContentType
// is set on the request as-is when non-empty; when empty the client
// defaults to application/json. Multipart callers pass the writer's
// FormDataContentType so the boundary header is preserved and no JSON
// content-type is forced.
type Options struct {
	Method      string
	Body        io.Reader
	ContentType string
	Header      http.Header
}

// Request performs the call and returns the parsed body.
//
// The response body is read exactly once. On a non-2xx status the
// error message is extracted with the precedence: JSON "message" field,
// JSON "error" field, raw body text, "Error {status}". On success an
// empty body yields nil, a JSON content-type yields the decoded value
// (or the raw text when decoding fails), anything else yields the raw
// text.
func (c *Client) Request(ctx context.Context, url string, opts *Options) (interface{}, error) {
	resp, raw, err := c.do(ctx, url, opts)
	if err != nil {
		return nil, err
	}

	contentType := resp.Header.Get("Content-Type")
	if len(raw) == 0 {
		return nil, nil
	}
	if strings.Contains(contentType, "application/json") {
		var parsed interface{}
		if err := json.Unmarshal(raw, &parsed); err != nil {
			// Declared JSON but not parseable; hand back the text.
			return string(raw), nil
		}
		return parsed, nil
	}
	return string(raw), nil
}

// RequestBinary performs the call and returns the raw response bytes.
// Ticket PDFs are the one response type that must bypass the JSON/text
// branch.
func (c *Client) RequestBinary(ctx context.Context, url string, opts *Options) ([]byte, error) {
	_, raw, err := c.do(ctx, url, opts)
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// JSON marshals payload and performs a request with a JSON body.
// A nil payload sends no body.
func (c *Client) JSON(ctx context.Context, method, url string, payload interface{}) (interface{}, error) {
	opts := &Options{Method: method}
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		opts.Body = bytes.NewReader(body)
		opts.ContentType = "application/json"
	}
	return c.Request(ctx, url, opts)
}

func (c *Client) do(ctx context.Context, url string, opts *Options) (*http.Response, []byte, error) {
	if opts == nil {
		opts = &Options{}
	}
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, url, opts.Body)
	if err != nil {
		return nil, nil, err
	}
	for k, vs := range opts.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if opts.ContentType != "" {
		req.Header.Set("Content-Type", opts.ContentType)
	} else if req.Header.Get("Content-Type") == "" {
		// Every non-multipart request goes out as JSON; multipart
		// callers always pass the boundary-carrying content type.
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	// Single read; error formatting below works off this buffer.
	raw, readErr := io.ReadAll(resp.Body)
	if readErr != nil && resp.StatusCode < 400 {
		return nil, nil, readErr
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{
			Status:  resp.StatusCode,
			Message: extractMessage(resp, raw),
		}
		if utils.ErrorLogger != nil {
			utils.ErrorLogger.Errorf("%s %s -> %d: %s", method, url, resp.StatusCode, apiErr.Message)
		}
		return nil, nil, apiErr
	}
	return resp, raw, nil
}

// extractMessage implements the error-message precedence. Backends
// answer failures sometimes as {"message": ...}, sometimes as
// {"error": ...}, sometimes as plain text ("Empleado ya existe"),
// sometimes with an empty body.
func extractMessage(resp *http.Response, raw []byte) string {
	text := string(raw)
	if strings.Contains(resp.Header.Get("Content-Type"), "application/json") && len(raw) > 0 {
		var obj map[string]interface{}
		if err := json.Unmarshal(raw, &obj); err == nil {
			if msg, _ := obj["message"].(string); msg != "" {
				return msg
			}
			if msg, _ := obj["error"].(string); msg != "" {
				return msg
			}
		}
	}
	if text != "" {
		return text
	}
	return fmt.Sprintf("Error %d", resp.StatusCode)
}
