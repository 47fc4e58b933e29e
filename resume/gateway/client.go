// Package gateway is the thin client the editing session uses to persist a
// resume document through the backend. One document per authenticated
// principal: save always replaces, load returns ErrNotFound when nothing has
// been saved yet, and an authorization failure is surfaced separately so
// "you must log in" is never mistaken for "you have no resume".
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"resume-builder/resume/model"
)

var (
	// ErrNotFound means the principal has no saved document yet.
	ErrNotFound = errors.New("resume not found")

	// ErrUnauthorized means the bearer credential is missing or invalid.
	ErrUnauthorized = errors.New("unauthorized")
)

const resumePath = "/api/v1/resume"

// Client calls the resume backend. Token is consulted per request so a
// refreshed credential is picked up without rebuilding the client.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Token      func() string
}

// New builds a Client for the given base URL and token source.
func New(baseURL string, token func() string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
		Token:      token,
	}
}

// Save replaces the caller's stored document with the given snapshot.
func (c *Client) Save(ctx context.Context, r model.Resume) error {
	body, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode resume: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPut, bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return c.checkStatus(resp)
}

// Load fetches the caller's stored document.
func (c *Client) Load(ctx context.Context) (model.Resume, error) {
	resp, err := c.do(ctx, http.MethodGet, nil)
	if err != nil {
		return model.Resume{}, err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return model.Resume{}, err
	}

	var r model.Resume
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return model.Resume{}, fmt.Errorf("decode resume: %w", err)
	}
	return r.Normalize(), nil
}

// Delete removes the caller's stored document.
func (c *Client) Delete(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodDelete, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return c.checkStatus(resp)
}

func (c *Client) do(ctx context.Context, method string, body *bytes.Reader) (*http.Response, error) {
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, method, c.BaseURL+resumePath, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.BaseURL+resumePath, nil)
	}
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if c.Token != nil {
		if token := c.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("resume backend: %w", err)
	}
	return resp, nil
}

func (c *Client) checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	default:
		var envelope struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error.Message != "" {
			return fmt.Errorf("resume backend: %s (%s)", envelope.Error.Message, envelope.Error.Code)
		}
		return fmt.Errorf("resume backend: unexpected status %d", resp.StatusCode)
	}
}
