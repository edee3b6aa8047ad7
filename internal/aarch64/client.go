package aarch64

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/natesales/ansible-module-aarch64-vm/internal/logging"

	"go.uber.org/zap"
)

// Client talks to the aarch64.com console API. Every operation maps to
// exactly one HTTP request: there are no retries and no pagination.
type Client struct {
	apiKey     string
	server     string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithServer points the client at a different console API base URL
// (self-hosted consoles, tests).
func WithServer(server string) Option {
	return func(c *Client) {
		c.server = server
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates an API client authenticating with apiKey.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey: apiKey,
		server: DefaultServer,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// do sends a single request and returns the decoded response envelope.
func (c *Client) do(ctx context.Context, method, path string, body any) (*envelope, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.server+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	// The console expects the key as the raw Authorization value, no scheme
	req.Header.Set("Authorization", c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logging.Logger().Debug("Sending API request",
		zap.String("method", method),
		zap.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logging.Logger().Debug("API returned non-OK status",
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode))
		return nil, &TransportError{StatusCode: resp.StatusCode}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &DecodeError{Err: err}
	}

	logging.Logger().Debug("Received API response",
		zap.String("path", path),
		zap.Bool("success", env.Meta.Success),
		zap.String("message", logging.Truncate(env.Meta.Message)))

	if !env.Meta.Success {
		return nil, &APIError{Message: env.Meta.Message}
	}

	return &env, nil
}

// ListProjects returns the projects visible to the API key.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	env, err := c.do(ctx, http.MethodGet, pathProjects, nil)
	if err != nil {
		return nil, err
	}

	var projects []Project
	if err := json.Unmarshal(env.Data, &projects); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return projects, nil
}

// CreateProject creates a project named name and returns the raw project
// document.
func (c *Client) CreateProject(ctx context.Context, name string) (json.RawMessage, error) {
	env, err := c.do(ctx, http.MethodPost, pathProjectCreate, createProjectRequest{Name: name})
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// AddUser adds the user with the given email address to a project.
func (c *Client) AddUser(ctx context.Context, projectID, email string) (json.RawMessage, error) {
	env, err := c.do(ctx, http.MethodPost, pathProjectAddUser, addUserRequest{
		Project: projectID,
		Email:   email,
	})
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// CreateVM provisions a VM and returns the VM document exactly as the API
// sent it, plus the API status message.
func (c *Client) CreateVM(ctx context.Context, hostname, pop, projectID, plan, os string) (json.RawMessage, string, error) {
	env, err := c.do(ctx, http.MethodPost, pathVMCreate, createVMRequest{
		Hostname: hostname,
		POP:      pop,
		Project:  projectID,
		Plan:     plan,
		OS:       os,
	})
	if err != nil {
		return nil, "", err
	}
	return env.Data, env.Meta.Message, nil
}

// DeleteVM deletes a VM by id and returns the API status message.
func (c *Client) DeleteVM(ctx context.Context, vmID string) (string, error) {
	env, err := c.do(ctx, http.MethodDelete, pathVMDelete, deleteVMRequest{VM: vmID})
	if err != nil {
		return "", err
	}
	return env.Meta.Message, nil
}

// GetSystem returns platform system information.
func (c *Client) GetSystem(ctx context.Context) (json.RawMessage, error) {
	env, err := c.do(ctx, http.MethodGet, pathSystem, nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}
