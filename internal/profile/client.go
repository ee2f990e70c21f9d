package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Client talks to the profile endpoint with a bearer token.
type Client struct {
	baseURL string
	token   string
	timeout time.Duration
}

// NewClient builds a client for baseURL, e.g. https://api.linode.com/v4.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), timeout: timeout}
}

// WithToken returns a copy of the client that authenticates with token.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

type errorEnvelope struct {
	Errors []FieldError `json:"errors"`
}

// GetProfile sends GET /profile. It identifies whose token the client holds.
func (c *Client) GetProfile(ctx context.Context) (*Profile, error) {
	return c.do(ctx, fiber.Get(c.baseURL+"/profile"))
}

// UpdateProfile sends PUT /profile. Non-2xx responses become *APIError with
// the reasons the API returned, or the fallback entry when the body has none.
func (c *Client) UpdateProfile(ctx context.Context, upd Update) (*Profile, error) {
	agent := fiber.Put(c.baseURL + "/profile")
	agent.JSON(upd)
	return c.do(ctx, agent)
}

func (c *Client) do(ctx context.Context, agent *fiber.Agent) (*Profile, error) {
	timeout, err := c.callTimeout(ctx)
	if err != nil {
		return nil, err
	}
	if c.token != "" {
		agent.Set(fiber.HeaderAuthorization, "Bearer "+c.token)
	}
	if timeout > 0 {
		agent.Timeout(timeout)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("profile api request: %w", errors.Join(errs...))
	}

	if code < 200 || code > 299 {
		var env errorEnvelope
		if err := json.Unmarshal(body, &env); err != nil || len(env.Errors) == 0 {
			return nil, &APIError{StatusCode: code, Errors: Fallback()}
		}
		return nil, &APIError{StatusCode: code, Errors: env.Errors}
	}

	var p Profile
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &p, nil
}

func (c *Client) callTimeout(ctx context.Context) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return 0, context.DeadlineExceeded
		}
		if timeout <= 0 || remaining < timeout {
			timeout = remaining
		}
	}
	return timeout, nil
}
