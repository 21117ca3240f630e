// Package apiclient is the dashboard-side HTTP client. With the demo toggle on it
// never leaves the process; with it off it talks to the real backend behind a
// circuit breaker.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/angelmondragon/gash-demo/pkg/latency"
	"github.com/angelmondragon/gash-demo/pkg/logger"
)

type Options struct {
	Demo bool
	// BaseURL is the real backend, or in demo mode the sentinel the in-process transport
	// answers for. Demo mode defaults it to SentinelBaseURL.
	BaseURL string
	Token   string
	Timeout time.Duration
	// Handler answers demo requests. Required when Demo is set.
	Handler http.Handler
	Latency latency.Strategy
	Logger  *logger.Logger
}

type Client struct {
	baseURL *url.URL
	token   string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[*response]
	logg    *logger.Logger
}

type response struct {
	status int
	body   []byte
}

func New(opts Options) (*Client, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	c := &Client{token: opts.Token, logg: opts.Logger}

	if opts.Demo {
		if opts.Handler == nil {
			return nil, errors.New("apiclient: demo mode requires a handler")
		}
		sentinel := opts.BaseURL
		if sentinel == "" {
			sentinel = SentinelBaseURL
		}
		base, err := url.Parse(strings.TrimRight(sentinel, "/"))
		if err != nil || base.Host == "" {
			return nil, fmt.Errorf("apiclient: invalid demo base url %q", sentinel)
		}
		c.baseURL = base
		c.http = &http.Client{
			Timeout: opts.Timeout,
			Transport: &HandlerTransport{
				Handler: opts.Handler,
				Host:    base.Host,
				Latency: opts.Latency,
			},
		}
		return c, nil
	}

	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil || base.Host == "" {
		return nil, fmt.Errorf("apiclient: invalid base url %q", opts.BaseURL)
	}
	c.baseURL = base
	c.http = &http.Client{Timeout: opts.Timeout}
	c.breaker = newBreaker(base.Host)
	return c, nil
}

func newBreaker(name string) *gobreaker.CircuitBreaker[*response] {
	var st gobreaker.Settings
	st.Name = name
	st.Timeout = 30 * time.Second
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= 3 && failureRatio >= 0.6
	}
	// Client errors are the caller's problem, not the backend's.
	st.IsSuccessful = func(err error) bool {
		var se *StatusError
		if errors.As(err, &se) {
			return se.Status < http.StatusInternalServerError
		}
		return err == nil
	}
	return gobreaker.NewCircuitBreaker[*response](st)
}

func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, out)
}

// Do sends one request and decodes a 2xx JSON body into out. Other statuses come back
// as *StatusError.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	target, err := c.baseURL.Parse(strings.TrimRight(c.baseURL.Path, "/") + "/" + strings.TrimLeft(path, "/"))
	if err != nil {
		return fmt.Errorf("apiclient: invalid path %q: %w", path, err)
	}

	var payload []byte
	if body != nil {
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("apiclient: encode body: %w", err)
		}
	}

	send := func() (*response, error) {
		return c.send(ctx, method, target.String(), payload)
	}
	var resp *response
	if c.breaker != nil {
		resp, err = c.breaker.Execute(send)
	} else {
		resp, err = send()
	}
	if err != nil {
		if c.logg != nil {
			c.logg.Warn(c.logg.WithFields(ctx, map[string]any{
				"method": method,
				"url":    target.String(),
				"error":  err.Error(),
			}), "apiclient.request_failed")
		}
		return err
	}

	if out == nil || len(resp.body) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.body, out); err != nil {
		return fmt.Errorf("apiclient: decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, target string, payload []byte) (*response, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, newStatusError(res.StatusCode, data)
	}
	return &response{status: res.StatusCode, body: data}, nil
}
