package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/angelmondragon/gash-demo/api/routes"
	"github.com/angelmondragon/gash-demo/pkg/apiclient"
	"github.com/angelmondragon/gash-demo/pkg/logger"
)

type envelope struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    []map[string]any `json:"data"`
}

type check struct {
	name       string
	method     string
	path       string
	body       any
	wantStatus int
	verify     func(envelope) error
}

func checks() []check {
	nonEmpty := func(e envelope) error {
		if len(e.Data) == 0 {
			return errors.New("expected a non-empty list")
		}
		return nil
	}
	return []check{
		{name: "auth status", method: http.MethodGet, path: "/auth/check-status", wantStatus: http.StatusOK},
		{name: "admin accounts", method: http.MethodGet, path: "/accounts?role=admin", wantStatus: http.StatusOK, verify: func(e envelope) error {
			for _, acc := range e.Data {
				if acc["role"] != "admin" {
					return fmt.Errorf("account %v has role %v", acc["_id"], acc["role"])
				}
			}
			return nil
		}},
		{name: "products", method: http.MethodGet, path: "/new-products", wantStatus: http.StatusOK, verify: nonEmpty},
		{name: "categories", method: http.MethodGet, path: "/categories/get-all-categories", wantStatus: http.StatusOK, verify: nonEmpty},
		{name: "missing category", method: http.MethodGet, path: "/categories/get-category-detail/abc123", wantStatus: http.StatusNotFound},
		{name: "orders", method: http.MethodGet, path: "/orders/admin/get-all-order", wantStatus: http.StatusOK},
		{name: "order statistics", method: http.MethodGet, path: "/new-statistics/order-statistics", wantStatus: http.StatusOK},
		{name: "revenue by month", method: http.MethodGet, path: "/statistics/revenue/revenue-by-month", wantStatus: http.StatusOK},
		{name: "notifications", method: http.MethodGet, path: "/notifications/admin/all", wantStatus: http.StatusOK},
		{name: "demo ack", method: http.MethodPost, path: "/categories/create-category", body: map[string]string{"categoryName": "Smoke"}, wantStatus: http.StatusOK},
		{name: "unmatched", method: http.MethodGet, path: "/definitely/not/mocked", wantStatus: http.StatusNotFound},
	}
}

// run walks the dashboard's main screens once and fails on the first surprise.
func run(ctx context.Context, client *apiclient.Client, prefix string, logg *logger.Logger) error {
	for _, c := range checks() {
		if err := runCheck(ctx, client, prefix, c); err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
		logg.Debug(logg.WithField(ctx, "check", c.name), "smoke.check_passed")
	}
	return nil
}

func runCheck(ctx context.Context, client *apiclient.Client, prefix string, c check) error {
	var raw any
	err := client.Do(ctx, c.method, prefix+c.path, c.body, &raw)

	var se *apiclient.StatusError
	switch {
	case errors.As(err, &se):
		if se.Status != c.wantStatus {
			return fmt.Errorf("status %d, want %d: %s", se.Status, c.wantStatus, se.Message)
		}
		if c.name == "unmatched" && se.ServerMessage != routes.UnmatchedMessage {
			return fmt.Errorf("unexpected unmatched message %q", se.ServerMessage)
		}
		return nil
	case err != nil:
		return err
	case c.wantStatus != http.StatusOK:
		return fmt.Errorf("status 200, want %d", c.wantStatus)
	}

	if c.verify == nil {
		return nil
	}
	env, ok := asEnvelope(raw)
	if !ok {
		return errors.New("response is not a list envelope")
	}
	return c.verify(env)
}

func asEnvelope(raw any) (envelope, bool) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return envelope{}, false
	}
	var env envelope
	env.Success, _ = obj["success"].(bool)
	env.Message, _ = obj["message"].(string)
	list, ok := obj["data"].([]any)
	if !ok {
		return envelope{}, false
	}
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			env.Data = append(env.Data, m)
		}
	}
	return env, true
}
