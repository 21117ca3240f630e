package apiclient

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/angelmondragon/gash-demo/pkg/latency"
)

// SentinelBaseURL is where a demo client points. Nothing listens there; the in-process
// transport is the only thing that answers it.
const SentinelBaseURL = "http://gash-demo-mock"

// ErrRealNetwork is returned when a demo client is asked to reach a real host.
var ErrRealNetwork = errors.New("apiclient: real network call attempted in demo mode")

// HandlerTransport dispatches requests to an http.Handler in-process.
type HandlerTransport struct {
	Handler http.Handler
	Host    string
	Latency latency.Strategy
}

func (t *HandlerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Host != t.Host {
		return nil, fmt.Errorf("%w: %s", ErrRealNetwork, req.URL.Redacted())
	}
	rec := httptest.NewRecorder()
	t.Handler.ServeHTTP(rec, req)

	if t.Latency != nil {
		if err := t.Latency.Wait(req.Context()); err != nil {
			return nil, err
		}
	}
	resp := rec.Result()
	resp.Request = req
	return resp, nil
}
