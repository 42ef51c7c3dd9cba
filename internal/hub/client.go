package hub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"svt_viewer/internal/config"
	"svt_viewer/internal/logger"
	"svt_viewer/internal/metrics"
	"svt_viewer/internal/models"
)

const (
	apiPath      = "/json.htm"
	maxBodyBytes = 32 << 20

	opHardware = "hardware"
	opDevices  = "devices"
	opGraph    = "graph"
	opLightLog = "lightlog"

	// graphRange is the trailing window requested for every temperature graph.
	graphRange = "day"
)

// Client talks to the hub JSON API. It is safe for concurrent use.
type Client struct {
	base    string
	h       *http.Client
	timeout time.Duration
	retries int
	backoff time.Duration
	loc     *time.Location
	log     *logger.Logger
}

// New builds a client from the hub section of the configuration.
func New(cfg config.HubConfig, log *logger.Logger) (*Client, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("hub timezone: %w", err)
	}
	return &Client{
		base:    cfg.BaseURL(),
		h:       &http.Client{},
		timeout: cfg.Timeout,
		retries: cfg.Retries,
		backoff: cfg.Backoff,
		loc:     loc,
		log:     logger.OrNop(log),
	}, nil
}

// Hardware returns every configured hardware entry.
func (c *Client) Hardware(ctx context.Context) ([]models.HardwareEntry, error) {
	q := url.Values{"type": {"hardware"}}
	items, u, err := fetch[hardwareItem](ctx, c, opHardware, q)
	if err != nil {
		return nil, err
	}
	out := make([]models.HardwareEntry, 0, len(items))
	for i, it := range items {
		e, err := it.toModel(i)
		if err != nil {
			return nil, c.malformed(opHardware, u, err)
		}
		out = append(out, e)
	}
	metrics.ObserveHubRequest(opHardware, metrics.OutcomeOK)
	return out, nil
}

// Devices returns the full device list.
func (c *Client) Devices(ctx context.Context) ([]models.DeviceEntry, error) {
	q := url.Values{"type": {"devices"}}
	items, u, err := fetch[deviceItem](ctx, c, opDevices, q)
	if err != nil {
		return nil, err
	}
	out := make([]models.DeviceEntry, 0, len(items))
	for i, it := range items {
		d, err := it.toModel(i)
		if err != nil {
			return nil, c.malformed(opDevices, u, err)
		}
		out = append(out, d)
	}
	metrics.ObserveHubRequest(opDevices, metrics.OutcomeOK)
	return out, nil
}

// TemperatureGraph returns the last day of readings of a temperature or
// setpoint device, in the order the hub sent them.
func (c *Client) TemperatureGraph(ctx context.Context, idx int) ([]models.Reading, error) {
	q := url.Values{
		"type":   {"graph"},
		"sensor": {"temp"},
		"range":  {graphRange},
		"idx":    {strconv.Itoa(idx)},
	}
	items, u, err := fetch[graphItem](ctx, c, opGraph, q)
	if err != nil {
		return nil, err
	}
	out := make([]models.Reading, 0, len(items))
	for i, it := range items {
		r, err := it.toModel(i, c.loc)
		if err != nil {
			return nil, c.malformed(opGraph, u, err)
		}
		out = append(out, r)
	}
	metrics.ObserveHubRequest(opGraph, metrics.OutcomeOK)
	return out, nil
}

// LightLog returns the switch log of a device, in the order the hub sent it.
func (c *Client) LightLog(ctx context.Context, idx int) ([]models.Activation, error) {
	q := url.Values{
		"type": {"lightlog"},
		"idx":  {strconv.Itoa(idx)},
	}
	items, u, err := fetch[lightLogItem](ctx, c, opLightLog, q)
	if err != nil {
		return nil, err
	}
	out := make([]models.Activation, 0, len(items))
	for i, it := range items {
		a, err := it.toModel(i, c.loc)
		if err != nil {
			return nil, c.malformed(opLightLog, u, err)
		}
		out = append(out, a)
	}
	metrics.ObserveHubRequest(opLightLog, metrics.OutcomeOK)
	return out, nil
}

func (c *Client) malformed(op, u string, err error) error {
	metrics.ObserveHubRequest(op, metrics.OutcomeMalformed)
	return &MalformedResponseError{Op: op, URL: u, Err: err}
}

// fetch performs the call with retries and decodes the result envelope.
// It also returns the request URL for error reporting. Success is counted by
// the caller once every item converted.
func fetch[T any](ctx context.Context, c *Client, op string, q url.Values) ([]T, string, error) {
	u := c.base + apiPath + "?" + q.Encode()

	body, err := c.getWithRetry(ctx, op, u)
	if err != nil {
		return nil, u, err
	}

	var env envelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, u, c.malformed(op, u, err)
	}
	if env.Status != statusOK {
		msg := env.Message
		if msg == "" {
			msg = env.Title
		}
		return nil, u, c.malformed(op, u, fmt.Errorf("status %q: %s", env.Status, msg))
	}
	// The hub omits "result" when a list is empty.
	if env.Result == nil {
		return []T{}, u, nil
	}
	return env.Result, u, nil
}

func (c *Client) getWithRetry(ctx context.Context, op, u string) ([]byte, error) {
	var lastErr *TransportError
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			wait := c.backoff << (attempt - 1)
			c.log.Debugw("hub_retry", "op", op, "attempt", attempt, "wait", wait, "err", lastErr)
			metrics.ObserveHubRequest(op, metrics.OutcomeRetry)
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, &TransportError{Op: op, URL: u, Err: ctx.Err()}
			case <-timer.C:
			}
		}

		body, err := c.get(ctx, op, u)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if ctx.Err() != nil || !err.retryable() {
			break
		}
	}
	c.log.Warnw("hub_request_failed", "op", op, "url", u, "err", lastErr)
	metrics.ObserveHubRequest(op, metrics.OutcomeTransport)
	return nil, lastErr
}

// get issues one GET bounded by the per-call timeout.
func (c *Client) get(ctx context.Context, op, u string) ([]byte, *TransportError) {
	callCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(callCtx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &TransportError{Op: op, URL: u, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.h.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, URL: u, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &TransportError{
			Op: op, URL: u, StatusCode: resp.StatusCode,
			Err: errors.New(http.StatusText(resp.StatusCode)),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &TransportError{Op: op, URL: u, Err: err}
	}
	return body, nil
}
