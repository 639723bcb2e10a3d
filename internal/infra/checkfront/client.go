// Package checkfront talks to a Checkfront-compatible reservation engine over
// its JSON API (v3.0). All writes are form-urlencoded POSTs, per the API.
package checkfront

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"

	"voicefront/internal/infra"
	"voicefront/internal/pkg/config"
	"voicefront/internal/pkg/errs"
)

type Client struct {
	http *resty.Client
}

func NewClient(cfg config.EngineConfig) *Client {
	c := resty.New().
		SetBaseURL(cfg.BaseURL()).
		SetBasicAuth(cfg.APIKey, cfg.APISecret).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	return &Client{http: c}
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values, out any) error {
	req := c.http.R().SetContext(ctx)
	if query != nil {
		req.SetQueryParamsFromValues(query)
	}
	resp, err := req.Get(path)
	return c.finish(op, resp, err, out)
}

func (c *Client) postForm(ctx context.Context, op, path string, form url.Values, out any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetFormDataFromValues(form).
		Post(path)
	return c.finish(op, resp, err, out)
}

func (c *Client) finish(op string, resp *resty.Response, err error, out any) error {
	if err != nil {
		// Timeouts and connection failures land here, never as a status code.
		return infra.NewGatewayError(infra.GatewayErrorUnavailable, op, 0, err)
	}

	status := resp.StatusCode()
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return infra.NewGatewayError(infra.GatewayErrorUnauthorized, op, status, errs.New("engine rejected credentials"))
	case status == http.StatusNotFound:
		return infra.NewGatewayError(infra.GatewayErrorNotFound, op, status, errs.New("not found"))
	case status >= 500:
		return infra.NewGatewayError(infra.GatewayErrorUnavailable, op, status, errs.Newf("engine error: %s", resp.Status()))
	case status >= 400:
		return infra.NewGatewayError(infra.GatewayErrorRejected, op, status, errs.Newf("engine refused request: %s", snippet(resp.Body())))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return infra.NewGatewayError(infra.GatewayErrorBadResponse, op, status, errs.Wrap(err, "decode engine response"))
	}
	return nil
}

func snippet(body []byte) string {
	const max = 200
	if len(body) > max {
		body = body[:max]
	}
	return string(body)
}
