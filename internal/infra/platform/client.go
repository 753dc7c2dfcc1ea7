// Package platform is the adapter for the external scheduling/payments
// platform. All response-shape quirks are normalized here; the rest of the
// system only ever sees booking.Booking, billing.Money and plain ids.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"washbay/internal/infra"
	"washbay/internal/pkg/config"

	"golang.org/x/time/rate"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	limiter    *rate.Limiter
}

func NewClient(cfg config.PlatformConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.AccessToken,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.RequestBurst),
	}
}

type wireError struct {
	Category string `json:"category"`
	Code     string `json:"code"`
	Detail   string `json:"detail"`
}

type errorEnvelope struct {
	Errors []wireError `json:"errors"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return infra.WrapRepoErr("request cancelled while rate limited", err, infra.KindUnavailable)
	}

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return infra.WrapRepoErr("failed to encode request body", err, infra.KindBadResponse)
		}
		reqBody = bytes.NewReader(buf)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return infra.WrapRepoErr("failed to build platform request", err, infra.KindBadResponse)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return infra.WrapRepoErr(fmt.Sprintf("%s %s failed", method, path), err, infra.KindUnavailable)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return infra.WrapRepoErr("failed to read platform response", err, infra.KindBadResponse)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return statusError(method, path, resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return infra.WrapRepoErr("failed to decode platform response", err, infra.KindBadResponse)
		}
	}
	return nil
}

func statusError(method, path string, status int, raw []byte) error {
	detail := http.StatusText(status)
	var envelope errorEnvelope
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Errors) > 0 {
		details := make([]string, 0, len(envelope.Errors))
		for _, e := range envelope.Errors {
			if e.Detail != "" {
				details = append(details, e.Detail)
			} else if e.Code != "" {
				details = append(details, e.Code)
			}
		}
		if len(details) > 0 {
			detail = strings.Join(details, "; ")
		}
	}

	msg := fmt.Sprintf("%s %s returned %d: %s", method, path, status, detail)

	var kind infra.RepositoryErrorKind
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		kind = infra.KindUnauthorized
	case status == http.StatusNotFound:
		kind = infra.KindNotFound
	case status == http.StatusConflict:
		kind = infra.KindConflict
	case status == http.StatusTooManyRequests || status >= http.StatusInternalServerError:
		kind = infra.KindUnavailable
	default:
		kind = infra.KindBadResponse
	}
	return infra.WrapRepoErr(msg, nil, kind)
}
