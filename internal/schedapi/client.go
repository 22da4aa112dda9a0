// Package schedapi is the typed client for the backend schedule API.
// Response envelopes are checked here at the boundary; callers only see
// decoded values or an error.
package schedapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/notmyst33d/schedapi-ssr/internal/model"
)

// Client talks to the schedule backend. All methods are single-shot:
// no retries, no caching, per the page's stateless contract.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New builds a Client for the given base URL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type groupsEnvelope struct {
	OK []model.Group `json:"ok"`
}

type epochEnvelope struct {
	OK struct {
		Epoch int64 `json:"epoch"`
	} `json:"ok"`
}

type scheduleEnvelope struct {
	OK []model.DaySlot `json:"ok"`
}

// ProductName fetches the display name shown above the selector form.
// The endpoint returns plain text, not an envelope.
func (c *Client) ProductName(ctx context.Context) (string, error) {
	body, err := c.get(ctx, "/product/name", nil)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Groups fetches the full group roster, unpaginated.
func (c *Client) Groups(ctx context.Context) ([]model.Group, error) {
	body, err := c.get(ctx, "/groups/list", nil)
	if err != nil {
		return nil, err
	}
	var env groupsEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("groups/list: decode: %w", err)
	}
	return env.OK, nil
}

// Epoch fetches the millisecond timestamp week 1 starts at for a group.
// The lookup is assumed to succeed for any real group id.
func (c *Client) Epoch(ctx context.Context, groupID string) (int64, error) {
	body, err := c.get(ctx, "/epoch", url.Values{"group_id": {groupID}})
	if err != nil {
		return 0, err
	}
	var env epochEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return 0, fmt.Errorf("epoch: decode: %w", err)
	}
	return env.OK.Epoch, nil
}

// Schedule fetches the six day slots of one week for a group.
func (c *Client) Schedule(ctx context.Context, groupID string, wk int) ([]model.DaySlot, error) {
	body, err := c.get(ctx, "/schedule", url.Values{
		"group_id": {groupID},
		"week":     {strconv.Itoa(wk)},
	})
	if err != nil {
		return nil, err
	}
	var env scheduleEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("schedule: decode: %w", err)
	}
	return env.OK, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", path, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: unexpected status %d", path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", path, err)
	}
	return body, nil
}
