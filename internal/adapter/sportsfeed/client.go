// Package sportsfeed reads the external sport catalog.
package sportsfeed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/srgjo27/venue_booking/internal/core/domain"
)

var ErrEmptyFeed = errors.New("sports feed returned no data")

type Client struct {
	url string
	hc  *http.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url: url,
		hc:  &http.Client{Timeout: timeout},
	}
}

type feedReply struct {
	Status string      `json:"status"`
	Msg    string      `json:"msg"`
	Data   []feedSport `json:"data"`
}

type feedSport struct {
	SportID   flexString `json:"sport_id"`
	SportCode string     `json:"sport_code"`
	SportName string     `json:"sport_name"`
}

// flexString accepts both JSON strings and numbers.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("sport_id: %w", err)
	}
	*f = flexString(n.String())
	return nil
}

func (c *Client) FetchSports(ctx context.Context) ([]domain.Sport, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("sportsfeed: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sportsfeed: do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("sportsfeed: status %d: %s", resp.StatusCode, body)
	}

	var reply feedReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("sportsfeed: decode: %w", err)
	}

	if reply.Data == nil {
		return nil, ErrEmptyFeed
	}

	sports := make([]domain.Sport, 0, len(reply.Data))
	for _, s := range reply.Data {
		id := strings.TrimSpace(string(s.SportID))
		if id == "" {
			continue
		}
		sports = append(sports, domain.Sport{
			SportID:   id,
			SportCode: s.SportCode,
			SportName: strings.TrimSpace(s.SportName),
		})
	}
	return sports, nil
}
