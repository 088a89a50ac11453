// Package rates refreshes the exchange-rate table from a remote feed. The
// contract with the feed is a flat map of currency code to rate against the
// anchor; partial responses are fine, they merge into the existing table
// entry by entry.
package rates

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Ray-XRay/wealthdash-google"
	"github.com/shopspring/decimal"
)

// DefaultFeedURL serves {"base":"HKD","rates":{"USD":7.78,...}} where each
// rate is anchor units per one unit of the currency.
const DefaultFeedURL = "https://open.er-api.com/v6/latest/HKD"

// Client fetches rates from one feed URL.
type Client struct {
	URL  string
	HTTP *http.Client
}

// New returns a Client for the given feed, with a daily-expiring disk cache
// so repeated dashboard refreshes don't hammer the feed. An empty url
// selects the default feed.
func New(url string) *Client {
	if url == "" {
		url = DefaultFeedURL
	}
	return &Client{URL: url, HTTP: newDailyCachingClient()}
}

// Fetch retrieves the current rate of every supported currency relative to
// the anchor. Currencies missing from the response are simply absent from
// the result; the caller merges what it got.
func (c *Client) Fetch() (map[wealthdash.Currency]decimal.Decimal, error) {
	// the payload; unknown fields are ignored
	var content struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := jwget(c.HTTP, c.URL, &content); err != nil {
		return nil, fmt.Errorf("rate refresh failed: %w", err)
	}
	if len(content.Rates) == 0 {
		return nil, fmt.Errorf("rate feed %q returned no rates", c.URL)
	}

	out := make(map[wealthdash.Currency]decimal.Decimal)
	for _, cur := range wealthdash.Currencies {
		if r, ok := content.Rates[string(cur)]; ok && r > 0 {
			out[cur] = decimal.NewFromFloat(r)
		}
	}
	return out, nil
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func jwget(client *http.Client, addr string, data any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}
