// Package scryfall looks cards up in the Scryfall card database and keeps
// the answers in a local cache.
package scryfall

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	DefaultBaseURL = "https://api.scryfall.com"
	userAgent      = "bwproxy/2.1"
)

var ErrNotFound = errors.New("card not found")

// Client queries the Scryfall API, retrying failed requests.
type Client struct {
	http    *retryablehttp.Client
	baseURL string
}

// NewClient returns a client for the API at baseURL, or DefaultBaseURL if
// baseURL is empty.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 5
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = 15 * time.Second
	return &Client{http: retryClient, baseURL: strings.TrimSuffix(baseURL, "/")}
}

type apiError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Details string `json:"details"`
}

type searchResponse struct {
	Data []RawCard `json:"data"`
}

// Named looks a card up by a possibly inexact name.
func (c *Client) Named(ctx context.Context, name string) (RawCard, error) {
	var card RawCard
	q := url.Values{"fuzzy": {name}}
	if err := c.get(ctx, "/cards/named", q, &card); err != nil {
		return RawCard{}, fmt.Errorf("lookup %q: %w", name, err)
	}
	return card, nil
}

// Token looks up a token or emblem. Names ending in " Emblem" are searched
// among emblems; otherwise a trailing " Token" is dropped and the rest is
// searched among tokens.
func (c *Client) Token(ctx context.Context, name string) (RawCard, error) {
	exact, kind := TokenQuery(name)
	q := url.Values{
		"q":              {fmt.Sprintf("!%q t:%s", exact, kind)},
		"include_extras": {"true"},
	}
	var res searchResponse
	if err := c.get(ctx, "/cards/search", q, &res); err != nil {
		return RawCard{}, fmt.Errorf("lookup token %q: %w", name, err)
	}
	for _, card := range res.Data {
		if strings.EqualFold(card.Name, exact) {
			return card, nil
		}
	}
	if len(res.Data) == 0 {
		return RawCard{}, fmt.Errorf("lookup token %q: %w", name, ErrNotFound)
	}
	return res.Data[0], nil
}

// TokenQuery returns the exact database name and type searched for a token
// or emblem decklist name.
func TokenQuery(name string) (exact, kind string) {
	if strings.HasSuffix(name, " Emblem") {
		return name, "emblem"
	}
	return strings.TrimSuffix(name, " Token"), "token"
}

// IsTokenName reports whether a decklist name asks for a token or emblem.
func IsTokenName(name string) bool {
	return strings.HasSuffix(name, " Token") || strings.HasSuffix(name, " Emblem")
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if resp.StatusCode == http.StatusNotFound {
			if apiErr.Details != "" {
				return fmt.Errorf("%w: %s", ErrNotFound, apiErr.Details)
			}
			return ErrNotFound
		}
		return fmt.Errorf("scryfall status: %s: %s", http.StatusText(resp.StatusCode), apiErr.Details)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
