// Package address resolves Dutch postcodes to street and city through the
// PDOK locatieserver.
package address

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://api.pdok.nl/bzk/locatieserver/search/v3_1/free"
	DefaultTimeout = 5 * time.Second
)

var (
	ErrNotFound = errors.New("address not found")
	// ErrUpstream covers transport errors, timeouts, non-2xx answers and
	// bodies that cannot be decoded.
	ErrUpstream = errors.New("address lookup service unavailable")
)

// Address is the lookup result.
type Address struct {
	Street      string `json:"street"`
	City        string `json:"city"`
	Postcode    string `json:"postcode"`
	HouseNumber string `json:"houseNumber"`
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient returns a client for baseURL (DefaultBaseURL when empty) with
// the given request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{BaseURL: baseURL, HTTP: &http.Client{Timeout: timeout}}
}

// NormalizePostcode strips all whitespace.
func NormalizePostcode(s string) string {
	return strings.Join(strings.Fields(s), "")
}

type searchResponse struct {
	Response struct {
		NumFound int `json:"numFound"`
		Docs     []struct {
			Weergavenaam   string `json:"weergavenaam"`
			Straatnaam     string `json:"straatnaam"`
			Woonplaatsnaam string `json:"woonplaatsnaam"`
		} `json:"docs"`
	} `json:"response"`
}

// Lookup asks PDOK for the first match of "<postcode> <number>". The
// returned postcode and house number echo the (normalised) input.
func (c *Client) Lookup(ctx context.Context, postcode, number string) (Address, error) {
	postcode = NormalizePostcode(postcode)
	number = strings.TrimSpace(number)

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return Address{}, fmt.Errorf("%w: bad base url: %v", ErrUpstream, err)
	}
	q := u.Query()
	q.Set("q", postcode+" "+number)
	q.Set("rows", "1")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return Address{}, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body); err != nil {
		return Address{}, fmt.Errorf("%w: decode: %v", ErrUpstream, err)
	}
	if len(body.Response.Docs) == 0 {
		return Address{}, ErrNotFound
	}

	doc := body.Response.Docs[0]
	street, _, _ := strings.Cut(doc.Weergavenaam, ",")
	street = strings.TrimSpace(street)
	if street == "" {
		street = doc.Straatnaam
	}
	return Address{
		Street:      street,
		City:        doc.Woonplaatsnaam,
		Postcode:    postcode,
		HouseNumber: number,
	}, nil
}
