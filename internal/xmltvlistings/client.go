package xmltvlistings

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL     = "https://www.xmltvlistings.com"
	defaultHTTPTimeout = 10 * time.Minute

	// limitSentinel is the exact body text the API returns once the daily
	// download quota is exhausted; it arrives with a 200 status.
	limitSentinel = "You have reached your limit of 5 downloads per day."
)

// ErrDailyLimit indicates the API refused the download because the daily
// quota is exhausted. Existing published files must be left untouched.
var ErrDailyLimit = errors.New("xmltvlistings: daily download limit reached")

// ErrInvalidPayload indicates the API returned something that is not the
// expected XML document. As with the limit case, published files must not
// be overwritten with it.
var ErrInvalidPayload = errors.New("xmltvlistings: response is not a valid payload")

// Config describes the XMLTVListings client configuration.
type Config struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// Client wraps the xmltvlistings.com download API.
type Client struct {
	apiKey  string
	baseURL *url.URL
	http    *http.Client
}

// New creates a Client from the supplied configuration.
func New(cfg Config) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("xmltvlistings: api key is required")
	}
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = defaultBaseURL
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("xmltvlistings: parse base url: %w", err)
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{apiKey: apiKey, baseURL: baseURL, http: client}, nil
}

// GetChannels downloads the channels-only XMLTV payload for one lineup.
func (c *Client) GetChannels(ctx context.Context, lineupID string) (string, error) {
	lineupID = strings.TrimSpace(lineupID)
	if lineupID == "" {
		return "", errors.New("xmltvlistings: lineup id is required")
	}
	body, err := c.get(ctx, "xmltv", "get_channels", c.apiKey, lineupID)
	if err != nil {
		return "", err
	}
	if !looksLikeChannelsXML(body) {
		return "", fmt.Errorf("%w: lineup %s", ErrInvalidPayload, lineupID)
	}
	return body, nil
}

// GetLineups downloads the account's lineup list. The response sometimes
// carries trailing text after the lineups document, so only the first
// well-formed <lineups> block is returned.
func (c *Client) GetLineups(ctx context.Context) (string, error) {
	body, err := c.get(ctx, "xmltv", "get_lineups", c.apiKey)
	if err != nil {
		return "", err
	}
	block := extractLineupsBlock(body)
	if block == "" {
		return "", ErrInvalidPayload
	}
	return block, nil
}

func (c *Client) get(ctx context.Context, segments ...string) (string, error) {
	endpoint := c.baseURL.JoinPath(segments...)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return "", fmt.Errorf("xmltvlistings: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("xmltvlistings: request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("xmltvlistings: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("xmltvlistings: unexpected status %d", resp.StatusCode)
	}

	body := string(data)
	if strings.Contains(body, limitSentinel) {
		return "", ErrDailyLimit
	}
	return body, nil
}

// looksLikeChannelsXML applies the payload sanity check: a channels-only
// response is still a <tv> document carrying <channel> elements.
func looksLikeChannelsXML(body string) bool {
	s := strings.TrimSpace(body)
	if s == "" {
		return false
	}
	head := s
	if len(head) > 1000 {
		head = head[:1000]
	}
	return strings.Contains(head, "<tv") && strings.Contains(s, "<channel")
}
