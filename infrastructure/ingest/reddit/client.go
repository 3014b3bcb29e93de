// Package reddit adapts the Reddit API into content items.
//
// Authentication uses the application-only OAuth2 flow: a client
// credentials grant against www.reddit.com, then bearer requests
// against oauth.reddit.com.
package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/creaselab/crease/domain/ingest"
)

const (
	defaultAuthBaseURL = "https://www.reddit.com"
	defaultAPIBaseURL  = "https://oauth.reddit.com"
)

// HTTPClient allows injecting a custom HTTP client for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURLs sets custom auth and API base URLs (useful for testing).
func WithBaseURLs(authBaseURL, apiBaseURL string) ClientOption {
	return func(c *Client) {
		c.authBaseURL = strings.TrimRight(authBaseURL, "/")
		c.apiBaseURL = strings.TrimRight(apiBaseURL, "/")
	}
}

// Client is an application-only Reddit API client.
type Client struct {
	clientID     string
	clientSecret string
	userAgent    string
	authBaseURL  string
	apiBaseURL   string
	httpClient   HTTPClient

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewClient creates a Reddit API client.
func NewClient(clientID, clientSecret, userAgent string, opts ...ClientOption) *Client {
	c := &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		userAgent:    userAgent,
		authBaseURL:  defaultAuthBaseURL,
		apiBaseURL:   defaultAPIBaseURL,
		httpClient:   &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// searchPosts searches the given subreddits (joined with '+', "all" when
// empty) and returns the raw submissions.
func (c *Client) searchPosts(ctx context.Context, query string, subreddits []string, limit int) ([]submission, error) {
	scope := "all"
	if len(subreddits) > 0 {
		scope = strings.Join(subreddits, "+")
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", fmt.Sprintf("%d", limit))
	params.Set("sort", "relevance")
	params.Set("restrict_sr", "1")
	params.Set("raw_json", "1")

	return c.fetchListing(ctx, fmt.Sprintf("/r/%s/search", scope), params)
}

// hotPosts returns the hot listing for the given subreddits.
func (c *Client) hotPosts(ctx context.Context, subreddits []string, limit int) ([]submission, error) {
	if len(subreddits) == 0 {
		return nil, nil
	}

	params := url.Values{}
	params.Set("limit", fmt.Sprintf("%d", limit))
	params.Set("raw_json", "1")

	return c.fetchListing(ctx, fmt.Sprintf("/r/%s/hot", strings.Join(subreddits, "+")), params)
}

// postByID fetches a single submission by its base36 id.
func (c *Client) postByID(ctx context.Context, id string) (submission, bool, error) {
	params := url.Values{}
	params.Set("id", "t3_"+id)
	params.Set("raw_json", "1")

	posts, err := c.fetchListing(ctx, "/api/info", params)
	if err != nil {
		return submission{}, false, err
	}
	if len(posts) == 0 {
		return submission{}, false, nil
	}
	return posts[0], true, nil
}

func (c *Client) fetchListing(ctx context.Context, path string, params url.Values) ([]submission, error) {
	body, err := c.doRequest(ctx, path, params)
	if err != nil {
		return nil, err
	}

	var resp listingResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parse listing response: %w", err)
	}

	posts := make([]submission, 0, len(resp.Data.Children))
	for _, child := range resp.Data.Children {
		if child.Kind != "t3" {
			continue
		}
		posts = append(posts, child.Data)
	}
	return posts, nil
}

func (c *Client) doRequest(ctx context.Context, path string, params url.Values) ([]byte, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	reqURL := c.apiBaseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: reddit: %v", ingest.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: reddit API returned status %d", ingest.ErrUpstream, resp.StatusCode)
	}
	return body, nil
}

// token returns a valid application-only access token, refreshing it
// when expired.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.authBaseURL+"/api/v1/access_token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: reddit auth: %v", ingest.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: reddit auth returned status %d", ingest.ErrUpstream, resp.StatusCode)
	}

	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return "", fmt.Errorf("parse token response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("%w: reddit auth returned empty token", ingest.ErrUpstream)
	}

	c.accessToken = tok.AccessToken
	// Refresh a minute early to avoid using a token at the expiry edge.
	c.tokenExpiry = time.Now().Add(time.Duration(tok.ExpiresIn)*time.Second - time.Minute)
	return c.accessToken, nil
}
