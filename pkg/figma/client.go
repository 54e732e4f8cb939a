package figma

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const (
	figmaAPIBase = "https://api.figma.com/v1"
	maxRetries   = 3
)

// ErrInvalidURL is returned when a Figma URL does not carry a file key.
var ErrInvalidURL = errors.New("invalid Figma URL format: must be a valid figma.com URL with /file/ or /design/ path")

// Client represents a Figma API client with configured HTTP settings for reliable communication
// with the Figma API. It includes retry logic and optimized transport settings for handling large files.
type Client struct {
	accessToken string
	baseURL     string
	backoff     time.Duration
	httpClient  *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL points the client at a different API root, e.g. a test server.
func WithBaseURL(base string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(base, "/")
	}
}

// WithBackoff sets the delay unit between retries. Attempt n waits n*d.
func WithBackoff(d time.Duration) ClientOption {
	return func(c *Client) {
		c.backoff = d
	}
}

// NewClient creates a new Figma API client with the provided personal access token.
// The client is configured with optimized HTTP transport settings including connection pooling,
// disabled HTTP/2 (for large file stability), and a 10-minute timeout for very large files.
func NewClient(accessToken string, opts ...ClientOption) *Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 10,
		// Disable HTTP/2 to avoid stream errors with large files
		ForceAttemptHTTP2: false,
	}

	c := &Client{
		accessToken: accessToken,
		baseURL:     figmaAPIBase,
		backoff:     2 * time.Second,
		httpClient: &http.Client{
			Timeout:   10 * time.Minute,
			Transport: transport,
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ExtractFileKey extracts the unique file identifier from a Figma URL.
// Supports both /file/ and /design/ URL patterns (e.g., figma.com/file/ABC123/Design-Name).
func ExtractFileKey(figmaURL string) (string, error) {
	// Anchored to ensure the entire URL matches the expected pattern.
	re := regexp.MustCompile(`^https?://(?:www\.)?figma\.com/(?:file|design)/([A-Za-z0-9]+)(?:[/?#]|$)`)
	matches := re.FindStringSubmatch(figmaURL)

	if len(matches) < 2 {
		return "", ErrInvalidURL
	}

	return matches[1], nil
}

var (
	nodesPathRe = regexp.MustCompile(`/nodes/([^/?#]+)`)
	nodeIDRe    = regexp.MustCompile(`^\d+[:-]\d+$`)
)

// ExtractNodeIDs returns the node IDs a Figma URL points at. IDs are read
// from the node-id query parameter, a "#ids" fragment or a "/nodes/ids" path
// segment, in that order of preference. A fragment is used only when every
// entry looks like a node ID, so anchors such as "#comments" are ignored.
// Figma writes "1-2" in URLs for the
// API's "1:2"; both forms are accepted. A URL without node IDs yields an
// empty slice.
func ExtractNodeIDs(figmaURL string) ([]string, error) {
	u, err := url.Parse(figmaURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	raw := u.Query().Get("node-id")
	if raw == "" && isNodeIDList(u.Fragment) {
		raw = u.Fragment
	}
	if raw == "" {
		if m := nodesPathRe.FindStringSubmatch(u.Path); len(m) == 2 {
			raw = m[1]
		}
	}

	ids := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		id := strings.TrimSpace(part)
		if id == "" {
			continue
		}
		ids = append(ids, strings.ReplaceAll(id, "-", ":"))
	}

	return deduplicateNodeIDs(ids), nil
}

func isNodeIDList(s string) bool {
	if s == "" {
		return false
	}
	for _, part := range strings.Split(s, ",") {
		if !nodeIDRe.MatchString(strings.TrimSpace(part)) {
			return false
		}
	}
	return true
}

func deduplicateNodeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// GetFile retrieves complete file data from the Figma API including the document tree and components.
// Implements automatic retry logic (up to 3 attempts) with linear backoff for handling rate limits
// and temporary failures. The request automatically retries on 429 (rate limit) and 5xx (server error) responses.
func (c *Client) GetFile(fileKey string) (*FileResponse, error) {
	var fileResp FileResponse
	if err := c.get(fmt.Sprintf("/files/%s", url.PathEscape(fileKey)), nil, &fileResp); err != nil {
		return nil, err
	}
	return &fileResp, nil
}

// GetFileNodes retrieves only the given nodes of a file, each with the components it uses.
// It retries like GetFile.
func (c *Client) GetFileNodes(fileKey string, nodeIDs []string) (*NodesResponse, error) {
	if len(nodeIDs) == 0 {
		return nil, errors.New("no node IDs given")
	}

	query := url.Values{"ids": {strings.Join(nodeIDs, ",")}}
	var nodesResp NodesResponse
	if err := c.get(fmt.Sprintf("/files/%s/nodes", url.PathEscape(fileKey)), query, &nodesResp); err != nil {
		return nil, err
	}
	return &nodesResp, nil
}

func (c *Client) get(path string, query url.Values, v any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		body, retry, err := c.do(endpoint)
		if err == nil {
			if err := json.Unmarshal(body, v); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}
			return nil
		}

		lastErr = fmt.Errorf("attempt %d: %w", attempt, err)
		if !retry || attempt == maxRetries {
			break
		}
		time.Sleep(time.Duration(attempt) * c.backoff)
	}

	return lastErr
}

// do performs one request. The boolean reports whether a failure is worth retrying.
func (c *Client) do(endpoint string) ([]byte, bool, error) {
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Figma-Token", c.accessToken)
	// Disable HTTP/2 to avoid stream errors with large files
	req.Header.Set("Connection", "close")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		retry := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return nil, retry, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, false, nil
}
