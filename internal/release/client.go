package release

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the GitHub REST API root.
	DefaultBaseURL = "https://api.github.com"
	// DefaultUserAgent is the User-Agent header sent with requests
	DefaultUserAgent = "fcyup/dev"

	// maxJSONResponseBytes caps how much of a release payload is read (10 MB).
	maxJSONResponseBytes = 10 << 20
)

// latestRelease is the subset of the GitHub release payload that is used.
// TagName is a pointer so that a missing field can be told apart from an empty one.
type latestRelease struct {
	TagName *string `json:"tag_name"`
}

// GitHubClient queries the GitHub Releases API.
type GitHubClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
	userAgent  string
}

// ClientOption configures a GitHubClient during construction.
type ClientOption func(*GitHubClient)

// WithHTTPClient sets a custom HTTP client, useful for tests or proxy configurations.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(g *GitHubClient) {
		g.httpClient = c
	}
}

// WithBaseURL overrides the GitHub API base URL, primarily for test servers.
func WithBaseURL(base string) ClientOption {
	return func(g *GitHubClient) {
		g.baseURL = strings.TrimRight(base, "/")
	}
}

// WithToken sets a GitHub token for authenticated requests.
func WithToken(token string) ClientOption {
	return func(g *GitHubClient) {
		g.token = token
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) ClientOption {
	return func(g *GitHubClient) {
		g.userAgent = ua
	}
}

// NewGitHubClient creates a GitHubClient. The default HTTP client has no
// timeout of its own, so a stalled API call stalls the run.
func NewGitHubClient(opts ...ClientOption) *GitHubClient {
	c := &GitHubClient{
		httpClient: http.DefaultClient,
		baseURL:    DefaultBaseURL,
		userAgent:  DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LatestURL returns the "latest release" endpoint for owner/repo.
func (c *GitHubClient) LatestURL(owner, repo string) string {
	return fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.baseURL, owner, repo)
}

// LatestTag returns the tag_name of the latest published release of owner/repo.
// Every failure is reported as a *ResolutionError.
func (c *GitHubClient) LatestTag(ctx context.Context, owner, repo string) (string, error) {
	fail := func(msg string, cause error) (string, error) {
		return "", &ResolutionError{Owner: owner, Repo: repo, Message: msg, Cause: cause}
	}

	resp, err := c.doRequest(ctx, c.LatestURL(owner, repo))
	if err != nil {
		return fail("request failed", err)
	}
	defer resp.Body.Close()

	if err := checkRateLimit(resp); err != nil {
		return fail("rate limited", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fail(fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	var payload latestRelease
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxJSONResponseBytes)).Decode(&payload); err != nil {
		return fail("decode response", err)
	}

	if payload.TagName == nil {
		return fail("response has no tag_name field", nil)
	}
	if strings.TrimSpace(*payload.TagName) == "" {
		return fail("response has an empty tag_name", nil)
	}

	return *payload.TagName, nil
}

// doRequest creates and executes a GET request with common GitHub API headers.
func (c *GitHubClient) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	req.Header.Set("User-Agent", c.userAgent)

	// Only attach the token when the request targets the configured API host.
	if c.token != "" && sameHost(req.URL, c.baseURL) {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}

	return resp, nil
}

// checkRateLimit returns a *RateLimitError when X-RateLimit-Remaining is zero.
// Missing or malformed headers are ignored.
func checkRateLimit(resp *http.Response) error {
	remaining := resp.Header.Get("X-RateLimit-Remaining")
	if remaining == "" {
		return nil
	}

	rem, err := strconv.Atoi(remaining)
	if err != nil || rem > 0 {
		return nil
	}

	limit, _ := strconv.Atoi(resp.Header.Get("X-RateLimit-Limit"))
	resetUnix, _ := strconv.ParseInt(resp.Header.Get("X-RateLimit-Reset"), 10, 64)

	return &RateLimitError{
		Limit:   limit,
		ResetAt: time.Unix(resetUnix, 0),
	}
}

func sameHost(reqURL *url.URL, baseURL string) bool {
	base, err := url.Parse(baseURL)
	if err != nil {
		return false
	}
	return strings.EqualFold(reqURL.Host, base.Host)
}
