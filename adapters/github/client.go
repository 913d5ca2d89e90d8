package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	profileUC "github.com/devlinkhq/devlink/internal/application/usecase/profile"
	"github.com/devlinkhq/devlink/internal/config"
)

const defaultBaseURL = "https://api.github.com"

// Client relays the GitHub repository listing for a profile. Responses are
// passed through verbatim so the API surface tracks whatever GitHub returns.
type Client struct {
	BaseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		BaseURL:      defaultBaseURL,
		clientID:     cfg.GitHub.ClientID,
		clientSecret: cfg.GitHub.ClientSecret,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// FetchRepos loads the user's five most recently listed public repos, sorted
// by creation date ascending. Any non-2xx upstream answer maps to
// ErrGithubUserNotFound; transport failures bubble up as-is.
func (c *Client) FetchRepos(ctx context.Context, username string) ([]byte, error) {
	query := url.Values{}
	query.Set("per_page", "5")
	query.Set("sort", "created")
	query.Set("direction", "asc")
	if c.clientID != "" {
		query.Set("client_id", c.clientID)
		query.Set("client_secret", c.clientSecret)
	}

	endpoint := fmt.Sprintf("%s/users/%s/repos?%s", c.BaseURL, url.PathEscape(username), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub request: %w", err)
	}
	req.Header.Set("User-Agent", "devlink-api")
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call GitHub API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return nil, profileUC.ErrGithubUserNotFound
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read GitHub response: %w", err)
	}
	return body, nil
}
