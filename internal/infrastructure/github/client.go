package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"med-ready/internal/domain/projects"
)

// ErrRateLimited distinguishes exhausted API quota from other upstream
// failures; callers may want to back off rather than retry.
var ErrRateLimited = errors.New("github rate limit exceeded")

type SearchOptions struct {
	Language string
	Sort     string
	Order    string
	PerPage  int
}

// SearchClient is the external repository-search collaborator.
type SearchClient interface {
	Search(ctx context.Context, query string, opts SearchOptions) ([]projects.Candidate, error)
}

type httpSearchClient struct {
	baseURL string
	token   string
	client  *http.Client
	logger  *log.Logger
}

func NewSearchClient(baseURL, token string, logger *log.Logger) SearchClient {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = "https://api.github.com"
	}
	return &httpSearchClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   strings.TrimSpace(token),
		client:  &http.Client{Timeout: 5 * time.Second},
		logger:  logger,
	}
}

type searchResponse struct {
	Items []repoItem `json:"items"`
}

type repoItem struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	FullName        string   `json:"full_name"`
	Description     string   `json:"description"`
	HTMLURL         string   `json:"html_url"`
	StargazersCount int      `json:"stargazers_count"`
	ForksCount      int      `json:"forks_count"`
	Language        string   `json:"language"`
	Topics          []string `json:"topics"`
	Owner           struct {
		Login     string `json:"login"`
		AvatarURL string `json:"avatar_url"`
	} `json:"owner"`
}

func (c *httpSearchClient) Search(ctx context.Context, query string, opts SearchOptions) ([]projects.Candidate, error) {
	if c == nil || c.client == nil {
		return nil, errors.New("nil search client")
	}

	language := opts.Language
	if language == "" {
		language = "javascript"
	}
	sortBy := opts.Sort
	if sortBy == "" {
		sortBy = "stars"
	}
	order := opts.Order
	if order == "" {
		order = "desc"
	}
	perPage := opts.PerPage
	if perPage <= 0 {
		perPage = 10
	}

	q := url.Values{}
	q.Set("q", fmt.Sprintf("%s language:%s topic:healthcare", strings.TrimSpace(query), language))
	q.Set("sort", sortBy)
	q.Set("order", order)
	q.Set("per_page", fmt.Sprintf("%d", perPage))

	endpoint := c.baseURL + "/search/repositories?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		err := fmt.Errorf("github search failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(rb)))
		if c.logger != nil {
			c.logger.Printf("[GitHub] search error query=%q status=%d", query, resp.StatusCode)
		}
		return nil, err
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}

	candidates := make([]projects.Candidate, 0, len(out.Items))
	for _, item := range out.Items {
		candidates = append(candidates, projects.Candidate{
			ID:          item.ID,
			Name:        item.Name,
			FullName:    item.FullName,
			Description: item.Description,
			URL:         item.HTMLURL,
			Stars:       item.StargazersCount,
			Forks:       item.ForksCount,
			Language:    item.Language,
			Topics:      item.Topics,
			OwnerLogin:  item.Owner.Login,
			OwnerAvatar: item.Owner.AvatarURL,
		})
	}
	return candidates, nil
}

var _ SearchClient = (*httpSearchClient)(nil)
