package plugins

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	mchttp "github.com/handiism/mcinit/internal/http"
	"github.com/handiism/mcinit/internal/model"
)

// DefaultBaseURL is the Modrinth v2 API.
const DefaultBaseURL = "https://api.modrinth.com/v2"

// DefaultLimit is the number of search hits requested when none is given.
const DefaultLimit = 10

// ErrNotFound is returned when no project has the requested slug.
var ErrNotFound = errors.New("plugin not found")

// JSONGetter fetches a URL and decodes its JSON body into v.
type JSONGetter interface {
	GetJSON(ctx context.Context, url string, v any) error
}

type project struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Downloads   int64  `json:"downloads"`
	ProjectType string `json:"project_type"`
}

func (p project) toModel() *model.Plugin {
	return &model.Plugin{
		Slug:        p.Slug,
		Title:       p.Title,
		Description: p.Description,
		Downloads:   p.Downloads,
		ProjectType: p.ProjectType,
	}
}

type searchResponse struct {
	Hits      []project `json:"hits"`
	TotalHits int       `json:"total_hits"`
}

// Client queries the Modrinth API.
type Client struct {
	http    JSONGetter
	baseURL string
}

// NewClient creates a Client. An empty baseURL uses DefaultBaseURL.
func NewClient(client JSONGetter, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{http: client, baseURL: strings.TrimRight(baseURL, "/")}
}

// Project returns the project with the given slug or id.
func (c *Client) Project(ctx context.Context, slug string) (*model.Plugin, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, fmt.Errorf("plugin name is empty")
	}

	var p project
	err := c.http.GetJSON(ctx, c.baseURL+"/project/"+url.PathEscape(slug), &p)
	if err != nil {
		var statusErr *mchttp.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, slug)
		}
		return nil, fmt.Errorf("fetch plugin %s: %w", slug, err)
	}
	return p.toModel(), nil
}

// Search returns up to limit projects matching query, most relevant first.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]*model.Plugin, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("limit", strconv.Itoa(limit))

	var resp searchResponse
	if err := c.http.GetJSON(ctx, c.baseURL+"/search?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("search plugins: %w", err)
	}

	plugins := make([]*model.Plugin, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		plugins = append(plugins, hit.toModel())
	}
	return plugins, nil
}
