package googlesearch

import (
	"context"
	"encoding/json"
	"fmt"

	customsearch "google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"

	"github.com/user/broadcast-service/internal/repository"
)

const maxAPIResults = 10 // Custom Search API hard limit per request

// Client implements repository.SearchRepository over the Google Custom
// Search JSON API.
type Client struct {
	svc *customsearch.Service
	cx  string
}

// New builds a search client. Missing credentials yield
// repository.ErrSearchUnavailable so construction fails fast.
func New(ctx context.Context, apiKey, searchEngineID string) (*Client, error) {
	if apiKey == "" || searchEngineID == "" {
		return nil, repository.ErrSearchUnavailable
	}
	svc, err := customsearch.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("building custom search service: %w", err)
	}
	return &Client{svc: svc, cx: searchEngineID}, nil
}

// pagemap is the subset of the result pagemap carrying image candidates, in
// reliability order.
type pagemap struct {
	CseImage []struct {
		Src string `json:"src"`
	} `json:"cse_image"`
	CseThumbnail []struct {
		Src string `json:"src"`
	} `json:"cse_thumbnail"`
	Metatags []map[string]string `json:"metatags"`
}

// Search runs one query and maps the response into raw search items.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]repository.RawSearchItem, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > maxAPIResults {
		limit = maxAPIResults
	}

	resp, err := c.svc.Cse.List().
		Q(query).
		Cx(c.cx).
		Num(int64(limit)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("custom search query failed: %w", err)
	}

	items := make([]repository.RawSearchItem, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, repository.RawSearchItem{
			Title:    item.Title,
			Snippet:  item.Snippet,
			Link:     item.Link,
			ImageURL: imageFromPagemap(item.Pagemap),
		})
	}
	return items, nil
}

// imageFromPagemap picks an image URL from the pagemap, preferring cse_image,
// then cse_thumbnail, then the og:image metatag.
func imageFromPagemap(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	var pm pagemap
	if err := json.Unmarshal(raw, &pm); err != nil {
		return ""
	}
	if len(pm.CseImage) > 0 && pm.CseImage[0].Src != "" {
		return pm.CseImage[0].Src
	}
	if len(pm.CseThumbnail) > 0 && pm.CseThumbnail[0].Src != "" {
		return pm.CseThumbnail[0].Src
	}
	if len(pm.Metatags) > 0 {
		return pm.Metatags[0]["og:image"]
	}
	return ""
}
