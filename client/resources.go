package client

import (
	"context"
	"net/http"
	"net/url"

	"mcp-playground/models"
)

type ToolFilter struct {
	Q        string
	Category string
	Tags     []string
	Sort     string
	Limit    int
	Offset   int
}

func (f ToolFilter) values() url.Values {
	q := url.Values{}
	setString(q, "q", f.Q)
	setString(q, "category", f.Category)
	for _, tag := range f.Tags {
		q.Add("tags", tag)
	}
	setString(q, "sort", f.Sort)
	setInt(q, "limit", f.Limit)
	setInt(q, "offset", f.Offset)
	return q
}

type ToolsAPI struct{ c *Client }

func (a *ToolsAPI) List(ctx context.Context, f ToolFilter) (*Envelope[[]models.Tool], error) {
	return do[[]models.Tool](ctx, a.c, http.MethodGet, "/api/tools", f.values(), nil)
}

func (a *ToolsAPI) Get(ctx context.Context, id string) (*Envelope[models.Tool], error) {
	return do[models.Tool](ctx, a.c, http.MethodGet, "/api/tools/"+url.PathEscape(id), nil, nil)
}

func (a *ToolsAPI) Create(ctx context.Context, req models.CreateToolRequest) (*Envelope[models.Tool], error) {
	return do[models.Tool](ctx, a.c, http.MethodPost, "/api/tools", nil, req)
}

func (a *ToolsAPI) Update(ctx context.Context, id string, req models.UpdateToolRequest) (*Envelope[models.Tool], error) {
	return do[models.Tool](ctx, a.c, http.MethodPut, "/api/tools/"+url.PathEscape(id), nil, req)
}

func (a *ToolsAPI) Delete(ctx context.Context, id string) (*Envelope[models.MessageResponse], error) {
	return do[models.MessageResponse](ctx, a.c, http.MethodDelete, "/api/tools/"+url.PathEscape(id), nil, nil)
}

type BlogFilter struct {
	// Published is sent as-is; empty leaves the server default (published
	// posts only).
	Published string
	Tag       string
	Limit     int
	Offset    int
}

type BlogAPI struct{ c *Client }

func (a *BlogAPI) List(ctx context.Context, f BlogFilter) (*Envelope[[]models.BlogPost], error) {
	q := url.Values{}
	setString(q, "published", f.Published)
	setString(q, "tag", f.Tag)
	setInt(q, "limit", f.Limit)
	setInt(q, "offset", f.Offset)
	return do[[]models.BlogPost](ctx, a.c, http.MethodGet, "/api/blog", q, nil)
}

func (a *BlogAPI) Get(ctx context.Context, slug string) (*Envelope[models.BlogPost], error) {
	return do[models.BlogPost](ctx, a.c, http.MethodGet, "/api/blog/"+url.PathEscape(slug), nil, nil)
}

func (a *BlogAPI) Create(ctx context.Context, req models.CreateBlogPostRequest) (*Envelope[models.BlogPost], error) {
	return do[models.BlogPost](ctx, a.c, http.MethodPost, "/api/blog", nil, req)
}

type DocsAPI struct{ c *Client }

func (a *DocsAPI) List(ctx context.Context, category string) (*Envelope[[]models.DocumentationSection], error) {
	q := url.Values{}
	setString(q, "category", category)
	return do[[]models.DocumentationSection](ctx, a.c, http.MethodGet, "/api/documentation", q, nil)
}

func (a *DocsAPI) Get(ctx context.Context, id string) (*Envelope[models.DocumentationSection], error) {
	return do[models.DocumentationSection](ctx, a.c, http.MethodGet, "/api/documentation/"+url.PathEscape(id), nil, nil)
}

func (a *DocsAPI) Categories(ctx context.Context) (*Envelope[[]string], error) {
	return do[[]string](ctx, a.c, http.MethodGet, "/api/documentation/meta/categories", nil, nil)
}

type ContactFilter struct {
	Status string
	Limit  int
	Offset int
}

type ContactAPI struct{ c *Client }

func (a *ContactAPI) Submit(ctx context.Context, req models.CreateContactMessageRequest) (*Envelope[models.ContactReceipt], error) {
	return do[models.ContactReceipt](ctx, a.c, http.MethodPost, "/api/contact", nil, req)
}

func (a *ContactAPI) List(ctx context.Context, f ContactFilter) (*Envelope[[]models.ContactMessage], error) {
	q := url.Values{}
	setString(q, "status", f.Status)
	setInt(q, "limit", f.Limit)
	setInt(q, "offset", f.Offset)
	return do[[]models.ContactMessage](ctx, a.c, http.MethodGet, "/api/contact", q, nil)
}

func (a *ContactAPI) UpdateStatus(ctx context.Context, id string, status models.ContactStatus) (*Envelope[models.ContactMessage], error) {
	body := models.UpdateContactStatusRequest{Status: status}
	return do[models.ContactMessage](ctx, a.c, http.MethodPut, "/api/contact/"+url.PathEscape(id), nil, body)
}
