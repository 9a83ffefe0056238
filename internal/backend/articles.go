// internal/backend/articles.go
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/anvogue/anvogue-admin/internal/models"
	"github.com/anvogue/anvogue-admin/internal/payload"
)

// ListArticles accepts either a bare array or the paginated {data: [...]} envelope.
func (c *Client) ListArticles(ctx context.Context) ([]models.Article, error) {
	var raw json.RawMessage
	if err := c.do(ctx, request{method: http.MethodGet, path: "/article"}, &raw); err != nil {
		return nil, err
	}

	var articles []models.Article
	if err := json.Unmarshal(raw, &articles); err == nil {
		return articles, nil
	}
	var page models.ArticlePage
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("%w: article list: %v", ErrMalformedResponse, err)
	}
	return page.Data, nil
}

func (c *Client) GetArticle(ctx context.Context, id string) (*models.Article, error) {
	return c.article(ctx, request{
		method:     http.MethodGet,
		path:       "/article/{id}",
		pathParams: map[string]string{"id": id},
	})
}

func (c *Client) CreateArticle(ctx context.Context, p *payload.Payload) (*models.Article, error) {
	return c.article(ctx, request{method: http.MethodPost, path: "/article", body: p})
}

func (c *Client) UpdateArticle(ctx context.Context, id string, p *payload.Payload) (*models.Article, error) {
	return c.article(ctx, request{
		method:     http.MethodPatch,
		path:       "/article/{id}",
		pathParams: map[string]string{"id": id},
		body:       p,
	})
}

func (c *Client) DeleteArticle(ctx context.Context, id string) error {
	return c.do(ctx, request{
		method:     http.MethodDelete,
		path:       "/article/{id}",
		pathParams: map[string]string{"id": id},
	}, nil)
}

// article runs r and insists on an entity with an id in the answer.
func (c *Client) article(ctx context.Context, r request) (*models.Article, error) {
	var a models.Article
	if err := c.do(ctx, r, &a); err != nil {
		return nil, err
	}
	if a.ID == "" {
		return nil, fmt.Errorf("%w: %s %s: article without id", ErrMalformedResponse, r.method, r.path)
	}
	return &a, nil
}
