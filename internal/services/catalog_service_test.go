// internal/services/catalog_service_test.go
package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvogue/anvogue-admin/internal/backend"
	"github.com/anvogue/anvogue-admin/internal/i18n"
	"github.com/anvogue/anvogue-admin/internal/logger"
	"github.com/anvogue/anvogue-admin/internal/models"
	"github.com/anvogue/anvogue-admin/internal/store"
)

func loadedCatalog(t *testing.T, api *fakeAPI) *CatalogService {
	t.Helper()
	api.articles = []models.Article{
		{ID: "a1", Nom: "Chemise en lin", CategorieID: "c1", Varietes: []models.Variete{{ID: "v1", ArticleID: "a1"}}},
		{ID: "a2", Nom: "Pantalon", CategorieID: "c2"},
	}
	api.categories = []models.Categorie{{ID: "c1", Nom: "Hauts"}}
	api.collections = []models.Collection{{ID: "k1", Nom: "Été"}}

	s := NewCatalogService(api, store.NewArticleStore(nil), logger.Discard(), "fr")
	require.NoError(t, s.Load(context.Background()))
	return s
}

func TestCatalogLoad(t *testing.T) {
	api := &fakeAPI{}
	s := loadedCatalog(t, api)

	assert.Equal(t, []string{"ListArticles", "ListCategories", "ListCollections"}, api.Calls())
	assert.Len(t, s.Articles(), 2)
	assert.Len(t, s.Categories(), 1)
	assert.Len(t, s.Collections(), 1)
}

func TestCatalogLoadFailure(t *testing.T) {
	api := &fakeAPI{err: errors.New("connection refused")}
	s := NewCatalogService(api, store.NewArticleStore(nil), logger.Discard(), "fr")

	assert.Error(t, s.Load(context.Background()))
	assert.NotNil(t, s.Categories())
	assert.Empty(t, s.Categories())
}

func TestCatalogSearch(t *testing.T) {
	s := loadedCatalog(t, &fakeAPI{})

	tests := []struct {
		term string
		want []string
	}{
		{"", []string{"a1", "a2"}},
		{"  ", []string{"a1", "a2"}},
		{"LIN", []string{"a1"}},
		{"pant", []string{"a2"}},
		{"robe", nil},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			var ids []string
			for _, a := range s.Search(tt.term) {
				ids = append(ids, a.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestCatalogNames(t *testing.T) {
	s := loadedCatalog(t, &fakeAPI{})

	assert.Equal(t, "Hauts", s.CategoryName("fr", "c1"))
	assert.Equal(t, "N/A", s.CategoryName("fr", "c2"))
	assert.Equal(t, "Été", s.CollectionName("", "k1"))
	assert.Equal(t, "Aucune collection", s.CollectionName("", ""))
}

func TestCatalogDeleteArticle(t *testing.T) {
	api := &fakeAPI{}
	s := loadedCatalog(t, api)
	rec := &Recorder{}

	require.NoError(t, s.DeleteArticle(context.Background(), "a2", rec))

	_, ok := s.Article("a2")
	assert.False(t, ok)
	assert.Equal(t, "a2", api.lastID())
	notice, _ := rec.Last()
	assert.Equal(t, Notice{Level: NoticeSuccess, Message: i18n.T("fr", i18n.KeyArticleDeleted)}, notice)
}

func TestCatalogDeleteArticleFailureKeepsList(t *testing.T) {
	api := &fakeAPI{}
	s := loadedCatalog(t, api)
	rec := &Recorder{}
	api.err = &backend.APIError{StatusCode: 409, Message: "Article lié à des commandes"}

	err := s.DeleteArticle(context.Background(), "a2", rec)

	assert.Error(t, err)
	_, ok := s.Article("a2")
	assert.True(t, ok)
	notice, _ := rec.Last()
	assert.Equal(t, Notice{Level: NoticeError, Message: "Article lié à des commandes"}, notice)
}

func TestCatalogDeleteArticleGenericFailure(t *testing.T) {
	api := &fakeAPI{}
	s := loadedCatalog(t, api)
	rec := &Recorder{}
	api.err = &backend.APIError{StatusCode: 500}

	assert.Error(t, s.DeleteArticle(context.Background(), "a2", rec))
	notice, _ := rec.Last()
	assert.Equal(t, i18n.T("fr", i18n.KeyArticleDeleteFailed), notice.Message)
}

func TestCatalogDeleteVariete(t *testing.T) {
	api := &fakeAPI{}
	s := loadedCatalog(t, api)

	require.NoError(t, s.DeleteVariete(context.Background(), "v1", nil))

	a, _ := s.Article("a1")
	assert.Empty(t, a.Varietes)
	assert.Equal(t, []string{"DeleteVariete"}, api.Calls()[3:])
}
