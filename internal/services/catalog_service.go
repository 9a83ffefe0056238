// internal/services/catalog_service.go
package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/anvogue/anvogue-admin/internal/i18n"
	"github.com/anvogue/anvogue-admin/internal/models"
	"github.com/anvogue/anvogue-admin/internal/store"
)

type CatalogAPI interface {
	ListArticles(ctx context.Context) ([]models.Article, error)
	ListCategories(ctx context.Context) ([]models.Categorie, error)
	ListCollections(ctx context.Context) ([]models.Collection, error)
	DeleteArticle(ctx context.Context, id string) error
	DeleteVariete(ctx context.Context, id string) error
}

// CatalogService owns the shared article list and the reference data used to label it.
type CatalogService struct {
	api   CatalogAPI
	store *store.ArticleStore
	log   *logrus.Entry
	lang  string

	mu          sync.RWMutex
	categories  []models.Categorie
	collections []models.Collection
}

func NewCatalogService(api CatalogAPI, articles *store.ArticleStore, log *logrus.Logger, lang string) *CatalogService {
	return &CatalogService{
		api:   api,
		store: articles,
		log:   log.WithField("service", "catalog"),
		lang:  lang,
	}
}

func (s *CatalogService) Store() *store.ArticleStore {
	return s.store
}

// Load fetches articles, categories and collections. It stops at the first failure and leaves
// what was already loaded in place.
func (s *CatalogService) Load(ctx context.Context) error {
	if err := s.ReloadArticles(ctx); err != nil {
		return err
	}

	categories, err := s.api.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}
	collections, err := s.api.ListCollections(ctx)
	if err != nil {
		return fmt.Errorf("failed to load collections: %w", err)
	}

	s.mu.Lock()
	s.categories = categories
	s.collections = collections
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"categories":  len(categories),
		"collections": len(collections),
	}).Info("Reference data loaded")
	return nil
}

// ReloadArticles replaces the local list with the backend's.
func (s *CatalogService) ReloadArticles(ctx context.Context) error {
	articles, err := s.api.ListArticles(ctx)
	if err != nil {
		return fmt.Errorf("failed to load articles: %w", err)
	}
	list := s.store.Update(func(l store.ArticleList) store.ArticleList {
		return l.ReplaceAll(articles)
	})
	s.log.WithFields(logrus.Fields{
		"articles": list.Len(),
		"version":  list.Version(),
	}).Info("Articles loaded")
	return nil
}

func (s *CatalogService) Articles() []models.Article {
	return s.store.Snapshot().Articles()
}

func (s *CatalogService) Article(id string) (models.Article, bool) {
	return s.store.Snapshot().Find(id)
}

// Search filters the local list by a case-insensitive match on nom. A blank term matches
// everything.
func (s *CatalogService) Search(term string) []models.Article {
	articles := s.store.Snapshot().Articles()
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return articles
	}
	out := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if strings.Contains(strings.ToLower(a.Nom), term) {
			out = append(out, a)
		}
	}
	return out
}

func (s *CatalogService) Categories() []models.Categorie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Categorie, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *CatalogService) Collections() []models.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Collection, len(s.collections))
	copy(out, s.collections)
	return out
}

// CategoryName returns the display name for id, or the "none" label.
func (s *CatalogService) CategoryName(lang, id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.ID == id && id != "" {
			return c.Nom
		}
	}
	return i18n.T(s.langOr(lang), i18n.KeyCategoryNone)
}

func (s *CatalogService) CollectionName(lang, id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.collections {
		if c.ID == id && id != "" {
			return c.Nom
		}
	}
	return i18n.T(s.langOr(lang), i18n.KeyCollectionNone)
}

// DeleteArticle asks the backend to delete id and only then drops it from the local list.
func (s *CatalogService) DeleteArticle(ctx context.Context, id string, notifier Notifier) error {
	lang := i18n.LangFrom(ctx, s.lang)
	if err := s.api.DeleteArticle(ctx, id); err != nil {
		s.log.WithError(err).WithField("article_id", id).Warn("Article deletion failed")
		notify(notifier, NoticeError, FailureMessage(lang, err, i18n.KeyArticleDeleteFailed))
		return err
	}
	s.store.Update(func(l store.ArticleList) store.ArticleList {
		return l.Remove(id)
	})
	notify(notifier, NoticeSuccess, i18n.T(lang, i18n.KeyArticleDeleted))
	return nil
}

// DeleteVariete deletes a variant remotely, then filters it out of its article.
func (s *CatalogService) DeleteVariete(ctx context.Context, id string, notifier Notifier) error {
	lang := i18n.LangFrom(ctx, s.lang)
	if err := s.api.DeleteVariete(ctx, id); err != nil {
		s.log.WithError(err).WithField("variete_id", id).Warn("Variete deletion failed")
		notify(notifier, NoticeError, FailureMessage(lang, err, i18n.KeyVarieteDeleteFailed))
		return err
	}
	s.store.Update(func(l store.ArticleList) store.ArticleList {
		return l.RemoveVariete(id)
	})
	notify(notifier, NoticeSuccess, i18n.T(lang, i18n.KeyVarieteDeleted))
	return nil
}

func (s *CatalogService) langOr(lang string) string {
	if lang == "" {
		return s.lang
	}
	return lang
}

func notify(n Notifier, level NoticeLevel, message string) {
	if n == nil {
		return
	}
	n.Notify(Notice{Level: level, Message: message})
}
