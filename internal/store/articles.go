// internal/store/articles.go
package store

import (
	"sync"

	"github.com/anvogue/anvogue-admin/internal/models"
)

// ArticleList is an immutable snapshot of the local article list. Every update returns a
// new list with a higher version; the receiver is never modified.
type ArticleList struct {
	version  uint64
	articles []models.Article
}

func (l ArticleList) Version() uint64 {
	return l.version
}

func (l ArticleList) Len() int {
	return len(l.articles)
}

// Articles returns deep copies of the snapshot's articles.
func (l ArticleList) Articles() []models.Article {
	out := make([]models.Article, len(l.articles))
	for i, a := range l.articles {
		out[i] = a.Clone()
	}
	return out
}

func (l ArticleList) Find(id string) (models.Article, bool) {
	for _, a := range l.articles {
		if a.ID == id {
			return a.Clone(), true
		}
	}
	return models.Article{}, false
}

// Append adds a at the end. An article already present with the same id is replaced instead
// so an entity never appears twice.
func (l ArticleList) Append(a models.Article) ArticleList {
	if _, ok := l.Find(a.ID); ok && a.ID != "" {
		return l.Replace(a)
	}
	next := make([]models.Article, len(l.articles), len(l.articles)+1)
	copy(next, l.articles)
	return ArticleList{version: l.version + 1, articles: append(next, a.Clone())}
}

// Replace swaps the article with a's id for a. The list is returned unchanged when no article
// matches.
func (l ArticleList) Replace(a models.Article) ArticleList {
	idx := l.index(a.ID)
	if idx < 0 {
		return l
	}
	next := make([]models.Article, len(l.articles))
	copy(next, l.articles)
	next[idx] = a.Clone()
	return ArticleList{version: l.version + 1, articles: next}
}

func (l ArticleList) Remove(id string) ArticleList {
	idx := l.index(id)
	if idx < 0 {
		return l
	}
	next := make([]models.Article, 0, len(l.articles)-1)
	next = append(next, l.articles[:idx]...)
	next = append(next, l.articles[idx+1:]...)
	return ArticleList{version: l.version + 1, articles: next}
}

// ReplaceAll swaps in a freshly loaded list.
func (l ArticleList) ReplaceAll(articles []models.Article) ArticleList {
	next := make([]models.Article, len(articles))
	for i, a := range articles {
		next[i] = a.Clone()
	}
	return ArticleList{version: l.version + 1, articles: next}
}

// UpsertVariete puts v into its owning article's variants, replacing one with the same id.
func (l ArticleList) UpsertVariete(v models.Variete) ArticleList {
	a, ok := l.Find(v.ArticleID)
	if !ok {
		return l
	}
	replaced := false
	for i := range a.Varietes {
		if a.Varietes[i].ID == v.ID {
			a.Varietes[i] = v.Clone()
			replaced = true
			break
		}
	}
	if !replaced {
		a.Varietes = append(a.Varietes, v.Clone())
	}
	return l.Replace(a)
}

// RemoveVariete drops the variant with id from whichever article owns it.
func (l ArticleList) RemoveVariete(id string) ArticleList {
	for _, a := range l.articles {
		for i, v := range a.Varietes {
			if v.ID != id {
				continue
			}
			updated := a.Clone()
			updated.Varietes = append(updated.Varietes[:i:i], updated.Varietes[i+1:]...)
			return l.Replace(updated)
		}
	}
	return l
}

func (l ArticleList) index(id string) int {
	for i, a := range l.articles {
		if a.ID == id {
			return i
		}
	}
	return -1
}

// Listener receives every new snapshot after it is published.
type Listener func(ArticleList)

// ArticleStore owns the current snapshot and notifies subscribers on change.
type ArticleStore struct {
	mu        sync.RWMutex
	current   ArticleList
	listeners map[int]Listener
	nextID    int
}

func NewArticleStore(initial []models.Article) *ArticleStore {
	return &ArticleStore{
		current:   ArticleList{}.ReplaceAll(initial),
		listeners: make(map[int]Listener),
	}
}

func (s *ArticleStore) Snapshot() ArticleList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Update applies fn to the current snapshot and publishes the result when its version moved.
func (s *ArticleStore) Update(fn func(ArticleList) ArticleList) ArticleList {
	next, listeners, changed := s.apply(fn)
	if !changed {
		return next
	}
	for _, l := range listeners {
		l(next)
	}
	return next
}

func (s *ArticleStore) apply(fn func(ArticleList) ArticleList) (ArticleList, []Listener, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.current
	next := fn(prev)
	if next.version == prev.version {
		return prev, nil, false
	}
	s.current = next
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	return next, listeners, true
}

// Subscribe registers l and returns a function that removes it.
func (s *ArticleStore) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}
