// internal/services/fakes_test.go
package services

import (
	"context"
	"sync"

	"github.com/anvogue/anvogue-admin/internal/models"
	"github.com/anvogue/anvogue-admin/internal/payload"
)

// fakeAPI stands in for the backend client. started and block let a test hold a request in
// flight.
type fakeAPI struct {
	mu       sync.Mutex
	calls    []string
	payloads []*payload.Payload
	ids      []string

	article     *models.Article
	variete     *models.Variete
	articles    []models.Article
	categories  []models.Categorie
	collections []models.Collection
	session     *models.Session
	user        *models.Utilisateur
	client      *models.Client
	err         error
	panicMsg    string

	started chan struct{}
	block   chan struct{}
}

func (f *fakeAPI) record(call, id string, p *payload.Payload) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.ids = append(f.ids, id)
	f.payloads = append(f.payloads, p)
	f.mu.Unlock()

	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
}

func (f *fakeAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeAPI) lastPayload() *payload.Payload {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.payloads) == 0 {
		return nil
	}
	return f.payloads[len(f.payloads)-1]
}

func (f *fakeAPI) lastID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.ids) == 0 {
		return ""
	}
	return f.ids[len(f.ids)-1]
}

func (f *fakeAPI) CreateArticle(_ context.Context, p *payload.Payload) (*models.Article, error) {
	f.record("CreateArticle", "", p)
	if f.err != nil {
		return nil, f.err
	}
	a := f.article.Clone()
	return &a, nil
}

func (f *fakeAPI) UpdateArticle(_ context.Context, id string, p *payload.Payload) (*models.Article, error) {
	f.record("UpdateArticle", id, p)
	if f.err != nil {
		return nil, f.err
	}
	a := f.article.Clone()
	return &a, nil
}

func (f *fakeAPI) DeleteArticle(_ context.Context, id string) error {
	f.record("DeleteArticle", id, nil)
	return f.err
}

func (f *fakeAPI) CreateVariete(_ context.Context, p *payload.Payload) (*models.Variete, error) {
	f.record("CreateVariete", "", p)
	if f.err != nil {
		return nil, f.err
	}
	v := f.variete.Clone()
	return &v, nil
}

func (f *fakeAPI) UpdateVariete(_ context.Context, id string, p *payload.Payload) (*models.Variete, error) {
	f.record("UpdateVariete", id, p)
	if f.err != nil {
		return nil, f.err
	}
	v := f.variete.Clone()
	return &v, nil
}

func (f *fakeAPI) DeleteVariete(_ context.Context, id string) error {
	f.record("DeleteVariete", id, nil)
	return f.err
}

func (f *fakeAPI) ListArticles(context.Context) ([]models.Article, error) {
	f.record("ListArticles", "", nil)
	return f.articles, f.err
}

func (f *fakeAPI) ListCategories(context.Context) ([]models.Categorie, error) {
	f.record("ListCategories", "", nil)
	return f.categories, f.err
}

func (f *fakeAPI) ListCollections(context.Context) ([]models.Collection, error) {
	f.record("ListCollections", "", nil)
	return f.collections, f.err
}

func (f *fakeAPI) Connexion(context.Context, interface{}) (*models.Session, error) {
	f.record("Connexion", "", nil)
	return f.session, f.err
}

func (f *fakeAPI) Login(context.Context, interface{}) (*models.Session, error) {
	f.record("Login", "", nil)
	return f.session, f.err
}

func (f *fakeAPI) Inscription(_ context.Context, p *payload.Payload) (*models.Utilisateur, error) {
	f.record("Inscription", "", p)
	return f.user, f.err
}

func (f *fakeAPI) Signin(_ context.Context, p *payload.Payload) (*models.Client, error) {
	f.record("Signin", "", p)
	return f.client, f.err
}

func (f *fakeAPI) ProfileUtilisateur(context.Context) (*models.Utilisateur, error) {
	f.record("ProfileUtilisateur", "", nil)
	return f.user, f.err
}

func png(name string) *models.Upload {
	return &models.Upload{Filename: name, ContentType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}}
}
