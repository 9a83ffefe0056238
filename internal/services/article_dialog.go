// internal/services/article_dialog.go
package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/anvogue/anvogue-admin/internal/form"
	"github.com/anvogue/anvogue-admin/internal/i18n"
	"github.com/anvogue/anvogue-admin/internal/models"
	"github.com/anvogue/anvogue-admin/internal/payload"
	"github.com/anvogue/anvogue-admin/internal/store"
	"github.com/anvogue/anvogue-admin/internal/validation"
)

type ArticleAPI interface {
	CreateArticle(ctx context.Context, p *payload.Payload) (*models.Article, error)
	UpdateArticle(ctx context.Context, id string, p *payload.Payload) (*models.Article, error)
	DeleteArticle(ctx context.Context, id string) error
}

// ArticleDialog coordinates the create/edit article form: validation, payload assembly,
// the backend call and reconciliation of the shared article list.
type ArticleDialog struct {
	dialog
	editing *models.Article
	api     ArticleAPI
	store   *store.ArticleStore
}

func NewArticleDialog(api ArticleAPI, articles *store.ArticleStore, notifier Notifier, log *logrus.Logger, lang string) *ArticleDialog {
	d := &ArticleDialog{
		dialog: newDialog(form.ArticleRowsField, notifier, log.WithField("dialog", "article"), lang),
		api:    api,
		store:  articles,
	}
	d.failKey = map[DialogState]string{
		DialogCreate: i18n.KeyArticleCreateFailed,
		DialogEdit:   i18n.KeyArticleUpdateFailed,
	}
	d.okKey = map[DialogState]string{
		DialogCreate: i18n.KeyArticleCreated,
		DialogEdit:   i18n.KeyArticleUpdated,
	}
	return d
}

// OpenCreate opens an empty form with article defaults.
func (d *ArticleDialog) OpenCreate() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.editing = nil
	values, rows := form.ArticleValues(nil)
	d.openLocked(DialogCreate, values, rows)
}

// OpenEdit opens the form prefilled from a.
func (d *ArticleDialog) OpenEdit(a models.Article) {
	d.mu.Lock()
	defer d.mu.Unlock()
	editing := a.Clone()
	d.editing = &editing
	values, rows := form.ArticleValues(&editing)
	d.openLocked(DialogEdit, values, rows)
}

// OpenEditByID looks the article up in the local list before opening it.
func (d *ArticleDialog) OpenEditByID(id string) error {
	a, ok := d.store.Snapshot().Find(id)
	if !ok {
		return fmt.Errorf("article %s: %w", id, ErrNotFound)
	}
	d.OpenEdit(a)
	return nil
}

// Cancel closes the dialog; a response still in flight will be discarded.
func (d *ArticleDialog) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.editing = nil
	values, _ := form.ArticleValues(nil)
	d.closeLocked(values)
}

// SetImage puts u in the file buffer after checking type and size. A rejected file leaves
// the buffer as it was.
func (d *ArticleDialog) SetImage(ctx context.Context, u *models.Upload) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == DialogClosed {
		return ErrDialogClosed
	}
	if err := d.checkImageLocked(ctx, "image", u); err != nil {
		return err
	}
	d.files = []*models.Upload{u}
	return nil
}

func (d *ArticleDialog) ClearImage() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == DialogClosed {
		return ErrDialogClosed
	}
	d.files = nil
	return nil
}

func (d *ArticleDialog) View() DialogView {
	d.mu.Lock()
	defer d.mu.Unlock()
	view := d.viewLocked()
	if d.editing != nil {
		view.EditingID = d.editing.ID
	}
	return view
}

// Submit creates or updates the article depending on whether one is being edited. In edit
// mode only the fields changed since the dialog opened are sent.
func (d *ArticleDialog) Submit(ctx context.Context) (*models.Article, error) {
	var saved *models.Article

	err := d.submit(ctx,
		func(lang string) (sendFunc, error) {
			mode := validation.Create
			if d.editing != nil {
				mode = validation.Update
			}

			in := d.form.Input(mode == validation.Update)
			if len(d.files) > 0 {
				in["image"] = d.files[0]
			}

			draft, err := validation.New(lang).ValidateArticle(mode, in)
			if err != nil {
				return nil, err
			}
			body := payload.Article(draft, mode)

			if mode == validation.Update {
				id := d.editing.ID
				return func(ctx context.Context) (interface{}, error) {
					return d.api.UpdateArticle(ctx, id, body)
				}, nil
			}
			return func(ctx context.Context) (interface{}, error) {
				return d.api.CreateArticle(ctx, body)
			}, nil
		},
		func(result interface{}) {
			a := result.(*models.Article)
			if d.editing != nil {
				// The response is authoritative, but the route id identifies the entry.
				if a.ID == "" {
					a.ID = d.editing.ID
				}
				editingID := d.editing.ID
				d.store.Update(func(l store.ArticleList) store.ArticleList {
					if a.ID != editingID {
						l = l.Remove(editingID)
						return l.Append(*a)
					}
					return l.Replace(*a)
				})
			} else {
				d.store.Update(func(l store.ArticleList) store.ArticleList {
					return l.Append(*a)
				})
			}
			saved = a
			d.editing = nil
		},
		func() form.Values {
			values, _ := form.ArticleValues(nil)
			return values
		},
	)
	if err != nil {
		return nil, err
	}
	return saved, nil
}
