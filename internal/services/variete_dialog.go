// internal/services/variete_dialog.go
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

type VarieteAPI interface {
	CreateVariete(ctx context.Context, p *payload.Payload) (*models.Variete, error)
	UpdateVariete(ctx context.Context, id string, p *payload.Payload) (*models.Variete, error)
	DeleteVariete(ctx context.Context, id string) error
}

// VarieteDialog is the variant form. It is always scoped to one selected article.
type VarieteDialog struct {
	dialog
	article *models.Article
	editing *models.Variete
	api     VarieteAPI
	store   *store.ArticleStore
}

func NewVarieteDialog(api VarieteAPI, articles *store.ArticleStore, notifier Notifier, log *logrus.Logger, lang string) *VarieteDialog {
	d := &VarieteDialog{
		dialog: newDialog(form.VarieteRowsField, notifier, log.WithField("dialog", "variete"), lang),
		api:    api,
		store:  articles,
	}
	d.failKey = map[DialogState]string{
		DialogCreate: i18n.KeyVarieteCreateFailed,
		DialogEdit:   i18n.KeyVarieteUpdateFailed,
	}
	d.okKey = map[DialogState]string{
		DialogCreate: i18n.KeyVarieteCreated,
		DialogEdit:   i18n.KeyVarieteUpdated,
	}
	return d
}

func (d *VarieteDialog) OpenCreate(article models.Article) {
	d.mu.Lock()
	defer d.mu.Unlock()
	selected := article.Clone()
	d.article = &selected
	d.editing = nil
	values, rows := form.VarieteValues(nil)
	d.openLocked(DialogCreate, values, rows)
}

func (d *VarieteDialog) OpenEdit(article models.Article, v models.Variete) {
	d.mu.Lock()
	defer d.mu.Unlock()
	selected := article.Clone()
	editing := v.Clone()
	d.article = &selected
	d.editing = &editing
	values, rows := form.VarieteValues(&editing)
	d.openLocked(DialogEdit, values, rows)
}

// OpenByID resolves the article (and the variant when varieteID is set) from the local
// list.
func (d *VarieteDialog) OpenByID(articleID, varieteID string) error {
	a, ok := d.store.Snapshot().Find(articleID)
	if !ok {
		return fmt.Errorf("article %s: %w", articleID, ErrNotFound)
	}
	if varieteID == "" {
		d.OpenCreate(a)
		return nil
	}
	for _, v := range a.Varietes {
		if v.ID == varieteID {
			d.OpenEdit(a, v)
			return nil
		}
	}
	return fmt.Errorf("variete %s: %w", varieteID, ErrNotFound)
}

func (d *VarieteDialog) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.article = nil
	d.editing = nil
	values, _ := form.VarieteValues(nil)
	d.closeLocked(values)
}

// AddImage appends u to the buffered images after checking it.
func (d *VarieteDialog) AddImage(ctx context.Context, u *models.Upload) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == DialogClosed {
		return ErrDialogClosed
	}
	if err := d.checkImageLocked(ctx, fmt.Sprintf("images.%d", len(d.files)), u); err != nil {
		return err
	}
	d.files = append(d.files, u)
	return nil
}

func (d *VarieteDialog) RemoveImage(index int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == DialogClosed {
		return ErrDialogClosed
	}
	if index < 0 || index >= len(d.files) {
		return fmt.Errorf("%w: %d", form.ErrRowIndex, index)
	}
	files := make([]*models.Upload, 0, len(d.files)-1)
	files = append(files, d.files[:index]...)
	d.files = append(files, d.files[index+1:]...)
	return nil
}

func (d *VarieteDialog) View() DialogView {
	d.mu.Lock()
	defer d.mu.Unlock()
	view := d.viewLocked()
	if d.article != nil {
		view.ArticleID = d.article.ID
	}
	if d.editing != nil {
		view.EditingID = d.editing.ID
	}
	return view
}

// Submit creates or updates the variant and folds the server's copy into its article.
func (d *VarieteDialog) Submit(ctx context.Context) (*models.Variete, error) {
	var saved *models.Variete

	err := d.submit(ctx,
		func(lang string) (sendFunc, error) {
			if d.article == nil {
				return nil, ErrArticleNotSelected
			}
			mode := validation.Create
			if d.editing != nil {
				mode = validation.Update
			}

			in := d.form.Input(mode == validation.Update)
			if mode == validation.Create {
				in["article_id"] = d.article.ID
			}
			if len(d.files) > 0 {
				in["images"] = append([]*models.Upload(nil), d.files...)
			}

			draft, err := validation.New(lang).ValidateVariete(mode, in)
			if err != nil {
				return nil, err
			}
			body := payload.Variete(draft)

			if mode == validation.Update {
				id := d.editing.ID
				return func(ctx context.Context) (interface{}, error) {
					return d.api.UpdateVariete(ctx, id, body)
				}, nil
			}
			return func(ctx context.Context) (interface{}, error) {
				return d.api.CreateVariete(ctx, body)
			}, nil
		},
		func(result interface{}) {
			v := result.(*models.Variete)
			if v.ArticleID == "" {
				v.ArticleID = d.article.ID
			}
			d.store.Update(func(l store.ArticleList) store.ArticleList {
				return l.UpsertVariete(*v)
			})
			saved = v
			d.article = nil
			d.editing = nil
		},
		func() form.Values {
			values, _ := form.VarieteValues(nil)
			return values
		},
	)
	if err != nil {
		return nil, err
	}
	return saved, nil
}
