// internal/services/dialog.go
package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/anvogue/anvogue-admin/internal/backend"
	"github.com/anvogue/anvogue-admin/internal/form"
	"github.com/anvogue/anvogue-admin/internal/i18n"
	"github.com/anvogue/anvogue-admin/internal/models"
	"github.com/anvogue/anvogue-admin/internal/validation"
)

var (
	ErrDialogClosed     = errors.New("dialog is closed")
	ErrSubmitInProgress = errors.New("a submission is already in flight")
	ErrStaleResponse    = errors.New("response belongs to an abandoned submission")

	ErrNotFound           = errors.New("not found in the article list")
	ErrArticleNotSelected = errors.New("no article selected for the variant")
)

// UnexpectedError wraps a panic recovered while preparing or reconciling a submission.
type UnexpectedError struct {
	Cause interface{}
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("unexpected error: %v", e.Cause)
}

type DialogState string

const (
	DialogClosed DialogState = "closed"
	DialogCreate DialogState = "create"
	DialogEdit   DialogState = "edit"
)

// DialogView is a read-only picture of a dialog for rendering.
type DialogView struct {
	State           DialogState            `json:"state"`
	EditingID       string                 `json:"editing_id,omitempty"`
	ArticleID       string                 `json:"article_id,omitempty"`
	Values          form.Values            `json:"values"`
	Rows            []form.Row             `json:"rows"`
	Files           []string               `json:"files,omitempty"`
	Errors          validation.FieldErrors `json:"errors,omitempty"`
	Dirty           bool                   `json:"dirty"`
	PromotionActive bool                   `json:"promotion_active"`
	Submitting      bool                   `json:"submitting"`
}

// sendFunc performs the network part of a submission.
type sendFunc func(ctx context.Context) (interface{}, error)

// dialog is the lifecycle shared by the article and variant dialogs:
// Closed -> Open(create|edit) -> Closed on success or cancel. Every open, close and submit
// bumps token; a response is applied only if the token it was sent with is still current.
type dialog struct {
	mu         sync.Mutex
	state      DialogState
	form       *form.Form
	files      []*models.Upload
	token      uint64
	submitting bool

	notifier Notifier
	log      *logrus.Entry
	lang     string

	failKey map[DialogState]string
	okKey   map[DialogState]string
}

func newDialog(rowsField string, notifier Notifier, log *logrus.Entry, lang string) dialog {
	if notifier == nil {
		notifier = Notifiers()
	}
	return dialog{
		state:    DialogClosed,
		form:     form.New(rowsField),
		notifier: notifier,
		log:      log,
		lang:     lang,
	}
}

// openLocked resets the form and the file buffer and moves to state.
func (d *dialog) openLocked(state DialogState, values form.Values, rows []models.SizeRow) {
	d.token++
	d.submitting = false
	d.state = state
	d.files = nil
	d.form.Initialize(values, rows)
}

func (d *dialog) closeLocked(defaults form.Values) {
	d.token++
	d.submitting = false
	d.state = DialogClosed
	d.files = nil
	d.form.Initialize(defaults, nil)
}

func (d *dialog) State() DialogState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

func (d *dialog) SetField(field string, value interface{}) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == DialogClosed {
		return ErrDialogClosed
	}
	if field == d.form.RowsField() {
		return d.form.SetRows(value)
	}
	d.form.Set(field, value)
	return nil
}

// SetFields applies several field changes at once.
func (d *dialog) SetFields(values map[string]interface{}) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == DialogClosed {
		return ErrDialogClosed
	}
	rowsField := d.form.RowsField()
	if rows, ok := values[rowsField]; ok {
		if err := d.form.SetRows(rows); err != nil {
			return err
		}
	}
	for k, v := range values {
		if k == rowsField {
			continue
		}
		d.form.Set(k, v)
	}
	return nil
}

func (d *dialog) AppendRow(row models.SizeRow) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == DialogClosed {
		return "", ErrDialogClosed
	}
	return d.form.AppendRow(row), nil
}

func (d *dialog) RemoveRow(index int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == DialogClosed {
		return ErrDialogClosed
	}
	return d.form.RemoveRow(index)
}

func (d *dialog) UpdateRow(index int, field, value string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == DialogClosed {
		return ErrDialogClosed
	}
	return d.form.UpdateRow(index, field, value)
}

func (d *dialog) viewLocked() DialogView {
	files := make([]string, 0, len(d.files))
	for _, f := range d.files {
		files = append(files, f.Filename)
	}
	return DialogView{
		State:           d.state,
		Values:          d.form.Values(),
		Rows:            d.form.Rows(),
		Files:           files,
		Errors:          d.form.Errors(),
		Dirty:           d.form.Dirty(),
		PromotionActive: d.form.PromotionActive(),
		Submitting:      d.submitting,
	}
}

// checkImageLocked validates an upload before it enters the file buffer.
func (d *dialog) checkImageLocked(ctx context.Context, field string, u *models.Upload) error {
	v := validation.New(i18n.LangFrom(ctx, d.lang))
	if msg := v.CheckImage(u); msg != "" {
		errs := validation.FieldErrors{field: msg}
		d.notify(NoticeError, msg)
		return errs
	}
	return nil
}

// submit runs one validate/send/reconcile cycle. prepare runs under the lock and returns the
// network call, or an error that aborts before any request. commit runs under the lock with
// the response and must only touch local state. reset returns the values the form is cleared
// to after success.
func (d *dialog) submit(ctx context.Context, prepare func(lang string) (sendFunc, error), commit func(interface{}), reset func() form.Values) error {
	lang := i18n.LangFrom(ctx, d.lang)

	d.mu.Lock()
	if d.state == DialogClosed {
		d.mu.Unlock()
		return ErrDialogClosed
	}
	if d.submitting {
		d.mu.Unlock()
		return ErrSubmitInProgress
	}
	state := d.state

	send, err := d.guard(func() (sendFunc, error) { return prepare(lang) })
	if err != nil {
		if fe, ok := validation.AsFieldErrors(err); ok {
			d.form.SetErrors(fe)
			d.notify(NoticeError, i18n.T(lang, i18n.KeyValidationFailed))
		} else {
			d.notify(NoticeError, i18n.T(lang, i18n.KeyUnexpectedError))
		}
		d.mu.Unlock()
		return err
	}
	d.form.SetErrors(nil)
	d.token++
	token := d.token
	d.submitting = true
	d.mu.Unlock()

	result, callErr := d.send(ctx, send)

	d.mu.Lock()
	defer d.mu.Unlock()
	if token != d.token {
		d.log.WithField("token", token).Warn("Discarding response of an abandoned submission")
		return ErrStaleResponse
	}
	d.submitting = false

	if callErr != nil {
		d.notify(NoticeError, FailureMessage(lang, callErr, d.failKey[state]))
		return callErr
	}

	if err := d.guardCommit(commit, result); err != nil {
		d.notify(NoticeError, i18n.T(lang, i18n.KeyUnexpectedError))
		return err
	}

	d.notify(NoticeSuccess, i18n.T(lang, d.okKey[state]))
	d.closeLocked(reset())
	return nil
}

func (d *dialog) send(ctx context.Context, send sendFunc) (result interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			d.log.WithField("panic", r).Error("Unexpected error while sending")
			err = &UnexpectedError{Cause: r}
		}
	}()
	return send(ctx)
}

func (d *dialog) guard(prepare func() (sendFunc, error)) (send sendFunc, err error) {
	defer func() {
		if r := recover(); r != nil {
			d.log.WithField("panic", r).Error("Unexpected error while preparing payload")
			send, err = nil, &UnexpectedError{Cause: r}
		}
	}()
	return prepare()
}

func (d *dialog) guardCommit(commit func(interface{}), result interface{}) (err error) {
	defer func() {
		if r := recover(); r != nil {
			d.log.WithField("panic", r).Error("Unexpected error while reconciling")
			err = &UnexpectedError{Cause: r}
		}
	}()
	commit(result)
	return nil
}

func (d *dialog) notify(level NoticeLevel, message string) {
	d.notifier.Notify(Notice{Level: level, Message: message})
}

// FailureMessage picks the backend message when there is one, then a message for the error
// class, then the operation's generic failure text.
func FailureMessage(lang string, err error, fallbackKey string) string {
	var apiErr *backend.APIError
	var unexpected *UnexpectedError
	var urlErr *url.Error
	switch {
	case errors.As(err, &apiErr) && apiErr.Message != "":
		return apiErr.Message
	case errors.Is(err, backend.ErrMalformedResponse):
		return i18n.T(lang, i18n.KeyBackendMalformed)
	case errors.As(err, &unexpected):
		return i18n.T(lang, i18n.KeyUnexpectedError)
	case errors.As(err, &urlErr), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return i18n.T(lang, i18n.KeyBackendUnreached)
	case fallbackKey != "":
		return i18n.T(lang, fallbackKey)
	default:
		return i18n.T(lang, i18n.KeyError)
	}
}
