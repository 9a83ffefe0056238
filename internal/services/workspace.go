// internal/services/workspace.go
package services

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/anvogue/anvogue-admin/internal/store"
)

// Workspace is one administrator's editing session: its two dialogs and the notices they
// produced. The article list behind them is shared by every workspace.
type Workspace struct {
	Subject  string
	Notices  *Recorder
	Articles *ArticleDialog
	Varietes *VarieteDialog

	mu       sync.Mutex
	lastSeen time.Time
}

func (w *Workspace) touch(now time.Time) {
	w.mu.Lock()
	w.lastSeen = now
	w.mu.Unlock()
}

func (w *Workspace) idleSince(now time.Time) time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	return now.Sub(w.lastSeen)
}

type BackendAPI interface {
	ArticleAPI
	VarieteAPI
}

// Workspaces hands out one Workspace per session subject.
type Workspaces struct {
	api   BackendAPI
	store *store.ArticleStore
	log   *logrus.Logger
	lang  string
	now   func() time.Time

	mu     sync.Mutex
	spaces map[string]*Workspace
}

func NewWorkspaces(api BackendAPI, articles *store.ArticleStore, log *logrus.Logger, lang string) *Workspaces {
	return &Workspaces{
		api:    api,
		store:  articles,
		log:    log,
		lang:   lang,
		now:    time.Now,
		spaces: make(map[string]*Workspace),
	}
}

// Get returns the subject's workspace, creating it on first use.
func (ws *Workspaces) Get(subject string) *Workspace {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	w, ok := ws.spaces[subject]
	if !ok {
		recorder := &Recorder{}
		notifier := Notifiers(recorder, NewLogNotifier(ws.log))
		w = &Workspace{
			Subject:  subject,
			Notices:  recorder,
			Articles: NewArticleDialog(ws.api, ws.store, notifier, ws.log, ws.lang),
			Varietes: NewVarieteDialog(ws.api, ws.store, notifier, ws.log, ws.lang),
		}
		ws.spaces[subject] = w
		ws.log.WithField("subject", subject).Debug("Workspace opened")
	}
	w.touch(ws.now())
	return w
}

// Drop closes the subject's dialogs and forgets the workspace.
func (ws *Workspaces) Drop(subject string) {
	ws.mu.Lock()
	w, ok := ws.spaces[subject]
	delete(ws.spaces, subject)
	ws.mu.Unlock()

	if ok {
		w.Articles.Cancel()
		w.Varietes.Cancel()
	}
}

// Sweep drops workspaces idle for longer than maxIdle and returns how many were dropped.
func (ws *Workspaces) Sweep(maxIdle time.Duration) int {
	now := ws.now()
	var idle []string

	ws.mu.Lock()
	for subject, w := range ws.spaces {
		if w.idleSince(now) > maxIdle {
			idle = append(idle, subject)
		}
	}
	ws.mu.Unlock()

	for _, subject := range idle {
		ws.Drop(subject)
	}
	if len(idle) > 0 {
		ws.log.WithField("dropped", len(idle)).Info("Idle workspaces swept")
	}
	return len(idle)
}

func (ws *Workspaces) Len() int {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return len(ws.spaces)
}
