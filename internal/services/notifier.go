// internal/services/notifier.go
package services

import (
	"sync"

	"github.com/sirupsen/logrus"
)

type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notice is one user-facing message, the equivalent of a toast.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}

type Notifier interface {
	Notify(Notice)
}

// LogNotifier writes notices to the application log.
type LogNotifier struct {
	log *logrus.Entry
}

func NewLogNotifier(log *logrus.Logger) *LogNotifier {
	return &LogNotifier{log: log.WithField("component", "notices")}
}

func (n *LogNotifier) Notify(notice Notice) {
	entry := n.log.WithField("level_hint", string(notice.Level))
	if notice.Level == NoticeError {
		entry.Warn(notice.Message)
		return
	}
	entry.Info(notice.Message)
}

// Recorder keeps notices until they are drained by the HTTP layer.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

func (r *Recorder) Notify(notice Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, notice)
}

// Drain returns the notices recorded since the previous call.
func (r *Recorder) Drain() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.notices
	r.notices = nil
	return out
}

// Last returns the most recent notice without draining.
func (r *Recorder) Last() (Notice, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notices) == 0 {
		return Notice{}, false
	}
	return r.notices[len(r.notices)-1], true
}

type multiNotifier []Notifier

func (m multiNotifier) Notify(notice Notice) {
	for _, n := range m {
		n.Notify(notice)
	}
}

// Notifiers fans a notice out to every non-nil notifier.
func Notifiers(ns ...Notifier) Notifier {
	out := make(multiNotifier, 0, len(ns))
	for _, n := range ns {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}
