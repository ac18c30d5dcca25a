// Package notify is the console's notification surface: short toast-like
// messages with a severity, a summary, an optional detail and a life after
// which they are no longer shown.
package notify

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// Severity of a notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarn    Severity = "warn"
	SeverityError   Severity = "error"
)

// DefaultLife is how long a notification stays active unless set.
const DefaultLife = 3 * time.Second

// Notification is one message to the operator.
type Notification struct {
	ID        string
	Severity  Severity
	Summary   string
	Detail    string
	Life      time.Duration
	CreatedAt time.Time
}

// ActiveAt reports whether n is still shown at now.
func (n Notification) ActiveAt(now time.Time) bool {
	return now.Before(n.CreatedAt.Add(n.Life))
}

func (n Notification) String() string {
	if n.Detail == "" {
		return fmt.Sprintf("[%s] %s", n.Severity, n.Summary)
	}
	return fmt.Sprintf("[%s] %s: %s", n.Severity, n.Summary, n.Detail)
}

// Notifier delivers notifications.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// New builds a notification with a fresh id and the default life.
func New(sev Severity, summary, detail string) Notification {
	return Notification{
		ID:        uuid.NewString(),
		Severity:  sev,
		Summary:   summary,
		Detail:    detail,
		Life:      DefaultLife,
		CreatedAt: time.Now(),
	}
}

func Success(ctx context.Context, to Notifier, summary, detail string) {
	to.Notify(ctx, New(SeveritySuccess, summary, detail))
}

func Info(ctx context.Context, to Notifier, summary, detail string) {
	to.Notify(ctx, New(SeverityInfo, summary, detail))
}

func Warn(ctx context.Context, to Notifier, summary, detail string) {
	to.Notify(ctx, New(SeverityWarn, summary, detail))
}

func Error(ctx context.Context, to Notifier, summary, detail string) {
	to.Notify(ctx, New(SeverityError, summary, detail))
}

// Console writes each notification as one line, optionally with the
// severity tag colored.
type Console struct {
	mu      sync.Mutex
	w       io.Writer
	colored bool
}

func NewConsole(w io.Writer, colored bool) *Console {
	return &Console{w: w, colored: colored}
}

var severityColors = map[Severity]*color.Color{
	SeveritySuccess: color.New(color.FgGreen, color.Bold),
	SeverityInfo:    color.New(color.FgCyan),
	SeverityWarn:    color.New(color.FgYellow),
	SeverityError:   color.New(color.FgRed, color.Bold),
}

func (c *Console) Notify(_ context.Context, n Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()

	line := n.String()
	if c.colored {
		if col, ok := severityColors[n.Severity]; ok {
			tag := "[" + string(n.Severity) + "]"
			line = col.Sprint(tag) + line[len(tag):]
		}
	}
	fmt.Fprintln(c.w, line)
}

// Recorder keeps every notification it receives.
type Recorder struct {
	mu   sync.Mutex
	life time.Duration
	all  []Notification
}

// NewRecorder keeps history. A positive life replaces DefaultLife on
// recorded notifications.
func NewRecorder(life time.Duration) *Recorder {
	return &Recorder{life: life}
}

func (r *Recorder) Notify(_ context.Context, n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.life > 0 && n.Life == DefaultLife {
		n.Life = r.life
	}
	r.all = append(r.all, n)
}

// All returns a copy of the history, oldest first.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.all...)
}

// Last returns the most recent notification.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.all) == 0 {
		return Notification{}, false
	}
	return r.all[len(r.all)-1], true
}

// Active returns the notifications still shown at now, oldest first.
func (r *Recorder) Active(now time.Time) []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Notification
	for _, n := range r.all {
		if n.ActiveAt(now) {
			out = append(out, n)
		}
	}
	return out
}

// Reset drops the history.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.all = nil
	r.mu.Unlock()
}

// Multi fans a notification out to several notifiers.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, n Notification) {
	for _, to := range m {
		to.Notify(ctx, n)
	}
}

// Discard drops everything.
type Discard struct{}

func (Discard) Notify(context.Context, Notification) {}
