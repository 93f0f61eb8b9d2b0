// Package receiver handles pushes arriving while the app is backgrounded:
// it renders the system notification and routes clicks back into the app as
// URL intents.
package receiver

import (
	"context"
	"net/url"
	"strings"

	"github.com/anyproto/any-sync/app/logger"
	"go.uber.org/zap"

	"github.com/focusdeck/focusdeck-push-server/domain"
)

const CName = "client.receiver"

var log = logger.NewNamed(CName)

// Options are the resolved display options for a system notification.
type Options struct {
	Title              string
	Body               string
	Icon               string
	Badge              string
	Tag                string
	RequireInteraction bool
	Actions            []domain.Action
	Data               map[string]string
}

// Display renders system notifications and dismisses them.
type Display interface {
	Show(ctx context.Context, opts Options) error
}

// Window is one open application window or tab.
type Window interface {
	URL() string
	Focus(ctx context.Context) error
	Navigate(ctx context.Context, target string) error
}

// Windows enumerates and opens application windows.
type Windows interface {
	List(ctx context.Context) ([]Window, error)
	Open(ctx context.Context, target string) error
}

// Click is a user interaction with a shown notification. Action is empty for
// a plain body click. Dismiss must have already closed the notification by
// the time HandleClick runs.
type Click struct {
	Action  string
	Dismiss func()
	Data    map[string]string
}

const defaultBadge = "/icons/badge-72x72.png"

type Receiver struct {
	display Display
	windows Windows
	origin  string
}

func New(display Display, windows Windows, origin string) *Receiver {
	return &Receiver{
		display: display,
		windows: windows,
		origin:  strings.TrimRight(origin, "/"),
	}
}

// HandlePush renders an inbound push as a system notification. Tag, actions
// and requireInteraction all derive from the payload type and data; the
// caller must keep the background context alive until it returns.
func (r *Receiver) HandlePush(ctx context.Context, push domain.Push) bool {
	badge := push.Badge()
	if badge == "" {
		badge = defaultBadge
	}
	opts := Options{
		Title:              push.Notification.Title,
		Body:               push.Notification.Body,
		Icon:               push.Notification.Icon,
		Badge:              badge,
		Tag:                string(push.Type()),
		RequireInteraction: push.RequireInteraction(),
		Actions:            push.Type().Actions(),
		Data:               push.Data,
	}
	if err := r.display.Show(ctx, opts); err != nil {
		log.Warn("notification display failed", zap.String("tag", opts.Tag), zap.Error(err))
		return false
	}
	return true
}

// HandleClick dismisses the notification and routes the chosen action into
// the app. It reports whether a window ended up focused or opened; dismiss
// clicks report true without touching any window.
func (r *Receiver) HandleClick(ctx context.Context, click Click) bool {
	if click.Dismiss != nil {
		click.Dismiss()
	}
	if click.Action == domain.ActionDismiss {
		return true
	}
	target := targetPath(click.Action)
	if err := r.focusOrOpen(ctx, target); err != nil {
		log.Warn("window routing failed", zap.String("action", click.Action), zap.Error(err))
		return false
	}
	return true
}

// targetPath maps a click action to the in-app path. The default body click
// and unknown actions land on the app root.
func targetPath(action string) string {
	switch action {
	case domain.ActionStartBreak:
		return "/?action=start_break"
	case domain.ActionStartFocus:
		return "/?action=start_focus"
	}
	return "/"
}

// focusOrOpen applies the window policy: an exact-URL window is focused as
// is, any same-origin window is navigated then focused, otherwise a new
// window opens at the target.
func (r *Receiver) focusOrOpen(ctx context.Context, target string) error {
	wins, err := r.windows.List(ctx)
	if err != nil {
		return err
	}
	targetUrl := r.origin + target
	var sameOrigin Window
	for _, w := range wins {
		if w.URL() == targetUrl {
			return w.Focus(ctx)
		}
		if sameOrigin == nil && r.isSameOrigin(w.URL()) {
			sameOrigin = w
		}
	}
	if sameOrigin != nil {
		if err = sameOrigin.Navigate(ctx, targetUrl); err != nil {
			return err
		}
		return sameOrigin.Focus(ctx)
	}
	return r.windows.Open(ctx, targetUrl)
}

func (r *Receiver) isSameOrigin(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	o, err := url.Parse(r.origin)
	if err != nil {
		return false
	}
	return u.Scheme == o.Scheme && u.Host == o.Host
}
