// Package notify sends desktop notifications for mode changes and
// degraded-capability warnings.
package notify

import (
	"fyne.io/fyne/v2"
	"github.com/rs/zerolog/log"
)

type Notifier struct {
	app fyne.App
}

func New(a fyne.App) *Notifier {
	return &Notifier{app: a}
}

func (n *Notifier) Send(title, body string) {
	log.Debug().Str("title", title).Str("body", body).Msg("Notification")
	n.app.SendNotification(fyne.NewNotification(title, body))
}

// HotkeysUnavailable warns that global shortcuts could not be
// installed; tray and toolbar remain usable.
func (n *Notifier) HotkeysUnavailable(err error) {
	log.Warn().Err(err).Msg("Global hotkeys unavailable")
	n.Send("Glowpoint", "Global shortcuts are unavailable. Use the tray menu instead.")
}
