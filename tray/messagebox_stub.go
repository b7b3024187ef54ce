//go:build !windows

package tray

import "github.com/rs/zerolog/log"

// showAboutDialog logs the message where no native dialog exists.
func showAboutDialog(title, message string) {
	log.Info().Str("title", title).Msg(message)
}
