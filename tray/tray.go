// Package tray provides the system tray presence: a spotlight toggle,
// quick access to clearing annotations and the quit entry. Menu clicks
// are posted as commands, never applied directly.
package tray

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"strings"

	"github.com/getlantern/systray"
	"github.com/rs/zerolog/log"

	"github.com/archiflux/Glowpoint/command"
	"github.com/archiflux/Glowpoint/config"
)

// UI owns the tray icon and menu items.
type UI struct {
	cfg     *config.Config
	post    func(command.Command)
	version string

	mSpotlight *systray.MenuItem
}

func New(cfg *config.Config, version string, post func(command.Command)) *UI {
	return &UI{cfg: cfg, post: post, version: version}
}

// Start launches the tray loop on its own goroutine; the GUI toolkit
// owns the main thread.
func (u *UI) Start() {
	go systray.Run(u.onReady, u.onExit)
}

func (u *UI) Stop() {
	systray.Quit()
}

func (u *UI) onReady() {
	systray.SetIcon(iconPNG())
	systray.SetTitle("Glowpoint")
	systray.SetTooltip(u.tooltip())

	u.mSpotlight = systray.AddMenuItemCheckbox("Spotlight", "Toggle the cursor spotlight", u.cfg.Spotlight.Enabled)
	systray.AddSeparator()
	mClear := systray.AddMenuItem("Clear Annotations", "Remove every annotation")
	mReload := systray.AddMenuItem("Reload Settings", "Re-read config.json")
	systray.AddSeparator()
	mAbout := systray.AddMenuItem("About", "About Glowpoint")
	mQuit := systray.AddMenuItem("Quit", "Exit Glowpoint")

	go u.handleEvents(mClear, mReload, mAbout, mQuit)
}

func (u *UI) handleEvents(mClear, mReload, mAbout, mQuit *systray.MenuItem) {
	for {
		select {
		case <-u.mSpotlight.ClickedCh:
			u.post(command.ToggleSpotlight())
		case <-mClear.ClickedCh:
			u.post(command.ClearAll())
		case <-mReload.ClickedCh:
			u.post(command.ReloadSpotlight())
		case <-mAbout.ClickedCh:
			u.showAbout()
		case <-mQuit.ClickedCh:
			u.post(command.Quit())
		}
	}
}

// SetSpotlight syncs the checkbox after hotkey-driven toggles.
func (u *UI) SetSpotlight(on bool) {
	if u.mSpotlight == nil {
		return
	}
	if on {
		u.mSpotlight.Check()
	} else {
		u.mSpotlight.Uncheck()
	}
}

func (u *UI) tooltip() string {
	var b strings.Builder
	b.WriteString("Glowpoint\n")
	fmt.Fprintf(&b, "Spotlight: %s\n", u.cfg.ShortcutDisplay(config.ActionToggleSpotlight))
	for _, name := range []string{"blue", "red", "yellow", "green"} {
		if chord := u.cfg.ShortcutDisplay("draw_" + name); chord != "" {
			fmt.Fprintf(&b, "Draw %s: %s\n", name, chord)
		}
	}
	fmt.Fprintf(&b, "Clear: %s", u.cfg.ShortcutDisplay(config.ActionClearScreen))
	return b.String()
}

func (u *UI) showAbout() {
	msg := fmt.Sprintf("Glowpoint %s\nCursor spotlight and screen annotation overlay.", u.version)
	log.Info().Str("version", u.version).Msg("About requested")
	showAboutDialog("About Glowpoint", msg)
}

func (u *UI) onExit() {
	log.Debug().Msg("Tray exited")
}

// iconPNG renders the tray icon at runtime: a soft yellow glow with a
// bright ring, matching the spotlight look.
func iconPNG() []byte {
	const size = 32
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	center := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-center, float64(y)+0.5-center)
			switch {
			case d < 7:
				img.SetNRGBA(x, y, color.NRGBA{0xFF, 0xFF, 0x64, 0xFF})
			case d < 10:
				img.SetNRGBA(x, y, color.NRGBA{0xFF, 0xFF, 0x64, 0xC8})
			case d < 14:
				img.SetNRGBA(x, y, color.NRGBA{0xFF, 0xFF, 0x64, 0x50})
			}
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		log.Error().Err(err).Msg("Failed to encode tray icon")
		return nil
	}
	return buf.Bytes()
}
