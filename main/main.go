package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog/log"

	"github.com/archiflux/Glowpoint/command"
	"github.com/archiflux/Glowpoint/config"
	"github.com/archiflux/Glowpoint/display"
	"github.com/archiflux/Glowpoint/engine"
	"github.com/archiflux/Glowpoint/eventloop"
	"github.com/archiflux/Glowpoint/hotkey"
	"github.com/archiflux/Glowpoint/logging"
	"github.com/archiflux/Glowpoint/notify"
	"github.com/archiflux/Glowpoint/overlay"
	"github.com/archiflux/Glowpoint/spotlight"
	"github.com/archiflux/Glowpoint/state"
	"github.com/archiflux/Glowpoint/toolbar"
	"github.com/archiflux/Glowpoint/tray"
)

var version = "dev"

func main() {
	showVersion := flag.Bool("version", false, "Print the version and exit")
	flag.Parse()
	if *showVersion {
		os.Stdout.WriteString("glowpoint " + version + "\n")
		return
	}

	cfg, err := config.Load()
	if err != nil {
		// Logging is not configured yet, write straight to stderr.
		os.Stderr.WriteString("glowpoint: " + err.Error() + "\n")
		os.Exit(1)
	}
	logging.Setup(cfg.EnableFileLogging)
	log.Info().Str("version", version).Msg("Glowpoint starting")

	a := app.NewWithID("com.archiflux.glowpoint")

	// The loop is created after its collaborators; they post through
	// this indirection.
	var loop *eventloop.Loop
	post := func(cmd command.Command) { loop.Post(cmd) }

	machine := state.NewMachine(cfg)
	spot := spotlight.New(cfg.Spotlight)

	ctrl, err := overlay.NewController(a, cfg, spot, post)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create overlay")
	}
	palette := toolbar.New(a, machine, post)
	trayUI := tray.New(cfg, version, post)
	notifier := notify.New(a)

	front := &fyneFrontend{ctrl: ctrl, palette: palette, tray: trayUI, spot: spot, notifier: notifier}
	loop = eventloop.New(cfg, machine, front, ctrl.Layout(), func() {
		fyne.Do(a.Quit)
	})

	hk := hotkey.New()
	registerShortcuts(cfg, hk, loop)
	hk.OnCursorMove(func(x, y int16) {
		loop.Post(command.CursorMoved(engine.Point{X: float32(x), Y: float32(y)}))
	})
	if err := hk.Start(); err != nil {
		// The overlay, tray and toolbar still work without global
		// shortcuts; warn and keep going.
		notifier.HotkeysUnavailable(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		if err := loop.Run(ctx); err != nil && err != context.Canceled {
			log.Error().Err(err).Msg("Control loop stopped")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		loop.Post(command.Quit())
	}()

	trayUI.Start()
	ctrl.Show()
	a.Run()

	cancel()
	hk.Stop()
	trayUI.Stop()
	log.Info().Msg("Glowpoint stopped")
}

func registerShortcuts(cfg *config.Config, hk *hotkey.Listener, loop *eventloop.Loop) {
	bind := func(action string, cmd command.Command) {
		chord := cfg.Shortcut(action)
		if chord == "" {
			return
		}
		if err := hk.Register(chord, func() { loop.Post(cmd) }); err != nil {
			log.Warn().Err(err).Str("action", action).Str("chord", chord).Msg("Skipping unparseable shortcut")
		}
	}
	bind(config.ActionToggleSpotlight, command.ToggleSpotlight())
	bind(config.ActionDrawBlue, command.ToggleDraw("blue"))
	bind(config.ActionDrawRed, command.ToggleDraw("red"))
	bind(config.ActionDrawYellow, command.ToggleDraw("yellow"))
	bind(config.ActionDrawGreen, command.ToggleDraw("green"))
	bind(config.ActionClearScreen, command.ClearAll())
	bind(config.ActionQuit, command.Quit())
}

// fyneFrontend applies the loop's side effects on the toolkit thread.
type fyneFrontend struct {
	ctrl     *overlay.Controller
	palette  *toolbar.Toolbar
	tray     *tray.UI
	spot     *spotlight.Renderer
	notifier *notify.Notifier
}

func (f *fyneFrontend) SetCapturing(capturing bool) {
	fyne.Do(func() { f.ctrl.SetCapturing(capturing) })
}

func (f *fyneFrontend) SetToolbarVisible(visible bool) {
	fyne.Do(func() {
		if visible {
			f.palette.Show()
		} else {
			f.palette.Hide()
		}
	})
}

func (f *fyneFrontend) SetScene(objs []fyne.CanvasObject) {
	fyne.Do(func() { f.ctrl.SetScene(objs) })
}

func (f *fyneFrontend) SyncToolbar(s eventloop.ToolbarState) {
	fyne.Do(func() { f.palette.Sync(s.Tool, s.Color, s.Thickness, s.CanUndo, s.CanRedo) })
}

func (f *fyneFrontend) SetSpotlightVisible(visible bool) {
	fyne.Do(func() { f.spot.SetVisible(visible) })
}

func (f *fyneFrontend) MoveSpotlight(p engine.Point) {
	fyne.Do(func() { f.spot.Update(fyne.NewPos(p.X, p.Y)) })
}

func (f *fyneFrontend) ApplySpotlightConfig(cfg config.Spotlight) {
	fyne.Do(func() { f.spot.ApplyConfig(cfg) })
}

func (f *fyneFrontend) ApplyLayout(l display.Layout) {
	fyne.Do(func() { f.ctrl.ApplyLayout(l) })
}

func (f *fyneFrontend) SetTraySpotlight(on bool) {
	f.tray.SetSpotlight(on)
}

func (f *fyneFrontend) Notify(title, body string) {
	f.notifier.Send(title, body)
}
