package ui

import (
	"context"
	"errors"
	"os"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/overpane/internal/config"
	"github.com/bnema/overpane/internal/demo"
	"github.com/bnema/overpane/internal/logging"
	"github.com/bnema/overpane/internal/ui/component"
	"github.com/bnema/overpane/internal/ui/layout"
	"github.com/bnema/overpane/internal/ui/mainloop"
	"github.com/bnema/overpane/internal/ui/theme"
)

const (
	// AppID is the application identifier for GTK.
	AppID = "com.github.bnema.overpane"

	defaultWidth  = 420
	defaultHeight = 760
)

// errShutdown is the cancel cause once the GTK application shuts down.
var errShutdown = errors.New("gtk application shut down")

// App wraps the GTK Application and hosts one window of overlapping panels.
type App struct {
	deps      *Dependencies
	factory   layout.WidgetFactory
	theme     *theme.Manager
	coalescer *mainloop.Coalescer

	gtkApp *gtk.Application
	window *gtk.ApplicationWindow
	panels *component.OverlappingPanels

	// lifecycle
	ctx    context.Context
	cancel context.CancelCauseFunc
}

// New creates a new App with the given dependencies.
func New(deps *Dependencies) (*App, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancelCause(logging.WithComponent(deps.Ctx, "gtk"))

	app := &App{
		deps:    deps,
		factory: deps.Factory,
		theme:   deps.Theme,
		ctx:     ctx,
		cancel:  cancel,
	}
	if app.factory == nil {
		app.factory = layout.NewGtkWidgetFactory()
	}
	app.coalescer = mainloop.NewCoalescer(postIdle)
	return app, nil
}

// postIdle runs fn once on the GTK main loop.
func postIdle(fn func()) {
	glib.IdleAdd(func() bool {
		fn()
		return false
	})
}

// gtkApplicationFlags lets several windows run side by side, each with its
// own config directory.
func gtkApplicationFlags() gio.ApplicationFlags {
	return gio.ApplicationNonUnique
}

// Run starts the GTK application and blocks until it exits.
// Returns the exit code.
func (a *App) Run(args []string) int {
	log := logging.FromContext(a.ctx)
	log.Debug().Msg("creating GTK application")

	a.gtkApp = gtk.NewApplication(AppID, gtkApplicationFlags())
	a.gtkApp.ConnectActivate(a.onActivate)
	a.gtkApp.ConnectShutdown(a.onShutdown)

	log.Info().Msg("starting GTK main loop")
	return a.gtkApp.Run(args)
}

// onActivate is called when the GTK application is activated.
func (a *App) onActivate() {
	log := logging.FromContext(a.ctx)
	if a.window != nil {
		a.window.Present()
		return
	}
	log.Debug().Msg("GTK application activated")

	if a.theme == nil {
		a.theme = theme.NewManager(a.ctx, a.deps.Config.Appearance.ColorScheme)
	}
	a.applyGTKColorSchemePreference()
	a.theme.ApplyToDisplay(a.ctx, gdk.DisplayGetDefault())

	if err := a.createPanels(); err != nil {
		log.Error().Err(err).Msg("failed to create panels")
		a.gtkApp.Quit()
		return
	}
	a.createMainWindow()
	a.initConfigWatcher()

	a.window.Present()
	a.panels.QueueSync()
}

func (a *App) applyGTKColorSchemePreference() {
	settings := gtk.SettingsGetDefault()
	if settings == nil || a.theme == nil {
		return
	}
	settings.SetObjectProperty("gtk-application-prefer-dark-theme", a.theme.PrefersDark())
}

func (a *App) createPanels() error {
	cfg := a.deps.Config
	op, err := component.NewOverlappingPanels(a.ctx, a.factory, a.coalescer, cfg.PanelOptions(), cfg.GestureOptions())
	if err != nil {
		return err
	}
	a.panels = op

	left, center, right := demo.Content()
	op.SetLeft(a.newPaneWidget(left, "panel-drawer"))
	op.SetRight(a.newPaneWidget(right, "panel-drawer"))
	op.SetCenter(a.newPaneWidget(center, "panel-center"))
	op.AttachDrag()
	return nil
}

// newPaneWidget builds a titled column of labels for one pane.
func (a *App) newPaneWidget(p demo.Pane, class string) layout.Widget {
	box := a.factory.NewBox(layout.OrientationVertical, 6)
	box.AddCssClass("panel")
	box.AddCssClass(class)

	title := a.factory.NewLabel(p.Title)
	title.AddCssClass("panel-title")
	box.Append(title)

	for _, line := range p.Body {
		label := a.factory.NewLabel(line)
		label.SetWrap(true)
		label.AddCssClass("panel-body")
		box.Append(label)
	}
	return box
}

func (a *App) createMainWindow() {
	a.window = gtk.NewApplicationWindow(a.gtkApp)
	a.window.SetTitle("Overpane")
	a.window.SetDefaultSize(defaultWidth, defaultHeight)
	a.window.SetChild(a.panels.Widget().GtkWidget())
	a.panels.AttachKeys(a.window)

	// The container is not notified of allocation changes, so follow the
	// window size instead.
	a.window.NotifyProperty("default-width", a.panels.QueueSync)
	a.window.NotifyProperty("default-height", a.panels.QueueSync)
	a.window.NotifyProperty("maximized", a.panels.QueueSync)
	a.window.NotifyProperty("fullscreened", a.panels.QueueSync)
}

func (a *App) initConfigWatcher() {
	log := logging.FromContext(a.ctx)

	if a.deps.Manager == nil {
		log.Debug().Msg("no config manager available, skipping watcher")
		return
	}

	a.deps.Manager.OnConfigChange(func(newCfg *config.Config) {
		postIdle(func() { a.applyConfig(newCfg) })
	})

	if err := a.deps.Manager.Watch(); err != nil {
		if errors.Is(err, config.ErrNotLoaded) {
			log.Debug().Msg("no config file, not watching")
			return
		}
		log.Warn().Err(err).Msg("failed to start config watcher")
		return
	}
	log.Debug().Msg("config watcher initialized")
}

// applyConfig runs on the main loop after a config reload.
func (a *App) applyConfig(cfg *config.Config) {
	if cfg == nil || a.ctx.Err() != nil {
		return
	}

	*a.deps.Config = *cfg
	a.panels.SetOptions(cfg.PanelOptions(), cfg.GestureOptions())

	var display *gdk.Display
	if a.window != nil {
		display = a.window.Display()
	}
	a.theme.SetColorScheme(a.ctx, cfg.Appearance.ColorScheme, display)
	a.applyGTKColorSchemePreference()

	logging.FromContext(a.ctx).Info().Msg("config applied")
}

func (a *App) onShutdown() {
	logging.FromContext(a.ctx).Debug().Msg("GTK application shutting down")
	if a.panels != nil {
		a.panels.Destroy()
	}
	a.coalescer.Destroy()
	a.cancel(errShutdown)
}

// Quit requests the application to quit. Safe to call from any goroutine.
func (a *App) Quit() {
	postIdle(func() {
		if a.gtkApp != nil {
			a.gtkApp.Quit()
		}
	})
}

// RunWithArgs is a convenience function that creates and runs an App.
func RunWithArgs(deps *Dependencies) int {
	app, err := New(deps)
	if err != nil {
		ctx := context.Background()
		if deps != nil && deps.Ctx != nil {
			ctx = deps.Ctx
		}
		logging.FromContext(ctx).Error().Err(err).Msg("failed to create application")
		return 1
	}
	return app.Run(os.Args[:1])
}
