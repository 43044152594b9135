package main

import (
	"runtime"

	"lingrow/internal/assets"
	"lingrow/internal/config"
	"lingrow/internal/controllers"
	"lingrow/internal/imaging"
	"lingrow/internal/logger"
	"lingrow/internal/models"
	"lingrow/internal/services"
	"lingrow/internal/shutdown"
	"lingrow/internal/store"
	apptheme "lingrow/internal/theme"
	"lingrow/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName = "Lingrow"
	AppID   = "app.lingrow.viewer"
)

// Application owns the Fyne app, the main window and everything that must be
// shut down with it.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	cfg     *config.Config
	logger  logger.Logger

	controller *controllers.MainController
	view       *views.MainView
	shutdown   *shutdown.Manager
}

func NewApplication(cfg *config.Config, log logger.Logger, version string) *Application {
	fyneApp := app.NewWithID(AppID)
	fyneApp.Settings().SetTheme(apptheme.New())

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.SetMaster()
	if icon, ok := assets.LoadLogo(cfg.LogoPath, imaging.AppIconSize, log); ok {
		fyneApp.SetIcon(icon)
		window.SetIcon(icon)
	}

	icons := assets.LoadIcons(cfg.Icons.Map(), imaging.IconSize, log)
	logo, _ := assets.LoadLogo(cfg.LogoPath, imaging.LogoSize, log)

	st := store.New(cfg.StorePath, log)
	imageService := services.NewImageService(models.NewMockupState(), log)
	controller := controllers.NewMainController(fyneApp, cfg, imageService, st, log)
	view := views.NewMainView(window, icons, logo)
	controller.SetMainView(view)

	manager := shutdown.NewManager(log, shutdown.DefaultTimeout)
	manager.Register("controller", controller)

	log.Info("Application", "application initialized", map[string]interface{}{
		"version":    version,
		"store":      st.Path(),
		"icons":      icons.Names(),
		"go_version": runtime.Version(),
	})

	return &Application{
		fyneApp:    fyneApp,
		window:     window,
		cfg:        cfg,
		logger:     log,
		controller: controller,
		view:       view,
		shutdown:   manager,
	}
}

// Run shows the main window and blocks until the app quits. An explicit
// image that fails to load shows an error; the default image is optional.
func (a *Application) Run(image string) error {
	if image != "" {
		a.controller.LoadPath(image, false)
	} else if a.cfg.DefaultImage != "" {
		a.controller.LoadPath(a.cfg.DefaultImage, true)
	}

	a.controller.StartWatch(a.shutdown.Context())
	stop := a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})
	defer stop()

	a.window.SetOnClosed(func() {
		a.logger.Info("Application", "main window closed", nil)
		a.controller.CloseWindows()
	})

	a.window.ShowAndRun()
	a.shutdown.Shutdown()
	return nil
}
